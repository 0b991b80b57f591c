package invoicing

import (
	"time"

	"github.com/billfold/backend/internal/domain/invoicing"
	"github.com/billfold/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one billable row in a create or update request
type LineItemRequest struct {
	Title     string          `json:"title" binding:"required,max=500"`
	Quantity  int64           `json:"quantity" binding:"min=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateInvoiceRequest creates an invoice. An empty number asks the
// service to generate the next sequential one. Business and client
// references are optional; when present, the matching profile's
// display fields are frozen onto the invoice.
type CreateInvoiceRequest struct {
	Number      string            `json:"number" binding:"max=50"`
	Currency    string            `json:"currency" binding:"max=10"`
	IssueDate   time.Time         `json:"issue_date" binding:"required"`
	DueDate     time.Time         `json:"due_date" binding:"required"`
	PeriodStart *time.Time        `json:"period_start"`
	PeriodEnd   *time.Time        `json:"period_end"`
	TaxPercent  decimal.Decimal   `json:"tax_percent"`
	BusinessID  *uuid.UUID        `json:"business_id"`
	ClientID    *uuid.UUID        `json:"client_id"`
	Items       []LineItemRequest `json:"items"`
}

// UpdateInvoiceRequest replaces an invoice's content wholesale. Line
// items are deleted and re-inserted; a supplied business or client
// reference re-runs the snapshot copy, a nil one leaves the stored
// snapshot untouched.
type UpdateInvoiceRequest struct {
	Number      string            `json:"number" binding:"required,max=50"`
	Currency    string            `json:"currency" binding:"max=10"`
	IssueDate   time.Time         `json:"issue_date" binding:"required"`
	DueDate     time.Time         `json:"due_date" binding:"required"`
	PeriodStart *time.Time        `json:"period_start"`
	PeriodEnd   *time.Time        `json:"period_end"`
	TaxPercent  decimal.Decimal   `json:"tax_percent"`
	BusinessID  *uuid.UUID        `json:"business_id"`
	ClientID    *uuid.UUID        `json:"client_id"`
	Items       []LineItemRequest `json:"items"`
}

// SetPaidRequest toggles the paid flag
type SetPaidRequest struct {
	Paid bool `json:"paid"`
}

// GeneratePDFRequest selects the export template. Unknown names fall
// back to classic.
type GeneratePDFRequest struct {
	Template string `json:"template"`
}

// ListRequest carries pagination and search options for invoices
type ListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
}

// ToFilter converts the request to a repository filter. Invoices list
// by issue date descending unless the caller asks otherwise.
func (r ListRequest) ToFilter() shared.Filter {
	filter := shared.DefaultFilter()
	filter.OrderBy = "issue_date"
	if r.Page > 0 {
		filter.Page = r.Page
	}
	if r.PageSize > 0 {
		filter.PageSize = r.PageSize
	}
	if r.OrderBy != "" {
		filter.OrderBy = r.OrderBy
	}
	if r.OrderDir != "" {
		filter.OrderDir = r.OrderDir
	}
	filter.Search = r.Search
	return filter
}

// PartySnapshotResponse is the frozen profile copy carried by an invoice
type PartySnapshotResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	TaxID   string `json:"tax_id"`
	HasLogo bool   `json:"has_logo"`
}

// LineItemResponse is one billable row in API responses
type LineItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	Position  int             `json:"position"`
	Title     string          `json:"title"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// InvoiceResponse represents an invoice in API responses. Totals are
// derived at read time, never stored.
type InvoiceResponse struct {
	ID          uuid.UUID       `json:"id"`
	Number      string          `json:"number"`
	Currency    string          `json:"currency"`
	IssueDate   time.Time       `json:"issue_date"`
	DueDate     time.Time       `json:"due_date"`
	PeriodStart *time.Time      `json:"period_start,omitempty"`
	PeriodEnd   *time.Time      `json:"period_end,omitempty"`
	TaxPercent  decimal.Decimal `json:"tax_percent"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	Status      string          `json:"status"`

	BusinessID *uuid.UUID            `json:"business_id,omitempty"`
	ClientID   *uuid.UUID            `json:"client_id,omitempty"`
	Business   PartySnapshotResponse `json:"business"`
	Client     PartySnapshotResponse `json:"client"`

	Items []LineItemResponse `json:"items"`

	Subtotal          decimal.Decimal `json:"subtotal"`
	TaxAmount         decimal.Decimal `json:"tax_amount"`
	Total             decimal.Decimal `json:"total"`
	FormattedSubtotal string          `json:"formatted_subtotal"`
	FormattedTax      string          `json:"formatted_tax"`
	FormattedTotal    string          `json:"formatted_total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// InvoiceListResponse is a paginated invoice listing
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Total int64             `json:"total"`
}

// GeneratePDFResponse reports where the document was written
type GeneratePDFResponse struct {
	Path string `json:"path"`
}

func snapshotToResponse(s invoicing.PartySnapshot) PartySnapshotResponse {
	return PartySnapshotResponse{
		Name:    s.Name,
		Address: s.Address,
		Phone:   s.Phone,
		Email:   s.Email,
		TaxID:   s.TaxID,
		HasLogo: len(s.Logo) > 0,
	}
}

func invoiceToResponse(inv *invoicing.Invoice) *InvoiceResponse {
	items := make([]LineItemResponse, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, LineItemResponse{
			ID:        item.ID,
			Position:  item.Position,
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total(),
		})
	}

	return &InvoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		Currency:    string(inv.DisplayCurrency()),
		IssueDate:   inv.IssueDate,
		DueDate:     inv.DueDate,
		PeriodStart: inv.PeriodStart,
		PeriodEnd:   inv.PeriodEnd,
		TaxPercent:  inv.TaxPercent,
		PaidAt:      inv.PaidAt,
		Status:      inv.StatusText(),

		BusinessID: inv.BusinessID,
		ClientID:   inv.ClientID,
		Business:   snapshotToResponse(inv.Business),
		Client:     snapshotToResponse(inv.Client),

		Items: items,

		Subtotal:          inv.Subtotal().Round(2),
		TaxAmount:         inv.TaxAmount().Round(2),
		Total:             inv.Total().Round(2),
		FormattedSubtotal: inv.SubtotalMoney().Format(),
		FormattedTax:      inv.TaxMoney().Format(),
		FormattedTotal:    inv.TotalMoney().Format(),

		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
		Version:   inv.Version,
	}
}
