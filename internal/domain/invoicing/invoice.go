package invoicing

import (
	"bytes"
	"time"

	"github.com/billfold/backend/internal/domain/profile"
	"github.com/billfold/backend/internal/domain/shared"
	"github.com/billfold/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem represents a single billable row owned by exactly one invoice
type LineItem struct {
	ID        uuid.UUID
	InvoiceID uuid.UUID
	Position  int
	Title     string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// Total returns quantity × unit price for this row
func (i LineItem) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// PartySnapshot holds a frozen copy of a business or client profile's
// display fields, captured when the invoice is saved. It is fully
// independent of the source profile: later edits or deletion of the
// profile never touch it.
type PartySnapshot struct {
	Name    string
	Address string
	Phone   string
	Email   string
	TaxID   string
	Logo    []byte
}

// IsEmpty returns true when no profile was selected at save time
func (s PartySnapshot) IsEmpty() bool {
	return s.Name == ""
}

// Invoice is the aggregate root of the invoicing context. It owns its
// line items exclusively and carries two links to each profile: a weak
// reference (lookup only, nulled when the referent is deleted) and a
// snapshot (the rendered content). Totals are derived, never stored.
type Invoice struct {
	shared.BaseAggregateRoot
	Number      string
	Currency    valueobject.Currency
	IssueDate   time.Time
	DueDate     time.Time
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	TaxPercent  decimal.Decimal
	PaidAt      *time.Time

	// Weak references. May become nil if the source profile is deleted.
	BusinessID *uuid.UUID
	ClientID   *uuid.UUID

	// Frozen display copies, written once per save.
	Business PartySnapshot
	Client   PartySnapshot

	Items []LineItem
}

// NewInvoice creates a new invoice. The number is intended to be unique
// but uniqueness is not enforced; tax percent is expected in 0-100 but
// the upper bound is deliberately left unvalidated.
func NewInvoice(number string, currency valueobject.Currency, issueDate, dueDate time.Time, taxPercent decimal.Decimal) (*Invoice, error) {
	if number == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Invoice number cannot be empty")
	}
	if taxPercent.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TAX_PERCENT", "Tax percent cannot be negative")
	}

	return &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		Currency:          currency,
		IssueDate:         issueDate,
		DueDate:           dueDate,
		TaxPercent:        taxPercent,
	}, nil
}

// UpdateDetails replaces the invoice's header fields. Validation
// mirrors NewInvoice: the number must be non-empty and the tax percent
// non-negative, with no upper bound.
func (inv *Invoice) UpdateDetails(number string, currency valueobject.Currency, issueDate, dueDate time.Time, taxPercent decimal.Decimal) error {
	if number == "" {
		return shared.NewDomainError("INVALID_NUMBER", "Invoice number cannot be empty")
	}
	if taxPercent.IsNegative() {
		return shared.NewDomainError("INVALID_TAX_PERCENT", "Tax percent cannot be negative")
	}

	inv.Number = number
	inv.Currency = currency
	inv.IssueDate = issueDate
	inv.DueDate = dueDate
	inv.TaxPercent = taxPercent
	inv.UpdatedAt = time.Now()
	inv.IncrementVersion()

	return nil
}

// AddItem appends a line item, preserving insertion order
func (inv *Invoice) AddItem(title string, quantity int64, unitPrice decimal.Decimal) (*LineItem, error) {
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	item := LineItem{
		ID:        uuid.New(),
		InvoiceID: inv.ID,
		Position:  len(inv.Items),
		Title:     title,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}
	inv.Items = append(inv.Items, item)
	return &inv.Items[len(inv.Items)-1], nil
}

// ReplaceItems swaps the full item list. The edit flow always replaces
// wholesale: old rows are deleted and the new ones inserted in order.
func (inv *Invoice) ReplaceItems(items []LineItem) {
	inv.Items = make([]LineItem, 0, len(items))
	for idx, item := range items {
		item.ID = uuid.New()
		item.InvoiceID = inv.ID
		item.Position = idx
		inv.Items = append(inv.Items, item)
	}
	inv.UpdatedAt = time.Now()
	inv.IncrementVersion()
}

// SetPeriod sets the optional billing period. Both ends must be set for
// the period to render; a lone start or end is kept but not displayed.
func (inv *Invoice) SetPeriod(start, end *time.Time) {
	inv.PeriodStart = start
	inv.PeriodEnd = end
}

// HasPeriod returns true when both period ends are set
func (inv *Invoice) HasPeriod() bool {
	return inv.PeriodStart != nil && inv.PeriodEnd != nil
}

// Subtotal returns Σ(quantity × unit price) over all items. Degenerate
// input (no items, zero prices) yields zero, never an error.
func (inv *Invoice) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range inv.Items {
		sum = sum.Add(item.Total())
	}
	return sum
}

// TaxAmount returns subtotal × taxPercent / 100
func (inv *Invoice) TaxAmount() decimal.Decimal {
	return inv.Subtotal().Mul(inv.TaxPercent).Div(decimal.NewFromInt(100))
}

// Total returns subtotal + tax amount
func (inv *Invoice) Total() decimal.Decimal {
	return inv.Subtotal().Add(inv.TaxAmount())
}

// SubtotalMoney returns the subtotal in the invoice's currency,
// rounded to the minor unit for display
func (inv *Invoice) SubtotalMoney() valueobject.Money {
	m, _ := valueobject.NewMoney(inv.Subtotal().Round(2), inv.DisplayCurrency())
	return m
}

// TaxMoney returns the tax amount in the invoice's currency
func (inv *Invoice) TaxMoney() valueobject.Money {
	m, _ := valueobject.NewMoney(inv.TaxAmount().Round(2), inv.DisplayCurrency())
	return m
}

// TotalMoney returns the total in the invoice's currency
func (inv *Invoice) TotalMoney() valueobject.Money {
	m, _ := valueobject.NewMoney(inv.Total().Round(2), inv.DisplayCurrency())
	return m
}

// DisplayCurrency resolves the invoice's currency code, falling back to
// USD for unknown or empty codes
func (inv *Invoice) DisplayCurrency() valueobject.Currency {
	return valueobject.ParseCurrency(string(inv.Currency))
}

// IsPaid returns true when a paid timestamp is present
func (inv *Invoice) IsPaid() bool {
	return inv.PaidAt != nil
}

// SetPaid sets or clears the paid timestamp. Marking an already-paid
// invoice paid again keeps the original timestamp.
func (inv *Invoice) SetPaid(paid bool) {
	if paid && inv.PaidAt == nil {
		now := time.Now()
		inv.PaidAt = &now
	} else if !paid {
		inv.PaidAt = nil
	}
	inv.UpdatedAt = time.Now()
	inv.IncrementVersion()
}

// StatusText returns the rendered status line value
func (inv *Invoice) StatusText() string {
	if inv.IsPaid() {
		return "Paid"
	}
	return "Unpaid"
}

// SnapshotBusiness freezes the given business profile's display fields
// onto the invoice and sets the weak reference. Re-running the snapshot
// is a full overwrite, not a merge. A nil profile clears both the
// reference and the snapshot.
func (inv *Invoice) SnapshotBusiness(b *profile.BusinessProfile) {
	if b == nil {
		inv.BusinessID = nil
		inv.Business = PartySnapshot{}
		return
	}
	id := b.ID
	inv.BusinessID = &id
	inv.Business = PartySnapshot{
		Name:    b.Name,
		Address: b.Address,
		Phone:   b.Phone,
		Email:   b.Email,
		TaxID:   b.TaxID,
		Logo:    bytes.Clone(b.Logo),
	}
}

// SnapshotClient freezes the given client's display fields onto the
// invoice and sets the weak reference
func (inv *Invoice) SnapshotClient(c *profile.Client) {
	if c == nil {
		inv.ClientID = nil
		inv.Client = PartySnapshot{}
		return
	}
	id := c.ID
	inv.ClientID = &id
	inv.Client = PartySnapshot{
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
		Email:   c.Email,
		TaxID:   c.TaxID,
		Logo:    bytes.Clone(c.Logo),
	}
}

// DetachBusiness nulls the weak reference when the source profile is
// deleted. The snapshot stays untouched: the reference is a lookup
// convenience, the snapshot is the rendered content.
func (inv *Invoice) DetachBusiness() {
	inv.BusinessID = nil
}

// DetachClient nulls the client weak reference, leaving the snapshot alone
func (inv *Invoice) DetachClient() {
	inv.ClientID = nil
}
