package invoicing

import (
	"context"

	"github.com/billfold/backend/internal/domain/invoicing"
	"github.com/billfold/backend/internal/domain/profile"
	"github.com/billfold/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// PDFGenerator renders an invoice with a template and returns the
// written file path
type PDFGenerator interface {
	Generate(inv *invoicing.Invoice, template invoicing.Template) (string, error)
}

// InvoiceService handles invoice lifecycle operations
type InvoiceService struct {
	invoiceRepo  invoicing.InvoiceRepository
	businessRepo profile.BusinessProfileRepository
	clientRepo   profile.ClientRepository
	generator    PDFGenerator
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo invoicing.InvoiceRepository,
	businessRepo profile.BusinessProfileRepository,
	clientRepo profile.ClientRepository,
	generator PDFGenerator,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		businessRepo: businessRepo,
		clientRepo:   clientRepo,
		generator:    generator,
	}
}

// Create creates a new invoice. A blank number is replaced with the
// next sequential one; supplied profile references are resolved and
// their display fields frozen onto the invoice.
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	number := req.Number
	if number == "" {
		generated, err := s.invoiceRepo.GenerateNumber(ctx)
		if err != nil {
			return nil, err
		}
		number = generated
	}

	currency := valueobject.ParseCurrency(req.Currency)
	inv, err := invoicing.NewInvoice(number, currency, req.IssueDate, req.DueDate, req.TaxPercent)
	if err != nil {
		return nil, err
	}
	inv.SetPeriod(req.PeriodStart, req.PeriodEnd)

	for _, item := range req.Items {
		if _, err := inv.AddItem(item.Title, item.Quantity, item.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err := s.snapshot(ctx, inv, req.BusinessID, req.ClientID); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		return nil, err
	}
	return invoiceToResponse(inv), nil
}

// Update replaces an invoice's content wholesale. Supplied profile
// references re-run the snapshot copy; omitted ones leave the stored
// snapshot and reference untouched.
func (s *InvoiceService) Update(ctx context.Context, id uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	currency := valueobject.ParseCurrency(req.Currency)
	if err := inv.UpdateDetails(req.Number, currency, req.IssueDate, req.DueDate, req.TaxPercent); err != nil {
		return nil, err
	}
	inv.SetPeriod(req.PeriodStart, req.PeriodEnd)

	items := make([]invoicing.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, invoicing.LineItem{
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	inv.ReplaceItems(items)

	if err := s.snapshot(ctx, inv, req.BusinessID, req.ClientID); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		return nil, err
	}
	return invoiceToResponse(inv), nil
}

// snapshot resolves the given references and freezes the profiles'
// display fields onto the invoice. Nil references are skipped.
func (s *InvoiceService) snapshot(ctx context.Context, inv *invoicing.Invoice, businessID, clientID *uuid.UUID) error {
	if businessID != nil {
		business, err := s.businessRepo.FindByID(ctx, *businessID)
		if err != nil {
			return err
		}
		inv.SnapshotBusiness(business)
	}
	if clientID != nil {
		client, err := s.clientRepo.FindByID(ctx, *clientID)
		if err != nil {
			return err
		}
		inv.SnapshotClient(client)
	}
	return nil
}

// Get returns an invoice by ID
func (s *InvoiceService) Get(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return invoiceToResponse(inv), nil
}

// List returns invoices matching the request
func (s *InvoiceService) List(ctx context.Context, req ListRequest) (*InvoiceListResponse, error) {
	filter := req.ToFilter()

	invoices, err := s.invoiceRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.invoiceRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, *invoiceToResponse(&invoices[i]))
	}
	return &InvoiceListResponse{Items: items, Total: total}, nil
}

// Delete removes an invoice and its line items
func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.invoiceRepo.Delete(ctx, id)
}

// SetPaid sets or clears the paid timestamp
func (s *InvoiceService) SetPaid(ctx context.Context, id uuid.UUID, req SetPaidRequest) (*InvoiceResponse, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inv.SetPaid(req.Paid)

	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		return nil, err
	}
	return invoiceToResponse(inv), nil
}

// GeneratePDF renders the invoice to a PDF file and returns its path
func (s *InvoiceService) GeneratePDF(ctx context.Context, id uuid.UUID, req GeneratePDFRequest) (*GeneratePDFResponse, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	path, err := s.generator.Generate(inv, invoicing.ParseTemplate(req.Template))
	if err != nil {
		return nil, err
	}
	return &GeneratePDFResponse{Path: path}, nil
}
