package invoicing

import (
	"context"

	"github.com/billfold/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceRepository defines persistence operations for invoices. Save
// replaces line items wholesale; Delete cascades to them.
type InvoiceRepository interface {
	shared.Repository[Invoice]

	// GenerateNumber produces the next sequence number from all stored
	// invoice numbers. Uniqueness is not enforced on save.
	GenerateNumber(ctx context.Context) (string, error)

	// DetachBusiness nulls the business weak reference on every invoice
	// pointing at the given profile, leaving snapshots untouched.
	DetachBusiness(ctx context.Context, businessID uuid.UUID) error

	// DetachClient nulls the client weak reference on every invoice
	// pointing at the given client.
	DetachClient(ctx context.Context, clientID uuid.UUID) error
}
