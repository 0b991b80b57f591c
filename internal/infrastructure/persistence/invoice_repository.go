package persistence

import (
	"context"
	"errors"

	"github.com/billfold/backend/internal/domain/invoicing"
	"github.com/billfold/backend/internal/domain/shared"
	"github.com/billfold/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements invoicing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by its ID, loading line items in position order
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoicing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all invoices matching the filter
func (r *GormInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]invoicing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.InvoiceModel{}), filter, "number").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
	if err := query.Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]invoicing.Invoice, 0, len(invoiceModels))
	for i := range invoiceModels {
		invoices = append(invoices, *invoiceModels[i].ToDomain())
	}
	return invoices, nil
}

// Save inserts or updates an invoice. Line items are replaced wholesale:
// existing rows are deleted and the current set inserted in order.
func (r *GormInvoiceRepository) Save(ctx context.Context, inv *invoicing.Invoice) error {
	var model models.InvoiceModel
	model.FromDomain(inv)
	items := model.Items
	model.Items = nil

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&model).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.LineItemModel{}, "invoice_id = ?", model.ID).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes an invoice and its line items
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.LineItemModel{}, "invoice_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.InvoiceModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts invoices matching the filter
func (r *GormInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearch(r.db.WithContext(ctx).Model(&models.InvoiceModel{}), filter, "number")
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GenerateNumber produces the next sequence number from all stored
// invoice numbers
func (r *GormInvoiceRepository) GenerateNumber(ctx context.Context) (string, error) {
	var numbers []string
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Pluck("number", &numbers).Error; err != nil {
		return "", err
	}
	return invoicing.NextNumber(numbers), nil
}

// DetachBusiness nulls the business weak reference on every invoice
// pointing at the given profile. Snapshots are left untouched.
func (r *GormInvoiceRepository) DetachBusiness(ctx context.Context, businessID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("business_id = ?", businessID).
		Update("business_id", nil).Error
}

// DetachClient nulls the client weak reference on every invoice
// pointing at the given client
func (r *GormInvoiceRepository) DetachClient(ctx context.Context, clientID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("client_id = ?", clientID).
		Update("client_id", nil).Error
}
