package models

import (
	"time"

	"github.com/billfold/backend/internal/domain/invoicing"
	"github.com/billfold/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for the Invoice aggregate.
// Snapshot columns are flattened with business_/client_ prefixes; the
// weak references are nullable and indexed for detach updates.
type InvoiceModel struct {
	AggregateModel
	Number      string          `gorm:"type:varchar(50);not null;index"`
	Currency    string          `gorm:"type:varchar(10);not null;default:'USD'"`
	IssueDate   time.Time       `gorm:"not null"`
	DueDate     time.Time       `gorm:"not null"`
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	TaxPercent  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PaidAt      *time.Time

	BusinessID *uuid.UUID `gorm:"type:uuid;index"`
	ClientID   *uuid.UUID `gorm:"type:uuid;index"`

	BusinessName    string `gorm:"type:varchar(200)"`
	BusinessAddress string `gorm:"type:text"`
	BusinessPhone   string `gorm:"type:varchar(50)"`
	BusinessEmail   string `gorm:"type:varchar(200)"`
	BusinessTaxID   string `gorm:"type:varchar(50)"`
	BusinessLogo    []byte `gorm:"type:blob"`

	ClientName    string `gorm:"type:varchar(200)"`
	ClientAddress string `gorm:"type:text"`
	ClientPhone   string `gorm:"type:varchar(50)"`
	ClientEmail   string `gorm:"type:varchar(200)"`
	ClientTaxID   string `gorm:"type:varchar(50)"`
	ClientLogo    []byte `gorm:"type:blob"`

	Items []LineItemModel `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice.
func (m *InvoiceModel) ToDomain() *invoicing.Invoice {
	inv := &invoicing.Invoice{
		Number:      m.Number,
		Currency:    valueobject.Currency(m.Currency),
		IssueDate:   m.IssueDate,
		DueDate:     m.DueDate,
		PeriodStart: m.PeriodStart,
		PeriodEnd:   m.PeriodEnd,
		TaxPercent:  m.TaxPercent,
		PaidAt:      m.PaidAt,
		BusinessID:  m.BusinessID,
		ClientID:    m.ClientID,
		Business: invoicing.PartySnapshot{
			Name:    m.BusinessName,
			Address: m.BusinessAddress,
			Phone:   m.BusinessPhone,
			Email:   m.BusinessEmail,
			TaxID:   m.BusinessTaxID,
			Logo:    m.BusinessLogo,
		},
		Client: invoicing.PartySnapshot{
			Name:    m.ClientName,
			Address: m.ClientAddress,
			Phone:   m.ClientPhone,
			Email:   m.ClientEmail,
			TaxID:   m.ClientTaxID,
			Logo:    m.ClientLogo,
		},
	}
	m.PopulateAggregateRoot(&inv.BaseAggregateRoot)

	inv.Items = make([]invoicing.LineItem, 0, len(m.Items))
	for _, item := range m.Items {
		inv.Items = append(inv.Items, item.ToDomain())
	}
	return inv
}

// FromDomain populates the persistence model from a domain Invoice.
func (m *InvoiceModel) FromDomain(inv *invoicing.Invoice) {
	m.FromDomainAggregateRoot(inv.BaseAggregateRoot)
	m.Number = inv.Number
	m.Currency = string(inv.Currency)
	m.IssueDate = inv.IssueDate
	m.DueDate = inv.DueDate
	m.PeriodStart = inv.PeriodStart
	m.PeriodEnd = inv.PeriodEnd
	m.TaxPercent = inv.TaxPercent
	m.PaidAt = inv.PaidAt
	m.BusinessID = inv.BusinessID
	m.ClientID = inv.ClientID

	m.BusinessName = inv.Business.Name
	m.BusinessAddress = inv.Business.Address
	m.BusinessPhone = inv.Business.Phone
	m.BusinessEmail = inv.Business.Email
	m.BusinessTaxID = inv.Business.TaxID
	m.BusinessLogo = inv.Business.Logo

	m.ClientName = inv.Client.Name
	m.ClientAddress = inv.Client.Address
	m.ClientPhone = inv.Client.Phone
	m.ClientEmail = inv.Client.Email
	m.ClientTaxID = inv.Client.TaxID
	m.ClientLogo = inv.Client.Logo

	m.Items = make([]LineItemModel, 0, len(inv.Items))
	for _, item := range inv.Items {
		var im LineItemModel
		im.FromDomain(item)
		m.Items = append(m.Items, im)
	}
}

// LineItemModel is the persistence model for invoice line items.
type LineItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"not null;default:0"`
	Title     string          `gorm:"type:varchar(500);not null"`
	Quantity  int64           `gorm:"not null;default:0"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (LineItemModel) TableName() string {
	return "line_items"
}

// ToDomain converts the persistence model to a domain LineItem.
func (m *LineItemModel) ToDomain() invoicing.LineItem {
	return invoicing.LineItem{
		ID:        m.ID,
		InvoiceID: m.InvoiceID,
		Position:  m.Position,
		Title:     m.Title,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
	}
}

// FromDomain populates the persistence model from a domain LineItem.
func (m *LineItemModel) FromDomain(item invoicing.LineItem) {
	m.ID = item.ID
	m.InvoiceID = item.InvoiceID
	m.Position = item.Position
	m.Title = item.Title
	m.Quantity = item.Quantity
	m.UnitPrice = item.UnitPrice
}
