package models

import (
	"github.com/billfold/backend/internal/domain/profile"
)

// BusinessProfileModel is the persistence model for the BusinessProfile aggregate.
type BusinessProfileModel struct {
	AggregateModel
	Name    string `gorm:"type:varchar(200);not null"`
	Address string `gorm:"type:text"`
	Phone   string `gorm:"type:varchar(50)"`
	Email   string `gorm:"type:varchar(200)"`
	TaxID   string `gorm:"type:varchar(50)"`
	Logo    []byte `gorm:"type:blob"`
}

// TableName returns the table name for GORM
func (BusinessProfileModel) TableName() string {
	return "business_profiles"
}

// ToDomain converts the persistence model to a domain BusinessProfile.
func (m *BusinessProfileModel) ToDomain() *profile.BusinessProfile {
	p := &profile.BusinessProfile{
		Name:    m.Name,
		Address: m.Address,
		Phone:   m.Phone,
		Email:   m.Email,
		TaxID:   m.TaxID,
		Logo:    m.Logo,
	}
	m.PopulateAggregateRoot(&p.BaseAggregateRoot)
	return p
}

// FromDomain populates the persistence model from a domain BusinessProfile.
func (m *BusinessProfileModel) FromDomain(p *profile.BusinessProfile) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Name = p.Name
	m.Address = p.Address
	m.Phone = p.Phone
	m.Email = p.Email
	m.TaxID = p.TaxID
	m.Logo = p.Logo
}

// ClientModel is the persistence model for the Client aggregate.
type ClientModel struct {
	AggregateModel
	Name    string `gorm:"type:varchar(200);not null"`
	Address string `gorm:"type:text"`
	Phone   string `gorm:"type:varchar(50)"`
	Email   string `gorm:"type:varchar(200)"`
	TaxID   string `gorm:"type:varchar(50)"`
	Logo    []byte `gorm:"type:blob"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client.
func (m *ClientModel) ToDomain() *profile.Client {
	c := &profile.Client{
		Name:    m.Name,
		Address: m.Address,
		Phone:   m.Phone,
		Email:   m.Email,
		TaxID:   m.TaxID,
		Logo:    m.Logo,
	}
	m.PopulateAggregateRoot(&c.BaseAggregateRoot)
	return c
}

// FromDomain populates the persistence model from a domain Client.
func (m *ClientModel) FromDomain(c *profile.Client) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.Address = c.Address
	m.Phone = c.Phone
	m.Email = c.Email
	m.TaxID = c.TaxID
	m.Logo = c.Logo
}
