package profile

import (
	"bytes"
	"time"

	"github.com/billfold/backend/internal/domain/shared"
)

// BusinessProfile represents the issuing side of an invoice: the
// user's own business identity. It is the aggregate root for
// business-profile operations. Profiles are freely mutable; invoices
// freeze a copy of the display fields at save time, so later edits
// never alter already-issued documents.
type BusinessProfile struct {
	shared.BaseAggregateRoot
	Name    string
	Address string
	Phone   string
	Email   string
	TaxID   string
	Logo    []byte
}

// NewBusinessProfile creates a new business profile with required fields
func NewBusinessProfile(name string) (*BusinessProfile, error) {
	if err := validatePartyName(name); err != nil {
		return nil, err
	}

	return &BusinessProfile{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}, nil
}

// Update replaces the profile's contact details
func (b *BusinessProfile) Update(name, address, phone, email, taxID string) error {
	if err := validatePartyName(name); err != nil {
		return err
	}

	b.Name = name
	b.Address = address
	b.Phone = phone
	b.Email = email
	b.TaxID = taxID
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}

// SetLogo replaces the profile's logo image bytes. Passing nil clears
// the logo. The slice is copied so callers cannot mutate stored state.
func (b *BusinessProfile) SetLogo(logo []byte) {
	b.Logo = bytes.Clone(logo)
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// HasLogo returns true if the profile carries logo bytes
func (b *BusinessProfile) HasLogo() bool {
	return len(b.Logo) > 0
}

func validatePartyName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}
