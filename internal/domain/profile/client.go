package profile

import (
	"bytes"
	"time"

	"github.com/billfold/backend/internal/domain/shared"
)

// Client represents the billed party on an invoice. Structurally it
// mirrors BusinessProfile and follows the same snapshot relationship:
// invoices copy the display fields at save time.
type Client struct {
	shared.BaseAggregateRoot
	Name    string
	Address string
	Phone   string
	Email   string
	TaxID   string
	Logo    []byte
}

// NewClient creates a new client with required fields
func NewClient(name string) (*Client, error) {
	if err := validatePartyName(name); err != nil {
		return nil, err
	}

	return &Client{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}, nil
}

// Update replaces the client's contact details
func (c *Client) Update(name, address, phone, email, taxID string) error {
	if err := validatePartyName(name); err != nil {
		return err
	}

	c.Name = name
	c.Address = address
	c.Phone = phone
	c.Email = email
	c.TaxID = taxID
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetLogo replaces the client's logo image bytes. Passing nil clears it.
func (c *Client) SetLogo(logo []byte) {
	c.Logo = bytes.Clone(logo)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// HasLogo returns true if the client carries logo bytes
func (c *Client) HasLogo() bool {
	return len(c.Logo) > 0
}
