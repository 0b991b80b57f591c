package profile

import (
	"time"

	"github.com/billfold/backend/internal/domain/profile"
	"github.com/billfold/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateProfileRequest creates a business profile or client. The logo
// is base64-encoded image bytes; an empty string means no logo.
type CreateProfileRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Address string `json:"address" binding:"max=500"`
	Phone   string `json:"phone" binding:"max=50"`
	Email   string `json:"email" binding:"omitempty,email,max=200"`
	TaxID   string `json:"tax_id" binding:"max=50"`
	Logo    string `json:"logo"`
}

// UpdateProfileRequest replaces a profile's details wholesale. A nil
// Logo leaves the stored logo untouched; an empty string clears it.
type UpdateProfileRequest struct {
	Name    string  `json:"name" binding:"required,min=1,max=200"`
	Address string  `json:"address" binding:"max=500"`
	Phone   string  `json:"phone" binding:"max=50"`
	Email   string  `json:"email" binding:"omitempty,email,max=200"`
	TaxID   string  `json:"tax_id" binding:"max=50"`
	Logo    *string `json:"logo"`
}

// ListRequest carries pagination and search options
type ListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
}

// ToFilter converts the request to a repository filter. Profiles list
// by name ascending unless the caller asks otherwise.
func (r ListRequest) ToFilter() shared.Filter {
	filter := shared.DefaultFilter()
	filter.OrderBy = "name"
	filter.OrderDir = "asc"
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

// ProfileResponse represents a business profile or client in API responses
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	TaxID     string    `json:"tax_id"`
	Logo      string    `json:"logo,omitempty"`
	HasLogo   bool      `json:"has_logo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// ProfileListResponse is a paginated profile listing
type ProfileListResponse struct {
	Items []ProfileResponse `json:"items"`
	Total int64             `json:"total"`
}

func businessToResponse(b *profile.BusinessProfile, includeLogo bool) *ProfileResponse {
	resp := &ProfileResponse{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		Phone:     b.Phone,
		Email:     b.Email,
		TaxID:     b.TaxID,
		HasLogo:   b.HasLogo(),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
		Version:   b.Version,
	}
	if includeLogo && b.HasLogo() {
		resp.Logo = encodeLogo(b.Logo)
	}
	return resp
}

func clientToResponse(c *profile.Client, includeLogo bool) *ProfileResponse {
	resp := &ProfileResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		TaxID:     c.TaxID,
		HasLogo:   c.HasLogo(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Version:   c.Version,
	}
	if includeLogo && c.HasLogo() {
		resp.Logo = encodeLogo(c.Logo)
	}
	return resp
}
