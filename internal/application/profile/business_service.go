package profile

import (
	"context"
	"encoding/base64"

	"github.com/billfold/backend/internal/domain/invoicing"
	"github.com/billfold/backend/internal/domain/profile"
	"github.com/billfold/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BusinessProfileService handles business-profile operations
type BusinessProfileService struct {
	profileRepo profile.BusinessProfileRepository
	invoiceRepo invoicing.InvoiceRepository
}

// NewBusinessProfileService creates a new BusinessProfileService
func NewBusinessProfileService(profileRepo profile.BusinessProfileRepository, invoiceRepo invoicing.InvoiceRepository) *BusinessProfileService {
	return &BusinessProfileService{
		profileRepo: profileRepo,
		invoiceRepo: invoiceRepo,
	}
}

// Create creates a new business profile
func (s *BusinessProfileService) Create(ctx context.Context, req CreateProfileRequest) (*ProfileResponse, error) {
	p, err := profile.NewBusinessProfile(req.Name)
	if err != nil {
		return nil, err
	}
	if err := p.Update(req.Name, req.Address, req.Phone, req.Email, req.TaxID); err != nil {
		return nil, err
	}

	if req.Logo != "" {
		logo, err := decodeLogo(req.Logo)
		if err != nil {
			return nil, err
		}
		p.SetLogo(logo)
	}

	if err := s.profileRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return businessToResponse(p, true), nil
}

// Update replaces a business profile's details
func (s *BusinessProfileService) Update(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*ProfileResponse, error) {
	p, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := p.Update(req.Name, req.Address, req.Phone, req.Email, req.TaxID); err != nil {
		return nil, err
	}

	if req.Logo != nil {
		if *req.Logo == "" {
			p.SetLogo(nil)
		} else {
			logo, err := decodeLogo(*req.Logo)
			if err != nil {
				return nil, err
			}
			p.SetLogo(logo)
		}
	}

	if err := s.profileRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return businessToResponse(p, true), nil
}

// Get returns a business profile by ID, logo included
func (s *BusinessProfileService) Get(ctx context.Context, id uuid.UUID) (*ProfileResponse, error) {
	p, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return businessToResponse(p, true), nil
}

// List returns business profiles matching the request
func (s *BusinessProfileService) List(ctx context.Context, req ListRequest) (*ProfileListResponse, error) {
	filter := req.ToFilter()

	profiles, err := s.profileRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.profileRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]ProfileResponse, 0, len(profiles))
	for i := range profiles {
		items = append(items, *businessToResponse(&profiles[i], false))
	}
	return &ProfileListResponse{Items: items, Total: total}, nil
}

// Delete removes a business profile. Invoices referencing it keep
// their frozen snapshots; only the weak references are nulled.
func (s *BusinessProfileService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.profileRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.invoiceRepo.DetachBusiness(ctx, id); err != nil {
		return err
	}
	return s.profileRepo.Delete(ctx, id)
}

func decodeLogo(encoded string) ([]byte, error) {
	logo, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_LOGO", "Logo must be valid base64")
	}
	return logo, nil
}

func encodeLogo(logo []byte) string {
	return base64.StdEncoding.EncodeToString(logo)
}
