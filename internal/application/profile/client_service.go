package profile

import (
	"context"

	"github.com/billfold/backend/internal/domain/invoicing"
	"github.com/billfold/backend/internal/domain/profile"
	"github.com/google/uuid"
)

// ClientService handles client operations
type ClientService struct {
	clientRepo  profile.ClientRepository
	invoiceRepo invoicing.InvoiceRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo profile.ClientRepository, invoiceRepo invoicing.InvoiceRepository) *ClientService {
	return &ClientService{
		clientRepo:  clientRepo,
		invoiceRepo: invoiceRepo,
	}
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, req CreateProfileRequest) (*ProfileResponse, error) {
	c, err := profile.NewClient(req.Name)
	if err != nil {
		return nil, err
	}
	if err := c.Update(req.Name, req.Address, req.Phone, req.Email, req.TaxID); err != nil {
		return nil, err
	}

	if req.Logo != "" {
		logo, err := decodeLogo(req.Logo)
		if err != nil {
			return nil, err
		}
		c.SetLogo(logo)
	}

	if err := s.clientRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return clientToResponse(c, true), nil
}

// Update replaces a client's details
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*ProfileResponse, error) {
	c, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.Update(req.Name, req.Address, req.Phone, req.Email, req.TaxID); err != nil {
		return nil, err
	}

	if req.Logo != nil {
		if *req.Logo == "" {
			c.SetLogo(nil)
		} else {
			logo, err := decodeLogo(*req.Logo)
			if err != nil {
				return nil, err
			}
			c.SetLogo(logo)
		}
	}

	if err := s.clientRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return clientToResponse(c, true), nil
}

// Get returns a client by ID, logo included
func (s *ClientService) Get(ctx context.Context, id uuid.UUID) (*ProfileResponse, error) {
	c, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return clientToResponse(c, true), nil
}

// List returns clients matching the request
func (s *ClientService) List(ctx context.Context, req ListRequest) (*ProfileListResponse, error) {
	filter := req.ToFilter()

	clients, err := s.clientRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.clientRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]ProfileResponse, 0, len(clients))
	for i := range clients {
		items = append(items, *clientToResponse(&clients[i], false))
	}
	return &ProfileListResponse{Items: items, Total: total}, nil
}

// Delete removes a client, nulling weak references on invoices while
// leaving their snapshots intact
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.clientRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.invoiceRepo.DetachClient(ctx, id); err != nil {
		return err
	}
	return s.clientRepo.Delete(ctx, id)
}
