package profile

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/billfold/backend/internal/domain/invoicing"
	"github.com/billfold/backend/internal/domain/profile"
	"github.com/billfold/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mocks
// =============================================================================

type MockBusinessProfileRepository struct {
	mock.Mock
}

func (m *MockBusinessProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*profile.BusinessProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.BusinessProfile), args.Error(1)
}

func (m *MockBusinessProfileRepository) FindAll(ctx context.Context, filter shared.Filter) ([]profile.BusinessProfile, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]profile.BusinessProfile), args.Error(1)
}

func (m *MockBusinessProfileRepository) Save(ctx context.Context, p *profile.BusinessProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockBusinessProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBusinessProfileRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*profile.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]profile.Client, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]profile.Client), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, c *profile.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoicing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoicing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]invoicing.Invoice, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]invoicing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, inv *invoicing.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) GenerateNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockInvoiceRepository) DetachBusiness(ctx context.Context, businessID uuid.UUID) error {
	args := m.Called(ctx, businessID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DetachClient(ctx context.Context, clientID uuid.UUID) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// =============================================================================
// Tests
// =============================================================================

func TestBusinessProfileService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a profile with a logo", func(t *testing.T) {
		repo := new(MockBusinessProfileRepository)
		service := NewBusinessProfileService(repo, new(MockInvoiceRepository))
		repo.On("Save", ctx, mock.AnythingOfType("*profile.BusinessProfile")).Return(nil)

		logo := []byte{0x89, 0x50, 0x4e, 0x47}
		resp, err := service.Create(ctx, CreateProfileRequest{
			Name:  "Acme Studio",
			Email: "billing@acme.test",
			Logo:  base64.StdEncoding.EncodeToString(logo),
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme Studio", resp.Name)
		assert.True(t, resp.HasLogo)
		assert.Equal(t, base64.StdEncoding.EncodeToString(logo), resp.Logo)
		repo.AssertExpectations(t)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		service := NewBusinessProfileService(new(MockBusinessProfileRepository), new(MockInvoiceRepository))

		_, err := service.Create(ctx, CreateProfileRequest{Name: ""})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_NAME", domainErr.Code)
	})

	t.Run("rejects malformed logo encoding", func(t *testing.T) {
		service := NewBusinessProfileService(new(MockBusinessProfileRepository), new(MockInvoiceRepository))

		_, err := service.Create(ctx, CreateProfileRequest{Name: "Acme", Logo: "%%not-base64%%"})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_LOGO", domainErr.Code)
	})
}

func TestBusinessProfileService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("nil logo keeps the stored one, empty string clears it", func(t *testing.T) {
		repo := new(MockBusinessProfileRepository)
		service := NewBusinessProfileService(repo, new(MockInvoiceRepository))

		stored, err := profile.NewBusinessProfile("Acme Studio")
		require.NoError(t, err)
		stored.SetLogo([]byte{0x01, 0x02})

		repo.On("FindByID", ctx, stored.ID).Return(stored, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*profile.BusinessProfile")).Return(nil)

		resp, err := service.Update(ctx, stored.ID, UpdateProfileRequest{Name: "Acme Studio"})
		require.NoError(t, err)
		assert.True(t, resp.HasLogo)

		empty := ""
		resp, err = service.Update(ctx, stored.ID, UpdateProfileRequest{Name: "Acme Studio", Logo: &empty})
		require.NoError(t, err)
		assert.False(t, resp.HasLogo)
	})

	t.Run("returns not found for an unknown profile", func(t *testing.T) {
		repo := new(MockBusinessProfileRepository)
		service := NewBusinessProfileService(repo, new(MockInvoiceRepository))

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(ctx, id, UpdateProfileRequest{Name: "Whatever"})
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestBusinessProfileService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("detaches invoice references before deleting", func(t *testing.T) {
		repo := new(MockBusinessProfileRepository)
		invoiceRepo := new(MockInvoiceRepository)
		service := NewBusinessProfileService(repo, invoiceRepo)

		stored, err := profile.NewBusinessProfile("Acme Studio")
		require.NoError(t, err)

		repo.On("FindByID", ctx, stored.ID).Return(stored, nil)
		invoiceRepo.On("DetachBusiness", ctx, stored.ID).Return(nil)
		repo.On("Delete", ctx, stored.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, stored.ID))
		invoiceRepo.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("unknown profile is not detached", func(t *testing.T) {
		repo := new(MockBusinessProfileRepository)
		invoiceRepo := new(MockInvoiceRepository)
		service := NewBusinessProfileService(repo, invoiceRepo)

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		assert.Equal(t, shared.ErrNotFound, service.Delete(ctx, id))
		invoiceRepo.AssertNotCalled(t, "DetachBusiness", mock.Anything, mock.Anything)
	})
}

func TestClientService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("detaches invoice references before deleting", func(t *testing.T) {
		repo := new(MockClientRepository)
		invoiceRepo := new(MockInvoiceRepository)
		service := NewClientService(repo, invoiceRepo)

		stored, err := profile.NewClient("Globex Corp")
		require.NoError(t, err)

		repo.On("FindByID", ctx, stored.ID).Return(stored, nil)
		invoiceRepo.On("DetachClient", ctx, stored.ID).Return(nil)
		repo.On("Delete", ctx, stored.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, stored.ID))
		invoiceRepo.AssertExpectations(t)
	})
}

func TestClientService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("lists by name ascending by default", func(t *testing.T) {
		repo := new(MockClientRepository)
		service := NewClientService(repo, new(MockInvoiceRepository))

		expected := shared.DefaultFilter()
		expected.OrderBy = "name"
		expected.OrderDir = "asc"

		repo.On("FindAll", ctx, expected).Return([]profile.Client{}, nil)
		repo.On("Count", ctx, expected).Return(int64(0), nil)

		resp, err := service.List(ctx, ListRequest{})
		require.NoError(t, err)
		assert.Empty(t, resp.Items)
		assert.Equal(t, int64(0), resp.Total)
		repo.AssertExpectations(t)
	})
}
