package persistence

import (
	"context"
	"testing"

	"github.com/billfold/backend/internal/domain/profile"
	"github.com/billfold/backend/internal/domain/shared"
	"github.com/billfold/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.BusinessProfileModel{},
		&models.ClientModel{},
		&models.InvoiceModel{},
		&models.LineItemModel{},
	)
	require.NoError(t, err)

	return db
}

func TestGormBusinessProfileRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBusinessProfileRepository(db)
	ctx := context.Background()

	t.Run("saves and reloads a profile", func(t *testing.T) {
		p, err := profile.NewBusinessProfile("Acme Studio")
		require.NoError(t, err)
		p.Address = "1 Main St"
		p.Email = "billing@acme.test"
		p.Logo = []byte{0x89, 0x50, 0x4e, 0x47}

		require.NoError(t, repo.Save(ctx, p))

		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Studio", found.Name)
		assert.Equal(t, "1 Main St", found.Address)
		assert.Equal(t, "billing@acme.test", found.Email)
		assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, found.Logo)
	})

	t.Run("update overwrites fields", func(t *testing.T) {
		p, err := profile.NewBusinessProfile("Before")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, p))

		require.NoError(t, p.Update("After", "", "", "", ""))
		require.NoError(t, repo.Save(ctx, p))

		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "After", found.Name)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormBusinessProfileRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBusinessProfileRepository(db)
	ctx := context.Background()

	for _, name := range []string{"North Consulting", "South Consulting", "West Imports"} {
		p, err := profile.NewBusinessProfile(name)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, p))
	}

	t.Run("lists all profiles", func(t *testing.T) {
		profiles, err := repo.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Len(t, profiles, 3)
	})

	t.Run("search filters by name", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Search = "Consulting"

		profiles, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, profiles, 2)

		count, err := repo.Count(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("pagination caps results", func(t *testing.T) {
		filter := shared.Filter{Page: 1, PageSize: 2, OrderBy: "name", OrderDir: "asc"}
		profiles, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, profiles, 2)
	})
}

func TestGormBusinessProfileRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBusinessProfileRepository(db)
	ctx := context.Background()

	t.Run("deletes an existing profile", func(t *testing.T) {
		p, err := profile.NewBusinessProfile("To Remove")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, p))

		require.NoError(t, repo.Delete(ctx, p.ID))

		_, err = repo.FindByID(ctx, p.ID)
		assert.Equal(t, shared.ErrNotFound, err)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())
		assert.Equal(t, shared.ErrNotFound, err)
	})
}
