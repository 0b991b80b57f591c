package persistence

import (
	"context"
	"errors"

	"github.com/billfold/backend/internal/domain/profile"
	"github.com/billfold/backend/internal/domain/shared"
	"github.com/billfold/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBusinessProfileRepository implements profile.BusinessProfileRepository using GORM
type GormBusinessProfileRepository struct {
	db *gorm.DB
}

// NewGormBusinessProfileRepository creates a new GormBusinessProfileRepository
func NewGormBusinessProfileRepository(db *gorm.DB) *GormBusinessProfileRepository {
	return &GormBusinessProfileRepository{db: db}
}

// FindByID finds a business profile by its ID
func (r *GormBusinessProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*profile.BusinessProfile, error) {
	var model models.BusinessProfileModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all business profiles matching the filter
func (r *GormBusinessProfileRepository) FindAll(ctx context.Context, filter shared.Filter) ([]profile.BusinessProfile, error) {
	var profileModels []models.BusinessProfileModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.BusinessProfileModel{}), filter, "name")
	if err := query.Find(&profileModels).Error; err != nil {
		return nil, err
	}

	profiles := make([]profile.BusinessProfile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, *profileModels[i].ToDomain())
	}
	return profiles, nil
}

// Save inserts or updates a business profile
func (r *GormBusinessProfileRepository) Save(ctx context.Context, p *profile.BusinessProfile) error {
	var model models.BusinessProfileModel
	model.FromDomain(p)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete removes a business profile by its ID
func (r *GormBusinessProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BusinessProfileModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts business profiles matching the filter
func (r *GormBusinessProfileRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearch(r.db.WithContext(ctx).Model(&models.BusinessProfileModel{}), filter, "name")
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
