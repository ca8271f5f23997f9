package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/domain/lodging"
	"github.com/kosmanager/backend/internal/domain/shared"
	"github.com/kosmanager/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPropertyRepository implements PropertyRepository using GORM
type GormPropertyRepository struct {
	db *gorm.DB
}

// NewGormPropertyRepository creates a new GormPropertyRepository
func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{db: db}
}

// FindByID finds a property by ID
func (r *GormPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*lodging.Property, error) {
	var model models.PropertyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOwner returns all properties of an owner, newest first
func (r *GormPropertyRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]lodging.Property, error) {
	var propertyModels []models.PropertyModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&propertyModels).Error; err != nil {
		return nil, err
	}

	properties := make([]lodging.Property, len(propertyModels))
	for i, model := range propertyModels {
		properties[i] = *model.ToDomain()
	}
	return properties, nil
}

// CountByOwner returns the number of properties an owner has
func (r *GormPropertyRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PropertyModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a property
func (r *GormPropertyRepository) Save(ctx context.Context, property *lodging.Property) error {
	var model models.PropertyModel
	model.FromDomain(property)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete deletes a property by ID
func (r *GormPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PropertyModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// AdjustTotalRooms shifts the denormalized room counter by delta
func (r *GormPropertyRepository) AdjustTotalRooms(ctx context.Context, id uuid.UUID, delta int) error {
	result := r.db.WithContext(ctx).
		Model(&models.PropertyModel{}).
		Where("id = ?", id).
		UpdateColumn("total_rooms", gorm.Expr("total_rooms + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPropertyRepository implements PropertyRepository
var _ lodging.PropertyRepository = (*GormPropertyRepository)(nil)
