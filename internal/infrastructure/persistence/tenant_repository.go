package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/domain/shared"
	"github.com/kosmanager/backend/internal/domain/tenancy"
	"github.com/kosmanager/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTenantRepository implements TenantRepository using GORM
type GormTenantRepository struct {
	db *gorm.DB
}

// NewGormTenantRepository creates a new GormTenantRepository
func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

// FindByID finds a tenant by ID
func (r *GormTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Tenant, error) {
	var model models.TenantModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

type tenantListingRow struct {
	models.TenantModel
	RoomNumber   string
	PropertyName string
}

// FindByOwner returns all tenants across the owner's properties, newest
// first, enriched with room and property names
func (r *GormTenantRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]tenancy.TenantListing, error) {
	var rows []tenantListingRow
	if err := r.db.WithContext(ctx).
		Table("tenants").
		Select("tenants.*, rooms.room_number, properties.name AS property_name").
		Joins("JOIN rooms ON rooms.id = tenants.room_id").
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Where("properties.owner_id = ?", ownerID).
		Order("tenants.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	listings := make([]tenancy.TenantListing, len(rows))
	for i, row := range rows {
		listings[i] = tenancy.TenantListing{
			Tenant:       *row.TenantModel.ToDomain(),
			RoomNumber:   row.RoomNumber,
			PropertyName: row.PropertyName,
		}
	}
	return listings, nil
}

type activeTenantRow struct {
	models.TenantModel
	RoomNumber   string
	RoomPrice    int64
	PropertyName string
}

// FindActiveByOwner returns active tenants with their room price, ordered
// by property name then room number
func (r *GormTenantRepository) FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]tenancy.ActiveTenantListing, error) {
	var rows []activeTenantRow
	if err := r.db.WithContext(ctx).
		Table("tenants").
		Select("tenants.*, rooms.room_number, rooms.price AS room_price, properties.name AS property_name").
		Joins("JOIN rooms ON rooms.id = tenants.room_id").
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Where("properties.owner_id = ? AND tenants.is_active = ?", ownerID, true).
		Order("properties.name ASC, rooms.room_number ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	listings := make([]tenancy.ActiveTenantListing, len(rows))
	for i, row := range rows {
		listings[i] = tenancy.ActiveTenantListing{
			Tenant:       *row.TenantModel.ToDomain(),
			RoomNumber:   row.RoomNumber,
			RoomPrice:    row.RoomPrice,
			PropertyName: row.PropertyName,
		}
	}
	return listings, nil
}

// Save creates or updates a tenant
func (r *GormTenantRepository) Save(ctx context.Context, tenant *tenancy.Tenant) error {
	var model models.TenantModel
	model.FromDomain(tenant)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete deletes a tenant by ID
func (r *GormTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TenantModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// OwnerOf resolves the owning user of a tenant via room and property
func (r *GormTenantRepository) OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var row struct {
		OwnerID uuid.UUID
	}
	result := r.db.WithContext(ctx).
		Table("tenants").
		Select("properties.owner_id AS owner_id").
		Joins("JOIN rooms ON rooms.id = tenants.room_id").
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Where("tenants.id = ?", id).
		Scan(&row)
	if result.Error != nil {
		return uuid.Nil, result.Error
	}
	if result.RowsAffected == 0 {
		return uuid.Nil, shared.ErrNotFound
	}
	return row.OwnerID, nil
}

// Ensure GormTenantRepository implements TenantRepository
var _ tenancy.TenantRepository = (*GormTenantRepository)(nil)
