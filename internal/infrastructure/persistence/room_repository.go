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

// GormRoomRepository implements RoomRepository using GORM
type GormRoomRepository struct {
	db *gorm.DB
}

// NewGormRoomRepository creates a new GormRoomRepository
func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

// FindByID finds a room by ID
func (r *GormRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*lodging.Room, error) {
	var model models.RoomModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProperty returns all rooms of a property ordered by room number
func (r *GormRoomRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]lodging.Room, error) {
	var roomModels []models.RoomModel
	if err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("room_number ASC").
		Find(&roomModels).Error; err != nil {
		return nil, err
	}

	rooms := make([]lodging.Room, len(roomModels))
	for i, model := range roomModels {
		rooms[i] = *model.ToDomain()
	}
	return rooms, nil
}

type availableRoomRow struct {
	models.RoomModel
	PropertyName string
}

// FindAvailableByOwner returns the owner's available rooms across all
// properties, ordered by property name then room number
func (r *GormRoomRepository) FindAvailableByOwner(ctx context.Context, ownerID uuid.UUID) ([]lodging.AvailableRoom, error) {
	var rows []availableRoomRow
	if err := r.db.WithContext(ctx).
		Table("rooms").
		Select("rooms.*, properties.name AS property_name").
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Where("properties.owner_id = ? AND rooms.status = ?", ownerID, string(lodging.RoomStatusAvailable)).
		Order("properties.name ASC, rooms.room_number ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	available := make([]lodging.AvailableRoom, len(rows))
	for i, row := range rows {
		available[i] = lodging.AvailableRoom{
			Room:         *row.RoomModel.ToDomain(),
			PropertyName: row.PropertyName,
		}
	}
	return available, nil
}

// CountByOwner returns the number of rooms across all of an owner's properties
func (r *GormRoomRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("rooms").
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Where("properties.owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByPropertyAndNumber checks if a room number is already taken within
// a property. excludeID skips one room, used when renumbering an existing room.
func (r *GormRoomRepository) ExistsByPropertyAndNumber(ctx context.Context, propertyID uuid.UUID, roomNumber string, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&models.RoomModel{}).
		Where("property_id = ? AND LOWER(room_number) = LOWER(?)", propertyID, roomNumber)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a room
func (r *GormRoomRepository) Save(ctx context.Context, room *lodging.Room) error {
	var model models.RoomModel
	model.FromDomain(room)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete deletes a room by ID
func (r *GormRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.RoomModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// OwnerOf resolves the owning user of a room via its property
func (r *GormRoomRepository) OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var row struct {
		OwnerID uuid.UUID
	}
	result := r.db.WithContext(ctx).
		Table("rooms").
		Select("properties.owner_id AS owner_id").
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Where("rooms.id = ?", id).
		Scan(&row)
	if result.Error != nil {
		return uuid.Nil, result.Error
	}
	if result.RowsAffected == 0 {
		return uuid.Nil, shared.ErrNotFound
	}
	return row.OwnerID, nil
}

// MarkOccupied flips an available room to occupied. The status guard in the
// WHERE clause makes concurrent check-ins on the same room lose cleanly.
func (r *GormRoomRepository) MarkOccupied(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.RoomModel{}).
		Where("id = ? AND status = ?", id, string(lodging.RoomStatusAvailable)).
		Update("status", string(lodging.RoomStatusOccupied))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.RoomModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return shared.ErrNotFound
		}
		return shared.ErrInvalidState
	}
	return nil
}

// MarkAvailable flips a room back to available
func (r *GormRoomRepository) MarkAvailable(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.RoomModel{}).
		Where("id = ?", id).
		Update("status", string(lodging.RoomStatusAvailable))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormRoomRepository implements RoomRepository
var _ lodging.RoomRepository = (*GormRoomRepository)(nil)
