package lodging

import (
	"context"

	"github.com/google/uuid"
)

// PropertyRepository defines persistence operations for properties
type PropertyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Property, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Property, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	Save(ctx context.Context, property *Property) error
	Delete(ctx context.Context, id uuid.UUID) error
	// AdjustTotalRooms shifts the denormalized room counter by delta.
	AdjustTotalRooms(ctx context.Context, id uuid.UUID, delta int) error
}

// RoomRepository defines persistence operations for rooms
type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Room, error)
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]Room, error)
	// FindAvailableByOwner returns the owner's available rooms across all
	// properties, ordered by property name then room number.
	FindAvailableByOwner(ctx context.Context, ownerID uuid.UUID) ([]AvailableRoom, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	ExistsByPropertyAndNumber(ctx context.Context, propertyID uuid.UUID, roomNumber string, excludeID uuid.UUID) (bool, error)
	Save(ctx context.Context, room *Room) error
	Delete(ctx context.Context, id uuid.UUID) error
	// OwnerOf resolves the owning user of a room via its property.
	OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	// MarkOccupied flips an available room to occupied. It fails with
	// ErrInvalidState when the room is no longer available, which makes
	// concurrent check-ins lose deterministically.
	MarkOccupied(ctx context.Context, id uuid.UUID) error
	// MarkAvailable flips a room back to available on check-out or
	// tenant deletion.
	MarkAvailable(ctx context.Context, id uuid.UUID) error
}

// AvailableRoom is a listing row for rooms open for check-in
type AvailableRoom struct {
	Room
	PropertyName string
}
