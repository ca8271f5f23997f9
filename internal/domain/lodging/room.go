package lodging

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/domain/shared"
)

// RoomStatus represents the occupancy status of a room
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// Minimum monthly price in rupiah
const MinRoomPrice int64 = 100000

// Room represents a rentable room inside a property.
// Room numbers are unique within a property, not globally.
type Room struct {
	shared.BaseEntity
	PropertyID uuid.UUID
	RoomNumber string
	Price      int64
	Status     RoomStatus
	Facilities []string
}

// NewRoom creates a new available room
func NewRoom(propertyID uuid.UUID, roomNumber string, price int64, facilities []string) (*Room, error) {
	if propertyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Property ID cannot be empty")
	}
	if err := validateRoomNumber(roomNumber); err != nil {
		return nil, err
	}
	if err := validateRoomPrice(price); err != nil {
		return nil, err
	}
	if facilities == nil {
		facilities = make([]string, 0)
	}

	return &Room{
		BaseEntity: shared.NewBaseEntity(),
		PropertyID: propertyID,
		RoomNumber: strings.TrimSpace(roomNumber),
		Price:      price,
		Status:     RoomStatusAvailable,
		Facilities: facilities,
	}, nil
}

// IsValid reports whether the status is a known room status
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	}
	return false
}

// Update changes the room's number, price, status and facilities
func (r *Room) Update(roomNumber string, price int64, status RoomStatus, facilities []string) error {
	if err := validateRoomNumber(roomNumber); err != nil {
		return err
	}
	if err := validateRoomPrice(price); err != nil {
		return err
	}
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown room status")
	}
	if facilities == nil {
		facilities = make([]string, 0)
	}

	r.RoomNumber = strings.TrimSpace(roomNumber)
	r.Price = price
	r.Status = status
	r.Facilities = facilities
	r.UpdatedAt = time.Now()

	return nil
}

// IsAvailable reports whether a tenant can check into the room
func (r *Room) IsAvailable() bool {
	return r.Status == RoomStatusAvailable
}

// IsOccupied reports whether the room currently hosts an active tenant
func (r *Room) IsOccupied() bool {
	return r.Status == RoomStatusOccupied
}

func validateRoomNumber(roomNumber string) error {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return shared.NewDomainError("INVALID_ROOM_NUMBER", "Room number cannot be empty")
	}
	if len(roomNumber) > 50 {
		return shared.NewDomainError("INVALID_ROOM_NUMBER", "Room number cannot exceed 50 characters")
	}
	return nil
}

func validateRoomPrice(price int64) error {
	if price < MinRoomPrice {
		return shared.NewDomainError("INVALID_PRICE", "Room price must be at least 100000")
	}
	return nil
}
