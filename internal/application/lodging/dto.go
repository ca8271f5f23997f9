package lodging

import (
	"time"

	"github.com/kosmanager/backend/internal/domain/lodging"
)

// CreatePropertyRequest carries the data to create a property
type CreatePropertyRequest struct {
	Name    string
	Address string
}

// UpdatePropertyRequest carries the data to update a property
type UpdatePropertyRequest struct {
	Name    string
	Address string
}

// PropertyResponse is the outward representation of a property
type PropertyResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	TotalRooms int       `json:"totalRooms"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateRoomRequest carries the data to create a room
type CreateRoomRequest struct {
	RoomNumber string
	Price      int64
	Facilities []string
}

// UpdateRoomRequest carries the data to update a room
type UpdateRoomRequest struct {
	RoomNumber string
	Price      int64
	Status     string
	Facilities []string
}

// RoomResponse is the outward representation of a room
type RoomResponse struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	RoomNumber string    `json:"roomNumber"`
	Price      int64     `json:"price"`
	Status     string    `json:"status"`
	Facilities []string  `json:"facilities"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AvailableRoomResponse is a room open for check-in with its property name
type AvailableRoomResponse struct {
	RoomResponse
	PropertyName string `json:"propertyName"`
}

// ToPropertyResponse converts a domain property to its response form
func ToPropertyResponse(property *lodging.Property) PropertyResponse {
	return PropertyResponse{
		ID:         property.ID.String(),
		Name:       property.Name,
		Address:    property.Address,
		TotalRooms: property.TotalRooms,
		CreatedAt:  property.CreatedAt,
	}
}

// ToRoomResponse converts a domain room to its response form
func ToRoomResponse(room *lodging.Room) RoomResponse {
	return RoomResponse{
		ID:         room.ID.String(),
		PropertyID: room.PropertyID.String(),
		RoomNumber: room.RoomNumber,
		Price:      room.Price,
		Status:     string(room.Status),
		Facilities: room.Facilities,
		CreatedAt:  room.CreatedAt,
	}
}
