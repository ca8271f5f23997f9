package lodging

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewRoom(t *testing.T) {
	room, err := NewRoom(uuid.New(), "A-101", 1500000, []string{"AC", "WiFi"})

	assert.NoError(t, err)
	assert.Equal(t, RoomStatusAvailable, room.Status)
	assert.Equal(t, "A-101", room.RoomNumber)
}

func TestNewRoom_PriceFloor(t *testing.T) {
	_, err := NewRoom(uuid.New(), "A-101", 99999, nil)
	assert.Error(t, err)

	_, err = NewRoom(uuid.New(), "A-101", 100000, nil)
	assert.NoError(t, err)
}

func TestRoomStatus_IsValid(t *testing.T) {
	assert.True(t, RoomStatusAvailable.IsValid())
	assert.True(t, RoomStatusOccupied.IsValid())
	assert.True(t, RoomStatusMaintenance.IsValid())
	assert.False(t, RoomStatus("reserved").IsValid())
}

func TestRoom_Update_RejectsUnknownStatus(t *testing.T) {
	room, err := NewRoom(uuid.New(), "A-101", 1500000, nil)
	assert.NoError(t, err)

	err = room.Update("A-101", 1500000, "reserved", nil)
	assert.Error(t, err)
}

func TestProperty_Validation(t *testing.T) {
	ownerID := uuid.New()

	_, err := NewProperty(ownerID, "K", "Jl. Mawar No. 1")
	assert.Error(t, err)

	_, err = NewProperty(ownerID, "Kos Mawar", "Jl.")
	assert.Error(t, err)

	property, err := NewProperty(ownerID, "Kos Mawar", "Jl. Mawar No. 1")
	assert.NoError(t, err)
	assert.Equal(t, 0, property.TotalRooms)
	assert.True(t, property.IsOwnedBy(ownerID))
	assert.False(t, property.IsOwnedBy(uuid.New()))
}
