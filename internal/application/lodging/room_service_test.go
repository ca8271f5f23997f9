package lodging

import (
	"context"
	"testing"

	"github.com/google/uuid"
	apptenancy "github.com/kosmanager/backend/internal/application/tenancy"
	"github.com/kosmanager/backend/internal/domain/lodging"
	"github.com/kosmanager/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type roomFixture struct {
	roomRepo     *MockRoomRepository
	propertyRepo *MockPropertyRepository
	userRepo     *MockUserRepository
	service      *RoomService
}

func newRoomFixture() *roomFixture {
	f := &roomFixture{
		roomRepo:     new(MockRoomRepository),
		propertyRepo: new(MockPropertyRepository),
		userRepo:     new(MockUserRepository),
	}
	scope := apptenancy.NewNoOpTransactionScope(f.propertyRepo, f.roomRepo, nil, nil)
	f.service = NewRoomService(f.roomRepo, f.propertyRepo, f.userRepo, scope, zap.NewNop())
	return f
}

func TestRoomService_Create_AdjustsCounterWithInsert(t *testing.T) {
	f := newRoomFixture()
	user := freeUser(t)
	property, err := lodging.NewProperty(user.ID, "Kos Mawar", "Jl. Mawar No. 1")
	assert.NoError(t, err)

	f.propertyRepo.On("FindByID", mock.Anything, property.ID).Return(property, nil)
	f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	f.roomRepo.On("CountByOwner", mock.Anything, user.ID).Return(int64(3), nil)
	f.roomRepo.On("ExistsByPropertyAndNumber", mock.Anything, property.ID, "A-101", uuid.Nil).Return(false, nil)
	f.roomRepo.On("Save", mock.Anything, mock.AnythingOfType("*lodging.Room")).Return(nil)
	f.propertyRepo.On("AdjustTotalRooms", mock.Anything, property.ID, 1).Return(nil)

	resp, err := f.service.Create(context.Background(), user.ID, property.ID, CreateRoomRequest{
		RoomNumber: "A-101",
		Price:      1500000,
		Facilities: []string{"AC"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "available", resp.Status)
	f.propertyRepo.AssertCalled(t, "AdjustTotalRooms", mock.Anything, property.ID, 1)
}

func TestRoomService_Create_FreePlanRoomLimit(t *testing.T) {
	f := newRoomFixture()
	user := freeUser(t)
	property, err := lodging.NewProperty(user.ID, "Kos Mawar", "Jl. Mawar No. 1")
	assert.NoError(t, err)

	f.propertyRepo.On("FindByID", mock.Anything, property.ID).Return(property, nil)
	f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	f.roomRepo.On("CountByOwner", mock.Anything, user.ID).Return(int64(10), nil)

	_, err = f.service.Create(context.Background(), user.ID, property.ID, CreateRoomRequest{
		RoomNumber: "A-111",
		Price:      1500000,
	})

	assert.Error(t, err)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PLAN_LIMIT", domainErr.Code)
}

func TestRoomService_Create_DuplicateNumberInProperty(t *testing.T) {
	f := newRoomFixture()
	user := freeUser(t)
	property, err := lodging.NewProperty(user.ID, "Kos Mawar", "Jl. Mawar No. 1")
	assert.NoError(t, err)

	f.propertyRepo.On("FindByID", mock.Anything, property.ID).Return(property, nil)
	f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	f.roomRepo.On("CountByOwner", mock.Anything, user.ID).Return(int64(1), nil)
	f.roomRepo.On("ExistsByPropertyAndNumber", mock.Anything, property.ID, "A-101", uuid.Nil).Return(true, nil)

	_, err = f.service.Create(context.Background(), user.ID, property.ID, CreateRoomRequest{
		RoomNumber: "A-101",
		Price:      1500000,
	})

	assert.Error(t, err)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	f.roomRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRoomService_Delete_OccupiedRejected(t *testing.T) {
	f := newRoomFixture()
	ownerID := uuid.New()
	room, err := lodging.NewRoom(uuid.New(), "A-101", 1500000, nil)
	assert.NoError(t, err)
	room.Status = lodging.RoomStatusOccupied

	f.roomRepo.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	f.roomRepo.On("OwnerOf", mock.Anything, room.ID).Return(ownerID, nil)

	err = f.service.Delete(context.Background(), ownerID, room.ID)

	assert.Error(t, err)
	f.roomRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRoomService_Delete_AdjustsCounter(t *testing.T) {
	f := newRoomFixture()
	ownerID := uuid.New()
	room, err := lodging.NewRoom(uuid.New(), "A-101", 1500000, nil)
	assert.NoError(t, err)

	f.roomRepo.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	f.roomRepo.On("OwnerOf", mock.Anything, room.ID).Return(ownerID, nil)
	f.roomRepo.On("Delete", mock.Anything, room.ID).Return(nil)
	f.propertyRepo.On("AdjustTotalRooms", mock.Anything, room.PropertyID, -1).Return(nil)

	err = f.service.Delete(context.Background(), ownerID, room.ID)

	assert.NoError(t, err)
	f.propertyRepo.AssertCalled(t, "AdjustTotalRooms", mock.Anything, room.PropertyID, -1)
}

func TestRoomService_Update_OtherOwnerForbidden(t *testing.T) {
	f := newRoomFixture()
	room, err := lodging.NewRoom(uuid.New(), "A-101", 1500000, nil)
	assert.NoError(t, err)

	f.roomRepo.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	f.roomRepo.On("OwnerOf", mock.Anything, room.ID).Return(uuid.New(), nil)

	_, err = f.service.Update(context.Background(), uuid.New(), room.ID, UpdateRoomRequest{
		RoomNumber: "A-101",
		Price:      1600000,
		Status:     "available",
	})

	assert.ErrorIs(t, err, shared.ErrForbidden)
}
