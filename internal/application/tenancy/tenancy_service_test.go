package tenancy

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/domain/lodging"
	"github.com/kosmanager/backend/internal/domain/shared"
	"github.com/kosmanager/backend/internal/domain/tenancy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type tenancyFixture struct {
	tenantRepo   *MockTenantRepository
	invoiceRepo  *MockInvoiceRepository
	roomRepo     *MockRoomRepository
	propertyRepo *MockPropertyRepository
	service      *TenancyService
}

func newTenancyFixture() *tenancyFixture {
	f := &tenancyFixture{
		tenantRepo:   new(MockTenantRepository),
		invoiceRepo:  new(MockInvoiceRepository),
		roomRepo:     new(MockRoomRepository),
		propertyRepo: new(MockPropertyRepository),
	}
	scope := NewNoOpTransactionScope(f.propertyRepo, f.roomRepo, f.tenantRepo, f.invoiceRepo)
	f.service = NewTenancyService(f.tenantRepo, f.invoiceRepo, f.roomRepo, f.propertyRepo, scope, zap.NewNop())
	return f
}

func availableRoom(t *testing.T) *lodging.Room {
	t.Helper()
	room, err := lodging.NewRoom(uuid.New(), "A-101", 1500000, nil)
	assert.NoError(t, err)
	return room
}

func checkInRequest(roomID uuid.UUID) CheckInRequest {
	return CheckInRequest{
		RoomID:      roomID,
		Name:        "Siti Aminah",
		PhoneNumber: "081234567890",
		StartDate:   time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		DueDate:     5,
	}
}

func TestTenancyService_CheckIn(t *testing.T) {
	f := newTenancyFixture()
	ownerID := uuid.New()
	room := availableRoom(t)

	f.roomRepo.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	f.roomRepo.On("OwnerOf", mock.Anything, room.ID).Return(ownerID, nil)
	f.roomRepo.On("MarkOccupied", mock.Anything, room.ID).Return(nil)
	f.tenantRepo.On("Save", mock.Anything, mock.AnythingOfType("*tenancy.Tenant")).Return(nil)

	resp, err := f.service.CheckIn(context.Background(), ownerID, checkInRequest(room.ID))

	assert.NoError(t, err)
	assert.True(t, resp.IsActive)
	assert.Equal(t, room.ID.String(), resp.RoomID)
	f.roomRepo.AssertCalled(t, "MarkOccupied", mock.Anything, room.ID)
	// No invoice on single check-in; billing is a separate step.
	f.invoiceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestTenancyService_CheckIn_OtherOwnerForbidden(t *testing.T) {
	f := newTenancyFixture()
	room := availableRoom(t)

	f.roomRepo.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	f.roomRepo.On("OwnerOf", mock.Anything, room.ID).Return(uuid.New(), nil)

	_, err := f.service.CheckIn(context.Background(), uuid.New(), checkInRequest(room.ID))

	assert.ErrorIs(t, err, shared.ErrForbidden)
	f.roomRepo.AssertNotCalled(t, "MarkOccupied", mock.Anything, mock.Anything)
}

func TestTenancyService_CheckIn_RoomNotAvailable(t *testing.T) {
	f := newTenancyFixture()
	ownerID := uuid.New()
	room := availableRoom(t)
	room.Status = lodging.RoomStatusOccupied

	f.roomRepo.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	f.roomRepo.On("OwnerOf", mock.Anything, room.ID).Return(ownerID, nil)

	_, err := f.service.CheckIn(context.Background(), ownerID, checkInRequest(room.ID))

	assert.Error(t, err)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestTenancyService_CheckIn_RoomUnderMaintenance(t *testing.T) {
	f := newTenancyFixture()
	ownerID := uuid.New()
	room := availableRoom(t)
	room.Status = lodging.RoomStatusMaintenance

	f.roomRepo.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	f.roomRepo.On("OwnerOf", mock.Anything, room.ID).Return(ownerID, nil)

	_, err := f.service.CheckIn(context.Background(), ownerID, checkInRequest(room.ID))

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	f.tenantRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	f.roomRepo.AssertNotCalled(t, "MarkOccupied", mock.Anything, mock.Anything)
}

func TestTenancyService_CheckIn_LosesConditionalUpdateRace(t *testing.T) {
	// The room read said available, but another check-in flipped it
	// before our transaction: the conditional update reports the
	// conflict and the whole check-in fails.
	f := newTenancyFixture()
	ownerID := uuid.New()
	room := availableRoom(t)

	f.roomRepo.On("FindByID", mock.Anything, room.ID).Return(room, nil)
	f.roomRepo.On("OwnerOf", mock.Anything, room.ID).Return(ownerID, nil)
	f.roomRepo.On("MarkOccupied", mock.Anything, room.ID).Return(shared.ErrInvalidState)

	_, err := f.service.CheckIn(context.Background(), ownerID, checkInRequest(room.ID))

	assert.ErrorIs(t, err, shared.ErrInvalidState)
	f.tenantRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestTenancyService_CheckOut(t *testing.T) {
	f := newTenancyFixture()
	ownerID := uuid.New()
	tenant, err := tenancy.NewTenant(uuid.New(), "Siti", "081234567890", time.Now(), 5)
	assert.NoError(t, err)

	f.tenantRepo.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)
	f.tenantRepo.On("OwnerOf", mock.Anything, tenant.ID).Return(ownerID, nil)
	f.tenantRepo.On("Save", mock.Anything, tenant).Return(nil)
	f.roomRepo.On("MarkAvailable", mock.Anything, tenant.RoomID).Return(nil)

	resp, err := f.service.CheckOut(context.Background(), ownerID, tenant.ID)

	assert.NoError(t, err)
	assert.False(t, resp.IsActive)
	f.roomRepo.AssertCalled(t, "MarkAvailable", mock.Anything, tenant.RoomID)
}

func TestTenancyService_CheckOut_AlreadyInactive(t *testing.T) {
	f := newTenancyFixture()
	ownerID := uuid.New()
	tenant, err := tenancy.NewTenant(uuid.New(), "Siti", "081234567890", time.Now(), 5)
	assert.NoError(t, err)
	tenant.IsActive = false

	f.tenantRepo.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)
	f.tenantRepo.On("OwnerOf", mock.Anything, tenant.ID).Return(ownerID, nil)

	_, err = f.service.CheckOut(context.Background(), ownerID, tenant.ID)

	assert.Error(t, err)
	f.roomRepo.AssertNotCalled(t, "MarkAvailable", mock.Anything, mock.Anything)
}

func TestTenancyService_Delete_ActiveTenantFreesRoom(t *testing.T) {
	f := newTenancyFixture()
	ownerID := uuid.New()
	tenant, err := tenancy.NewTenant(uuid.New(), "Siti", "081234567890", time.Now(), 5)
	assert.NoError(t, err)

	f.tenantRepo.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)
	f.tenantRepo.On("OwnerOf", mock.Anything, tenant.ID).Return(ownerID, nil)
	f.roomRepo.On("MarkAvailable", mock.Anything, tenant.RoomID).Return(nil)
	f.tenantRepo.On("Delete", mock.Anything, tenant.ID).Return(nil)

	err = f.service.Delete(context.Background(), ownerID, tenant.ID)

	assert.NoError(t, err)
	f.roomRepo.AssertCalled(t, "MarkAvailable", mock.Anything, tenant.RoomID)
}

func TestTenancyService_Delete_InactiveTenantKeepsRoomStatus(t *testing.T) {
	f := newTenancyFixture()
	ownerID := uuid.New()
	tenant, err := tenancy.NewTenant(uuid.New(), "Siti", "081234567890", time.Now(), 5)
	assert.NoError(t, err)
	tenant.IsActive = false

	f.tenantRepo.On("FindByID", mock.Anything, tenant.ID).Return(tenant, nil)
	f.tenantRepo.On("OwnerOf", mock.Anything, tenant.ID).Return(ownerID, nil)
	f.tenantRepo.On("Delete", mock.Anything, tenant.ID).Return(nil)

	err = f.service.Delete(context.Background(), ownerID, tenant.ID)

	assert.NoError(t, err)
	f.roomRepo.AssertNotCalled(t, "MarkAvailable", mock.Anything, mock.Anything)
}

func TestTenancyService_Get_NotFound(t *testing.T) {
	f := newTenancyFixture()
	tenantID := uuid.New()

	f.tenantRepo.On("FindByID", mock.Anything, tenantID).Return(nil, shared.ErrNotFound)

	_, err := f.service.Get(context.Background(), uuid.New(), tenantID)

	assert.ErrorIs(t, err, shared.ErrNotFound)
}
