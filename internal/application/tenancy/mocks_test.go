package tenancy

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/domain/identity"
	"github.com/kosmanager/backend/internal/domain/lodging"
	"github.com/kosmanager/backend/internal/domain/tenancy"
	"github.com/stretchr/testify/mock"
)

// MockTenantRepository is a mock implementation of tenancy.TenantRepository
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]tenancy.TenantListing, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]tenancy.TenantListing), args.Error(1)
}

func (m *MockTenantRepository) FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]tenancy.ActiveTenantListing, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]tenancy.ActiveTenantListing), args.Error(1)
}

func (m *MockTenantRepository) Save(ctx context.Context, tenant *tenancy.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTenantRepository) OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// MockInvoiceRepository is a mock implementation of tenancy.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindListingByID(ctx context.Context, id uuid.UUID) (*tenancy.InvoiceListing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.InvoiceListing), args.Error(1)
}

func (m *MockInvoiceRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]tenancy.InvoiceListing, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]tenancy.InvoiceListing), args.Error(1)
}

func (m *MockInvoiceRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]tenancy.Invoice, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]tenancy.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ExistsByTenantAndPeriod(ctx context.Context, tenantID uuid.UUID, period time.Time) (bool, error) {
	args := m.Called(ctx, tenantID, period)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *tenancy.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// MockRoomRepository is a mock implementation of lodging.RoomRepository
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*lodging.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lodging.Room), args.Error(1)
}

func (m *MockRoomRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]lodging.Room, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]lodging.Room), args.Error(1)
}

func (m *MockRoomRepository) FindAvailableByOwner(ctx context.Context, ownerID uuid.UUID) ([]lodging.AvailableRoom, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]lodging.AvailableRoom), args.Error(1)
}

func (m *MockRoomRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoomRepository) ExistsByPropertyAndNumber(ctx context.Context, propertyID uuid.UUID, roomNumber string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, propertyID, roomNumber, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoomRepository) Save(ctx context.Context, room *lodging.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoomRepository) OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockRoomRepository) MarkOccupied(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoomRepository) MarkAvailable(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPropertyRepository is a mock implementation of lodging.PropertyRepository
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*lodging.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lodging.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]lodging.Property, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]lodging.Property), args.Error(1)
}

func (m *MockPropertyRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPropertyRepository) Save(ctx context.Context, property *lodging.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPropertyRepository) AdjustTotalRooms(ctx context.Context, id uuid.UUID, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
