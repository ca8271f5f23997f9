package tenancy

import (
	"context"

	"github.com/kosmanager/backend/internal/domain/lodging"
	"github.com/kosmanager/backend/internal/domain/tenancy"
)

// TransactionScope provides transactional access to the lodging and
// tenancy repositories. Check-in, check-out, bulk intake rows and room
// counter maintenance all mutate more than one table and must commit
// or roll back as a unit.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to repositories that share
// the same underlying database transaction.
type TransactionalRepositories interface {
	PropertyRepo() lodging.PropertyRepository
	RoomRepo() lodging.RoomRepository
	TenantRepo() tenancy.TenantRepository
	InvoiceRepo() tenancy.InvoiceRepository
}

// NoOpTransactionScope runs the function against fixed repositories
// without a real transaction. Used in tests.
type NoOpTransactionScope struct {
	propertyRepo lodging.PropertyRepository
	roomRepo     lodging.RoomRepository
	tenantRepo   tenancy.TenantRepository
	invoiceRepo  tenancy.InvoiceRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	propertyRepo lodging.PropertyRepository,
	roomRepo lodging.RoomRepository,
	tenantRepo tenancy.TenantRepository,
	invoiceRepo tenancy.InvoiceRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		propertyRepo: propertyRepo,
		roomRepo:     roomRepo,
		tenantRepo:   tenantRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// PropertyRepo returns the property repository.
func (s *NoOpTransactionScope) PropertyRepo() lodging.PropertyRepository {
	return s.propertyRepo
}

// RoomRepo returns the room repository.
func (s *NoOpTransactionScope) RoomRepo() lodging.RoomRepository {
	return s.roomRepo
}

// TenantRepo returns the tenant repository.
func (s *NoOpTransactionScope) TenantRepo() tenancy.TenantRepository {
	return s.tenantRepo
}

// InvoiceRepo returns the invoice repository.
func (s *NoOpTransactionScope) InvoiceRepo() tenancy.InvoiceRepository {
	return s.invoiceRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
