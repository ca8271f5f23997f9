package persistence

import (
	"context"

	apptenancy "github.com/kosmanager/backend/internal/application/tenancy"
	"github.com/kosmanager/backend/internal/domain/lodging"
	"github.com/kosmanager/backend/internal/domain/tenancy"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction. All
// repositories handed to fn share the transaction and commit or roll
// back together.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos apptenancy.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&transactionalRepositories{tx: tx})
	})
}

// transactionalRepositories provides repositories bound to a single transaction
type transactionalRepositories struct {
	tx *gorm.DB
}

func (r *transactionalRepositories) PropertyRepo() lodging.PropertyRepository {
	return NewGormPropertyRepository(r.tx)
}

func (r *transactionalRepositories) RoomRepo() lodging.RoomRepository {
	return NewGormRoomRepository(r.tx)
}

func (r *transactionalRepositories) TenantRepo() tenancy.TenantRepository {
	return NewGormTenantRepository(r.tx)
}

func (r *transactionalRepositories) InvoiceRepo() tenancy.InvoiceRepository {
	return NewGormInvoiceRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ apptenancy.TransactionScope = (*GormTransactionScope)(nil)
var _ apptenancy.TransactionalRepositories = (*transactionalRepositories)(nil)
