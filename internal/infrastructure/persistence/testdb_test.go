package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/domain/identity"
	"github.com/kosmanager/backend/internal/domain/lodging"
	"github.com/kosmanager/backend/internal/domain/shared"
	"github.com/kosmanager/backend/internal/domain/tenancy"
	"github.com/kosmanager/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// SQLite only enforces cascading deletes with this pragma on
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.PropertyModel{},
		&models.RoomModel{},
		&models.TenantModel{},
		&models.InvoiceModel{},
	)
	require.NoError(t, err)

	return db
}

func seedOwner(t *testing.T, db *gorm.DB) *identity.User {
	user := &identity.User{
		BaseEntity:   shared.NewBaseEntity(),
		Email:        fmt.Sprintf("owner-%s@example.com", uuid.NewString()[:8]),
		PasswordHash: "not-a-real-hash",
		FullName:     "Ibu Kos",
		Plan:         identity.PlanFree,
	}
	require.NoError(t, NewGormUserRepository(db).Save(context.Background(), user))
	return user
}

func seedProperty(t *testing.T, db *gorm.DB, ownerID uuid.UUID, name string) *lodging.Property {
	property, err := lodging.NewProperty(ownerID, name, "Jl. Mawar No. 10, Bandung")
	require.NoError(t, err)
	require.NoError(t, NewGormPropertyRepository(db).Save(context.Background(), property))
	return property
}

func seedRoom(t *testing.T, db *gorm.DB, propertyID uuid.UUID, number string, price int64) *lodging.Room {
	room, err := lodging.NewRoom(propertyID, number, price, []string{"AC", "Kamar Mandi Dalam"})
	require.NoError(t, err)
	require.NoError(t, NewGormRoomRepository(db).Save(context.Background(), room))
	return room
}

func seedTenant(t *testing.T, db *gorm.DB, roomID uuid.UUID, name string) *tenancy.Tenant {
	startDate := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	tenant, err := tenancy.NewTenant(roomID, name, "081234567890", startDate, 5)
	require.NoError(t, err)
	require.NoError(t, NewGormTenantRepository(db).Save(context.Background(), tenant))
	return tenant
}

func seedInvoice(t *testing.T, db *gorm.DB, tenantID uuid.UUID, amount int64, period time.Time) *tenancy.Invoice {
	invoice, err := tenancy.NewInvoice(tenantID, amount, period)
	require.NoError(t, err)
	require.NoError(t, NewGormInvoiceRepository(db).Save(context.Background(), invoice))
	return invoice
}
