package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormTenantRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTenantRepository(db)
	ctx := context.Background()

	owner := seedOwner(t, db)
	property := seedProperty(t, db, owner.ID, "Kos Melati")
	room := seedRoom(t, db, property.ID, "A1", 1500000)
	tenant := seedTenant(t, db, room.ID, "Budi Santoso")

	found, err := repo.FindByID(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, found.ID)
	assert.Equal(t, "Budi Santoso", found.Name)
	assert.Equal(t, "081234567890", found.PhoneNumber)
	assert.Equal(t, 5, found.DueDate)
	assert.True(t, found.IsActive)
}

func TestGormTenantRepository_FindByOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTenantRepository(db)
	ctx := context.Background()

	owner := seedOwner(t, db)
	property := seedProperty(t, db, owner.ID, "Kos Melati")
	roomA := seedRoom(t, db, property.ID, "A1", 1500000)
	roomB := seedRoom(t, db, property.ID, "A2", 1200000)
	seedTenant(t, db, roomA.ID, "Budi Santoso")
	seedTenant(t, db, roomB.ID, "Siti Aminah")

	other := seedOwner(t, db)
	otherProperty := seedProperty(t, db, other.ID, "Kos Lain")
	otherRoom := seedRoom(t, db, otherProperty.ID, "Z1", 900000)
	seedTenant(t, db, otherRoom.ID, "Orang Lain")

	listings, err := repo.FindByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, listings, 2)

	for _, listing := range listings {
		assert.Equal(t, "Kos Melati", listing.PropertyName)
		assert.NotEmpty(t, listing.RoomNumber)
	}
}

func TestGormTenantRepository_FindActiveByOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTenantRepository(db)
	ctx := context.Background()

	owner := seedOwner(t, db)
	property := seedProperty(t, db, owner.ID, "Kos Melati")
	roomA := seedRoom(t, db, property.ID, "A1", 1500000)
	roomB := seedRoom(t, db, property.ID, "A2", 1200000)
	seedTenant(t, db, roomA.ID, "Budi Santoso")
	checkedOut := seedTenant(t, db, roomB.ID, "Siti Aminah")

	require.NoError(t, checkedOut.CheckOut())
	require.NoError(t, repo.Save(ctx, checkedOut))

	listings, err := repo.FindActiveByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Budi Santoso", listings[0].Name)
	assert.Equal(t, "A1", listings[0].RoomNumber)
	assert.Equal(t, int64(1500000), listings[0].RoomPrice)
	assert.Equal(t, "Kos Melati", listings[0].PropertyName)
}

func TestGormTenantRepository_OwnerOf(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTenantRepository(db)
	ctx := context.Background()

	owner := seedOwner(t, db)
	property := seedProperty(t, db, owner.ID, "Kos Melati")
	room := seedRoom(t, db, property.ID, "A1", 1500000)
	tenant := seedTenant(t, db, room.ID, "Budi Santoso")

	resolved, err := repo.OwnerOf(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, resolved)

	_, err = repo.OwnerOf(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormTenantRepository_Delete_CascadesToInvoices(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTenantRepository(db)
	invoiceRepo := NewGormInvoiceRepository(db)
	ctx := context.Background()

	owner := seedOwner(t, db)
	property := seedProperty(t, db, owner.ID, "Kos Melati")
	room := seedRoom(t, db, property.ID, "A1", 1500000)
	tenant := seedTenant(t, db, room.ID, "Budi Santoso")
	invoice := seedInvoice(t, db, tenant.ID, 1500000, tenant.StartDate)

	require.NoError(t, repo.Delete(ctx, tenant.ID))

	_, err := repo.FindByID(ctx, tenant.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	_, err = invoiceRepo.FindByID(ctx, invoice.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
