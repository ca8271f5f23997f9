package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/domain/shared"
	"github.com/kosmanager/backend/internal/domain/tenancy"
	"github.com/kosmanager/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

type invoiceListingRow struct {
	models.InvoiceModel
	TenantName   string
	TenantPhone  string
	RoomNumber   string
	PropertyName string
}

func (row *invoiceListingRow) toListing() tenancy.InvoiceListing {
	return tenancy.InvoiceListing{
		Invoice:      *row.InvoiceModel.ToDomain(),
		TenantName:   row.TenantName,
		TenantPhone:  row.TenantPhone,
		RoomNumber:   row.RoomNumber,
		PropertyName: row.PropertyName,
	}
}

func (r *GormInvoiceRepository) listingQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("invoices").
		Select("invoices.*, tenants.name AS tenant_name, tenants.phone_number AS tenant_phone, rooms.room_number, properties.name AS property_name").
		Joins("JOIN tenants ON tenants.id = invoices.tenant_id").
		Joins("JOIN rooms ON rooms.id = tenants.room_id").
		Joins("JOIN properties ON properties.id = rooms.property_id")
}

// FindListingByID loads one invoice with tenant, room and property details
func (r *GormInvoiceRepository) FindListingByID(ctx context.Context, id uuid.UUID) (*tenancy.InvoiceListing, error) {
	var row invoiceListingRow
	result := r.listingQuery(ctx).
		Where("invoices.id = ?", id).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}
	listing := row.toListing()
	return &listing, nil
}

// FindByOwner returns all invoices across the owner's properties, newest
// created first, enriched with tenant, room and property details
func (r *GormInvoiceRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]tenancy.InvoiceListing, error) {
	var rows []invoiceListingRow
	if err := r.listingQuery(ctx).
		Where("properties.owner_id = ?", ownerID).
		Order("invoices.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	listings := make([]tenancy.InvoiceListing, len(rows))
	for i := range rows {
		listings[i] = rows[i].toListing()
	}
	return listings, nil
}

// FindByTenant returns a tenant's invoices ordered by period descending
func (r *GormInvoiceRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]tenancy.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("period DESC").
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]tenancy.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}

// ExistsByTenantAndPeriod checks if an invoice already exists for a tenant
// and billing month
func (r *GormInvoiceRepository) ExistsByTenantAndPeriod(ctx context.Context, tenantID uuid.UUID, period time.Time) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("tenant_id = ? AND period = ?", tenantID, tenancy.NormalizePeriod(period)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an invoice
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *tenancy.Invoice) error {
	var model models.InvoiceModel
	model.FromDomain(invoice)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete deletes an invoice by ID
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.InvoiceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// OwnerOf resolves the owning user of an invoice via tenant, room and property
func (r *GormInvoiceRepository) OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var row struct {
		OwnerID uuid.UUID
	}
	result := r.db.WithContext(ctx).
		Table("invoices").
		Select("properties.owner_id AS owner_id").
		Joins("JOIN tenants ON tenants.id = invoices.tenant_id").
		Joins("JOIN rooms ON rooms.id = tenants.room_id").
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Where("invoices.id = ?", id).
		Scan(&row)
	if result.Error != nil {
		return uuid.Nil, result.Error
	}
	if result.RowsAffected == 0 {
		return uuid.Nil, shared.ErrNotFound
	}
	return row.OwnerID, nil
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ tenancy.InvoiceRepository = (*GormInvoiceRepository)(nil)
