package tenancy

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TenantListing is a tenant row enriched with its room and property
type TenantListing struct {
	Tenant
	RoomNumber   string
	PropertyName string
}

// ActiveTenantListing is an active tenant row with the room price,
// used to prefill invoice creation
type ActiveTenantListing struct {
	Tenant
	RoomNumber   string
	RoomPrice    int64
	PropertyName string
}

// InvoiceListing is an invoice row enriched up the ownership chain
type InvoiceListing struct {
	Invoice
	TenantName   string
	TenantPhone  string
	RoomNumber   string
	PropertyName string
}

// TenantRepository defines persistence operations for tenants
type TenantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
	// FindByOwner returns all tenants across the owner's properties,
	// newest first, enriched with room and property names.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]TenantListing, error)
	// FindActiveByOwner returns active tenants ordered by property name
	// then room number.
	FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]ActiveTenantListing, error)
	Save(ctx context.Context, tenant *Tenant) error
	Delete(ctx context.Context, id uuid.UUID) error
	// OwnerOf resolves the owning user of a tenant via room and property.
	OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

// InvoiceRepository defines persistence operations for invoices
type InvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	// FindListingByID loads one invoice with tenant, room and property
	// details, used for reminder links.
	FindListingByID(ctx context.Context, id uuid.UUID) (*InvoiceListing, error)
	// FindByOwner returns all invoices across the owner's properties,
	// newest created first, enriched up the chain.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]InvoiceListing, error)
	// FindByTenant returns a tenant's invoices ordered by period descending.
	FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]Invoice, error)
	ExistsByTenantAndPeriod(ctx context.Context, tenantID uuid.UUID, period time.Time) (bool, error)
	Save(ctx context.Context, invoice *Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	// OwnerOf resolves the owning user of an invoice via the full chain.
	OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}
