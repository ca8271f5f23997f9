package tenancy

import (
	"time"

	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/domain/tenancy"
)

// CheckInRequest carries the data to check a tenant into a room
type CheckInRequest struct {
	RoomID      uuid.UUID
	Name        string
	PhoneNumber string
	IDCardPhoto string
	StartDate   time.Time
	DueDate     int
}

// CreateInvoiceRequest carries the data to bill a tenant for one month
type CreateInvoiceRequest struct {
	TenantID uuid.UUID
	Amount   int64
	Period   time.Time
}

// BulkCheckInRow is one row of a bulk tenant intake
type BulkCheckInRow struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	RoomNumber  string `json:"roomNumber"`
	StartDate   string `json:"startDate"`
	DueDate     int    `json:"dueDate"`
}

// BulkRowError reports why one intake row failed
type BulkRowError struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// BulkCheckInResult summarizes a bulk intake run
type BulkCheckInResult struct {
	Success int            `json:"success"`
	Failed  int            `json:"failed"`
	Errors  []BulkRowError `json:"errors"`
}

// TenantResponse is the outward representation of a tenant
type TenantResponse struct {
	ID          string    `json:"id"`
	RoomID      string    `json:"roomId"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	IDCardPhoto string    `json:"idCardPhoto,omitempty"`
	StartDate   time.Time `json:"startDate"`
	DueDate     int       `json:"dueDate"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TenantListingResponse is a tenant row with room and property names
type TenantListingResponse struct {
	TenantResponse
	RoomNumber   string `json:"roomNumber"`
	PropertyName string `json:"propertyName"`
}

// ActiveTenantResponse is an active tenant with the room price
type ActiveTenantResponse struct {
	TenantResponse
	RoomNumber   string `json:"roomNumber"`
	RoomPrice    int64  `json:"roomPrice"`
	PropertyName string `json:"propertyName"`
}

// TenantDetailResponse is a tenant with its invoice history
type TenantDetailResponse struct {
	TenantListingResponse
	Invoices []InvoiceResponse `json:"invoices"`
}

// InvoiceResponse is the outward representation of an invoice
type InvoiceResponse struct {
	ID        string     `json:"id"`
	TenantID  string     `json:"tenantId"`
	Amount    int64      `json:"amount"`
	Period    time.Time  `json:"period"`
	Status    string     `json:"status"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// InvoiceListingResponse is an invoice row enriched up the chain
type InvoiceListingResponse struct {
	InvoiceResponse
	TenantName   string `json:"tenantName"`
	TenantPhone  string `json:"tenantPhone"`
	RoomNumber   string `json:"roomNumber"`
	PropertyName string `json:"propertyName"`
}

// ReminderLinkResponse carries a WhatsApp reminder link
type ReminderLinkResponse struct {
	Link string `json:"link"`
}

// ToTenantResponse converts a domain tenant to its response form
func ToTenantResponse(tenant *tenancy.Tenant) TenantResponse {
	return TenantResponse{
		ID:          tenant.ID.String(),
		RoomID:      tenant.RoomID.String(),
		Name:        tenant.Name,
		PhoneNumber: tenant.PhoneNumber,
		IDCardPhoto: tenant.IDCardPhoto,
		StartDate:   tenant.StartDate,
		DueDate:     tenant.DueDate,
		IsActive:    tenant.IsActive,
		CreatedAt:   tenant.CreatedAt,
	}
}

// ToInvoiceResponse converts a domain invoice to its response form
func ToInvoiceResponse(invoice *tenancy.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:        invoice.ID.String(),
		TenantID:  invoice.TenantID.String(),
		Amount:    invoice.Amount,
		Period:    invoice.Period,
		Status:    string(invoice.Status),
		PaidAt:    invoice.PaidAt,
		CreatedAt: invoice.CreatedAt,
	}
}

// ToTenantListingResponse converts an enriched tenant row
func ToTenantListingResponse(listing *tenancy.TenantListing) TenantListingResponse {
	return TenantListingResponse{
		TenantResponse: ToTenantResponse(&listing.Tenant),
		RoomNumber:     listing.RoomNumber,
		PropertyName:   listing.PropertyName,
	}
}

// ToInvoiceListingResponse converts an enriched invoice row
func ToInvoiceListingResponse(listing *tenancy.InvoiceListing) InvoiceListingResponse {
	return InvoiceListingResponse{
		InvoiceResponse: ToInvoiceResponse(&listing.Invoice),
		TenantName:      listing.TenantName,
		TenantPhone:     listing.TenantPhone,
		RoomNumber:      listing.RoomNumber,
		PropertyName:    listing.PropertyName,
	}
}
