package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/domain/tenancy"
)

// TenantModel is the persistence model for tenants
type TenantModel struct {
	BaseModel
	RoomID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Room        *RoomModel `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	Name        string     `gorm:"size:200;not null"`
	PhoneNumber string     `gorm:"size:20;not null"`
	IDCardPhoto string     `gorm:"size:500"`
	StartDate   time.Time  `gorm:"not null"`
	DueDate     int        `gorm:"not null"`
	IsActive    bool       `gorm:"not null;default:true;index"`
}

// TableName returns the table name for TenantModel
func (TenantModel) TableName() string {
	return "tenants"
}

// ToDomain converts TenantModel to domain Tenant
func (m *TenantModel) ToDomain() *tenancy.Tenant {
	return &tenancy.Tenant{
		BaseEntity:  m.BaseModel.ToDomain(),
		RoomID:      m.RoomID,
		Name:        m.Name,
		PhoneNumber: m.PhoneNumber,
		IDCardPhoto: m.IDCardPhoto,
		StartDate:   m.StartDate,
		DueDate:     m.DueDate,
		IsActive:    m.IsActive,
	}
}

// FromDomain populates TenantModel from domain Tenant
func (m *TenantModel) FromDomain(t *tenancy.Tenant) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.RoomID = t.RoomID
	m.Name = t.Name
	m.PhoneNumber = t.PhoneNumber
	m.IDCardPhoto = t.IDCardPhoto
	m.StartDate = t.StartDate
	m.DueDate = t.DueDate
	m.IsActive = t.IsActive
}

// InvoiceModel is the persistence model for invoices.
// The (tenant_id, period) pair is unique: one invoice per billed month.
type InvoiceModel struct {
	BaseModel
	TenantID uuid.UUID    `gorm:"type:uuid;not null;index;uniqueIndex:idx_invoices_tenant_period"`
	Tenant   *TenantModel `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Amount   int64        `gorm:"not null"`
	Period   time.Time    `gorm:"not null;uniqueIndex:idx_invoices_tenant_period"`
	Status   string       `gorm:"size:20;not null;default:unpaid;index"`
	PaidAt   *time.Time
}

// TableName returns the table name for InvoiceModel
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts InvoiceModel to domain Invoice
func (m *InvoiceModel) ToDomain() *tenancy.Invoice {
	return &tenancy.Invoice{
		BaseEntity: m.BaseModel.ToDomain(),
		TenantID:   m.TenantID,
		Amount:     m.Amount,
		Period:     m.Period,
		Status:     tenancy.InvoiceStatus(m.Status),
		PaidAt:     m.PaidAt,
	}
}

// FromDomain populates InvoiceModel from domain Invoice
func (m *InvoiceModel) FromDomain(i *tenancy.Invoice) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.TenantID = i.TenantID
	m.Amount = i.Amount
	m.Period = i.Period
	m.Status = string(i.Status)
	m.PaidAt = i.PaidAt
}
