package tenancy

import (
	"time"

	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/domain/shared"
)

// InvoiceStatus represents the payment status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "unpaid"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

// Invoice represents one billing month for a tenant. Period is always
// the first day of the billed month; at most one invoice exists per
// tenant and period. PaidAt is set exactly when status is paid.
type Invoice struct {
	shared.BaseEntity
	TenantID uuid.UUID
	Amount   int64
	Period   time.Time
	Status   InvoiceStatus
	PaidAt   *time.Time
}

// NewInvoice creates an unpaid invoice for the month containing period.
// The period is normalized to the first of the month, so callers may
// pass any day of the target month.
func NewInvoice(tenantID uuid.UUID, amount int64, period time.Time) (*Invoice, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT", "Tenant ID cannot be empty")
	}
	if amount <= 0 {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Invoice amount must be positive")
	}
	if period.IsZero() {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Invoice period is required")
	}

	return &Invoice{
		BaseEntity: shared.NewBaseEntity(),
		TenantID:   tenantID,
		Amount:     amount,
		Period:     NormalizePeriod(period),
		Status:     InvoiceStatusUnpaid,
	}, nil
}

// IsValid reports whether the status is a known invoice status
func (s InvoiceStatus) IsValid() bool {
	return s == InvoiceStatusUnpaid || s == InvoiceStatusPaid
}

// SetStatus updates the payment status. Marking paid stamps PaidAt with
// the current time; marking unpaid clears it.
func (i *Invoice) SetStatus(status InvoiceStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown invoice status")
	}

	i.Status = status
	if status == InvoiceStatusPaid {
		now := time.Now()
		i.PaidAt = &now
	} else {
		i.PaidAt = nil
	}
	i.UpdatedAt = time.Now()

	return nil
}

// IsPaid reports whether the invoice has been settled
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}
