package tenancy

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/domain/shared"
)

// Tenant represents a person renting a room. A tenant is active from
// check-in until check-out; the room stays occupied for exactly as long
// as it has an active tenant.
type Tenant struct {
	shared.BaseEntity
	RoomID      uuid.UUID
	Name        string
	PhoneNumber string
	IDCardPhoto string
	StartDate   time.Time
	DueDate     int
	IsActive    bool
}

// NewTenant creates an active tenant checked into the given room
func NewTenant(roomID uuid.UUID, name, phoneNumber string, startDate time.Time, dueDate int) (*Tenant, error) {
	if roomID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ROOM", "Room ID cannot be empty")
	}
	if err := validateTenantName(name); err != nil {
		return nil, err
	}
	if err := validatePhoneNumber(phoneNumber); err != nil {
		return nil, err
	}
	if err := ValidateDueDate(dueDate); err != nil {
		return nil, err
	}
	if startDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_START_DATE", "Start date is required")
	}

	return &Tenant{
		BaseEntity:  shared.NewBaseEntity(),
		RoomID:      roomID,
		Name:        strings.TrimSpace(name),
		PhoneNumber: strings.TrimSpace(phoneNumber),
		StartDate:   startDate,
		DueDate:     dueDate,
		IsActive:    true,
	}, nil
}

// CheckOut deactivates the tenant. Checking out an inactive tenant is
// an invalid state transition, not a no-op.
func (t *Tenant) CheckOut() error {
	if !t.IsActive {
		return shared.NewDomainError("INVALID_STATE", "Tenant is already checked out")
	}

	t.IsActive = false
	t.UpdatedAt = time.Now()

	return nil
}

// ValidateDueDate checks the monthly payment day is within 1..31
func ValidateDueDate(dueDate int) error {
	if dueDate < 1 || dueDate > 31 {
		return shared.NewDomainError("INVALID_DUE_DATE", "Due date must be between 1 and 31")
	}
	return nil
}

func validateTenantName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return shared.NewDomainError("INVALID_NAME", "Tenant name must be at least 2 characters")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Tenant name cannot exceed 200 characters")
	}
	return nil
}

func validatePhoneNumber(phoneNumber string) error {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if len(phoneNumber) < 8 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number must be at least 8 digits")
	}
	if len(phoneNumber) > 20 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 20 characters")
	}
	return nil
}
