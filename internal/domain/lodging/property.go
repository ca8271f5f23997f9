package lodging

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/domain/shared"
)

// Property represents a boarding house owned by a user.
// TotalRooms is a denormalized counter maintained alongside room
// creation and deletion.
type Property struct {
	shared.BaseEntity
	OwnerID    uuid.UUID
	Name       string
	Address    string
	TotalRooms int
}

// NewProperty creates a new property with zero rooms
func NewProperty(ownerID uuid.UUID, name, address string) (*Property, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	if err := validatePropertyName(name); err != nil {
		return nil, err
	}
	if err := validatePropertyAddress(address); err != nil {
		return nil, err
	}

	return &Property{
		BaseEntity: shared.NewBaseEntity(),
		OwnerID:    ownerID,
		Name:       strings.TrimSpace(name),
		Address:    strings.TrimSpace(address),
		TotalRooms: 0,
	}, nil
}

// Update changes the property's name and address
func (p *Property) Update(name, address string) error {
	if err := validatePropertyName(name); err != nil {
		return err
	}
	if err := validatePropertyAddress(address); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.Address = strings.TrimSpace(address)
	p.UpdatedAt = time.Now()

	return nil
}

// IsOwnedBy reports whether the property belongs to the given user
func (p *Property) IsOwnedBy(ownerID uuid.UUID) bool {
	return p.OwnerID == ownerID
}

func validatePropertyName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return shared.NewDomainError("INVALID_NAME", "Property name must be at least 2 characters")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Property name cannot exceed 200 characters")
	}
	return nil
}

func validatePropertyAddress(address string) error {
	address = strings.TrimSpace(address)
	if len(address) < 5 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address must be at least 5 characters")
	}
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}
	return nil
}
