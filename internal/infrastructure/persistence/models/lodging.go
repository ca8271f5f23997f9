package models

import (
	"github.com/google/uuid"
	"github.com/kosmanager/backend/internal/domain/lodging"
)

// PropertyModel is the persistence model for properties
type PropertyModel struct {
	BaseModel
	OwnerID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Owner      *UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Name       string     `gorm:"size:200;not null"`
	Address    string     `gorm:"size:500;not null"`
	TotalRooms int        `gorm:"not null;default:0"`
}

// TableName returns the table name for PropertyModel
func (PropertyModel) TableName() string {
	return "properties"
}

// ToDomain converts PropertyModel to domain Property
func (m *PropertyModel) ToDomain() *lodging.Property {
	return &lodging.Property{
		BaseEntity: m.BaseModel.ToDomain(),
		OwnerID:    m.OwnerID,
		Name:       m.Name,
		Address:    m.Address,
		TotalRooms: m.TotalRooms,
	}
}

// FromDomain populates PropertyModel from domain Property
func (m *PropertyModel) FromDomain(p *lodging.Property) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.OwnerID = p.OwnerID
	m.Name = p.Name
	m.Address = p.Address
	m.TotalRooms = p.TotalRooms
}

// RoomModel is the persistence model for rooms.
// Room numbers are unique per property, not globally.
type RoomModel struct {
	BaseModel
	PropertyID uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_rooms_property_number"`
	Property   *PropertyModel `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	RoomNumber string         `gorm:"size:50;not null;uniqueIndex:idx_rooms_property_number"`
	Price      int64          `gorm:"not null"`
	Status     string         `gorm:"size:20;not null;default:available;index"`
	Facilities []string       `gorm:"serializer:json"`
}

// TableName returns the table name for RoomModel
func (RoomModel) TableName() string {
	return "rooms"
}

// ToDomain converts RoomModel to domain Room
func (m *RoomModel) ToDomain() *lodging.Room {
	facilities := m.Facilities
	if facilities == nil {
		facilities = make([]string, 0)
	}
	return &lodging.Room{
		BaseEntity: m.BaseModel.ToDomain(),
		PropertyID: m.PropertyID,
		RoomNumber: m.RoomNumber,
		Price:      m.Price,
		Status:     lodging.RoomStatus(m.Status),
		Facilities: facilities,
	}
}

// FromDomain populates RoomModel from domain Room
func (m *RoomModel) FromDomain(r *lodging.Room) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.PropertyID = r.PropertyID
	m.RoomNumber = r.RoomNumber
	m.Price = r.Price
	m.Status = string(r.Status)
	m.Facilities = r.Facilities
}
