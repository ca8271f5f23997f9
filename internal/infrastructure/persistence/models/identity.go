package models

import (
	"github.com/kosmanager/backend/internal/domain/identity"
)

// UserModel is the persistence model for owner accounts
type UserModel struct {
	BaseModel
	Email        string `gorm:"size:200;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:100;not null"`
	FullName     string `gorm:"size:200;not null"`
	Plan         string `gorm:"size:20;not null;default:free"`
}

// TableName returns the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts UserModel to domain User
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FullName:     m.FullName,
		Plan:         identity.Plan(m.Plan),
	}
}

// FromDomain populates UserModel from domain User
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.FullName = u.FullName
	m.Plan = string(u.Plan)
}
