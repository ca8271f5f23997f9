package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/kosmanager/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

// User represents a property owner account.
// It is the aggregate root of the ownership chain: every property, room,
// tenant and invoice ultimately belongs to exactly one user.
type User struct {
	shared.BaseEntity
	Email        string
	PasswordHash string
	FullName     string
	Plan         Plan
}

// NewUser creates a new owner account on the free plan
func NewUser(email, password, fullName string) (*User, error) {
	if err := validateFullName(fullName); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		FullName:     strings.TrimSpace(fullName),
		Plan:         PlanFree,
	}, nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// UpgradeToPro switches the account to the pro plan
func (u *User) UpgradeToPro() error {
	if u.Plan == PlanPro {
		return shared.NewDomainError("ALREADY_PRO", "Account is already on the pro plan")
	}

	u.Plan = PlanPro
	u.UpdatedAt = time.Now()

	return nil
}

// Validation functions

func validateFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if len(fullName) < 2 {
		return shared.NewDomainError("INVALID_FULL_NAME", "Full name must be at least 2 characters")
	}
	if len(fullName) > 200 {
		return shared.NewDomainError("INVALID_FULL_NAME", "Full name cannot exceed 200 characters")
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 6 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
