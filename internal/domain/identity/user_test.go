package identity

import (
	"testing"

	"github.com/kosmanager/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("Owner@Example.com", "secret1", "Budi Santoso")

	assert.NoError(t, err)
	assert.Equal(t, "owner@example.com", user.Email)
	assert.Equal(t, "Budi Santoso", user.FullName)
	assert.Equal(t, PlanFree, user.Plan)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.True(t, user.VerifyPassword("secret1"))
	assert.False(t, user.VerifyPassword("wrong"))
}

func TestNewUser_Validation(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		fullName string
		code     string
	}{
		{"short name", "a@b.co", "secret1", "B", "INVALID_FULL_NAME"},
		{"bad email", "not-an-email", "secret1", "Budi", "INVALID_EMAIL"},
		{"short password", "a@b.co", "12345", "Budi", "INVALID_PASSWORD"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewUser(tc.email, tc.password, tc.fullName)

			assert.Error(t, err)
			var domainErr *shared.DomainError
			assert.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tc.code, domainErr.Code)
		})
	}
}

func TestUser_UpgradeToPro(t *testing.T) {
	user, err := NewUser("owner@example.com", "secret1", "Budi")
	assert.NoError(t, err)

	assert.NoError(t, user.UpgradeToPro())
	assert.Equal(t, PlanPro, user.Plan)

	err = user.UpgradeToPro()
	assert.Error(t, err)
}
