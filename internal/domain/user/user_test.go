package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdaily/internal/shared/authorization"
)

func strPtr(s string) *string { return &s }

func TestNewUser(t *testing.T) {
	u, err := NewUser("Taro Yamada", "Taro@Example.com", authorization.RoleSales, strPtr("East"))
	require.NoError(t, err)

	assert.Equal(t, "Taro Yamada", u.Name())
	// Emails are normalized to lower case.
	assert.Equal(t, "taro@example.com", u.Email())
	assert.Equal(t, authorization.RoleSales, u.Role())
}

func TestNewUser_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		role     authorization.UserRole
		wantErr  string
	}{
		{"empty name", "", "a@b.com", authorization.RoleSales, "name is required"},
		{"name too long", strings.Repeat("x", 101), "a@b.com", authorization.RoleSales, "name exceeds"},
		{"bad email", "ok", "not-an-email", authorization.RoleSales, "invalid email"},
		{"email too long", "ok", strings.Repeat("x", 250) + "@example.com", authorization.RoleSales, "email exceeds"},
		{"bad role", "ok", "a@b.com", authorization.UserRole("admin"), "invalid role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.userName, tt.email, tt.role, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"valid", "passw0rd", ""},
		{"valid long mixed", "Correct-Horse-7", ""},
		{"too short", "abc1", "at least 8 characters"},
		{"no digit", "password", "at least one digit"},
		{"no letter", "12345678", "at least one letter"},
		{"too long", strings.Repeat("a1", 40), "must not exceed 72"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUser_ChangeRole(t *testing.T) {
	u, err := NewUser("ok", "a@b.com", authorization.RoleSales, nil)
	require.NoError(t, err)

	require.NoError(t, u.ChangeRole(authorization.RoleManager))
	assert.True(t, u.Role().IsManager())

	assert.Error(t, u.ChangeRole(authorization.UserRole("root")))
}
