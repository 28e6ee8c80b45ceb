package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdaily/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	token, expiresIn, err := svc.Generate(7, "rep@example.com", authorization.RoleSales)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "rep@example.com", claims.Email)
	assert.Equal(t, authorization.RoleSales, claims.Role)
}

func TestJWTService_VerifyRejectsWrongSecret(t *testing.T) {
	token, _, err := NewJWTService("secret-a", 60).Generate(1, "a@b.com", authorization.RoleManager)
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 60).Verify(token)
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", -1)

	token, _, err := svc.Generate(1, "a@b.com", authorization.RoleSales)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	_, err := svc.Verify("not.a.token")
	assert.Error(t, err)
}
