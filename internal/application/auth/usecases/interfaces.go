package usecases

import (
	"context"
	"time"

	userdto "salesdaily/internal/application/user/dto"
	"salesdaily/internal/shared/authorization"
)

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// TokenIssuer signs access tokens for authenticated identities.
type TokenIssuer interface {
	Generate(userID uint, email string, role authorization.UserRole) (string, int64, error)
}

// LoginRateLimiter throttles repeated login attempts per key.
type LoginRateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Reset(ctx context.Context, key string) error
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, query GetCurrentUserQuery) (*userdto.UserDTO, error)
}
