package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	userdto "salesdaily/internal/application/user/dto"
	"salesdaily/internal/domain/user"
	"salesdaily/internal/shared/config"
	"salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
	ClientIP string
}

type LoginResult struct {
	Token     string           `json:"token"`
	ExpiresIn int64            `json:"expires_in"`
	User      *userdto.UserDTO `json:"user"`
}

type LoginUseCase struct {
	userRepo  user.UserRepository
	verifier  PasswordVerifier
	tokens    TokenIssuer
	limiter   LoginRateLimiter
	rateLimit config.LoginRateLimitConfig
	logger    logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	verifier PasswordVerifier,
	tokens TokenIssuer,
	limiter LoginRateLimiter,
	rateLimit config.LoginRateLimitConfig,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:  userRepo,
		verifier:  verifier,
		tokens:    tokens,
		limiter:   limiter,
		rateLimit: rateLimit,
		logger:    logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	limiterKey := fmt.Sprintf("login:%s:%s", email, cmd.ClientIP)

	if uc.rateLimit.Enabled {
		window := time.Duration(uc.rateLimit.WindowMins) * time.Minute
		allowed, err := uc.limiter.Allow(ctx, limiterKey, uc.rateLimit.MaxAttempts, window)
		if err != nil {
			// A broken limiter must not lock everyone out.
			uc.logger.Errorw("login rate limiter unavailable", "error", err)
		} else if !allowed {
			uc.logger.Warnw("login throttled", "email", email, "client_ip", cmd.ClientIP)
			return nil, errors.NewRateLimitedError("too many login attempts, try again later")
		}
	}

	u, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		// Same response for unknown account and wrong password.
		uc.logger.Infow("login failed", "email", email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.verifier.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Infow("login failed", "email", email, "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresIn, err := uc.tokens.Generate(u.ID(), u.Email(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue access token")
	}

	if uc.rateLimit.Enabled {
		if err := uc.limiter.Reset(ctx, limiterKey); err != nil {
			uc.logger.Warnw("failed to reset login limiter", "error", err)
		}
	}

	uc.logger.Infow("login succeeded", "user_id", u.ID(), "role", u.Role())

	return &LoginResult{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      userdto.ToUserDTO(u),
	}, nil
}
