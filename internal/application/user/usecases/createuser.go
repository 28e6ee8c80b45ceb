package usecases

import (
	"context"

	"salesdaily/internal/application/user/dto"
	"salesdaily/internal/domain/user"
	"salesdaily/internal/shared/authorization"
	"salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/logger"
	"salesdaily/internal/shared/sanitize"
)

type CreateUserCommand struct {
	Name       string
	Email      string
	Password   string
	Role       string
	Department *string
}

type CreateUserUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.UserRepository, hasher PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing create user use case", "email", cmd.Email, "role", cmd.Role)

	if err := user.ValidatePassword(cmd.Password); err != nil {
		return nil, errors.NewValidationError("validation failed",
			errors.FieldViolation{Field: "password", Message: err.Error()})
	}

	newUser, err := user.NewUser(
		sanitize.Text(cmd.Name),
		cmd.Email,
		authorization.ParseUserRole(cmd.Role),
		sanitize.TextPtr(cmd.Department),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}
	if err := newUser.SetPasswordHash(hash); err != nil {
		return nil, errors.NewInternalError("failed to process password")
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "email", cmd.Email, "error", err)
		return nil, err
	}

	uc.logger.Infow("user created successfully", "user_id", newUser.ID(), "role", newUser.Role())
	return dto.ToUserDTO(newUser), nil
}
