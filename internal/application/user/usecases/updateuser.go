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

type UpdateUserCommand struct {
	UserID     uint
	Name       string
	Role       string
	Department *string
	// Password, when non-nil, replaces the stored hash after policy checks.
	Password *string
}

type UpdateUserUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.UserRepository, hasher PasswordHasher, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := u.UpdateProfile(sanitize.Text(cmd.Name), sanitize.TextPtr(cmd.Department)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	role := authorization.ParseUserRole(cmd.Role)
	if err := u.ChangeRole(role); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Password != nil {
		if err := user.ValidatePassword(*cmd.Password); err != nil {
			return nil, errors.NewValidationError("validation failed",
				errors.FieldViolation{Field: "password", Message: err.Error()})
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "user_id", cmd.UserID, "error", err)
			return nil, errors.NewInternalError("failed to process password")
		}
		if err := u.SetPasswordHash(hash); err != nil {
			return nil, errors.NewInternalError("failed to process password")
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user updated successfully", "user_id", cmd.UserID, "role", u.Role())
	return dto.ToUserDTO(u), nil
}
