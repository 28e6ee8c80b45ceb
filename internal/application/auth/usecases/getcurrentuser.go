package usecases

import (
	"context"

	userdto "salesdaily/internal/application/user/dto"
	"salesdaily/internal/domain/user"
	"salesdaily/internal/shared/logger"
)

type GetCurrentUserQuery struct {
	UserID uint
}

type GetCurrentUserUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.UserRepository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, query GetCurrentUserQuery) (*userdto.UserDTO, error) {
	u, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	return userdto.ToUserDTO(u), nil
}
