package usecases

import (
	"context"

	"salesdaily/internal/application/user/dto"
	"salesdaily/internal/domain/user"
	"salesdaily/internal/shared/logger"
)

type GetUserQuery struct {
	UserID uint
}

type GetUserUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.UserRepository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error) {
	u, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	return dto.ToUserDTO(u), nil
}
