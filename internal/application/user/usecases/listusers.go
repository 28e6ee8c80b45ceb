package usecases

import (
	"context"

	"salesdaily/internal/application/user/dto"
	"salesdaily/internal/domain/user"
	"salesdaily/internal/shared/logger"
)

type ListUsersQuery struct {
	Role     *string
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users    []*dto.UserDTO
	Total    int64
	Page     int
	PageSize int
}

type ListUsersUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.UserRepository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	users, total, err := uc.userRepo.List(ctx, user.UserFilter{
		Role:     query.Role,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	items := make([]*dto.UserDTO, 0, len(users))
	for _, u := range users {
		items = append(items, dto.ToUserDTO(u))
	}

	return &ListUsersResult{
		Users:    items,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
