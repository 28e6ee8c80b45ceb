package user

import (
	"github.com/gin-gonic/gin"

	"salesdaily/internal/application/user/usecases"
	"salesdaily/internal/shared/utils"
)

type CreateUserRequest struct {
	Name       string  `json:"name" validate:"required,max=100"`
	Email      string  `json:"email" validate:"required,email,max=255"`
	Password   string  `json:"password" validate:"required"`
	Role       string  `json:"role" validate:"required,oneof=sales manager"`
	Department *string `json:"department" validate:"omitempty,max=100"`
}

func (r *CreateUserRequest) ToCommand() usecases.CreateUserCommand {
	return usecases.CreateUserCommand{
		Name:       r.Name,
		Email:      r.Email,
		Password:   r.Password,
		Role:       r.Role,
		Department: r.Department,
	}
}

type UpdateUserRequest struct {
	Name       string  `json:"name" validate:"required,max=100"`
	Role       string  `json:"role" validate:"required,oneof=sales manager"`
	Department *string `json:"department" validate:"omitempty,max=100"`
	Password   *string `json:"password" validate:"omitempty"`
}

func (r *UpdateUserRequest) ToCommand(userID uint) usecases.UpdateUserCommand {
	return usecases.UpdateUserCommand{
		UserID:     userID,
		Name:       r.Name,
		Role:       r.Role,
		Department: r.Department,
		Password:   r.Password,
	}
}

type ListUsersRequest struct {
	Role     *string
	Page     int
	PageSize int
}

func parseListUsersRequest(c *gin.Context) *ListUsersRequest {
	req := &ListUsersRequest{}
	req.Page, req.PageSize = utils.ParsePagination(c)

	if role := c.Query("role"); role != "" {
		req.Role = &role
	}

	return req
}

func (r *ListUsersRequest) ToQuery() usecases.ListUsersQuery {
	return usecases.ListUsersQuery{
		Role:     r.Role,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}
