package auth

import (
	"salesdaily/internal/application/auth/usecases"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) ToCommand(clientIP string) usecases.LoginCommand {
	return usecases.LoginCommand{
		Email:    r.Email,
		Password: r.Password,
		ClientIP: clientIP,
	}
}
