package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdaily/internal/application/auth/usecases"
	"salesdaily/internal/shared/authorization"
	apperrors "salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/logger"
	"salesdaily/internal/shared/utils"
	"salesdaily/internal/shared/validation"
)

type AuthHandler struct {
	loginUC          usecases.LoginExecutor
	getCurrentUserUC usecases.GetCurrentUserExecutor
	logger           logger.Interface
}

func NewAuthHandler(
	loginUC usecases.LoginExecutor,
	getCurrentUserUC usecases.GetCurrentUserExecutor,
) *AuthHandler {
	return &AuthHandler{
		loginUC:          loginUC,
		getCurrentUserUC: getCurrentUserUC,
		logger:           logger.NewLogger(),
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req.ToCommand(c.ClientIP()))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// GetCurrentUser handles GET /auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	identity := authorization.IdentityFromContext(c)

	result, err := h.getCurrentUserUC.Execute(c.Request.Context(), usecases.GetCurrentUserQuery{
		UserID: identity.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}
