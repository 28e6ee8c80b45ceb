package authorization

import (
	"github.com/gin-gonic/gin"

	"salesdaily/internal/shared/constants"
	"salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/utils"
)

// RequireManager aborts the request unless the authenticated caller has the
// manager role. Must run after the auth middleware.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(constants.ContextKeyUserRole)
		if userRole != string(RoleManager) {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("manager role required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// IdentityFromContext rebuilds the caller identity the auth middleware stored
// in the gin context.
func IdentityFromContext(c *gin.Context) Identity {
	return Identity{
		UserID: c.GetUint(constants.ContextKeyUserID),
		Email:  c.GetString(constants.ContextKeyUserEmail),
		Role:   ParseUserRole(c.GetString(constants.ContextKeyUserRole)),
	}
}
