package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdaily/internal/application/dashboard/usecases"
	"salesdaily/internal/shared/authorization"
	"salesdaily/internal/shared/logger"
	"salesdaily/internal/shared/utils"
)

type DashboardHandler struct {
	getDashboardUC usecases.GetDashboardExecutor
	logger         logger.Interface
}

func NewDashboardHandler(getDashboardUC usecases.GetDashboardExecutor) *DashboardHandler {
	return &DashboardHandler{
		getDashboardUC: getDashboardUC,
		logger:         logger.NewLogger(),
	}
}

// GetDashboard handles GET /dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	identity := authorization.IdentityFromContext(c)

	result, err := h.getDashboardUC.Execute(c.Request.Context(), usecases.GetDashboardQuery{
		Caller: identity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}
