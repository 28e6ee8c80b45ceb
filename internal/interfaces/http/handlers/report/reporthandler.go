package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdaily/internal/application/report/usecases"
	"salesdaily/internal/shared/authorization"
	apperrors "salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/logger"
	"salesdaily/internal/shared/utils"
	"salesdaily/internal/shared/validation"
)

type ReportHandler struct {
	createReportUC  usecases.CreateReportExecutor
	updateReportUC  usecases.UpdateReportExecutor
	deleteReportUC  usecases.DeleteReportExecutor
	getReportUC     usecases.GetReportExecutor
	listReportsUC   usecases.ListReportsExecutor
	addCommentUC    usecases.AddCommentExecutor
	updateCommentUC usecases.UpdateCommentExecutor
	deleteCommentUC usecases.DeleteCommentExecutor
	listCommentsUC  usecases.ListCommentsExecutor
	logger          logger.Interface
}

func NewReportHandler(
	createReportUC usecases.CreateReportExecutor,
	updateReportUC usecases.UpdateReportExecutor,
	deleteReportUC usecases.DeleteReportExecutor,
	getReportUC usecases.GetReportExecutor,
	listReportsUC usecases.ListReportsExecutor,
	addCommentUC usecases.AddCommentExecutor,
	updateCommentUC usecases.UpdateCommentExecutor,
	deleteCommentUC usecases.DeleteCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
) *ReportHandler {
	return &ReportHandler{
		createReportUC:  createReportUC,
		updateReportUC:  updateReportUC,
		deleteReportUC:  deleteReportUC,
		getReportUC:     getReportUC,
		listReportsUC:   listReportsUC,
		addCommentUC:    addCommentUC,
		updateCommentUC: updateCommentUC,
		deleteCommentUC: deleteCommentUC,
		listCommentsUC:  listCommentsUC,
		logger:          logger.NewLogger(),
	}
}

// CreateReport handles POST /reports
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create report", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	identity := authorization.IdentityFromContext(c)

	result, err := h.createReportUC.Execute(c.Request.Context(), req.ToCommand(identity.UserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// UpdateReport handles PUT /reports/:id
func (h *ReportHandler) UpdateReport(c *gin.Context) {
	reportID, err := utils.ParseIDParam(c, "id", "report")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update report", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	identity := authorization.IdentityFromContext(c)

	result, err := h.updateReportUC.Execute(c.Request.Context(), req.ToCommand(reportID, identity))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// DeleteReport handles DELETE /reports/:id
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	reportID, err := utils.ParseIDParam(c, "id", "report")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	identity := authorization.IdentityFromContext(c)

	cmd := usecases.DeleteReportCommand{ReportID: reportID, Caller: identity}
	if err := h.deleteReportUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetReport handles GET /reports/:id
func (h *ReportHandler) GetReport(c *gin.Context) {
	reportID, err := utils.ParseIDParam(c, "id", "report")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	identity := authorization.IdentityFromContext(c)

	result, err := h.getReportUC.Execute(c.Request.Context(), usecases.GetReportQuery{
		ReportID: reportID,
		Caller:   identity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListReports handles GET /reports
func (h *ReportHandler) ListReports(c *gin.Context) {
	req, err := parseListReportsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	identity := authorization.IdentityFromContext(c)

	result, err := h.listReportsUC.Execute(c.Request.Context(), req.ToQuery(identity))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Reports, result.Total, result.Page, result.PageSize)
}

// AddComment handles POST /reports/:id/comments
func (h *ReportHandler) AddComment(c *gin.Context) {
	reportID, err := utils.ParseIDParam(c, "id", "report")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	identity := authorization.IdentityFromContext(c)

	result, err := h.addCommentUC.Execute(c.Request.Context(), req.ToCommand(reportID, identity))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListComments handles GET /reports/:id/comments
func (h *ReportHandler) ListComments(c *gin.Context) {
	reportID, err := utils.ParseIDParam(c, "id", "report")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	identity := authorization.IdentityFromContext(c)

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		ReportID: reportID,
		Caller:   identity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// UpdateComment handles PUT /comments/:id
func (h *ReportHandler) UpdateComment(c *gin.Context) {
	commentID, err := utils.ParseIDParam(c, "id", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update comment", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	identity := authorization.IdentityFromContext(c)

	result, err := h.updateCommentUC.Execute(c.Request.Context(), req.ToCommand(commentID, identity))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// DeleteComment handles DELETE /comments/:id
func (h *ReportHandler) DeleteComment(c *gin.Context) {
	commentID, err := utils.ParseIDParam(c, "id", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	identity := authorization.IdentityFromContext(c)

	cmd := usecases.DeleteCommentCommand{CommentID: commentID, Caller: identity}
	if err := h.deleteCommentUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
