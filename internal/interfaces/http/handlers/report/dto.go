package report

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"salesdaily/internal/application/report/usecases"
	domainreport "salesdaily/internal/domain/report"
	"salesdaily/internal/shared/authorization"
	"salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/utils"
)

type VisitRequest struct {
	// ID identifies an existing visit record on update; absent means create.
	ID              *uint   `json:"id"`
	CustomerID      uint    `json:"customer_id" validate:"required"`
	VisitContent    string  `json:"visit_content" validate:"required,max=1000"`
	VisitTime       *string `json:"visit_time" validate:"omitempty,datetime=15:04"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,min=0"`
}

func (r *VisitRequest) toInput() domainreport.VisitInput {
	return domainreport.VisitInput{
		ID:              r.ID,
		CustomerID:      r.CustomerID,
		VisitContent:    r.VisitContent,
		VisitTime:       r.VisitTime,
		DurationMinutes: r.DurationMinutes,
	}
}

type CreateReportRequest struct {
	ReportDate string         `json:"report_date" validate:"required"`
	Problem    *string        `json:"problem" validate:"omitempty,max=2000"`
	Plan       *string        `json:"plan" validate:"omitempty,max=2000"`
	Visits     []VisitRequest `json:"visits" validate:"required,min=1,dive"`
}

func (r *CreateReportRequest) ToCommand(userID uint) usecases.CreateReportCommand {
	return usecases.CreateReportCommand{
		UserID:     userID,
		ReportDate: r.ReportDate,
		Problem:    r.Problem,
		Plan:       r.Plan,
		Visits:     toVisitInputs(r.Visits),
	}
}

type UpdateReportRequest struct {
	Problem *string        `json:"problem" validate:"omitempty,max=2000"`
	Plan    *string        `json:"plan" validate:"omitempty,max=2000"`
	Visits  []VisitRequest `json:"visits" validate:"required,min=1,dive"`
}

func (r *UpdateReportRequest) ToCommand(reportID uint, caller authorization.Identity) usecases.UpdateReportCommand {
	return usecases.UpdateReportCommand{
		ReportID: reportID,
		Caller:   caller,
		Problem:  r.Problem,
		Plan:     r.Plan,
		Visits:   toVisitInputs(r.Visits),
	}
}

func toVisitInputs(visits []VisitRequest) []domainreport.VisitInput {
	inputs := make([]domainreport.VisitInput, 0, len(visits))
	for i := range visits {
		inputs = append(inputs, visits[i].toInput())
	}
	return inputs
}

type AddCommentRequest struct {
	CommentType string `json:"comment_type" validate:"required,oneof=problem plan general"`
	Content     string `json:"content" validate:"required,max=500"`
}

func (r *AddCommentRequest) ToCommand(reportID uint, caller authorization.Identity) usecases.AddCommentCommand {
	return usecases.AddCommentCommand{
		ReportID:    reportID,
		Caller:      caller,
		CommentType: r.CommentType,
		Content:     r.Content,
	}
}

type UpdateCommentRequest struct {
	CommentType string `json:"comment_type" validate:"required,oneof=problem plan general"`
	Content     string `json:"content" validate:"required,max=500"`
}

func (r *UpdateCommentRequest) ToCommand(commentID uint, caller authorization.Identity) usecases.UpdateCommentCommand {
	return usecases.UpdateCommentCommand{
		CommentID:   commentID,
		Caller:      caller,
		CommentType: r.CommentType,
		Content:     r.Content,
	}
}

type ListReportsRequest struct {
	UserID     *uint
	CustomerID *uint
	DateFrom   *string
	DateTo     *string
	Page       int
	PageSize   int
}

func parseListReportsRequest(c *gin.Context) (*ListReportsRequest, error) {
	req := &ListReportsRequest{}
	req.Page, req.PageSize = utils.ParsePagination(c)

	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid user_id filter",
				errors.FieldViolation{Field: "user_id", Message: "must be a positive integer"})
		}
		userID := uint(id)
		req.UserID = &userID
	}

	if raw := c.Query("customer_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid customer_id filter",
				errors.FieldViolation{Field: "customer_id", Message: "must be a positive integer"})
		}
		customerID := uint(id)
		req.CustomerID = &customerID
	}

	if from := c.Query("date_from"); from != "" {
		req.DateFrom = &from
	}
	if to := c.Query("date_to"); to != "" {
		req.DateTo = &to
	}

	return req, nil
}

func (r *ListReportsRequest) ToQuery(caller authorization.Identity) usecases.ListReportsQuery {
	return usecases.ListReportsQuery{
		Caller:     caller,
		UserID:     r.UserID,
		CustomerID: r.CustomerID,
		DateFrom:   r.DateFrom,
		DateTo:     r.DateTo,
		Page:       r.Page,
		PageSize:   r.PageSize,
	}
}
