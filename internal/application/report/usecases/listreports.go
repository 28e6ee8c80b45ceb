package usecases

import (
	"context"
	"time"

	"salesdaily/internal/application/report/dto"
	"salesdaily/internal/domain/report"
	"salesdaily/internal/shared/authorization"
	"salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/logger"
)

type ListReportsQuery struct {
	Caller     authorization.Identity
	UserID     *uint
	CustomerID *uint
	DateFrom   *string
	DateTo     *string
	Page       int
	PageSize   int
}

type ListReportsResult struct {
	Reports  []dto.ReportListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListReportsUseCase struct {
	reportRepo report.ReportRepository
	logger     logger.Interface
}

func NewListReportsUseCase(reportRepo report.ReportRepository, logger logger.Interface) *ListReportsUseCase {
	return &ListReportsUseCase{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

func (uc *ListReportsUseCase) Execute(ctx context.Context, query ListReportsQuery) (*ListReportsResult, error) {
	// A sales caller naming another user is denied outright, not silently
	// narrowed to their own reports.
	if query.UserID != nil && !authorization.CanListReportsOf(query.Caller, *query.UserID) {
		uc.logger.Warnw("list reports denied",
			"caller_id", query.Caller.UserID, "requested_user_id", *query.UserID)
		return nil, errors.NewForbiddenError("you may only list your own reports")
	}

	filter := report.ReportFilter{
		UserID:     query.UserID,
		CustomerID: query.CustomerID,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}

	if filter.UserID == nil && !query.Caller.Role.IsManager() {
		callerID := query.Caller.UserID
		filter.UserID = &callerID
	}

	var violations []errors.FieldViolation
	if query.DateFrom != nil && *query.DateFrom != "" {
		from, err := time.Parse(report.DateLayout, *query.DateFrom)
		if err != nil {
			violations = append(violations, errors.FieldViolation{
				Field: "date_from", Message: "must be a valid date in YYYY-MM-DD format",
			})
		} else {
			filter.DateFrom = &from
		}
	}
	if query.DateTo != nil && *query.DateTo != "" {
		to, err := time.Parse(report.DateLayout, *query.DateTo)
		if err != nil {
			violations = append(violations, errors.FieldViolation{
				Field: "date_to", Message: "must be a valid date in YYYY-MM-DD format",
			})
		} else {
			filter.DateTo = &to
		}
	}
	if len(violations) > 0 {
		return nil, errors.NewValidationError("validation failed", violations...)
	}

	reports, total, err := uc.reportRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list reports", "error", err)
		return nil, err
	}

	items := make([]dto.ReportListItemDTO, 0, len(reports))
	for _, r := range reports {
		items = append(items, dto.ToReportListItemDTO(r))
	}

	return &ListReportsResult{
		Reports:  items,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
