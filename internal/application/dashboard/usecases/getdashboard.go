package usecases

import (
	"context"
	"time"

	reportdto "salesdaily/internal/application/report/dto"
	"salesdaily/internal/domain/report"
	"salesdaily/internal/shared/authorization"
	"salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/logger"
)

const recentReportsLimit = 10

type GetDashboardQuery struct {
	Caller authorization.Identity
}

type TodayStatus struct {
	Exists   bool  `json:"exists"`
	ReportID *uint `json:"report_id,omitempty"`
}

// DashboardResult is role-shaped: sales get their own recent reports,
// managers get the review backlog. Both see whether today's report exists.
type DashboardResult struct {
	Role           string                        `json:"role"`
	Today          TodayStatus                   `json:"today"`
	RecentReports  []reportdto.ReportOverviewDTO `json:"recent_reports,omitempty"`
	PendingReports []reportdto.ReportOverviewDTO `json:"pending_reports,omitempty"`
}

type GetDashboardUseCase struct {
	reportRepo report.ReportRepository
	logger     logger.Interface
	// now is swappable for tests.
	now func() time.Time
}

func NewGetDashboardUseCase(reportRepo report.ReportRepository, logger logger.Interface) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		reportRepo: reportRepo,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

type GetDashboardExecutor interface {
	Execute(ctx context.Context, query GetDashboardQuery) (*DashboardResult, error)
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) (*DashboardResult, error) {
	result := &DashboardResult{
		Role: query.Caller.Role.String(),
	}

	today, err := uc.todayStatus(ctx, query.Caller.UserID)
	if err != nil {
		return nil, err
	}
	result.Today = today

	if query.Caller.Role.IsManager() {
		pending, err := uc.reportRepo.ListPendingReview(ctx)
		if err != nil {
			uc.logger.Errorw("failed to load review backlog", "error", err)
			return nil, err
		}
		result.PendingReports = toOverviewDTOs(pending)
		return result, nil
	}

	recent, err := uc.reportRepo.ListRecentByUser(ctx, query.Caller.UserID, recentReportsLimit)
	if err != nil {
		uc.logger.Errorw("failed to load recent reports", "user_id", query.Caller.UserID, "error", err)
		return nil, err
	}
	result.RecentReports = toOverviewDTOs(recent)
	return result, nil
}

func (uc *GetDashboardUseCase) todayStatus(ctx context.Context, userID uint) (TodayStatus, error) {
	rep, err := uc.reportRepo.FindByUserAndDate(ctx, userID, uc.now())
	if err != nil {
		if errors.IsNotFoundError(err) {
			return TodayStatus{Exists: false}, nil
		}
		return TodayStatus{}, err
	}

	reportID := rep.ID()
	return TodayStatus{Exists: true, ReportID: &reportID}, nil
}

func toOverviewDTOs(overviews []*report.ReportOverview) []reportdto.ReportOverviewDTO {
	result := make([]reportdto.ReportOverviewDTO, 0, len(overviews))
	for _, o := range overviews {
		result = append(result, reportdto.ToReportOverviewDTO(o))
	}
	return result
}
