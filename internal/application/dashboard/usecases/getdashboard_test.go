package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdaily/internal/domain/report"
	"salesdaily/internal/shared/authorization"
	apperrors "salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/logger"
)

type mockReportRepository struct {
	FindByUserAndDateFunc func(ctx context.Context, userID uint, date time.Time) (*report.DailyReport, error)
	ListRecentByUserFunc  func(ctx context.Context, userID uint, limit int) ([]*report.ReportOverview, error)
	ListPendingReviewFunc func(ctx context.Context) ([]*report.ReportOverview, error)
}

func (m *mockReportRepository) Save(ctx context.Context, r *report.DailyReport) error   { return nil }
func (m *mockReportRepository) Update(ctx context.Context, r *report.DailyReport) error { return nil }
func (m *mockReportRepository) Delete(ctx context.Context, reportID uint) error         { return nil }
func (m *mockReportRepository) FindByID(ctx context.Context, reportID uint) (*report.DailyReport, error) {
	return nil, nil
}
func (m *mockReportRepository) FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (*report.DailyReport, error) {
	if m.FindByUserAndDateFunc != nil {
		return m.FindByUserAndDateFunc(ctx, userID, date)
	}
	return nil, apperrors.NewNotFoundError("report not found")
}
func (m *mockReportRepository) List(ctx context.Context, filter report.ReportFilter) ([]*report.DailyReport, int64, error) {
	return nil, 0, nil
}
func (m *mockReportRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return 0, nil
}
func (m *mockReportRepository) ListRecentByUser(ctx context.Context, userID uint, limit int) ([]*report.ReportOverview, error) {
	if m.ListRecentByUserFunc != nil {
		return m.ListRecentByUserFunc(ctx, userID, limit)
	}
	return nil, nil
}
func (m *mockReportRepository) ListPendingReview(ctx context.Context) ([]*report.ReportOverview, error) {
	if m.ListPendingReviewFunc != nil {
		return m.ListPendingReviewFunc(ctx)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func overview(reportID, userID uint, name string, date time.Time, visits, comments int64) *report.ReportOverview {
	return &report.ReportOverview{
		ReportID:     reportID,
		UserID:       userID,
		UserName:     name,
		ReportDate:   date,
		VisitCount:   visits,
		CommentCount: comments,
	}
}

func TestGetDashboardUseCase_Execute_Sales(t *testing.T) {
	sales := authorization.Identity{UserID: 1, Role: authorization.RoleSales}
	now := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

	var recentLimit int
	mockRepo := &mockReportRepository{
		FindByUserAndDateFunc: func(ctx context.Context, userID uint, date time.Time) (*report.DailyReport, error) {
			stored, err := report.ReconstructDailyReport(
				100, 1, date, nil, nil, nil, now, now)
			require.NoError(t, err)
			return stored, nil
		},
		ListRecentByUserFunc: func(ctx context.Context, userID uint, limit int) ([]*report.ReportOverview, error) {
			recentLimit = limit
			assert.Equal(t, uint(1), userID)
			return []*report.ReportOverview{
				overview(100, 1, "Sato Hanako", now, 2, 1),
				overview(99, 1, "Sato Hanako", now.AddDate(0, 0, -1), 3, 0),
			}, nil
		},
	}

	useCase := NewGetDashboardUseCase(mockRepo, &mockLogger{})
	useCase.now = func() time.Time { return now }

	result, err := useCase.Execute(context.Background(), GetDashboardQuery{Caller: sales})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "sales", result.Role)
	assert.True(t, result.Today.Exists)
	require.NotNil(t, result.Today.ReportID)
	assert.Equal(t, uint(100), *result.Today.ReportID)
	assert.Equal(t, 10, recentLimit)
	require.Len(t, result.RecentReports, 2)
	assert.Empty(t, result.PendingReports)
	assert.Equal(t, int64(1), result.RecentReports[0].CommentCount)
}

func TestGetDashboardUseCase_Execute_Manager(t *testing.T) {
	manager := authorization.Identity{UserID: 3, Role: authorization.RoleManager}
	now := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

	mockRepo := &mockReportRepository{
		ListPendingReviewFunc: func(ctx context.Context) ([]*report.ReportOverview, error) {
			return []*report.ReportOverview{
				overview(90, 1, "Sato Hanako", now.AddDate(0, 0, -3), 1, 0),
				overview(95, 2, "Suzuki Ichiro", now.AddDate(0, 0, -1), 2, 0),
			}, nil
		},
	}

	useCase := NewGetDashboardUseCase(mockRepo, &mockLogger{})
	useCase.now = func() time.Time { return now }

	result, err := useCase.Execute(context.Background(), GetDashboardQuery{Caller: manager})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "manager", result.Role)
	assert.False(t, result.Today.Exists)
	assert.Nil(t, result.Today.ReportID)
	assert.Empty(t, result.RecentReports)
	require.Len(t, result.PendingReports, 2)
	assert.Equal(t, "Sato Hanako", result.PendingReports[0].UserName)
}
