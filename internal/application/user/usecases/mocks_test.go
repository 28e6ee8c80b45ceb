package usecases

import (
	"context"
	"time"

	"salesdaily/internal/domain/report"
	"salesdaily/internal/domain/user"
	"salesdaily/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc        func(ctx context.Context, u *user.User) error
	UpdateFunc      func(ctx context.Context, u *user.User) error
	DeleteFunc      func(ctx context.Context, userID uint) error
	FindByIDFunc    func(ctx context.Context, userID uint) (*user.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	ListFunc        func(ctx context.Context, filter user.UserFilter) ([]*user.User, int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.UserFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

// mockReportCounter satisfies report.ReportRepository for the delete guard;
// only CountByUser matters here.
type mockReportCounter struct {
	CountByUserFunc func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockReportCounter) Save(ctx context.Context, r *report.DailyReport) error   { return nil }
func (m *mockReportCounter) Update(ctx context.Context, r *report.DailyReport) error { return nil }
func (m *mockReportCounter) Delete(ctx context.Context, reportID uint) error         { return nil }
func (m *mockReportCounter) FindByID(ctx context.Context, reportID uint) (*report.DailyReport, error) {
	return nil, nil
}
func (m *mockReportCounter) FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (*report.DailyReport, error) {
	return nil, nil
}
func (m *mockReportCounter) List(ctx context.Context, filter report.ReportFilter) ([]*report.DailyReport, int64, error) {
	return nil, 0, nil
}
func (m *mockReportCounter) CountByUser(ctx context.Context, userID uint) (int64, error) {
	if m.CountByUserFunc != nil {
		return m.CountByUserFunc(ctx, userID)
	}
	return 0, nil
}
func (m *mockReportCounter) ListRecentByUser(ctx context.Context, userID uint, limit int) ([]*report.ReportOverview, error) {
	return nil, nil
}
func (m *mockReportCounter) ListPendingReview(ctx context.Context) ([]*report.ReportOverview, error) {
	return nil, nil
}

type mockPasswordHasher struct {
	HashFunc func(password string) (string, error)
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
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
