package usecases

import (
	"context"
	"time"

	"salesdaily/internal/domain/customer"
	"salesdaily/internal/domain/report"
	"salesdaily/internal/domain/user"
	"salesdaily/internal/shared/logger"
)

type mockReportRepository struct {
	SaveFunc              func(ctx context.Context, r *report.DailyReport) error
	UpdateFunc            func(ctx context.Context, r *report.DailyReport) error
	DeleteFunc            func(ctx context.Context, reportID uint) error
	FindByIDFunc          func(ctx context.Context, reportID uint) (*report.DailyReport, error)
	FindByUserAndDateFunc func(ctx context.Context, userID uint, date time.Time) (*report.DailyReport, error)
	ListFunc              func(ctx context.Context, filter report.ReportFilter) ([]*report.DailyReport, int64, error)
	CountByUserFunc       func(ctx context.Context, userID uint) (int64, error)
	ListRecentByUserFunc  func(ctx context.Context, userID uint, limit int) ([]*report.ReportOverview, error)
	ListPendingReviewFunc func(ctx context.Context) ([]*report.ReportOverview, error)
}

func (m *mockReportRepository) Save(ctx context.Context, r *report.DailyReport) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockReportRepository) Update(ctx context.Context, r *report.DailyReport) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockReportRepository) Delete(ctx context.Context, reportID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, reportID)
	}
	return nil
}

func (m *mockReportRepository) FindByID(ctx context.Context, reportID uint) (*report.DailyReport, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, reportID)
	}
	return nil, nil
}

func (m *mockReportRepository) FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (*report.DailyReport, error) {
	if m.FindByUserAndDateFunc != nil {
		return m.FindByUserAndDateFunc(ctx, userID, date)
	}
	return nil, nil
}

func (m *mockReportRepository) List(ctx context.Context, filter report.ReportFilter) ([]*report.DailyReport, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockReportRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	if m.CountByUserFunc != nil {
		return m.CountByUserFunc(ctx, userID)
	}
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

type mockVisitRecordRepository struct {
	CreateBatchFunc     func(ctx context.Context, visits []*report.VisitRecord) error
	UpdateBatchFunc     func(ctx context.Context, visits []*report.VisitRecord) error
	DeleteByIDsFunc     func(ctx context.Context, reportID uint, ids []uint) error
	CountByCustomerFunc func(ctx context.Context, customerID uint) (int64, error)
}

func (m *mockVisitRecordRepository) CreateBatch(ctx context.Context, visits []*report.VisitRecord) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, visits)
	}
	return nil
}

func (m *mockVisitRecordRepository) UpdateBatch(ctx context.Context, visits []*report.VisitRecord) error {
	if m.UpdateBatchFunc != nil {
		return m.UpdateBatchFunc(ctx, visits)
	}
	return nil
}

func (m *mockVisitRecordRepository) DeleteByIDs(ctx context.Context, reportID uint, ids []uint) error {
	if m.DeleteByIDsFunc != nil {
		return m.DeleteByIDsFunc(ctx, reportID, ids)
	}
	return nil
}

func (m *mockVisitRecordRepository) CountByCustomer(ctx context.Context, customerID uint) (int64, error) {
	if m.CountByCustomerFunc != nil {
		return m.CountByCustomerFunc(ctx, customerID)
	}
	return 0, nil
}

type mockCommentRepository struct {
	SaveFunc         func(ctx context.Context, c *report.Comment) error
	UpdateFunc       func(ctx context.Context, c *report.Comment) error
	DeleteFunc       func(ctx context.Context, commentID uint) error
	FindByIDFunc     func(ctx context.Context, commentID uint) (*report.Comment, error)
	ListByReportFunc func(ctx context.Context, reportID uint) ([]*report.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *report.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) Update(ctx context.Context, c *report.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, commentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, commentID)
	}
	return nil
}

func (m *mockCommentRepository) FindByID(ctx context.Context, commentID uint) (*report.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListByReport(ctx context.Context, reportID uint) ([]*report.Comment, error) {
	if m.ListByReportFunc != nil {
		return m.ListByReportFunc(ctx, reportID)
	}
	return nil, nil
}

type mockCustomerRepository struct {
	SaveFunc            func(ctx context.Context, c *customer.Customer) error
	UpdateFunc          func(ctx context.Context, c *customer.Customer) error
	DeleteFunc          func(ctx context.Context, customerID uint) error
	FindByIDFunc        func(ctx context.Context, customerID uint) (*customer.Customer, error)
	FindExistingIDsFunc func(ctx context.Context, ids []uint) ([]uint, error)
	ListFunc            func(ctx context.Context, filter customer.CustomerFilter) ([]*customer.Customer, int64, error)
}

func (m *mockCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) Delete(ctx context.Context, customerID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, customerID)
	}
	return nil
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, customerID uint) (*customer.Customer, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *mockCustomerRepository) FindExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if m.FindExistingIDsFunc != nil {
		return m.FindExistingIDsFunc(ctx, ids)
	}
	return ids, nil
}

func (m *mockCustomerRepository) List(ctx context.Context, filter customer.CustomerFilter) ([]*customer.Customer, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

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

// mockTransactionManager runs the function inline without a real transaction.
type mockTransactionManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
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
