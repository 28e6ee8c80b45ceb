package usecases

import (
	"context"

	"salesdaily/internal/domain/customer"
	"salesdaily/internal/domain/report"
	"salesdaily/internal/shared/logger"
)

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

// mockVisitCounter satisfies report.VisitRecordRepository for the delete
// guard; only CountByCustomer matters here.
type mockVisitCounter struct {
	CountByCustomerFunc func(ctx context.Context, customerID uint) (int64, error)
}

func (m *mockVisitCounter) CreateBatch(ctx context.Context, visits []*report.VisitRecord) error {
	return nil
}

func (m *mockVisitCounter) UpdateBatch(ctx context.Context, visits []*report.VisitRecord) error {
	return nil
}

func (m *mockVisitCounter) DeleteByIDs(ctx context.Context, reportID uint, ids []uint) error {
	return nil
}

func (m *mockVisitCounter) CountByCustomer(ctx context.Context, customerID uint) (int64, error) {
	if m.CountByCustomerFunc != nil {
		return m.CountByCustomerFunc(ctx, customerID)
	}
	return 0, nil
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
