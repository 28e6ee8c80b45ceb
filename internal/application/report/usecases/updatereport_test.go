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
)

func buildStoredReport(t *testing.T, reportID, ownerID uint, visitIDs ...uint) *report.DailyReport {
	t.Helper()

	now := time.Now().UTC()
	visits := make([]*report.VisitRecord, 0, len(visitIDs))
	for _, id := range visitIDs {
		v, err := report.ReconstructVisitRecord(id, reportID, 10, "existing visit", nil, nil, now, now)
		require.NoError(t, err)
		visits = append(visits, v)
	}

	rep, err := report.ReconstructDailyReport(
		reportID, ownerID,
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		nil, nil, visits, now, now,
	)
	require.NoError(t, err)
	return rep
}

func TestUpdateReportUseCase_Execute_Reconciliation(t *testing.T) {
	owner := authorization.Identity{UserID: 1, Role: authorization.RoleSales}
	stored := buildStoredReport(t, 100, 1, 5, 6, 7)

	var deletedIDs []uint
	var updated, created []*report.VisitRecord
	var callOrder []string

	mockReports := &mockReportRepository{
		FindByIDFunc: func(ctx context.Context, reportID uint) (*report.DailyReport, error) {
			return stored, nil
		},
		UpdateFunc: func(ctx context.Context, r *report.DailyReport) error {
			callOrder = append(callOrder, "update_report")
			return nil
		},
	}
	mockVisits := &mockVisitRecordRepository{
		DeleteByIDsFunc: func(ctx context.Context, reportID uint, ids []uint) error {
			callOrder = append(callOrder, "delete")
			deletedIDs = ids
			assert.Equal(t, uint(100), reportID)
			return nil
		},
		UpdateBatchFunc: func(ctx context.Context, visits []*report.VisitRecord) error {
			callOrder = append(callOrder, "update")
			updated = visits
			return nil
		},
		CreateBatchFunc: func(ctx context.Context, visits []*report.VisitRecord) error {
			callOrder = append(callOrder, "create")
			created = visits
			for i, v := range visits {
				require.NoError(t, v.SetID(uint(200+i)))
			}
			return nil
		},
	}

	useCase := NewUpdateReportUseCase(
		mockReports, mockVisits, &mockCustomerRepository{}, &mockTransactionManager{}, &mockLogger{})

	// Keep 5 (updated), drop 6 and 7, add one new visit.
	result, err := useCase.Execute(context.Background(), UpdateReportCommand{
		ReportID: 100,
		Caller:   owner,
		Problem:  strPtr("demo environment was down"),
		Visits: []report.VisitInput{
			{ID: uintPtr(5), CustomerID: 10, VisitContent: "rescheduled demo"},
			{CustomerID: 11, VisitContent: "new prospect intro"},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, []uint{6, 7}, deletedIDs)
	require.Len(t, updated, 1)
	assert.Equal(t, uint(5), updated[0].ID())
	assert.Equal(t, "rescheduled demo", updated[0].VisitContent())
	require.Len(t, created, 1)
	assert.Equal(t, uint(100), created[0].DailyReportID())
	assert.Equal(t, uint(11), created[0].CustomerID())

	assert.Equal(t, []string{"delete", "update", "create", "update_report"}, callOrder)
}

func TestUpdateReportUseCase_Execute_UnknownVisitIDs(t *testing.T) {
	owner := authorization.Identity{UserID: 1, Role: authorization.RoleSales}
	stored := buildStoredReport(t, 100, 1, 5)

	anyWrite := false
	mockReports := &mockReportRepository{
		FindByIDFunc: func(ctx context.Context, reportID uint) (*report.DailyReport, error) {
			return stored, nil
		},
		UpdateFunc: func(ctx context.Context, r *report.DailyReport) error {
			anyWrite = true
			return nil
		},
	}
	mockVisits := &mockVisitRecordRepository{
		DeleteByIDsFunc: func(ctx context.Context, reportID uint, ids []uint) error {
			anyWrite = true
			return nil
		},
		UpdateBatchFunc: func(ctx context.Context, visits []*report.VisitRecord) error {
			anyWrite = true
			return nil
		},
		CreateBatchFunc: func(ctx context.Context, visits []*report.VisitRecord) error {
			anyWrite = true
			return nil
		},
	}

	useCase := NewUpdateReportUseCase(
		mockReports, mockVisits, &mockCustomerRepository{}, &mockTransactionManager{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), UpdateReportCommand{
		ReportID: 100,
		Caller:   owner,
		Visits: []report.VisitInput{
			{ID: uintPtr(5), CustomerID: 10, VisitContent: "kept"},
			{ID: uintPtr(42), CustomerID: 10, VisitContent: "someone else's visit"},
		},
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.False(t, anyWrite, "rejected update must not touch the store")

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	require.Len(t, appErr.Details, 1)
	assert.Contains(t, appErr.Details[0].Message, "42")
}

func TestUpdateReportUseCase_Execute_ForbiddenForNonOwner(t *testing.T) {
	stored := buildStoredReport(t, 100, 1, 5)
	mockReports := &mockReportRepository{
		FindByIDFunc: func(ctx context.Context, reportID uint) (*report.DailyReport, error) {
			return stored, nil
		},
	}

	useCase := NewUpdateReportUseCase(
		mockReports, &mockVisitRecordRepository{}, &mockCustomerRepository{}, &mockTransactionManager{}, &mockLogger{})

	tests := []struct {
		name   string
		caller authorization.Identity
	}{
		{"other sales rep", authorization.Identity{UserID: 2, Role: authorization.RoleSales}},
		{"manager who is not the owner", authorization.Identity{UserID: 3, Role: authorization.RoleManager}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := useCase.Execute(context.Background(), UpdateReportCommand{
				ReportID: 100,
				Caller:   tt.caller,
				Visits:   []report.VisitInput{{CustomerID: 10, VisitContent: "visit"}},
			})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsForbiddenError(err))
		})
	}
}

func TestUpdateReportUseCase_Execute_EmptyVisitsRejected(t *testing.T) {
	owner := authorization.Identity{UserID: 1, Role: authorization.RoleSales}
	stored := buildStoredReport(t, 100, 1, 5)
	mockReports := &mockReportRepository{
		FindByIDFunc: func(ctx context.Context, reportID uint) (*report.DailyReport, error) {
			return stored, nil
		},
	}

	useCase := NewUpdateReportUseCase(
		mockReports, &mockVisitRecordRepository{}, &mockCustomerRepository{}, &mockTransactionManager{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), UpdateReportCommand{
		ReportID: 100,
		Caller:   owner,
		Visits:   nil,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "visits", appErr.Details[0].Field)
}

func TestUpdateReportUseCase_Execute_IdempotentResubmission(t *testing.T) {
	owner := authorization.Identity{UserID: 1, Role: authorization.RoleSales}
	stored := buildStoredReport(t, 100, 1, 5, 6)

	var deletedIDs []uint
	var created []*report.VisitRecord
	mockReports := &mockReportRepository{
		FindByIDFunc: func(ctx context.Context, reportID uint) (*report.DailyReport, error) {
			return stored, nil
		},
	}
	mockVisits := &mockVisitRecordRepository{
		DeleteByIDsFunc: func(ctx context.Context, reportID uint, ids []uint) error {
			deletedIDs = ids
			return nil
		},
		CreateBatchFunc: func(ctx context.Context, visits []*report.VisitRecord) error {
			created = visits
			return nil
		},
	}

	useCase := NewUpdateReportUseCase(
		mockReports, mockVisits, &mockCustomerRepository{}, &mockTransactionManager{}, &mockLogger{})

	// Resubmitting the current state deletes nothing and creates nothing.
	result, err := useCase.Execute(context.Background(), UpdateReportCommand{
		ReportID: 100,
		Caller:   owner,
		Visits: []report.VisitInput{
			{ID: uintPtr(5), CustomerID: 10, VisitContent: "existing visit"},
			{ID: uintPtr(6), CustomerID: 10, VisitContent: "existing visit"},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, deletedIDs)
	assert.Empty(t, created)
}
