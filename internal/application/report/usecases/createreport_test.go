package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdaily/internal/domain/report"
	apperrors "salesdaily/internal/shared/errors"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func uintPtr(u uint) *uint    { return &u }

func TestCreateReportUseCase_Execute_Success(t *testing.T) {
	visitTime := "10:30"
	duration := 45

	var saved *report.DailyReport
	mockRepo := &mockReportRepository{
		SaveFunc: func(ctx context.Context, r *report.DailyReport) error {
			if err := r.SetID(100); err != nil {
				return err
			}
			saved = r
			return nil
		},
	}
	mockCustomers := &mockCustomerRepository{
		FindExistingIDsFunc: func(ctx context.Context, ids []uint) ([]uint, error) {
			return ids, nil
		},
	}

	useCase := NewCreateReportUseCase(mockRepo, mockCustomers, &mockTransactionManager{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateReportCommand{
		UserID:     1,
		ReportDate: "2025-06-02",
		Problem:    strPtr("competitor undercut our quote"),
		Plan:       strPtr("prepare revised proposal"),
		Visits: []report.VisitInput{
			{CustomerID: 10, VisitContent: "quarterly review meeting", VisitTime: &visitTime, DurationMinutes: &duration},
			{CustomerID: 11, VisitContent: "cold call follow-up"},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(100), result.ID)
	assert.Equal(t, "2025-06-02", result.ReportDate)
	assert.Len(t, result.Visits, 2)

	require.NotNil(t, saved)
	assert.Equal(t, uint(1), saved.UserID())
	for _, v := range saved.Visits() {
		assert.Equal(t, uint(100), v.DailyReportID())
	}
}

func TestCreateReportUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name          string
		command       CreateReportCommand
		expectedField string
	}{
		{
			name: "malformed report date",
			command: CreateReportCommand{
				UserID:     1,
				ReportDate: "06/02/2025",
				Visits:     []report.VisitInput{{CustomerID: 10, VisitContent: "visit"}},
			},
			expectedField: "report_date",
		},
		{
			name: "empty visits",
			command: CreateReportCommand{
				UserID:     1,
				ReportDate: "2025-06-02",
				Visits:     nil,
			},
			expectedField: "visits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewCreateReportUseCase(
				&mockReportRepository{}, &mockCustomerRepository{}, &mockTransactionManager{}, &mockLogger{})

			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
			require.NotEmpty(t, appErr.Details)
			assert.Equal(t, tt.expectedField, appErr.Details[0].Field)
		})
	}
}

func TestCreateReportUseCase_Execute_UnknownCustomers(t *testing.T) {
	mockCustomers := &mockCustomerRepository{
		FindExistingIDsFunc: func(ctx context.Context, ids []uint) ([]uint, error) {
			return []uint{10}, nil
		},
	}

	saveCalled := false
	mockRepo := &mockReportRepository{
		SaveFunc: func(ctx context.Context, r *report.DailyReport) error {
			saveCalled = true
			return nil
		},
	}

	useCase := NewCreateReportUseCase(mockRepo, mockCustomers, &mockTransactionManager{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateReportCommand{
		UserID:     1,
		ReportDate: "2025-06-02",
		Visits: []report.VisitInput{
			{CustomerID: 10, VisitContent: "visit a"},
			{CustomerID: 77, VisitContent: "visit b"},
			{CustomerID: 99, VisitContent: "visit c"},
		},
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.False(t, saveCalled)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "visits", appErr.Details[0].Field)
	assert.Contains(t, appErr.Details[0].Message, "77, 99")
}

func TestCreateReportUseCase_Execute_DuplicateDate(t *testing.T) {
	mockRepo := &mockReportRepository{
		SaveFunc: func(ctx context.Context, r *report.DailyReport) error {
			return apperrors.NewDuplicateError("a report for this date is already registered")
		},
	}
	mockCustomers := &mockCustomerRepository{}

	useCase := NewCreateReportUseCase(mockRepo, mockCustomers, &mockTransactionManager{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateReportCommand{
		UserID:     1,
		ReportDate: "2025-06-02",
		Visits:     []report.VisitInput{{CustomerID: 10, VisitContent: "visit"}},
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeDuplicate, appErr.Type)
}
