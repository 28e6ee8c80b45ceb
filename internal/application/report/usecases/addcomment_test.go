package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdaily/internal/domain/report"
	vo "salesdaily/internal/domain/report/valueobjects"
	"salesdaily/internal/shared/authorization"
	apperrors "salesdaily/internal/shared/errors"
)

func TestAddCommentUseCase_Execute_ManagerSuccess(t *testing.T) {
	manager := authorization.Identity{UserID: 3, Role: authorization.RoleManager}
	stored := buildStoredReport(t, 100, 1, 5)

	var saved *report.Comment
	mockReports := &mockReportRepository{
		FindByIDFunc: func(ctx context.Context, reportID uint) (*report.DailyReport, error) {
			return stored, nil
		},
	}
	mockComments := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, c *report.Comment) error {
			if err := c.SetID(50); err != nil {
				return err
			}
			saved = c
			return nil
		},
	}

	useCase := NewAddCommentUseCase(mockReports, mockComments, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCommentCommand{
		ReportID:    100,
		Caller:      manager,
		CommentType: "plan",
		Content:     "good plan, add a follow-up call",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(50), result.ID)
	assert.Equal(t, "plan", result.CommentType)

	require.NotNil(t, saved)
	assert.Equal(t, uint(100), saved.DailyReportID())
	assert.Equal(t, uint(3), saved.AuthorID())
	assert.Equal(t, vo.CommentTypePlan, saved.CommentType())
}

func TestAddCommentUseCase_Execute_SalesForbidden(t *testing.T) {
	sales := authorization.Identity{UserID: 1, Role: authorization.RoleSales}

	findCalled := false
	mockReports := &mockReportRepository{
		FindByIDFunc: func(ctx context.Context, reportID uint) (*report.DailyReport, error) {
			findCalled = true
			return buildStoredReport(t, 100, 1, 5), nil
		},
	}

	useCase := NewAddCommentUseCase(mockReports, &mockCommentRepository{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCommentCommand{
		ReportID:    100,
		Caller:      sales,
		CommentType: "general",
		Content:     "note to self",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsForbiddenError(err))
	assert.False(t, findCalled, "authorization is decided before any lookup")
}

func TestAddCommentUseCase_Execute_ReportNotFound(t *testing.T) {
	manager := authorization.Identity{UserID: 3, Role: authorization.RoleManager}
	mockReports := &mockReportRepository{
		FindByIDFunc: func(ctx context.Context, reportID uint) (*report.DailyReport, error) {
			return nil, apperrors.NewNotFoundError("report not found")
		},
	}

	useCase := NewAddCommentUseCase(mockReports, &mockCommentRepository{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCommentCommand{
		ReportID:    999,
		Caller:      manager,
		CommentType: "general",
		Content:     "anything",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUpdateCommentUseCase_Execute_AuthorOnly(t *testing.T) {
	now := time.Now().UTC()
	stored, err := report.ReconstructComment(50, 100, 3, vo.CommentTypeGeneral, "original", now, now)
	require.NoError(t, err)

	mockComments := &mockCommentRepository{
		FindByIDFunc: func(ctx context.Context, commentID uint) (*report.Comment, error) {
			return stored, nil
		},
	}

	useCase := NewUpdateCommentUseCase(mockComments, &mockLogger{})

	// Another manager cannot edit.
	otherManager := authorization.Identity{UserID: 4, Role: authorization.RoleManager}
	result, err := useCase.Execute(context.Background(), UpdateCommentCommand{
		CommentID:   50,
		Caller:      otherManager,
		CommentType: "general",
		Content:     "hijacked",
	})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsForbiddenError(err))

	// The author can.
	author := authorization.Identity{UserID: 3, Role: authorization.RoleManager}
	result, err = useCase.Execute(context.Background(), UpdateCommentCommand{
		CommentID:   50,
		Caller:      author,
		CommentType: "problem",
		Content:     "revised feedback",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "revised feedback", result.Content)
	assert.Equal(t, "problem", result.CommentType)
}

func TestDeleteCommentUseCase_Execute_AuthorOnly(t *testing.T) {
	now := time.Now().UTC()
	stored, err := report.ReconstructComment(50, 100, 3, vo.CommentTypeGeneral, "original", now, now)
	require.NoError(t, err)

	deleted := false
	mockComments := &mockCommentRepository{
		FindByIDFunc: func(ctx context.Context, commentID uint) (*report.Comment, error) {
			return stored, nil
		},
		DeleteFunc: func(ctx context.Context, commentID uint) error {
			deleted = true
			return nil
		},
	}

	useCase := NewDeleteCommentUseCase(mockComments, &mockLogger{})

	other := authorization.Identity{UserID: 4, Role: authorization.RoleManager}
	err = useCase.Execute(context.Background(), DeleteCommentCommand{CommentID: 50, Caller: other})
	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
	assert.False(t, deleted)

	author := authorization.Identity{UserID: 3, Role: authorization.RoleManager}
	err = useCase.Execute(context.Background(), DeleteCommentCommand{CommentID: 50, Caller: author})
	require.NoError(t, err)
	assert.True(t, deleted)
}
