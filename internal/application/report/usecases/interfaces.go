package usecases

import (
	"context"

	"salesdaily/internal/application/report/dto"
)

// TransactionManager is the unit-of-work boundary the write paths run on.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateReportExecutor interface {
	Execute(ctx context.Context, cmd CreateReportCommand) (*dto.ReportDTO, error)
}

type UpdateReportExecutor interface {
	Execute(ctx context.Context, cmd UpdateReportCommand) (*dto.ReportDTO, error)
}

type DeleteReportExecutor interface {
	Execute(ctx context.Context, cmd DeleteReportCommand) error
}

type GetReportExecutor interface {
	Execute(ctx context.Context, query GetReportQuery) (*dto.ReportDTO, error)
}

type ListReportsExecutor interface {
	Execute(ctx context.Context, query ListReportsQuery) (*ListReportsResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type UpdateCommentExecutor interface {
	Execute(ctx context.Context, cmd UpdateCommentCommand) (*dto.CommentDTO, error)
}

type DeleteCommentExecutor interface {
	Execute(ctx context.Context, cmd DeleteCommentCommand) error
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error)
}
