package usecases

import (
	"context"

	"salesdaily/internal/application/report/dto"
	"salesdaily/internal/domain/report"
	"salesdaily/internal/domain/user"
	"salesdaily/internal/shared/authorization"
	"salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/logger"
)

type ListCommentsQuery struct {
	ReportID uint
	Caller   authorization.Identity
}

// ListCommentsUseCase returns a report's comments. Visibility follows the
// report itself: sales see comments on their own reports only.
type ListCommentsUseCase struct {
	reportRepo  report.ReportRepository
	commentRepo report.CommentRepository
	userRepo    user.UserRepository
	logger      logger.Interface
}

func NewListCommentsUseCase(
	reportRepo report.ReportRepository,
	commentRepo report.CommentRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		reportRepo:  reportRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error) {
	rep, err := uc.reportRepo.FindByID(ctx, query.ReportID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanViewReport(query.Caller, rep.UserID()) {
		uc.logger.Warnw("list comments denied",
			"report_id", query.ReportID, "caller_id", query.Caller.UserID)
		return nil, errors.NewForbiddenError("you may only view your own reports")
	}

	comments, err := uc.commentRepo.ListByReport(ctx, query.ReportID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "report_id", query.ReportID, "error", err)
		return nil, err
	}

	names := make(map[uint]string, len(comments))
	result := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		name, ok := names[c.AuthorID()]
		if !ok {
			if author, err := uc.userRepo.FindByID(ctx, c.AuthorID()); err == nil {
				name = author.Name()
			}
			names[c.AuthorID()] = name
		}
		result = append(result, dto.ToCommentDTO(c, name))
	}

	return result, nil
}
