package usecases

import (
	"context"

	"salesdaily/internal/application/report/dto"
	"salesdaily/internal/domain/report"
	vo "salesdaily/internal/domain/report/valueobjects"
	"salesdaily/internal/shared/authorization"
	"salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/logger"
	"salesdaily/internal/shared/sanitize"
)

type AddCommentCommand struct {
	ReportID    uint
	Caller      authorization.Identity
	CommentType string
	Content     string
}

type AddCommentUseCase struct {
	reportRepo  report.ReportRepository
	commentRepo report.CommentRepository
	logger      logger.Interface
}

func NewAddCommentUseCase(
	reportRepo report.ReportRepository,
	commentRepo report.CommentRepository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		reportRepo:  reportRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case",
		"report_id", cmd.ReportID, "caller_id", cmd.Caller.UserID, "comment_type", cmd.CommentType)

	if !authorization.CanCreateComment(cmd.Caller) {
		uc.logger.Warnw("add comment denied",
			"report_id", cmd.ReportID, "caller_id", cmd.Caller.UserID, "role", cmd.Caller.Role)
		return nil, errors.NewForbiddenError("only managers may comment on reports")
	}

	// Comment existence is anchored on the report; a missing report is 404.
	if _, err := uc.reportRepo.FindByID(ctx, cmd.ReportID); err != nil {
		return nil, err
	}

	comment, err := report.NewComment(
		cmd.ReportID,
		cmd.Caller.UserID,
		vo.CommentType(cmd.CommentType),
		sanitize.Text(cmd.Content),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "report_id", cmd.ReportID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added successfully",
		"comment_id", comment.ID(), "report_id", cmd.ReportID)

	result := dto.ToCommentDTO(comment, "")
	return &result, nil
}
