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

type UpdateCommentCommand struct {
	CommentID   uint
	Caller      authorization.Identity
	CommentType string
	Content     string
}

type UpdateCommentUseCase struct {
	commentRepo report.CommentRepository
	logger      logger.Interface
}

func NewUpdateCommentUseCase(commentRepo report.CommentRepository, logger logger.Interface) *UpdateCommentUseCase {
	return &UpdateCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *UpdateCommentUseCase) Execute(ctx context.Context, cmd UpdateCommentCommand) (*dto.CommentDTO, error) {
	comment, err := uc.commentRepo.FindByID(ctx, cmd.CommentID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanMutateComment(cmd.Caller, comment.AuthorID()) {
		uc.logger.Warnw("update comment denied",
			"comment_id", cmd.CommentID, "caller_id", cmd.Caller.UserID, "author_id", comment.AuthorID())
		return nil, errors.NewForbiddenError("only the comment author may modify it")
	}

	if err := comment.UpdateContent(vo.CommentType(cmd.CommentType), sanitize.Text(cmd.Content)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Update(ctx, comment); err != nil {
		uc.logger.Errorw("failed to update comment", "comment_id", cmd.CommentID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment updated successfully", "comment_id", cmd.CommentID)

	result := dto.ToCommentDTO(comment, "")
	return &result, nil
}
