package usecases

import (
	"context"

	"salesdaily/internal/domain/report"
	"salesdaily/internal/shared/authorization"
	"salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/logger"
)

type DeleteCommentCommand struct {
	CommentID uint
	Caller    authorization.Identity
}

type DeleteCommentUseCase struct {
	commentRepo report.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(commentRepo report.CommentRepository, logger logger.Interface) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	comment, err := uc.commentRepo.FindByID(ctx, cmd.CommentID)
	if err != nil {
		return err
	}

	if !authorization.CanMutateComment(cmd.Caller, comment.AuthorID()) {
		uc.logger.Warnw("delete comment denied",
			"comment_id", cmd.CommentID, "caller_id", cmd.Caller.UserID, "author_id", comment.AuthorID())
		return errors.NewForbiddenError("only the comment author may delete it")
	}

	if err := uc.commentRepo.Delete(ctx, cmd.CommentID); err != nil {
		uc.logger.Errorw("failed to delete comment", "comment_id", cmd.CommentID, "error", err)
		return err
	}

	uc.logger.Infow("comment deleted successfully", "comment_id", cmd.CommentID)
	return nil
}
