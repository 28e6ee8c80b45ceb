package usecases

import (
	"context"

	"salesdaily/internal/domain/report"
	"salesdaily/internal/domain/user"
	"salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID uint
}

// DeleteUserUseCase removes an account. Deletion is refused while the user
// still owns reports, so report history never loses its author.
type DeleteUserUseCase struct {
	userRepo   user.UserRepository
	reportRepo report.ReportRepository
	logger     logger.Interface
}

func NewDeleteUserUseCase(userRepo user.UserRepository, reportRepo report.ReportRepository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:   userRepo,
		reportRepo: reportRepo,
		logger:     logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if _, err := uc.userRepo.FindByID(ctx, cmd.UserID); err != nil {
		return err
	}

	count, err := uc.reportRepo.CountByUser(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count user reports", "user_id", cmd.UserID, "error", err)
		return err
	}
	if count > 0 {
		uc.logger.Warnw("delete user refused", "user_id", cmd.UserID, "report_count", count)
		return errors.NewValidationError("user cannot be deleted while they own daily reports")
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("user deleted successfully", "user_id", cmd.UserID)
	return nil
}
