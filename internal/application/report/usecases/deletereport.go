package usecases

import (
	"context"

	"salesdaily/internal/domain/report"
	"salesdaily/internal/shared/authorization"
	"salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/logger"
)

type DeleteReportCommand struct {
	ReportID uint
	Caller   authorization.Identity
}

type DeleteReportUseCase struct {
	reportRepo report.ReportRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewDeleteReportUseCase(
	reportRepo report.ReportRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteReportUseCase {
	return &DeleteReportUseCase{
		reportRepo: reportRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *DeleteReportUseCase) Execute(ctx context.Context, cmd DeleteReportCommand) error {
	uc.logger.Infow("executing delete report use case",
		"report_id", cmd.ReportID, "caller_id", cmd.Caller.UserID)

	rep, err := uc.reportRepo.FindByID(ctx, cmd.ReportID)
	if err != nil {
		return err
	}

	if !authorization.CanMutateReport(cmd.Caller, rep.UserID()) {
		uc.logger.Warnw("delete report denied",
			"report_id", cmd.ReportID, "caller_id", cmd.Caller.UserID, "owner_id", rep.UserID())
		return errors.NewForbiddenError("only the report owner may delete it")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.reportRepo.Delete(txCtx, cmd.ReportID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete report", "report_id", cmd.ReportID, "error", err)
		return err
	}

	uc.logger.Infow("report deleted successfully", "report_id", cmd.ReportID)
	return nil
}
