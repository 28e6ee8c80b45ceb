package usecases

import (
	"context"
	stderrors "errors"

	"salesdaily/internal/application/report/dto"
	"salesdaily/internal/domain/customer"
	"salesdaily/internal/domain/report"
	"salesdaily/internal/shared/authorization"
	"salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/logger"
	"salesdaily/internal/shared/sanitize"
)

type UpdateReportCommand struct {
	ReportID uint
	Caller   authorization.Identity
	Problem  *string
	Plan     *string
	Visits   []report.VisitInput
}

// UpdateReportUseCase reconciles the incoming visit list against the stored
// one and applies the delta as delete, then update, then create, together
// with the report field update, in a single transaction.
type UpdateReportUseCase struct {
	reportRepo   report.ReportRepository
	visitRepo    report.VisitRecordRepository
	customerRepo customer.CustomerRepository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewUpdateReportUseCase(
	reportRepo report.ReportRepository,
	visitRepo report.VisitRecordRepository,
	customerRepo customer.CustomerRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateReportUseCase {
	return &UpdateReportUseCase{
		reportRepo:   reportRepo,
		visitRepo:    visitRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *UpdateReportUseCase) Execute(ctx context.Context, cmd UpdateReportCommand) (*dto.ReportDTO, error) {
	uc.logger.Infow("executing update report use case",
		"report_id", cmd.ReportID, "caller_id", cmd.Caller.UserID, "visits", len(cmd.Visits))

	rep, err := uc.reportRepo.FindByID(ctx, cmd.ReportID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanMutateReport(cmd.Caller, rep.UserID()) {
		uc.logger.Warnw("update report denied",
			"report_id", cmd.ReportID, "caller_id", cmd.Caller.UserID, "owner_id", rep.UserID())
		return nil, errors.NewForbiddenError("only the report owner may modify it")
	}

	if len(cmd.Visits) == 0 {
		return nil, errors.NewValidationError("validation failed",
			errors.FieldViolation{Field: "visits", Message: "at least one visit record is required"})
	}

	if err := checkCustomersExist(ctx, uc.customerRepo, cmd.Visits); err != nil {
		return nil, err
	}

	reconcilePlan, err := report.ReconcileVisits(rep.VisitIDs(), cmd.Visits)
	if err != nil {
		var unknownErr *report.UnknownVisitIDsError
		if stderrors.As(err, &unknownErr) {
			uc.logger.Warnw("update report rejected unknown visit ids",
				"report_id", cmd.ReportID, "unknown_ids", unknownErr.IDs)
			return nil, errors.NewValidationError("validation failed",
				errors.FieldViolation{Field: "visits", Message: unknownErr.Error()})
		}
		return nil, err
	}

	updates := make([]*report.VisitRecord, 0, len(reconcilePlan.ToUpdate))
	for _, in := range reconcilePlan.ToUpdate {
		v := rep.VisitByID(*in.ID)
		if err := v.ApplyUpdate(in.CustomerID, sanitize.Text(in.VisitContent), in.VisitTime, in.DurationMinutes); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		updates = append(updates, v)
	}

	creates := make([]*report.VisitRecord, 0, len(reconcilePlan.ToCreate))
	for _, in := range reconcilePlan.ToCreate {
		v, err := report.NewVisitRecord(in.CustomerID, sanitize.Text(in.VisitContent), in.VisitTime, in.DurationMinutes)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := v.AttachToReport(rep.ID()); err != nil {
			return nil, err
		}
		creates = append(creates, v)
	}

	if err := rep.UpdateFields(sanitize.TextPtr(cmd.Problem), sanitize.TextPtr(cmd.Plan)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.visitRepo.DeleteByIDs(txCtx, rep.ID(), reconcilePlan.ToDelete); err != nil {
			return err
		}
		if err := uc.visitRepo.UpdateBatch(txCtx, updates); err != nil {
			return err
		}
		if err := uc.visitRepo.CreateBatch(txCtx, creates); err != nil {
			return err
		}
		return uc.reportRepo.Update(txCtx, rep)
	})
	if err != nil {
		uc.logger.Errorw("failed to apply report update", "report_id", cmd.ReportID, "error", err)
		return nil, err
	}

	uc.logger.Infow("report updated successfully",
		"report_id", cmd.ReportID,
		"deleted", len(reconcilePlan.ToDelete),
		"updated", len(updates),
		"created", len(creates))

	// Reload so the response carries the persisted visit ordering.
	reloaded, err := uc.reportRepo.FindByID(ctx, rep.ID())
	if err != nil {
		return nil, err
	}

	return dto.ToReportDTO(reloaded, ""), nil
}
