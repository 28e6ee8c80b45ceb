package usecases

import (
	"context"
	"fmt"
	"time"

	"salesdaily/internal/application/report/dto"
	"salesdaily/internal/domain/customer"
	"salesdaily/internal/domain/report"
	"salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/logger"
	"salesdaily/internal/shared/sanitize"
)

type CreateReportCommand struct {
	UserID     uint
	ReportDate string
	Problem    *string
	Plan       *string
	Visits     []report.VisitInput
}

type CreateReportUseCase struct {
	reportRepo   report.ReportRepository
	customerRepo customer.CustomerRepository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewCreateReportUseCase(
	reportRepo report.ReportRepository,
	customerRepo customer.CustomerRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateReportUseCase {
	return &CreateReportUseCase{
		reportRepo:   reportRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *CreateReportUseCase) Execute(ctx context.Context, cmd CreateReportCommand) (*dto.ReportDTO, error) {
	uc.logger.Infow("executing create report use case",
		"user_id", cmd.UserID, "report_date", cmd.ReportDate, "visits", len(cmd.Visits))

	reportDate, err := time.Parse(report.DateLayout, cmd.ReportDate)
	if err != nil {
		return nil, errors.NewValidationError("validation failed",
			errors.FieldViolation{Field: "report_date", Message: "must be a valid date in YYYY-MM-DD format"})
	}

	if len(cmd.Visits) == 0 {
		return nil, errors.NewValidationError("validation failed",
			errors.FieldViolation{Field: "visits", Message: "at least one visit record is required"})
	}

	if err := checkCustomersExist(ctx, uc.customerRepo, cmd.Visits); err != nil {
		uc.logger.Warnw("create report references unknown customers", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	visits := make([]*report.VisitRecord, 0, len(cmd.Visits))
	for _, in := range cmd.Visits {
		v, err := report.NewVisitRecord(in.CustomerID, sanitize.Text(in.VisitContent), in.VisitTime, in.DurationMinutes)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		visits = append(visits, v)
	}

	newReport, err := report.NewDailyReport(
		cmd.UserID,
		reportDate,
		sanitize.TextPtr(cmd.Problem),
		sanitize.TextPtr(cmd.Plan),
		visits,
	)
	if err != nil {
		uc.logger.Errorw("failed to create report entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.reportRepo.Save(txCtx, newReport)
	})
	if err != nil {
		uc.logger.Errorw("failed to save report", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("report created successfully",
		"report_id", newReport.ID(), "user_id", cmd.UserID, "report_date", cmd.ReportDate)

	return dto.ToReportDTO(newReport, ""), nil
}

// checkCustomersExist bulk-verifies every referenced customer id and names
// the missing ones in the violation message.
func checkCustomersExist(ctx context.Context, repo customer.CustomerRepository, visits []report.VisitInput) error {
	ids := report.DistinctCustomerIDs(visits)
	if len(ids) == 0 {
		return nil
	}

	found, err := repo.FindExistingIDs(ctx, ids)
	if err != nil {
		return err
	}

	missing := report.MissingIDs(ids, found)
	if len(missing) > 0 {
		return errors.NewValidationError("validation failed",
			errors.FieldViolation{
				Field:   "visits",
				Message: fmt.Sprintf("unknown customer ids: %s", report.FormatIDs(missing)),
			})
	}

	return nil
}
