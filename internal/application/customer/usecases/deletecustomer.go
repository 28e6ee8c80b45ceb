package usecases

import (
	"context"

	"salesdaily/internal/domain/customer"
	"salesdaily/internal/domain/report"
	"salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/logger"
)

type DeleteCustomerCommand struct {
	CustomerID uint
}

// DeleteCustomerUseCase removes a customer. Deletion is refused while any
// visit record still references the customer, so report history stays intact.
type DeleteCustomerUseCase struct {
	customerRepo customer.CustomerRepository
	visitRepo    report.VisitRecordRepository
	logger       logger.Interface
}

func NewDeleteCustomerUseCase(
	customerRepo customer.CustomerRepository,
	visitRepo report.VisitRecordRepository,
	logger logger.Interface,
) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{
		customerRepo: customerRepo,
		visitRepo:    visitRepo,
		logger:       logger,
	}
}

func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, cmd DeleteCustomerCommand) error {
	if _, err := uc.customerRepo.FindByID(ctx, cmd.CustomerID); err != nil {
		return err
	}

	count, err := uc.visitRepo.CountByCustomer(ctx, cmd.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to count customer visits", "customer_id", cmd.CustomerID, "error", err)
		return err
	}
	if count > 0 {
		uc.logger.Warnw("delete customer refused", "customer_id", cmd.CustomerID, "visit_count", count)
		return errors.NewValidationError("customer cannot be deleted while visit records reference it")
	}

	if err := uc.customerRepo.Delete(ctx, cmd.CustomerID); err != nil {
		uc.logger.Errorw("failed to delete customer", "customer_id", cmd.CustomerID, "error", err)
		return err
	}

	uc.logger.Infow("customer deleted successfully", "customer_id", cmd.CustomerID)
	return nil
}
