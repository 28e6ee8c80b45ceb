package usecases

import (
	"context"

	"salesdaily/internal/application/customer/dto"
	"salesdaily/internal/domain/customer"
	"salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/logger"
	"salesdaily/internal/shared/sanitize"
)

type UpdateCustomerCommand struct {
	CustomerID  uint
	Name        string
	CompanyName string
	Phone       *string
	Email       *string
	Address     *string
	Notes       *string
}

type UpdateCustomerUseCase struct {
	customerRepo customer.CustomerRepository
	logger       logger.Interface
}

func NewUpdateCustomerUseCase(customerRepo customer.CustomerRepository, logger logger.Interface) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, cmd UpdateCustomerCommand) (*dto.CustomerDTO, error) {
	c, err := uc.customerRepo.FindByID(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}

	err = c.UpdateDetails(
		sanitize.Text(cmd.Name),
		sanitize.Text(cmd.CompanyName),
		sanitize.TextPtr(cmd.Phone),
		cmd.Email,
		sanitize.TextPtr(cmd.Address),
		sanitize.TextPtr(cmd.Notes),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.customerRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update customer", "customer_id", cmd.CustomerID, "error", err)
		return nil, err
	}

	uc.logger.Infow("customer updated successfully", "customer_id", cmd.CustomerID)
	return dto.ToCustomerDTO(c), nil
}
