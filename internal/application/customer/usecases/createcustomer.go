package usecases

import (
	"context"

	"salesdaily/internal/application/customer/dto"
	"salesdaily/internal/domain/customer"
	"salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/logger"
	"salesdaily/internal/shared/sanitize"
)

type CreateCustomerCommand struct {
	Name        string
	CompanyName string
	Phone       *string
	Email       *string
	Address     *string
	Notes       *string
}

type CreateCustomerUseCase struct {
	customerRepo customer.CustomerRepository
	logger       logger.Interface
}

func NewCreateCustomerUseCase(customerRepo customer.CustomerRepository, logger logger.Interface) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *CreateCustomerUseCase) Execute(ctx context.Context, cmd CreateCustomerCommand) (*dto.CustomerDTO, error) {
	uc.logger.Infow("executing create customer use case", "company_name", cmd.CompanyName)

	newCustomer, err := customer.NewCustomer(
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

	if err := uc.customerRepo.Save(ctx, newCustomer); err != nil {
		uc.logger.Errorw("failed to save customer", "error", err)
		return nil, err
	}

	uc.logger.Infow("customer created successfully", "customer_id", newCustomer.ID())
	return dto.ToCustomerDTO(newCustomer), nil
}
