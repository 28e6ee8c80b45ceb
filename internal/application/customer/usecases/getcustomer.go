package usecases

import (
	"context"

	"salesdaily/internal/application/customer/dto"
	"salesdaily/internal/domain/customer"
	"salesdaily/internal/shared/logger"
)

type GetCustomerQuery struct {
	CustomerID uint
}

type GetCustomerUseCase struct {
	customerRepo customer.CustomerRepository
	logger       logger.Interface
}

func NewGetCustomerUseCase(customerRepo customer.CustomerRepository, logger logger.Interface) *GetCustomerUseCase {
	return &GetCustomerUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *GetCustomerUseCase) Execute(ctx context.Context, query GetCustomerQuery) (*dto.CustomerDTO, error) {
	c, err := uc.customerRepo.FindByID(ctx, query.CustomerID)
	if err != nil {
		return nil, err
	}
	return dto.ToCustomerDTO(c), nil
}
