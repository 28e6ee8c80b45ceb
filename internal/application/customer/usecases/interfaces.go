package usecases

import (
	"context"

	"salesdaily/internal/application/customer/dto"
)

type CreateCustomerExecutor interface {
	Execute(ctx context.Context, cmd CreateCustomerCommand) (*dto.CustomerDTO, error)
}

type UpdateCustomerExecutor interface {
	Execute(ctx context.Context, cmd UpdateCustomerCommand) (*dto.CustomerDTO, error)
}

type DeleteCustomerExecutor interface {
	Execute(ctx context.Context, cmd DeleteCustomerCommand) error
}

type GetCustomerExecutor interface {
	Execute(ctx context.Context, query GetCustomerQuery) (*dto.CustomerDTO, error)
}

type ListCustomersExecutor interface {
	Execute(ctx context.Context, query ListCustomersQuery) (*ListCustomersResult, error)
}
