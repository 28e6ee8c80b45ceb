package usecases

import (
	"context"

	"salesdaily/internal/application/customer/dto"
	"salesdaily/internal/domain/customer"
	"salesdaily/internal/shared/logger"
)

type ListCustomersQuery struct {
	Search   string
	Page     int
	PageSize int
}

type ListCustomersResult struct {
	Customers []*dto.CustomerDTO
	Total     int64
	Page      int
	PageSize  int
}

type ListCustomersUseCase struct {
	customerRepo customer.CustomerRepository
	logger       logger.Interface
}

func NewListCustomersUseCase(customerRepo customer.CustomerRepository, logger logger.Interface) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context, query ListCustomersQuery) (*ListCustomersResult, error) {
	customers, total, err := uc.customerRepo.List(ctx, customer.CustomerFilter{
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list customers", "error", err)
		return nil, err
	}

	items := make([]*dto.CustomerDTO, 0, len(customers))
	for _, c := range customers {
		items = append(items, dto.ToCustomerDTO(c))
	}

	return &ListCustomersResult{
		Customers: items,
		Total:     total,
		Page:      query.Page,
		PageSize:  query.PageSize,
	}, nil
}
