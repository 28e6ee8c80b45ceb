package mappers

import (
	"time"

	"salesdaily/internal/domain/customer"
	"salesdaily/internal/infrastructure/persistence/models"
)

// CustomerMapper handles the conversion between Customer domain entities and
// persistence models.
type CustomerMapper interface {
	ToModel(c *customer.Customer) *models.CustomerModel
	ToDomain(model *models.CustomerModel) (*customer.Customer, error)
}

type CustomerMapperImpl struct{}

func NewCustomerMapper() CustomerMapper {
	return &CustomerMapperImpl{}
}

func (m *CustomerMapperImpl) ToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:          c.ID(),
		Name:        c.Name(),
		CompanyName: c.CompanyName(),
		Phone:       c.Phone(),
		Email:       c.Email(),
		Address:     c.Address(),
		Notes:       c.Notes(),
		CreatedAt:   c.CreatedAt().UnixMilli(),
		UpdatedAt:   c.UpdatedAt().UnixMilli(),
	}
}

func (m *CustomerMapperImpl) ToDomain(model *models.CustomerModel) (*customer.Customer, error) {
	return customer.ReconstructCustomer(
		model.ID,
		model.Name,
		model.CompanyName,
		model.Phone,
		model.Email,
		model.Address,
		model.Notes,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
