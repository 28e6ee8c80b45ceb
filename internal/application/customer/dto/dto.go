package dto

import (
	"time"

	"salesdaily/internal/domain/customer"
)

type CustomerDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	CompanyName string    `json:"company_name"`
	Phone       *string   `json:"phone"`
	Email       *string   `json:"email"`
	Address     *string   `json:"address"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToCustomerDTO(c *customer.Customer) *CustomerDTO {
	if c == nil {
		return nil
	}
	return &CustomerDTO{
		ID:          c.ID(),
		Name:        c.Name(),
		CompanyName: c.CompanyName(),
		Phone:       c.Phone(),
		Email:       c.Email(),
		Address:     c.Address(),
		Notes:       c.Notes(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}
