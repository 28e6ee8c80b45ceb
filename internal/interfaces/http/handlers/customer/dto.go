package customer

import (
	"github.com/gin-gonic/gin"

	"salesdaily/internal/application/customer/usecases"
	"salesdaily/internal/shared/utils"
)

type CreateCustomerRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	CompanyName string  `json:"company_name" validate:"required,max=200"`
	Phone       *string `json:"phone" validate:"omitempty,max=20"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	Address     *string `json:"address" validate:"omitempty,max=500"`
	Notes       *string `json:"notes" validate:"omitempty,max=1000"`
}

func (r *CreateCustomerRequest) ToCommand() usecases.CreateCustomerCommand {
	return usecases.CreateCustomerCommand{
		Name:        r.Name,
		CompanyName: r.CompanyName,
		Phone:       r.Phone,
		Email:       r.Email,
		Address:     r.Address,
		Notes:       r.Notes,
	}
}

type UpdateCustomerRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	CompanyName string  `json:"company_name" validate:"required,max=200"`
	Phone       *string `json:"phone" validate:"omitempty,max=20"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	Address     *string `json:"address" validate:"omitempty,max=500"`
	Notes       *string `json:"notes" validate:"omitempty,max=1000"`
}

func (r *UpdateCustomerRequest) ToCommand(customerID uint) usecases.UpdateCustomerCommand {
	return usecases.UpdateCustomerCommand{
		CustomerID:  customerID,
		Name:        r.Name,
		CompanyName: r.CompanyName,
		Phone:       r.Phone,
		Email:       r.Email,
		Address:     r.Address,
		Notes:       r.Notes,
	}
}

type ListCustomersRequest struct {
	Search   string
	Page     int
	PageSize int
}

func parseListCustomersRequest(c *gin.Context) *ListCustomersRequest {
	req := &ListCustomersRequest{
		Search: c.Query("search"),
	}
	req.Page, req.PageSize = utils.ParsePagination(c)
	return req
}

func (r *ListCustomersRequest) ToQuery() usecases.ListCustomersQuery {
	return usecases.ListCustomersQuery{
		Search:   r.Search,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}
