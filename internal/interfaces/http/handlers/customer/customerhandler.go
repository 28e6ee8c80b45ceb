package customer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdaily/internal/application/customer/usecases"
	apperrors "salesdaily/internal/shared/errors"
	"salesdaily/internal/shared/logger"
	"salesdaily/internal/shared/utils"
	"salesdaily/internal/shared/validation"
)

type CustomerHandler struct {
	createCustomerUC usecases.CreateCustomerExecutor
	updateCustomerUC usecases.UpdateCustomerExecutor
	deleteCustomerUC usecases.DeleteCustomerExecutor
	getCustomerUC    usecases.GetCustomerExecutor
	listCustomersUC  usecases.ListCustomersExecutor
	logger           logger.Interface
}

func NewCustomerHandler(
	createCustomerUC usecases.CreateCustomerExecutor,
	updateCustomerUC usecases.UpdateCustomerExecutor,
	deleteCustomerUC usecases.DeleteCustomerExecutor,
	getCustomerUC usecases.GetCustomerExecutor,
	listCustomersUC usecases.ListCustomersExecutor,
) *CustomerHandler {
	return &CustomerHandler{
		createCustomerUC: createCustomerUC,
		updateCustomerUC: updateCustomerUC,
		deleteCustomerUC: deleteCustomerUC,
		getCustomerUC:    getCustomerUC,
		listCustomersUC:  listCustomersUC,
		logger:           logger.NewLogger(),
	}
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create customer", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createCustomerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// UpdateCustomer handles PUT /customers/:id
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	customerID, err := utils.ParseIDParam(c, "id", "customer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update customer", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body"))
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateCustomerUC.Execute(c.Request.Context(), req.ToCommand(customerID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// DeleteCustomer handles DELETE /customers/:id
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	customerID, err := utils.ParseIDParam(c, "id", "customer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteCustomerUC.Execute(c.Request.Context(), usecases.DeleteCustomerCommand{CustomerID: customerID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetCustomer handles GET /customers/:id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customerID, err := utils.ParseIDParam(c, "id", "customer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCustomerUC.Execute(c.Request.Context(), usecases.GetCustomerQuery{CustomerID: customerID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListCustomers handles GET /customers
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	req := parseListCustomersRequest(c)

	result, err := h.listCustomersUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Customers, result.Total, result.Page, result.PageSize)
}
