package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdaily/internal/shared/errors"
)

// APIResponse represents a standard API response structure
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo represents error information in API response
type ErrorInfo struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Details []errors.FieldViolation `json:"details,omitempty"`
}

// ListResponse represents a paginated list response
type ListResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

// errorCodes maps error kinds to the stable machine-readable codes in the
// response envelope.
var errorCodes = map[errors.ErrorType]string{
	errors.ErrorTypeValidation:   "VALIDATION_ERROR",
	errors.ErrorTypeDuplicate:    "DUPLICATE",
	errors.ErrorTypeNotFound:     "NOT_FOUND",
	errors.ErrorTypeConflict:     "CONFLICT",
	errors.ErrorTypeUnauthorized: "UNAUTHORIZED",
	errors.ErrorTypeForbidden:    "FORBIDDEN",
	errors.ErrorTypeRateLimited:  "RATE_LIMITED",
	errors.ErrorTypeInternal:     "INTERNAL_ERROR",
}

// SuccessResponse sends a successful response with custom status code
func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Data:    data,
	})
}

// CreatedResponse sends a created response
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
	})
}

// NoContentResponse sends a no content response
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ListSuccessResponse sends a successful list response with pagination
func ListSuccessResponse(c *gin.Context, items interface{}, total int64, page, pageSize int) {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages == 0 {
		totalPages = 1
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data: ListResponse{
			Items:      items,
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
		},
	})
}

// ErrorResponse sends an error response with a custom status code and code string.
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}

// ErrorResponseWithError maps a domain error to the response envelope.
// Non-AppError values become opaque internal errors so nothing leaks.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Error: &ErrorInfo{
				Code:    errorCodes[errors.ErrorTypeInternal],
				Message: "internal server error occurred",
			},
		})
		return
	}

	code, ok := errorCodes[appErr.Type]
	if !ok {
		code = errorCodes[errors.ErrorTypeInternal]
	}

	c.JSON(appErr.Code, APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: appErr.Message,
			Details: appErr.Details,
		},
	})
}
