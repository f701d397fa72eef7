package ginx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"singsing/storefront/internal/app/pkg/errorx"
)

// CodePending tells long-polling clients to come back later.
const CodePending = 3001

// Response is the envelope of every API answer.
type Response struct {
	Meta Meta        `json:"meta"`
	Data interface{} `json:"data,omitempty"`
}

// Meta carries the status of a response.
type Meta struct {
	Code    int           `json:"code" example:"200"`
	Message string        `json:"message" example:"OK"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail describes one invalid input field.
type ErrorDetail struct {
	Path string `json:"path" example:"product_id"`
	Info string `json:"info" example:"product_id is required"`
}

// PendingData is returned when a long poll times out.
type PendingData struct {
	PollURL string `json:"poll_url" example:"/api/v1/carts/0b4e.../toasts?wait=10"`
}

// Success 200 with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Meta: Meta{
			Code:    http.StatusOK,
			Message: "OK",
		},
		Data: data,
	})
}

// Error writes an error envelope with httpCode.
func Error(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, Response{
		Meta: Meta{
			Code:    httpCode,
			Message: message,
		},
	})
}

// ErrorWithDetails writes an error envelope with field details.
func ErrorWithDetails(c *gin.Context, httpCode int, message string, details []ErrorDetail) {
	c.JSON(httpCode, Response{
		Meta: Meta{
			Code:    httpCode,
			Message: message,
			Details: details,
		},
	})
}

// Pending answers a long poll that ended without a result.
func Pending(c *gin.Context, pollURL string) {
	c.JSON(http.StatusOK, Response{
		Meta: Meta{
			Code:    CodePending,
			Message: "Nothing yet, poll again",
		},
		Data: PendingData{PollURL: pollURL},
	})
}

// FromError maps a service error to its envelope.
func FromError(c *gin.Context, err error) {
	status := errorx.StatusOf(err)
	var be *errorx.BusinessError
	if errors.As(err, &be) && len(be.Details) > 0 {
		details := make([]ErrorDetail, 0, len(be.Details))
		for _, d := range be.Details {
			details = append(details, ErrorDetail{Path: d.Path, Info: d.Info})
		}
		ErrorWithDetails(c, status, be.Message, details)
		return
	}
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		Error(c, status, http.StatusText(status))
		return
	}
	Error(c, status, err.Error())
}

// BadRequest 400.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// BadRequestWithValidation 400 with one detail per failed binding rule.
func BadRequestWithValidation(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]ErrorDetail, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, ErrorDetail{
				Path: fieldErr.Field(),
				Info: getValidationErrorMessage(fieldErr),
			})
		}
		ErrorWithDetails(c, http.StatusBadRequest, "Validation failed", details)
		return
	}

	BadRequest(c, err.Error())
}

// NotFound 404.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500.
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

func getValidationErrorMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "max":
		return fieldErr.Field() + " must be at most " + fieldErr.Param()
	case "dive":
		return fieldErr.Field() + " contains an invalid entry"
	default:
		return fieldErr.Field() + " is invalid"
	}
}
