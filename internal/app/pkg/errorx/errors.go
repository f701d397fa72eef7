package errorx

import (
	"errors"
	"net/http"

	"singsing/storefront/internal/app/domains/entity/etcart"
)

// Business errors. Entity-level sentinels are re-exported so handlers only
// need this package.
var (
	ErrInvalidCartID      = etcart.ErrInvalidCartID
	ErrStorageUnavailable = errors.New("cart storage unavailable")
	ErrNoToast            = errors.New("no toast before timeout")
	ErrPriceTableMissing  = errors.New("price table not loaded")
)

// BusinessError carries an HTTP-facing code with its message.
type BusinessError struct {
	Code    int
	Message string
	Details []ErrorDetail
}

// ErrorDetail points at the offending input.
type ErrorDetail struct {
	Path string
	Info string
}

// Error implements error.
func (e *BusinessError) Error() string {
	return e.Message
}

// NewBusinessError creates a BusinessError.
func NewBusinessError(code int, message string) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
	}
}

// WithDetail appends a detail and returns e.
func (e *BusinessError) WithDetail(path, info string) *BusinessError {
	e.Details = append(e.Details, ErrorDetail{Path: path, Info: info})
	return e
}

// InvalidParam is a 400 pointing at one request parameter.
func InvalidParam(path, info string) *BusinessError {
	return NewBusinessError(http.StatusBadRequest, "Invalid parameter").WithDetail(path, info)
}

// StatusOf maps err to the HTTP status the API answers with.
func StatusOf(err error) int {
	var be *BusinessError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &be):
		return be.Code
	case errors.Is(err, ErrInvalidCartID):
		return http.StatusBadRequest
	case errors.Is(err, ErrPriceTableMissing):
		return http.StatusNotFound
	case errors.Is(err, ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
