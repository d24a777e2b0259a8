package utils

import (
	"fmt"
	"net/http"
)

type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("error %d: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("error %d: %s", e.Code, e.Message)
}

func NewError(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func WrapError(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

const (
	ErrCodeInvalidInput     = 1001
	ErrCodeNotFound         = 1002
	ErrCodeAlreadyExists    = 1003
	ErrCodeInternalError    = 1004
	ErrCodeValidationFailed = 1005
)

var (
	ErrInvalidInput     = NewError(ErrCodeInvalidInput, "invalid input")
	ErrNotFound         = NewError(ErrCodeNotFound, "resource not found")
	ErrAlreadyExists    = NewError(ErrCodeAlreadyExists, "resource already exists")
	ErrInternalError    = NewError(ErrCodeInternalError, "internal server error")
	ErrValidationFailed = NewError(ErrCodeValidationFailed, "validation failed")
)

// GetHTTPStatusCode 业务错误码到HTTP状态码的映射
// 重名冲突对外按400处理
func GetHTTPStatusCode(code int) int {
	switch code {
	case ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeAlreadyExists:
		return http.StatusBadRequest
	case ErrCodeValidationFailed:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
