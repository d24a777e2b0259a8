package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/agvc-system/fleet-management/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// FieldError 单个字段的校验失败详情
type FieldError struct {
	Location string `json:"loc"`
	Type     string `json:"type"`
	Message  string `json:"msg"`
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.Header("Content-Type", "application/json; charset=utf-8")
	c.JSON(statusCode, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Error(c *gin.Context, errCode int, format string, args ...interface{}) {
	c.Header("Content-Type", "application/json; charset=utf-8")
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}

	statusCode := utils.GetHTTPStatusCode(errCode)
	c.JSON(statusCode, Response{
		Code:    errCode,
		Message: message,
		Data:    nil,
	})
}

// ValidationError 请求体校验失败时返回422，逐字段列出位置、类型和原因
func ValidationError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]FieldError, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, FieldError{
				Location: "body." + fieldErr.Field(),
				Type:     fieldErr.Tag(),
				Message:  fieldErr.Error(),
			})
		}
		c.Header("Content-Type", "application/json; charset=utf-8")
		c.JSON(http.StatusUnprocessableEntity, Response{
			Code:    utils.ErrCodeValidationFailed,
			Message: "validation failed",
			Data:    details,
		})
		return
	}

	Error(c, utils.ErrCodeValidationFailed, "Invalid request body: %v", err)
}

// HandleError 按业务错误码回错误响应，非业务错误一律按500处理
func HandleError(c *gin.Context, err error, defaultFormat string, args ...interface{}) {
	var customErr *utils.Error
	if errors.As(err, &customErr) {
		statusCode := utils.GetHTTPStatusCode(customErr.Code)
		c.Header("Content-Type", "application/json; charset=utf-8")
		c.JSON(statusCode, Response{
			Code:    customErr.Code,
			Message: customErr.Message,
			Data:    nil,
		})
		return
	}

	Error(c, utils.ErrCodeInternalError, defaultFormat, args...)
}
