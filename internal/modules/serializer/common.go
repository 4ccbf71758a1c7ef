package serializer

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Message is the body of endpoints that only report what they did.
type Message struct {
	Message string `json:"message"`
}

// ErrorResponse
type ErrorResponse struct {
	Detail string `json:"detail"`
	Error  string `json:"error,omitempty"`
}

// Err
func Err(detail string, err error) ErrorResponse {
	res := ErrorResponse{
		Detail: detail,
	}
	// development mode, show error detail
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = fmt.Sprintf("%+v", err)
	}
	return res
}

// SchemaErr
func SchemaErr(err error) ErrorResponse {
	detail := "request validation error"
	if err != nil {
		detail = err.Error()
	}
	return Err(detail, nil)
}

// ParamErr
func ParamErr(detail string, err error) ErrorResponse {
	if detail == "" {
		detail = "parameter error"
	}
	return Err(detail, err)
}

// AuthErr
func AuthErr(detail string) ErrorResponse {
	if detail == "" {
		detail = "authentication error"
	}
	return Err(detail, nil)
}

// ForbiddenErr
func ForbiddenErr(detail string) ErrorResponse {
	if detail == "" {
		detail = "forbidden"
	}
	return Err(detail, nil)
}

// NotFoundErr
func NotFoundErr(detail string) ErrorResponse {
	if detail == "" {
		detail = "not found"
	}
	return Err(detail, nil)
}

// IOErr surfaces the raw storage error to the caller, after prefix.
func IOErr(prefix string, err error) ErrorResponse {
	detail := prefix
	if err != nil {
		detail += err.Error()
	}
	if detail == "" {
		detail = "storage error"
	}
	return ErrorResponse{Detail: detail}
}
