package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/text-analyzer/internal/domain/analyzer"
	apperrors "github.com/yanqian/text-analyzer/pkg/errors"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause.
func (e *HTTPError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	if code == "" {
		code = "internal_error"
	}
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// fromServiceError maps analyzer failures to statuses. Only the failure's own
// text reaches the client; the wrapping context stays in the logs.
func fromServiceError(err error) *HTTPError {
	status := http.StatusInternalServerError
	if apperrors.IsCode(err, analyzer.CodeEmptyContent) {
		status = http.StatusBadRequest
	}
	return NewHTTPError(status, apperrors.CodeOf(err), apperrors.Cause(err), err)
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: err.Error(),
		Err:     err,
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
