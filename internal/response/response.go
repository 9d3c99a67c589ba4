// Package response writes the JSON error envelope shared by all handlers
// and maps domain errors to HTTP statuses.
package response

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/deopraglabs/prysme/internal/apperr"
)

// RequestIDKey is the header and gin context key carrying the request id.
const RequestIDKey = "X-Request-ID"

const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeInvalidState     = "INVALID_STATE"
	CodeInternalError    = "INTERNAL_ERROR"
)

// ErrorBody is the payload of an error response.
type ErrorBody struct {
	Code      string   `json:"code"`
	Message   string   `json:"message"`
	Details   []string `json:"details,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

// ErrorResponse represents the error response structure.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Write sends an error response with the given status.
func Write(c *gin.Context, status int, code, message string, details ...string) {
	c.JSON(status, ErrorResponse{Error: ErrorBody{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: c.GetString(RequestIDKey),
	}})
}

// Error maps err onto the error taxonomy and writes the matching response.
// Unclassified errors are logged and reported as 500.
func Error(c *gin.Context, logger *zap.SugaredLogger, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidationFailed):
		Write(c, http.StatusBadRequest, CodeValidationFailed, apperr.ErrValidationFailed.Error(), apperr.Violations(err)...)
	case errors.Is(err, apperr.ErrNotFound):
		Write(c, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, apperr.ErrConflictOnCreate):
		Write(c, http.StatusConflict, CodeConflict, err.Error())
	case errors.Is(err, apperr.ErrInvalidState):
		Write(c, http.StatusConflict, CodeInvalidState, err.Error())
	default:
		logger.Errorw("Request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", c.GetString(RequestIDKey),
			"error", err,
		)
		Write(c, http.StatusInternalServerError, CodeInternalError, "internal server error")
	}
}

// BindError reports a request that could not be decoded or failed
// binding validation.
func BindError(c *gin.Context, err error) {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		details := make([]string, 0, len(vErrs))
		for _, e := range vErrs {
			details = append(details, e.Field()+": "+validationMessage(e))
		}
		Write(c, http.StatusBadRequest, CodeInvalidRequest, "request validation failed", details...)
		return
	}
	Write(c, http.StatusBadRequest, CodeInvalidRequest, "invalid request body")
}

// ParseID reads a positive integer path parameter. On failure it writes
// a 400 response and returns false.
func ParseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		Write(c, http.StatusBadRequest, CodeInvalidRequest, param+" must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Type().Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "oneof":
		return "Must be one of: " + e.Param()
	case "gt":
		return "Must be greater than " + e.Param()
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	case "dive":
		return "Invalid element"
	default:
		return "Invalid value"
	}
}
