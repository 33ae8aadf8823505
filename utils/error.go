package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind is the stable, machine-checkable category of a failure.
type ErrorKind string

const (
	KindInvalidInput    ErrorKind = "invalid_input"
	KindUnauthenticated ErrorKind = "unauthenticated"
	KindForbidden       ErrorKind = "forbidden"
	KindNotFound        ErrorKind = "not_found"
	KindConflict        ErrorKind = "conflict"
	KindInternal        ErrorKind = "internal"
)

const internalMessage = "Server error. Please try again later."

// AppError carries a kind and a user-facing message. Err, when set, is the
// underlying cause and is only logged.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func NewError(kind ErrorKind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func InvalidInput(format string, args ...any) *AppError {
	return NewError(KindInvalidInput, fmt.Sprintf(format, args...))
}

func Unauthenticated(format string, args ...any) *AppError {
	return NewError(KindUnauthenticated, fmt.Sprintf(format, args...))
}

func Forbidden(format string, args ...any) *AppError {
	return NewError(KindForbidden, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...any) *AppError {
	return NewError(KindNotFound, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...any) *AppError {
	return NewError(KindConflict, fmt.Sprintf(format, args...))
}

// Internal wraps a store or unexpected failure. The cause is never shown to clients.
func Internal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: internalMessage, Err: err}
}

// KindOf returns the kind of err, or KindInternal for errors that are not AppErrors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// HTTPStatus maps an error kind to its HTTP status code.
func HTTPStatus(kind ErrorKind) int {
	switch kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Error   ErrorKind `json:"error"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error:   KindInternal,
					Message: internalMessage,
				})
			}
		}()
		c.Next()
	}
}

// RespondError writes err as a structured JSON error and aborts the chain.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = Internal(err)
	}
	status := HTTPStatus(appErr.Kind)
	if status >= http.StatusInternalServerError {
		GetLogger().Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	} else {
		GetLogger().Debug(appErr.Message,
			zap.String("kind", string(appErr.Kind)),
			zap.String("path", c.Request.URL.Path))
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: appErr.Kind, Message: appErr.Message})
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, kind ErrorKind, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.AbortWithStatusJSON(status, ErrorResponse{Error: kind, Message: message, Details: details})
}
