// Package errors provides structured error handling for the unrot service.
// It defines error types with codes, messages, causes, and contextual information
// so each layer can classify failures without losing the underlying cause.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

const (
	ErrCodeSourceUnavailable ErrorCode = "SOURCE_UNAVAILABLE"
	ErrCodeRateLimited       ErrorCode = "RATE_LIMITED"
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeInvalidInput      ErrorCode = "INVALID_INPUT"
	ErrCodeStore             ErrorCode = "STORE_ERROR"
	ErrCodeUnknown           ErrorCode = "UNKNOWN_ERROR"
)

// AppError represents a structured application error with code, message, cause, and context.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is match an AppError against the sentinel of its code.
func (e *AppError) Is(target error) bool {
	sentinel := sentinelFor(e.Code)
	return sentinel != nil && sentinel == target
}

// HTTPStatusCode maps error codes to HTTP status codes.
func (e *AppError) HTTPStatusCode() int {
	switch e.Code {
	case ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeRateLimited:
		return http.StatusForbidden
	case ErrCodeSourceUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func newAppError(code ErrorCode, message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// SourceUnavailableError creates an AppError for a digest or PR provider failure.
func SourceUnavailableError(message string, cause error, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeSourceUnavailable, message, cause, context)
}

// RateLimitedError creates an AppError for an upstream rate limit response.
func RateLimitedError(message string, cause error, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeRateLimited, message, cause, context)
}

func NotFoundError(message string, cause error, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeNotFound, message, cause, context)
}

// InvalidInputError creates an AppError for a bad or missing request parameter.
func InvalidInputError(message string, cause error, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeInvalidInput, message, cause, context)
}

// StoreError creates an AppError for shared store failures. These are never swallowed.
func StoreError(message string, cause error, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeStore, message, cause, context)
}

func UnknownError(message string, cause error, context map[string]interface{}) *AppError {
	return newAppError(ErrCodeUnknown, message, cause, context)
}

// AsAppError extracts the outermost AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// LogError logs an error with structured attributes when it is an AppError.
func LogError(logger *slog.Logger, err error, operation string) {
	if logger == nil || err == nil {
		return
	}

	appErr, ok := AsAppError(err)
	if !ok {
		logger.Error("unknown error occurred",
			"operation", operation,
			"error", err.Error(),
		)
		return
	}

	args := []interface{}{
		"operation", operation,
		"error_code", string(appErr.Code),
		"error_message", appErr.Message,
	}
	for key, value := range appErr.Context {
		args = append(args, key, value)
	}
	if appErr.Cause != nil {
		args = append(args, "cause", appErr.Cause.Error())
	}

	logger.Error("application error occurred", args...)
}
