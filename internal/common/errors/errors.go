package errors

import (
	"fmt"
	"time"
)

// ErrorCode classifies an application error for logging and HTTP mapping.
type ErrorCode string

const (
	ErrCodeInternal   ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"

	// Game-rule outcomes. These are expected results, not faults; handlers
	// recover them into structured success-shaped responses.
	ErrCodeAlreadyParticipated ErrorCode = "ALREADY_PARTICIPATED"
	ErrCodeNotYetOpen          ErrorCode = "NOT_YET_OPEN"
	ErrCodeNoPendingDraw       ErrorCode = "NO_PENDING_DRAW"

	// Infrastructure faults.
	ErrCodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	ErrCodeDispatch         ErrorCode = "DISPATCH_ERROR"
)

// AppError is a typed application error carrying a code, an operator-facing
// message and structured details. The caller-facing body never includes the
// cause; that stays in server-side logs.
type AppError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	RequestID string                 `json:"request_id,omitempty"`
	Cause     error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsBusiness reports whether the error is an expected game-rule outcome
// rather than a system fault.
func (e *AppError) IsBusiness() bool {
	switch e.Code {
	case ErrCodeAlreadyParticipated, ErrCodeNotYetOpen, ErrCodeNoPendingDraw:
		return true
	}
	return false
}

// IsInternal reports whether the error must surface as a generic 500.
func (e *AppError) IsInternal() bool {
	switch e.Code {
	case ErrCodeInternal, ErrCodeStoreUnavailable, ErrCodeDispatch:
		return true
	}
	return false
}

// WithDetail attaches a structured detail to the error.
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithRequestID tags the error with the originating request.
func (e *AppError) WithRequestID(requestID string) *AppError {
	e.RequestID = requestID
	return e
}

// New creates an application error.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Wrap attaches a cause to a new application error.
func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Cause = err
	return appErr
}

// NewValidationError reports a missing or malformed request field.
func NewValidationError(field, reason string) *AppError {
	return New(ErrCodeValidation, fmt.Sprintf("Validation failed for field '%s': %s", field, reason)).
		WithDetail("field", field).
		WithDetail("reason", reason)
}

// NewStoreError wraps a participation-store failure. It must never be
// conflated with a game-rule rejection: a flaky store is not "already played".
func NewStoreError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeStoreUnavailable, fmt.Sprintf("Store operation failed: %s", operation)).
		WithDetail("operation", operation)
}

// NewDispatchError wraps an outbound messaging failure.
func NewDispatchError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeDispatch, fmt.Sprintf("Message dispatch failed: %s", operation)).
		WithDetail("operation", operation)
}

// AsAppError casts err to an AppError when possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if err != nil {
		appErr, _ = err.(*AppError)
	}
	return appErr, appErr != nil
}
