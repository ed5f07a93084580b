package models

import (
	"fmt"
)

type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeInternal   ErrorType = "internal"
	ErrorTypeExternal   ErrorType = "external"
	ErrorTypeTimeout    ErrorType = "timeout"
)

type AppError struct {
	Type     ErrorType      `json:"type"`
	Code     string         `json:"code"`
	Message  string         `json:"message"`
	Cause    error          `json:"-"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func (e *AppError) WithMetadata(key string, value any) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]any)
	}
	e.Metadata[key] = value
	return e
}

func newError(errType ErrorType, code, message string) *AppError {
	return &AppError{
		Type:    errType,
		Code:    code,
		Message: message,
	}
}

func NewValidationError(code, message string) *AppError {
	return newError(ErrorTypeValidation, code, message)
}

func NewInternalError(code, message string) *AppError {
	return newError(ErrorTypeInternal, code, message)
}

func NewExternalError(code, message string) *AppError {
	return newError(ErrorTypeExternal, code, message)
}

func NewTimeoutError(code, message string) *AppError {
	return newError(ErrorTypeTimeout, code, message)
}

func WrapExternalError(service string, err error) *AppError {
	return NewExternalError(fmt.Sprintf("%s_ERROR", service), fmt.Sprintf("%s request failed", service)).WithCause(err)
}
