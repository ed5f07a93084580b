package models_test

import (
	"errors"
	"fmt"
	"testing"

	"riskwatch-pipeline/internal/models"
)

func TestAppErrorMessage(t *testing.T) {
	err := models.NewValidationError("BAD_INPUT", "input rejected")
	if got := err.Error(); got != "BAD_INPUT: input rejected" {
		t.Errorf("Error() = %q", got)
	}

	cause := fmt.Errorf("boom")
	err = err.WithCause(cause)
	if got := err.Error(); got != "BAD_INPUT: input rejected: boom" {
		t.Errorf("Error() with cause = %q", got)
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := models.NewExternalError("UPSTREAM", "request failed").WithCause(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}

	var appErr *models.AppError
	if !errors.As(error(err), &appErr) {
		t.Error("errors.As should match AppError")
	}
}

func TestAppErrorMetadata(t *testing.T) {
	err := models.NewInternalError("IO", "write failed").
		WithMetadata("path", "/tmp/out.json").
		WithMetadata("attempt", 2)

	if err.Metadata["path"] != "/tmp/out.json" || err.Metadata["attempt"] != 2 {
		t.Errorf("metadata = %v", err.Metadata)
	}
}

func TestErrorTypes(t *testing.T) {
	tests := []struct {
		err  *models.AppError
		want models.ErrorType
	}{
		{models.NewValidationError("C", "m"), models.ErrorTypeValidation},
		{models.NewInternalError("C", "m"), models.ErrorTypeInternal},
		{models.NewExternalError("C", "m"), models.ErrorTypeExternal},
		{models.NewTimeoutError("C", "m"), models.ErrorTypeTimeout},
	}
	for _, tt := range tests {
		if tt.err.Type != tt.want {
			t.Errorf("type = %s, want %s", tt.err.Type, tt.want)
		}
	}
}

func TestWrapExternalError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := models.WrapExternalError("redis", cause)

	if err.Code != "redis_ERROR" {
		t.Errorf("code = %q", err.Code)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not wrapped")
	}
}
