package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/worktracker/internal/domain/event"
	"github.com/rpggio/worktracker/internal/domain/project"
	"github.com/rpggio/worktracker/internal/repository"
)

// APIError is the error reported back to MCP clients.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
	cause        error
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, project.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Pass a non-empty project name", cause: err}
	case errors.Is(err, event.ErrInvalidType):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), cause: err}
	case repository.IsStorageError(err):
		return &APIError{Code: "STORAGE_ERROR", Message: err.Error(), RecoveryHint: "Check that the database file is writable", cause: err}
	default:
		return &APIError{Code: "INTERNAL", Message: err.Error(), cause: err}
	}
}
