package mcp

import (
	"errors"
	"fmt"

	"github.com/coinwave/coinwave/internal/domain/project"
	"github.com/coinwave/coinwave/internal/repository"
)

// APIError represents an MCP tool error.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Unknown errors pass through.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "AIRDROP_NOT_FOUND", Message: "airdrop not found", RecoveryHint: "Call list_airdrops for valid slugs"}
	case errors.Is(err, project.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, repository.ErrUnavailable):
		return &APIError{Code: "STORE_UNAVAILABLE", Message: "project store unavailable", RecoveryHint: "Try again later"}
	default:
		return err
	}
}
