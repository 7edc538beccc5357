package server

import (
	"chart-interpreter/internal/diagnostic"
	"chart-interpreter/internal/interpret"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is a stable machine-readable error code.
	Code string `json:"code,omitempty"`

	// Field names the offending input field, when known.
	Field string `json:"field,omitempty"`
}

// Error codes.
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInterpretFailed = "INTERPRET_FAILED"
	CodeRateLimited     = "RATE_LIMITED"
)

// HealthResponse is returned by GET /v1/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// InterpretResponse wraps an interpretation with its request ID.
type InterpretResponse struct {
	RequestID      string                    `json:"requestId"`
	Interpretation *interpret.Interpretation `json:"interpretation"`
}

// CheckResponse is returned by POST /v1/checks.
type CheckResponse struct {
	Valid       bool                   `json:"valid"`
	Diagnostics diagnostic.Diagnostics `json:"diagnostics"`
}
