package trips

import (
	"errors"
	"net/http"

	"github.com/gtz123456/Trip-Planner/internal/agent"
)

var (
	// ErrValidation carries the exact message the API contract promises for
	// requests missing required fields.
	ErrValidation = errors.New("Missing required fields")

	// ErrDecode reports model output that could not be repaired into a plan.
	ErrDecode = errors.New("failed to decode trip plan")
)

// MapHTTPStatus translates domain errors to HTTP status codes. Validation
// failures are the caller's fault; agent and decode failures are upstream
// faults; anything else is internal.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrDecode),
		errors.Is(err, agent.ErrExecution),
		errors.Is(err, agent.ErrEmptyResult),
		errors.Is(err, agent.ErrToolRegistration):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
