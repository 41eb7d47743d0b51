package agent

import "errors"

// Domain errors for agent task execution.
var (
	ErrToolRegistration = errors.New("tool registration failed")
	ErrExecution        = errors.New("agent execution failed")
	ErrEmptyResult      = errors.New("agent produced no result")
)
