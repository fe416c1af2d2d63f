package services

import (
	"context"
)

// InvokerService defines the interface for function invocation business logic
type InvokerService interface {
	// Invoke calls the loaded function with each entry of params as a named
	// argument and returns its JSON-serializable result.
	Invoke(ctx context.Context, params map[string]interface{}) (interface{}, error)

	// Available reports whether a usable function was loaded at startup.
	Available() bool

	// FunctionName returns the name of the loaded function, or "" when the
	// service is running degraded.
	FunctionName() string
}
