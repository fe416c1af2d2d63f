package handlers

import (
	"errors"
	"strings"

	"function-invoker-api/internal/function"
)

// isNotDefinedError checks if an invocation failed because no function was
// loaded at startup
func isNotDefinedError(err error) bool {
	var invErr *function.InvocationError
	if !errors.As(err, &invErr) {
		return false
	}
	return strings.Contains(invErr.Reason, "not defined")
}

// isArgumentError checks if an invocation failed because the supplied
// parameters do not match the function's signature
func isArgumentError(err error) bool {
	var invErr *function.InvocationError
	if !errors.As(err, &invErr) {
		return false
	}
	return strings.Contains(invErr.Reason, "parameter")
}
