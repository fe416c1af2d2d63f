package function

import "fmt"

// LoadError indicates that no usable function could be resolved from the
// configured source. It is surfaced once at startup; callers of the service
// never see it directly and instead get a "not defined" InvocationError.
type LoadError struct {
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// InvocationError indicates a failure while executing the loaded function for
// a single request: the function is not defined, the supplied parameters do
// not match its signature, the function body raised an error, or its result
// cannot be represented as JSON.
type InvocationError struct {
	Reason string
	Err    error
}

func (e *InvocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// NotDefinedError builds the InvocationError returned for every request when
// the service is running without a loaded function.
func NotDefinedError(loadErr *LoadError) *InvocationError {
	e := &InvocationError{Reason: fmt.Sprintf("%s is not defined", EntryPoint)}
	if loadErr != nil {
		e.Err = loadErr
	}
	return e
}

func argumentError(format string, args ...interface{}) *InvocationError {
	return &InvocationError{Reason: fmt.Sprintf(format, args...)}
}
