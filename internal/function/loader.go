// Package function loads the user-supplied function from source text and
// invokes it with named parameters. The source is a Starlark script that must
// define a global callable named "user_function"; the script is executed once
// at load time and its globals are frozen, so a loaded Function is safe for
// concurrent use.
package function

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// EntryPoint is the global the source must define.
const EntryPoint = "user_function"

const sourceFilename = "user_function.star"

// fileOptions enables the non-core language features user code tends to rely
// on (while loops, recursion, sets, top-level control flow).
var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

// Param describes one declared parameter of the loaded function.
type Param struct {
	Name     string
	Required bool
}

// Function is the resolved user function together with its declared
// parameter schema. Immutable after Load.
type Function struct {
	fn         *starlark.Function
	params     []Param
	hasVarargs bool
	hasKwargs  bool
}

// Load executes source and resolves the entry point. The returned error is
// always a *LoadError.
func Load(source string) (*Function, error) {
	if source == "" {
		return nil, &LoadError{Reason: "function source is empty"}
	}

	thread := &starlark.Thread{Name: "load", Print: printToLog}
	globals, err := starlark.ExecFileOptions(fileOptions, thread, sourceFilename, source, nil)
	if err != nil {
		return nil, &LoadError{Reason: "function source failed to execute", Err: err}
	}

	value, ok := globals[EntryPoint]
	if !ok {
		return nil, &LoadError{Reason: fmt.Sprintf("source does not define %q", EntryPoint)}
	}

	fn, ok := value.(*starlark.Function)
	if !ok {
		return nil, &LoadError{Reason: fmt.Sprintf("%s is a %s, not a function", EntryPoint, value.Type())}
	}

	return &Function{
		fn:         fn,
		params:     declaredParams(fn),
		hasVarargs: fn.HasVarargs(),
		hasKwargs:  fn.HasKwargs(),
	}, nil
}

// declaredParams extracts the parameter schema from the function definition.
// A parameter without a default value is required. The *args and **kwargs
// receivers sit at the end of the parameter list and are not part of the
// schema.
func declaredParams(fn *starlark.Function) []Param {
	count := fn.NumParams()
	if fn.HasVarargs() {
		count--
	}
	if fn.HasKwargs() {
		count--
	}
	params := make([]Param, 0, count)
	for i := 0; i < count; i++ {
		name, _ := fn.Param(i)
		params = append(params, Param{
			Name:     name,
			Required: fn.ParamDefault(i) == nil,
		})
	}
	return params
}

// Name returns the declared function name.
func (f *Function) Name() string {
	return f.fn.Name()
}

// Params returns the declared parameter schema.
func (f *Function) Params() []Param {
	return f.params
}

// ParamNames returns the declared parameter names in declaration order.
func (f *Function) ParamNames() []string {
	names := make([]string, len(f.params))
	for i, p := range f.params {
		names[i] = p.Name
	}
	return names
}

// printToLog routes the script's print() calls to the debug log.
func printToLog(thread *starlark.Thread, msg string) {
	logrus.WithField("thread", thread.Name).Debug(msg)
}
