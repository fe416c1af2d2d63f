package function

import (
	"context"
	"sort"

	"go.starlark.net/starlark"
)

// Call invokes the loaded function with each entry of params as a named
// argument. The parameters are validated against the declared schema before
// the interpreter runs, so mismatches produce a clear error instead of a
// generic one. A context deadline or cancellation aborts the script.
// The returned error is always a *InvocationError.
func (f *Function) Call(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	if err := f.validateParams(params); err != nil {
		return nil, err
	}

	// Sort names so argument order is stable across calls.
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	kwargs := make([]starlark.Tuple, 0, len(params))
	for _, name := range names {
		value, err := toStarlark(params[name])
		if err != nil {
			return nil, &InvocationError{Reason: "parameter " + name + " is not usable", Err: err}
		}
		kwargs = append(kwargs, starlark.Tuple{starlark.String(name), value})
	}

	thread := &starlark.Thread{Name: "invoke:" + f.Name(), Print: printToLog}
	if ctx.Done() != nil {
		stop := make(chan struct{})
		defer close(stop)
		go func() {
			select {
			case <-ctx.Done():
				thread.Cancel(ctx.Err().Error())
			case <-stop:
			}
		}()
	}

	out, err := starlark.Call(thread, f.fn, nil, kwargs)
	if err != nil {
		return nil, &InvocationError{Reason: f.Name() + " failed", Err: err}
	}

	result, err := fromStarlark(out)
	if err != nil {
		return nil, &InvocationError{Reason: "result is not JSON-serializable", Err: err}
	}
	return result, nil
}

// validateParams checks the supplied names against the declared schema.
func (f *Function) validateParams(params map[string]interface{}) error {
	if !f.hasKwargs {
		declared := make(map[string]bool, len(f.params))
		for _, p := range f.params {
			declared[p.Name] = true
		}
		unknown := make([]string, 0)
		for name := range params {
			if !declared[name] {
				unknown = append(unknown, name)
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			return argumentError("%s got unexpected parameter %q", f.Name(), unknown[0])
		}
	}

	for _, p := range f.params {
		if !p.Required {
			continue
		}
		if _, ok := params[p.Name]; !ok {
			return argumentError("%s missing required parameter %q", f.Name(), p.Name)
		}
	}
	return nil
}
