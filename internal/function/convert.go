package function

import (
	"encoding/json"
	"fmt"

	"go.starlark.net/starlark"
)

// toStarlark converts a decoded JSON value into a Starlark value. Numbers
// decoded as json.Number keep the int/float distinction; plain float64 values
// (from callers that did not use json.Number) become floats.
func toStarlark(v interface{}) (starlark.Value, error) {
	switch v := v.(type) {
	case nil:
		return starlark.None, nil
	case bool:
		return starlark.Bool(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return starlark.MakeInt64(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", v.String())
		}
		return starlark.Float(f), nil
	case float64:
		return starlark.Float(v), nil
	case int:
		return starlark.MakeInt(v), nil
	case int64:
		return starlark.MakeInt64(v), nil
	case string:
		return starlark.String(v), nil
	case []interface{}:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			converted, err := toStarlark(e)
			if err != nil {
				return nil, err
			}
			elems[i] = converted
		}
		return starlark.NewList(elems), nil
	case map[string]interface{}:
		dict := starlark.NewDict(len(v))
		for key, e := range v {
			converted, err := toStarlark(e)
			if err != nil {
				return nil, err
			}
			if err := dict.SetKey(starlark.String(key), converted); err != nil {
				return nil, err
			}
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("unsupported value of type %T", v)
	}
}

// fromStarlark converts the function's return value into a JSON-serializable
// Go value. Values with no JSON representation (sets, functions, dicts with
// non-string keys) are rejected.
func fromStarlark(v starlark.Value) (interface{}, error) {
	switch v := v.(type) {
	case starlark.NoneType:
		return nil, nil
	case starlark.Bool:
		return bool(v), nil
	case starlark.Int:
		if i, ok := v.Int64(); ok {
			return i, nil
		}
		// Out of int64 range; hand the literal digits to encoding/json.
		return json.Number(v.String()), nil
	case starlark.Float:
		return float64(v), nil
	case starlark.String:
		return string(v), nil
	case *starlark.List:
		return fromSequence(v.Len(), v.Index)
	case starlark.Tuple:
		return fromSequence(v.Len(), v.Index)
	case *starlark.Dict:
		out := make(map[string]interface{}, v.Len())
		for _, item := range v.Items() {
			key, ok := item[0].(starlark.String)
			if !ok {
				return nil, fmt.Errorf("dict key %s is not a string", item[0].String())
			}
			value, err := fromStarlark(item[1])
			if err != nil {
				return nil, err
			}
			out[string(key)] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s value has no JSON representation", v.Type())
	}
}

func fromSequence(n int, index func(int) starlark.Value) (interface{}, error) {
	out := make([]interface{}, n)
	for i := 0; i < n; i++ {
		value, err := fromStarlark(index(i))
		if err != nil {
			return nil, err
		}
		out[i] = value
	}
	return out, nil
}
