package function

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr string
	}{
		{
			name:   "simple function",
			source: "def user_function(a, b):\n    return a + b",
		},
		{
			name:   "function with defaults",
			source: "def user_function(a, b=10):\n    return a + b",
		},
		{
			name:   "top level statements before definition",
			source: "GREETING = \"hello\"\n\ndef user_function(name):\n    return GREETING + \" \" + name",
		},
		{
			name:    "empty source",
			source:  "",
			wantErr: "function source is empty",
		},
		{
			name:    "syntax error",
			source:  "def user_function(:",
			wantErr: "failed to execute",
		},
		{
			name:    "top level runtime error",
			source:  "x = 1 // 0\n\ndef user_function():\n    return x",
			wantErr: "failed to execute",
		},
		{
			name:    "entry point missing",
			source:  "def other_function():\n    return 1",
			wantErr: "does not define",
		},
		{
			name:    "entry point is not callable",
			source:  "user_function = 42",
			wantErr: "not a function",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := Load(tt.source)

			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("Expected error but got none")
				}
				loadErr, ok := err.(*LoadError)
				if !ok {
					t.Fatalf("Expected *LoadError, got %T", err)
				}
				if !strings.Contains(loadErr.Error(), tt.wantErr) {
					t.Errorf("Error %q does not contain %q", loadErr.Error(), tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if fn == nil {
				t.Fatal("Function is nil")
			}
			if fn.Name() != EntryPoint {
				t.Errorf("Expected function name %q, got %q", EntryPoint, fn.Name())
			}
		})
	}
}

func TestLoadParamSchema(t *testing.T) {
	tests := []struct {
		name         string
		source       string
		wantParams   []Param
		wantVariadic bool
	}{
		{
			name:       "required params",
			source:     "def user_function(a, b):\n    return a",
			wantParams: []Param{{Name: "a", Required: true}, {Name: "b", Required: true}},
		},
		{
			name:       "optional param",
			source:     "def user_function(a, b=1):\n    return a",
			wantParams: []Param{{Name: "a", Required: true}, {Name: "b", Required: false}},
		},
		{
			name:       "no params",
			source:     "def user_function():\n    return 1",
			wantParams: []Param{},
		},
		{
			name:         "kwargs receiver excluded from schema",
			source:       "def user_function(a, **rest):\n    return a",
			wantParams:   []Param{{Name: "a", Required: true}},
			wantVariadic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := Load(tt.source)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			params := fn.Params()
			if len(params) != len(tt.wantParams) {
				t.Fatalf("Expected %d params, got %d (%v)", len(tt.wantParams), len(params), fn.ParamNames())
			}
			for i, want := range tt.wantParams {
				if params[i] != want {
					t.Errorf("Param %d: expected %+v, got %+v", i, want, params[i])
				}
			}
			if fn.hasKwargs != tt.wantVariadic {
				t.Errorf("Expected hasKwargs=%v, got %v", tt.wantVariadic, fn.hasKwargs)
			}
		})
	}
}
