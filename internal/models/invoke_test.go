package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestDecodeInvokeRequest(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErr    bool
		wantParams map[string]interface{}
	}{
		{
			name:       "params with values",
			body:       `{"params": {"a": 1, "b": "two"}}`,
			wantParams: map[string]interface{}{"a": json.Number("1"), "b": "two"},
		},
		{
			name:       "missing params field",
			body:       `{}`,
			wantParams: map[string]interface{}{},
		},
		{
			name:       "null params field",
			body:       `{"params": null}`,
			wantParams: map[string]interface{}{},
		},
		{
			name:       "empty params",
			body:       `{"params": {}}`,
			wantParams: map[string]interface{}{},
		},
		{
			name:    "empty body",
			body:    ``,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"params": `,
			wantErr: true,
		},
		{
			name:    "body is not an object",
			body:    `[1, 2, 3]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := DecodeInvokeRequest(strings.NewReader(tt.body))

			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error but got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(req.Params) != len(tt.wantParams) {
				t.Fatalf("Expected %d params, got %d", len(tt.wantParams), len(req.Params))
			}
			for key, want := range tt.wantParams {
				if got := req.Params[key]; got != want {
					t.Errorf("Param %q: expected %#v, got %#v", key, want, got)
				}
			}
		})
	}
}

func TestDecodeInvokeRequestPreservesNumbers(t *testing.T) {
	req, err := DecodeInvokeRequest(strings.NewReader(`{"params": {"count": 3, "ratio": 0.5}}`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	count, ok := req.Params["count"].(json.Number)
	if !ok {
		t.Fatalf("Expected json.Number for count, got %T", req.Params["count"])
	}
	if _, err := count.Int64(); err != nil {
		t.Errorf("count did not survive as integer: %v", err)
	}
}

func TestInvokeResponseShape(t *testing.T) {
	success, err := json.Marshal(SuccessResponse(int64(3)))
	if err != nil {
		t.Fatal(err)
	}
	if string(success) != `{"result":3,"error":null}` {
		t.Errorf("Unexpected success body: %s", success)
	}

	failure, err := json.Marshal(FailureResponse(errors.New("boom")))
	if err != nil {
		t.Fatal(err)
	}
	if string(failure) != `{"result":null,"error":"boom"}` {
		t.Errorf("Unexpected failure body: %s", failure)
	}
}
