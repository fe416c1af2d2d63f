package models

import (
	"encoding/json"
	"fmt"
	"io"
)

// InvokeRequest is the body of POST /invoke. Params carries the named
// arguments for the loaded function; a missing params field means no
// arguments.
type InvokeRequest struct {
	Params map[string]interface{} `json:"params"`
}

// InvokeResponse is the body of every invoke reply. Exactly one of Result
// and Error is non-null.
type InvokeResponse struct {
	Result interface{} `json:"result"`
	Error  *string     `json:"error"`
}

// SuccessResponse builds the reply for a completed invocation.
func SuccessResponse(result interface{}) *InvokeResponse {
	return &InvokeResponse{Result: result}
}

// FailureResponse builds the reply for a failed invocation.
func FailureResponse(err error) *InvokeResponse {
	msg := err.Error()
	return &InvokeResponse{Error: &msg}
}

// DecodeInvokeRequest reads an invoke request body. Numbers are decoded as
// json.Number so the loaded function sees integers as integers. A missing or
// null params field becomes an empty mapping; a body that is not a JSON
// object is an error.
func DecodeInvokeRequest(r io.Reader) (*InvokeRequest, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var req InvokeRequest
	if err := dec.Decode(&req); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("request body is empty")
		}
		return nil, err
	}
	if req.Params == nil {
		req.Params = map[string]interface{}{}
	}
	return &req, nil
}
