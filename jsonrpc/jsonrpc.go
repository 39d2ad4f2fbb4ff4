// Package jsonrpc defines the JSON-RPC 2.0 envelope types exchanged on the
// bridge wire, together with the handler contracts the transports dispatch to.
package jsonrpc

import "encoding/json"

// Version is the only protocol version this package speaks.
const Version = "2.0"

// Request represents a JSON-RPC call; Id correlates the eventual response.
type Request struct {
	Jsonrpc string          `json:"jsonrpc"`
	Id      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Notification represents a JSON-RPC message without an id; no response is expected.
type Notification struct {
	Jsonrpc string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response represents a JSON-RPC result or error envelope.
type Response struct {
	Jsonrpc string          `json:"jsonrpc"`
	Id      interface{}     `json:"id,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// NewRequest creates a request with marshaled params; the caller assigns the id.
func NewRequest(method string, params interface{}) (*Request, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	return &Request{Jsonrpc: Version, Method: method, Params: data}, nil
}

// NewNotification creates a notification with marshaled params.
func NewNotification(method string, params interface{}) (*Notification, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	return &Notification{Jsonrpc: Version, Method: method, Params: data}, nil
}

// NewResponse creates an empty response correlated with the given request id.
func NewResponse(id interface{}) *Response {
	return &Response{Jsonrpc: Version, Id: id}
}
