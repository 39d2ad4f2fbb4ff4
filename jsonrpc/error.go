package jsonrpc

import "fmt"

// Standard JSON-RPC 2.0 error codes, plus the server-defined not-initialized code.
const (
	ParseError           = -32700
	InvalidRequest       = -32600
	MethodNotFound       = -32601
	InvalidParams        = -32602
	InternalError        = -32603
	ServerNotInitialized = -32002
)

// Error represents a JSON-RPC error object.
type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc error %v: %v", e.Code, e.Message)
}

// NewError creates an error with the given code.
func NewError(code int, message string, data interface{}) *Error {
	return &Error{Code: code, Message: message, Data: data}
}

// NewParsingError creates a parse error.
func NewParsingError(message string, data interface{}) *Error {
	return NewError(ParseError, message, data)
}

// NewInvalidRequest creates an invalid request error.
func NewInvalidRequest(message string, data interface{}) *Error {
	return NewError(InvalidRequest, message, data)
}

// NewMethodNotFound creates a method not found error.
func NewMethodNotFound(message string, data interface{}) *Error {
	return NewError(MethodNotFound, message, data)
}

// NewInvalidParamsError creates an invalid params error.
func NewInvalidParamsError(message string, data interface{}) *Error {
	return NewError(InvalidParams, message, data)
}

// NewInternalError creates an internal error.
func NewInternalError(message string, data interface{}) *Error {
	return NewError(InternalError, message, data)
}

// NewNotInitialized creates a server not initialized error.
func NewNotInitialized(message string, data interface{}) *Error {
	return NewError(ServerNotInitialized, message, data)
}
