package schema

import "github.com/axion-orbital/planetary-bridge/jsonrpc"

// NewUnknownTool creates an error for a tools/call naming an unregistered tool.
func NewUnknownTool(toolName string) *jsonrpc.Error {
	return jsonrpc.NewError(jsonrpc.InvalidParams, "Unknown tool: "+toolName, nil)
}

// NewNotInitialized creates an error for requests arriving before the
// initialized notification completed the handshake.
func NewNotInitialized(method string) *jsonrpc.Error {
	return jsonrpc.NewNotInitialized("method "+method+" requires an initialized session", nil)
}
