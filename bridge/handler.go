package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/axion-orbital/planetary-bridge/jsonrpc"
	"github.com/axion-orbital/planetary-bridge/registry"
	"github.com/axion-orbital/planetary-bridge/schema"
)

// State tracks the protocol lifecycle of a local session.
type State int

const (
	StateUninitialized State = iota
	StateInitializing
	StateReady
	StateClosed
)

// Handler is the local method table: it answers the capability handshake and
// routes tools/call into the registry. The transport delivers traffic
// sequentially, so state needs no locking.
type Handler struct {
	registry         *registry.Registry
	info             schema.Implementation
	instructions     *string
	logger           *log.Logger
	state            State
	clientInitialize *schema.InitializeRequestParams
}

// NewHandler creates a method table over the given registry.
func NewHandler(registry *registry.Registry, info schema.Implementation, logger *log.Logger) *Handler {
	return &Handler{registry: registry, info: info, logger: logger}
}

// Serve handles one JSON-RPC request.
func (h *Handler) Serve(ctx context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	if jsonrpc.Version != request.Jsonrpc {
		response.Error = jsonrpc.NewInvalidRequest("invalid JSON-RPC version", nil)
		return
	}
	switch request.Method {
	case schema.MethodInitialize, schema.MethodPing,
		schema.MethodToolsList, schema.MethodToolsCall,
		schema.MethodPromptsList, schema.MethodResourcesList:
	default:
		response.Error = jsonrpc.NewMethodNotFound(fmt.Sprintf("method: %v not found", request.Method), request.Params)
		return
	}

	switch request.Method {
	case schema.MethodInitialize:
		result, err := h.initialize(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodPing:
		h.setResponse(response, &schema.PingResult{}, nil)
	default:
		// Everything else requires a completed handshake; requests arriving
		// earlier are rejected rather than queued.
		if h.state != StateReady {
			response.Error = schema.NewNotInitialized(request.Method)
			return
		}
		switch request.Method {
		case schema.MethodToolsList:
			h.setResponse(response, &schema.ListToolsResult{Tools: h.registry.List()}, nil)
		case schema.MethodToolsCall:
			result, err := h.callTool(ctx, request)
			h.setResponse(response, result, err)
		case schema.MethodPromptsList:
			h.setResponse(response, &schema.ListPromptsResult{Prompts: []schema.Prompt{}}, nil)
		case schema.MethodResourcesList:
			h.setResponse(response, &schema.ListResourcesResult{Resources: []schema.Resource{}}, nil)
		}
	}
}

func (h *Handler) initialize(ctx context.Context, request *jsonrpc.Request) (*schema.InitializeResult, *jsonrpc.Error) {
	if h.state != StateUninitialized {
		return nil, jsonrpc.NewInvalidRequest("session already initialized", nil)
	}
	params := &schema.InitializeRequestParams{}
	if len(request.Params) > 0 {
		if err := json.Unmarshal(request.Params, params); err != nil {
			return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
		}
	}
	h.clientInitialize = params
	h.state = StateInitializing
	return &schema.InitializeResult{
		ProtocolVersion: schema.LatestProtocolVersion,
		ServerInfo:      h.info,
		Capabilities:    schema.ServerCapabilities{Tools: &schema.ServerCapabilitiesTools{}},
		Instructions:    h.instructions,
	}, nil
}

func (h *Handler) callTool(ctx context.Context, request *jsonrpc.Request) (*schema.CallToolResult, *jsonrpc.Error) {
	params := &schema.CallToolRequestParams{}
	if err := json.Unmarshal(request.Params, params); err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	return h.registry.Dispatch(ctx, params.Name, params.Arguments)
}

func (h *Handler) setResponse(response *jsonrpc.Response, result interface{}, rpcError *jsonrpc.Error) {
	if rpcError != nil {
		response.Error = rpcError
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		response.Error = jsonrpc.NewInternalError(err.Error(), nil)
		return
	}
	response.Result = data
}

// OnNotification handles incoming notifications; initialized completes the
// handshake, everything else is ignored.
func (h *Handler) OnNotification(ctx context.Context, notification *jsonrpc.Notification) {
	switch notification.Method {
	case schema.MethodNotificationInitialized:
		if h.state == StateInitializing {
			h.state = StateReady
			return
		}
		h.logger.Printf("ignored initialized notification in state %v", h.state)
	case schema.MethodNotificationCancel:
		// Cancellation is not supported; a dispatched call runs to completion.
		h.logger.Printf("ignored cancellation notification")
	}
}

// Close marks the session terminated; no further writes happen after it.
func (h *Handler) Close() {
	h.state = StateClosed
}

// State returns the current lifecycle state.
func (h *Handler) State() State {
	return h.state
}
