// Package registry maintains the process-wide tool catalog used for local
// dispatch: registration, name-based lookup, ordered listing and validated
// single-shot invocation.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/axion-orbital/planetary-bridge/internal/collection"
	"github.com/axion-orbital/planetary-bridge/jsonrpc"
	"github.com/axion-orbital/planetary-bridge/schema"
)

// Handler executes a tool call with already validated arguments.
type Handler func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// Entry is the registration record of one tool; immutable after Register.
type Entry struct {
	Tool    schema.Tool
	Handler Handler
}

// Registry is an ordered mapping of tool name to entry. Listing order is
// registration order; entries are never removed.
type Registry struct {
	entries   *collection.SyncMap[string, *Entry]
	mux       sync.Mutex
	order     []string
	overwrite bool
}

// Option configures a registry.
type Option func(r *Registry)

// WithOverwrite makes duplicate registration replace the previous entry
// instead of failing. The default policy rejects duplicates.
func WithOverwrite() Option {
	return func(r *Registry) {
		r.overwrite = true
	}
}

// New creates an empty registry.
func New(options ...Option) *Registry {
	ret := &Registry{entries: collection.NewSyncMap[string, *Entry]()}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Register adds an entry. A duplicate name fails with a conflict error unless
// the registry was built with WithOverwrite.
func (r *Registry) Register(entry *Entry) error {
	if entry == nil || entry.Tool.Name == "" {
		return fmt.Errorf("tool name was empty")
	}
	if entry.Handler == nil {
		return fmt.Errorf("tool %q had no handler", entry.Tool.Name)
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, exists := r.entries.Get(entry.Tool.Name); exists {
		if !r.overwrite {
			return fmt.Errorf("tool %q already registered", entry.Tool.Name)
		}
		r.entries.Put(entry.Tool.Name, entry)
		return nil
	}
	r.entries.Put(entry.Tool.Name, entry)
	r.order = append(r.order, entry.Tool.Name)
	return nil
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	return r.entries.Get(name)
}

// List returns all tools in registration order; it has no side effects.
func (r *Registry) List() []schema.Tool {
	r.mux.Lock()
	defer r.mux.Unlock()
	tools := make([]schema.Tool, 0, len(r.order))
	for _, name := range r.order {
		if entry, ok := r.entries.Get(name); ok {
			tools = append(tools, entry.Tool)
		}
	}
	return tools
}

// Dispatch looks the tool up, validates args against its input schema and
// invokes the handler exactly once. Handler failures (including panics) are
// converted to an internal error carrying the failure message only.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]interface{}) (*schema.CallToolResult, *jsonrpc.Error) {
	entry, ok := r.Lookup(name)
	if !ok {
		return nil, schema.NewUnknownTool(name)
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	if err := entry.Tool.InputSchema.Validate(args); err != nil {
		return nil, jsonrpc.NewInvalidParamsError(err.Error(), nil)
	}
	value, err := invoke(ctx, entry.Handler, args)
	if err != nil {
		return nil, jsonrpc.NewInternalError(fmt.Sprintf("tool %q failed: %v", name, err), nil)
	}
	result, err := schema.NewTextResult(value)
	if err != nil {
		return nil, jsonrpc.NewInternalError(fmt.Sprintf("tool %q produced an unserializable result: %v", name, err), nil)
	}
	return result, nil
}

// invoke shields the dispatcher from handler panics.
func invoke(ctx context.Context, handler Handler, args map[string]interface{}) (value interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return handler(ctx, args)
}

// RegisterTool registers a typed handler, generating the input schema from T.
func RegisterTool[T any](r *Registry, name, description string, handler func(ctx context.Context, input *T) (interface{}, error)) error {
	tool := schema.Tool{Name: name, Description: description}
	if err := tool.InputSchema.Load(new(T)); err != nil {
		return err
	}
	wrapped := func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		data, err := json.Marshal(args)
		if err != nil {
			return nil, err
		}
		input := new(T)
		if err := json.Unmarshal(data, input); err != nil {
			return nil, err
		}
		return handler(ctx, input)
	}
	return r.Register(&Entry{Tool: tool, Handler: wrapped})
}
