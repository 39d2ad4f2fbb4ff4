package schema

import (
	"encoding/json"
	"fmt"
	"math"
)

// Tool describes a callable capability advertised through tools/list.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	InputSchema ToolInputSchema `json:"inputSchema"`
}

// ToolInputSchema is a JSON Schema describing a tool's arguments object.
type ToolInputSchema struct {
	Type       string                    `json:"type"`
	Properties ToolInputSchemaProperties `json:"properties,omitempty"`
	Required   []string                  `json:"required,omitempty"`
}

// ToolInputSchemaProperties maps property name to its JSON Schema fragment.
type ToolInputSchemaProperties map[string]map[string]interface{}

// Validate checks call arguments against the schema, reporting the first
// violating field: a missing required property or a JSON type mismatch.
func (s *ToolInputSchema) Validate(args map[string]interface{}) error {
	for _, name := range s.Required {
		if _, ok := args[name]; !ok {
			return fmt.Errorf("missing required argument %q", name)
		}
	}
	for name, value := range args {
		property, ok := s.Properties[name]
		if !ok {
			continue
		}
		expected, ok := property["type"].(string)
		if !ok {
			continue
		}
		if err := validateKind(expected, value); err != nil {
			return fmt.Errorf("invalid argument %q: %w", name, err)
		}
	}
	return nil
}

func validateKind(expected string, value interface{}) error {
	if value == nil {
		return nil
	}
	switch expected {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
	case "boolean":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("expected boolean, got %T", value)
		}
	case "integer":
		switch actual := value.(type) {
		case float64:
			if actual != math.Trunc(actual) {
				return fmt.Errorf("expected integer, got %v", actual)
			}
		case json.Number, int, int64:
		default:
			return fmt.Errorf("expected integer, got %T", value)
		}
	case "number":
		switch value.(type) {
		case float64, json.Number, int, int64:
		default:
			return fmt.Errorf("expected number, got %T", value)
		}
	case "array":
		if _, ok := value.([]interface{}); !ok {
			return fmt.Errorf("expected array, got %T", value)
		}
	case "object":
		if _, ok := value.(map[string]interface{}); !ok {
			return fmt.Errorf("expected object, got %T", value)
		}
	}
	return nil
}

// CallToolRequestParams holds the parameters of a tools/call request.
type CallToolRequestParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
}

// CallToolResult carries a tool outcome back to the caller.
type CallToolResult struct {
	Content []CallToolResultContentElem `json:"content"`
	IsError *bool                       `json:"isError,omitempty"`
}

// CallToolResultContentElem is a single content item of a tool result.
type CallToolResultContentElem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewTextResult wraps the JSON serialization of value as a text content result.
func NewTextResult(value interface{}) (*CallToolResult, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return &CallToolResult{Content: []CallToolResultContentElem{{Type: "text", Text: string(data)}}}, nil
}
