package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolInputSchema_Load(t *testing.T) {
	type input struct {
		Name    string             `json:"name"`
		Count   int                `json:"count,omitempty"`
		Ratio   *float64           `json:"ratio,omitempty"`
		Tags    []string           `json:"tags,omitempty"`
		Bands   map[string]float64 `json:"bands"`
		skipped string
	}
	_ = input{skipped: ""}

	schema := &ToolInputSchema{}
	err := schema.Load(&input{})
	assert.NoError(t, err)
	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"name", "bands"}, schema.Required)
	assert.Equal(t, "string", schema.Properties["name"]["type"])
	assert.Equal(t, "integer", schema.Properties["count"]["type"])
	assert.Equal(t, "number", schema.Properties["ratio"]["type"])
	assert.Equal(t, "array", schema.Properties["tags"]["type"])
	assert.Equal(t, "object", schema.Properties["bands"]["type"])
	assert.NotContains(t, schema.Properties, "skipped")
}

func TestToolInputSchema_LoadNonStruct(t *testing.T) {
	schema := &ToolInputSchema{}
	assert.Error(t, schema.Load("not a struct"))
}

func TestToolInputSchema_Validate(t *testing.T) {
	schema := &ToolInputSchema{
		Type: "object",
		Properties: ToolInputSchemaProperties{
			"name":  {"type": "string"},
			"count": {"type": "integer"},
		},
		Required: []string{"name"},
	}

	var testCases = []struct {
		description string
		args        map[string]interface{}
		expectError string
	}{
		{
			description: "valid",
			args:        map[string]interface{}{"name": "scene", "count": float64(3)},
		},
		{
			description: "missing required",
			args:        map[string]interface{}{"count": float64(3)},
			expectError: `missing required argument "name"`,
		},
		{
			description: "type mismatch names field",
			args:        map[string]interface{}{"name": 12.0},
			expectError: `invalid argument "name"`,
		},
		{
			description: "whole float passes as integer",
			args:        map[string]interface{}{"name": "scene", "count": float64(3)},
		},
		{
			description: "fractional value fails as integer",
			args:        map[string]interface{}{"name": "scene", "count": 3.5},
			expectError: `invalid argument "count": expected integer`,
		},
		{
			description: "unknown args pass through",
			args:        map[string]interface{}{"name": "scene", "extra": true},
		},
	}
	for _, testCase := range testCases {
		err := schema.Validate(testCase.args)
		if testCase.expectError == "" {
			assert.NoError(t, err, testCase.description)
			continue
		}
		if assert.Error(t, err, testCase.description) {
			assert.Contains(t, err.Error(), testCase.expectError, testCase.description)
		}
	}
}
