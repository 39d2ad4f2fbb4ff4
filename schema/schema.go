package schema

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// schemaForTypeInternal returns a JSON Schema fragment for a reflect.Type.
// The inSlice flag marks element types, which are never nullable.
func schemaForTypeInternal(t reflect.Type, inSlice bool) map[string]interface{} {
	schema := make(map[string]interface{})

	// time.Time is treated as an ISO 8601 string.
	if t == reflect.TypeOf(time.Time{}) {
		schema["type"] = "string"
		schema["format"] = "date-time"
		return schema
	}

	if t.Kind() == reflect.Ptr {
		schema = schemaForTypeInternal(t.Elem(), inSlice)
		if !inSlice {
			schema["nullable"] = true
		}
		return schema
	}

	switch t.Kind() {
	case reflect.Bool:
		schema["type"] = "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		schema["type"] = "integer"
	case reflect.Float32, reflect.Float64:
		schema["type"] = "number"
	case reflect.String:
		schema["type"] = "string"
	case reflect.Slice, reflect.Array:
		schema["type"] = "array"
		schema["items"] = schemaForTypeInternal(t.Elem(), true)
	case reflect.Map:
		schema["type"] = "object"
		schema["additionalProperties"] = schemaForTypeInternal(t.Elem(), false)
	case reflect.Struct:
		schema["type"] = "object"
		properties, required := structToProperties(t)
		schema["properties"] = properties
		if len(required) > 0 {
			schema["required"] = required
		}
	default:
		schema["type"] = "string"
	}
	return schema
}

func schemaForType(t reflect.Type) map[string]interface{} {
	return schemaForTypeInternal(t, false)
}

// structToProperties converts a struct type into schema properties and the
// required field list (non-pointer fields without omitempty).
func structToProperties(t reflect.Type) (ToolInputSchemaProperties, []string) {
	properties := make(ToolInputSchemaProperties)
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, omitempty, ignore := parseJSONTag(field)
		if ignore {
			continue
		}
		properties[name] = schemaForType(field.Type)
		if field.Type.Kind() != reflect.Ptr && !omitempty {
			required = append(required, name)
		}
	}
	return properties, required
}

func parseJSONTag(field reflect.StructField) (name string, omitempty, ignore bool) {
	name = field.Name
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return name, false, false
	}
	parts := strings.Split(tag, ",")
	if parts[0] == "-" {
		return name, false, true
	}
	if parts[0] != "" {
		name = parts[0]
	}
	for _, part := range parts[1:] {
		if part == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty, false
}

// Load populates the schema from a struct type (or pointer to one).
func (s *ToolInputSchema) Load(v any) error {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("expected a struct type, got %s", t.Kind())
	}
	properties, required := structToProperties(t)
	s.Properties = properties
	s.Required = required
	s.Type = "object"
	return nil
}
