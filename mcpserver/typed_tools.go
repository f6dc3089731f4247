package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/stackbound/mcpd/mcp"
)

// ToolOption configures NewTool behavior.
type ToolOption func(*toolConfig)

type toolConfig struct {
	description string
}

// WithToolDescription sets the tool description used in listings.
func WithToolDescription(desc string) ToolOption {
	return func(c *toolConfig) { c.description = desc }
}

// NewTool constructs a Tool from a typed args struct A. It:
//   - Reflects a JSON Schema from A using invopop/jsonschema
//   - Down-converts it to the flat input schema shape used in tools/list
//   - Wraps the handler with decoding of the arguments map into A
//
// Decoding failures surface as handler errors and therefore escape to the
// transport like any other tool failure.
func NewTool[A any](name string, fn func(ctx context.Context, args A) (string, error), opts ...ToolOption) Tool {
	cfg := toolConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	schema := reflectInputSchema[A]()

	return Tool{
		Name:        name,
		Description: cfg.description,
		InputSchema: &schema,
		Handler: func(ctx context.Context, args map[string]any) (string, error) {
			var a A
			if len(args) > 0 {
				b, err := json.Marshal(args)
				if err != nil {
					return "", fmt.Errorf("encode arguments: %w", err)
				}
				if err := json.Unmarshal(b, &a); err != nil {
					return "", fmt.Errorf("decode arguments: %w", err)
				}
			}
			return fn(ctx, a)
		},
	}
}

// reflectInputSchema reflects a Go type A into a jsonschema.Schema and
// converts it to the simplified mcp.ToolInputSchema. Non-object types map
// to an empty object schema.
func reflectInputSchema[A any]() mcp.ToolInputSchema {
	r := &jsonschema.Reflector{
		DoNotReference:            true, // inline defs
		ExpandedStruct:            true, // put struct at root
		AllowAdditionalProperties: true,
	}
	s := r.Reflect(new(A))

	out := mcp.ToolInputSchema{
		Type:       "object",
		Properties: map[string]mcp.SchemaProperty{},
		Required:   []string{},
	}
	if s == nil || s.Type != "object" {
		return out
	}

	if s.Properties != nil {
		for el := s.Properties.Oldest(); el != nil; el = el.Next() {
			out.Properties[el.Key] = toSchemaProperty(el.Value)
		}
	}
	out.Required = append(out.Required, s.Required...)
	return out
}

// toSchemaProperty maps a reflected schema node to the flat property shape
// this server advertises. Nested object and array detail is intentionally
// collapsed to the node's type tag.
func toSchemaProperty(s *jsonschema.Schema) mcp.SchemaProperty {
	if s == nil {
		return mcp.SchemaProperty{}
	}
	return mcp.SchemaProperty{
		Type:        s.Type,
		Description: s.Description,
		Format:      s.Format,
	}
}
