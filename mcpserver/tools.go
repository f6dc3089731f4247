package mcpserver

import (
	"context"
	"errors"
	"strings"

	"github.com/stackbound/mcpd/mcp"
)

// ErrToolNotFound is returned when a tools/call names an unregistered tool.
var ErrToolNotFound = errors.New("tool not found")

// Param declares one callable parameter of a tool. The descriptor is
// supplied by the tool author at registration time and drives schema
// synthesis at tools/list time; no validation happens at registration.
type Param struct {
	// Name is the public parameter name used as the property key.
	Name string
	// Type is the declared JSON type name. It is lower-cased during
	// synthesis; empty means "string".
	Type string
	// Format is an optional JSON-schema format string (e.g. "date-time").
	Format string
	// Description is optional documentation text.
	Description string
	// Required marks the parameter as mandatory. The flag's presence
	// matters, not any value it carries.
	Required bool
}

// Handler executes a tool invocation. The args map is forwarded verbatim
// from the tools/call params. Errors returned here are deliberately not
// converted into JSON-RPC errors; they escape to the transport's top-level
// failure handling (see plainhttp).
type Handler func(ctx context.Context, args map[string]any) (string, error)

// Tool describes a registered tool: its canonical name, documentation,
// declared parameters and the handler that executes calls.
type Tool struct {
	// Name is the canonical name; the public identifier is its
	// lowerCamelCase form (see DerivedName).
	Name string
	// Description is optional class-level documentation text.
	Description string
	// Params declares the callable parameters for schema synthesis.
	Params []Param
	// InputSchema, when set, overrides synthesis from Params. Typed
	// constructors (NewTool) populate it via reflection.
	InputSchema *mcp.ToolInputSchema
	// Handler executes the tool.
	Handler Handler
}

// Describe builds the wire descriptor for the tool, synthesizing the input
// schema from the declared parameters unless an explicit schema was given.
func (t Tool) Describe() mcp.Tool {
	desc := mcp.Tool{
		Name:        DerivedName(t.Name),
		Description: t.Description,
	}
	if t.InputSchema != nil {
		desc.InputSchema = *t.InputSchema
	} else {
		desc.InputSchema = synthesizeInputSchema(t.Params)
	}
	return desc
}

// synthesizeInputSchema converts declared parameter metadata into the
// JSON-schema shape advertised by tools/list. The required list follows
// parameter declaration order.
func synthesizeInputSchema(params []Param) mcp.ToolInputSchema {
	schema := mcp.ToolInputSchema{
		Type:       "object",
		Properties: make(map[string]mcp.SchemaProperty, len(params)),
		Required:   []string{},
	}
	for _, p := range params {
		prop := mcp.SchemaProperty{
			Type:        "string",
			Description: p.Description,
			Format:      p.Format,
		}
		if p.Type != "" {
			prop.Type = strings.ToLower(p.Type)
		}
		schema.Properties[p.Name] = prop
		if p.Required {
			schema.Required = append(schema.Required, p.Name)
		}
	}
	return schema
}
