package mcpserver

import (
	"context"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/stackbound/mcpd/mcp"
)

// Registry holds the server identity plus the registered tools and prompts.
// It is populated at startup via chained AddTool/AddPrompt calls and must
// not be mutated once a transport starts serving requests; after that point
// concurrent readers need no synchronization.
type Registry struct {
	info    mcp.ImplementationInfo
	tools   []Tool
	byName  map[string]Tool
	prompts []string
}

// NewRegistry constructs an empty registry carrying the server identity
// echoed in initialize and discovery responses.
func NewRegistry(name, version string) *Registry {
	return &Registry{
		info:   mcp.ImplementationInfo{Name: name, Version: version},
		byName: make(map[string]Tool),
	}
}

// AddTool appends def to the ordered tool list and indexes it under the
// derived lowerCamelCase name. Two tools whose canonical names collide
// after the transform keep both list entries, but the later registration
// wins the lookup. Returns the registry for chaining.
func (r *Registry) AddTool(def Tool) *Registry {
	r.tools = append(r.tools, def)
	r.byName[DerivedName(def.Name)] = def
	return r
}

// AddPrompt appends text to the ordered prompt list. Returns the registry
// for chaining.
func (r *Registry) AddPrompt(text string) *Registry {
	r.prompts = append(r.prompts, text)
	return r
}

// ResolveTool returns the tool registered under the derived name.
func (r *Registry) ResolveTool(name string) (Tool, bool) {
	def, ok := r.byName[name]
	return def, ok
}

// Call resolves name against the derived-name lookup and invokes the
// tool's handler with the arguments map. It returns ErrToolNotFound when no
// tool is registered under name. Errors from the handler itself are passed
// through untouched; converting them into a response shape is the
// transport's concern.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	def, ok := r.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	if def.Handler == nil {
		return "", fmt.Errorf("tool %q has no handler", name)
	}
	return def.Handler(ctx, args)
}

// Info returns the server identity.
func (r *Registry) Info() mcp.ImplementationInfo {
	return r.info
}

// Tools returns a copy of the ordered tool list.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Prompts returns a copy of the ordered prompt list.
func (r *Registry) Prompts() []string {
	out := make([]string, len(r.prompts))
	copy(out, r.prompts)
	return out
}

// DerivedName lowers the first rune of a canonical tool name, leaving the
// rest unchanged. It is the public-facing tool identifier and lookup key.
func DerivedName(name string) string {
	if name == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(first)) + name[size:]
}
