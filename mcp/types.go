package mcp

// ProtocolVersion is the MCP protocol revision advertised in initialize
// responses.
const ProtocolVersion = "2024-11-05"

// ImplementationInfo describes the server implementation name and version.
type ImplementationInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ServerCapabilities advertises the feature set of this server. Both
// capabilities are always present and empty: the server exposes tools and
// prompts but no optional sub-features (listChanged, subscribe, ...).
type ServerCapabilities struct {
	Tools   struct{} `json:"tools"`
	Prompts struct{} `json:"prompts"`
}

// Tool describes a callable tool and its input schema. Description is always
// serialized, as an empty string when the tool carries no documentation.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema ToolInputSchema `json:"inputSchema"`
}

// ToolInputSchema is a JSON-schema-shaped description of tool input. The
// properties map and required list are always serialized, empty for tools
// with no declared parameters.
type ToolInputSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]SchemaProperty `json:"properties"`
	Required   []string                  `json:"required"`
}

// SchemaProperty is a single property node in a tool input schema. Type is
// always present (defaulting to "string" during synthesis); description and
// format are omitted when the parameter metadata does not declare them.
type SchemaProperty struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Format      string `json:"format,omitempty"`
}

// ContentBlock is a typed content part of a tool result.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// ContentTypeText is the content block type for plain text.
const ContentTypeText = "text"

// Prompt describes a prompt the server can provide. This server reports all
// prompts under the literal name "default"; the model does not distinguish
// prompts by name.
type Prompt struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DefaultPromptName is the name every listed prompt is reported under.
const DefaultPromptName = "default"
