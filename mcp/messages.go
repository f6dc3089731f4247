package mcp

// Method is an MCP method identifier used in JSON-RPC messages.
type Method string

// MCP method names and notifications supported by this server.
const (
	InitializeMethod              Method = "initialize"
	InitializedNotificationMethod Method = "notifications/initialized"

	ToolsListMethod Method = "tools/list"
	ToolsCallMethod Method = "tools/call"

	PromptsListMethod Method = "prompts/list"
)

// InitializeRequest starts the MCP initialization handshake. The server
// accepts client info but does not alter behavior based on it.
type InitializeRequest struct {
	ProtocolVersion string             `json:"protocolVersion"`
	ClientInfo      ImplementationInfo `json:"clientInfo"`
}

// InitializeResult returns the protocol revision, advertised capabilities
// and server identity.
type InitializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ServerCapabilities `json:"capabilities"`
	ServerInfo      ImplementationInfo `json:"serverInfo"`
}

// ListToolsResult returns the available tools with synthesized schemas.
type ListToolsResult struct {
	Tools []Tool `json:"tools"`
}

// CallToolParams is the server-received representation of a tool call. The
// arguments map is forwarded verbatim to the tool handler.
type CallToolParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// CallToolResult represents a tool invocation result.
type CallToolResult struct {
	Content []ContentBlock `json:"content"`
}

// ListPromptsResult returns the registered prompts in registration order.
type ListPromptsResult struct {
	Prompts []Prompt `json:"prompts"`
}
