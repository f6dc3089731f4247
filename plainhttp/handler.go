// Package plainhttp implements the plain-JSON HTTP transport for the MCP
// server core: a single endpoint that answers discovery metadata on
// non-POST calls and JSON-RPC 2.0 on POST. There is no streaming, no
// session state and no batching; every call is an independent unit of work
// over the read-only registry.
package plainhttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/elnormous/contenttype"
	"github.com/google/uuid"

	"github.com/stackbound/mcpd/internal/jsonrpc"
	"github.com/stackbound/mcpd/internal/logctx"
	"github.com/stackbound/mcpd/mcp"
	"github.com/stackbound/mcpd/mcpserver"
)

var (
	_ http.Handler = (*Handler)(nil)

	jsonMediaType = contenttype.NewMediaType("application/json")
)

// protocolLabel names the wire protocol in the discovery response.
const protocolLabel = "MCP over JSON-RPC 2.0"

// DiscoveryInfo is the non-JSON-RPC response served to non-POST callers
// (browsers, health checks). It is a capability hint, not part of the
// JSON-RPC protocol.
type DiscoveryInfo struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Protocol string `json:"protocol"`
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogHandler sets the slog.Handler used for request logging. If unset,
// logging is discarded.
func WithLogHandler(h slog.Handler) Option {
	return func(hd *Handler) {
		if h != nil {
			hd.log = slog.New(logctx.Handler{Handler: h})
		}
	}
}

// WithStrictContentType makes the handler reject POST requests whose
// Content-Type is not application/json with HTTP 415. The default is
// lenient: any POST body is treated as a JSON-RPC envelope.
func WithStrictContentType() Option {
	return func(hd *Handler) { hd.strictContentType = true }
}

// Handler serves one MCP endpoint over a registry.
//
// Tool execution failures are deliberately not wrapped in JSON-RPC error
// envelopes: an error escaping a tool handler produces HTTP 500 with a
// generic body. Tool authors own their error reporting conventions; the
// handler only logs the failure with the request correlation id.
type Handler struct {
	registry          *mcpserver.Registry
	log               *slog.Logger
	strictContentType bool
}

// New constructs a Handler serving the given registry. The registry must be
// fully populated before the handler starts serving.
func New(registry *mcpserver.Registry, opts ...Option) (*Handler, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry is required")
	}

	h := &Handler{registry: registry}
	for _, opt := range opts {
		opt(h)
	}
	if h.log == nil {
		h.log = slog.New(logctx.Handler{Handler: slog.NewTextHandler(io.Discard, nil)})
	}
	return h, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := logctx.WithRequestData(r.Context(), &logctx.RequestData{
		RequestID:  uuid.NewString(),
		Method:     r.Method,
		Path:       r.URL.Path,
		UserAgent:  r.UserAgent(),
		RemoteAddr: r.RemoteAddr,
	})

	if r.Method != http.MethodPost {
		h.serveDiscovery(ctx, w)
		return
	}
	h.servePost(ctx, w, r)
}

// serveDiscovery answers non-RPC callers with the server identity.
func (h *Handler) serveDiscovery(ctx context.Context, w http.ResponseWriter) {
	info := h.registry.Info()
	h.log.DebugContext(ctx, "discovery request")
	h.writeJSON(ctx, w, DiscoveryInfo{
		Name:     info.Name,
		Version:  info.Version,
		Protocol: protocolLabel,
	})
}

// servePost parses and validates one JSON-RPC envelope and dispatches it.
func (h *Handler) servePost(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if h.strictContentType {
		ctype, err := contenttype.GetMediaType(r)
		if err != nil || !ctype.Matches(jsonMediaType) {
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}
	}

	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		h.log.DebugContext(ctx, "unreadable or empty request body")
		h.writeResponse(ctx, w, jsonrpc.NewErrorResponse(nil, jsonrpc.ErrorCodeParseError, "Parse error", nil))
		return
	}

	var req jsonrpc.Request
	if err := json.Unmarshal(body, &req); err != nil {
		h.log.DebugContext(ctx, "invalid JSON body", slog.String("error", err.Error()))
		h.writeResponse(ctx, w, jsonrpc.NewErrorResponse(nil, jsonrpc.ErrorCodeParseError, "Parse error", nil))
		return
	}

	if req.JSONRPCVersion != jsonrpc.ProtocolVersion {
		h.writeResponse(ctx, w, jsonrpc.NewErrorResponse(req.ID, jsonrpc.ErrorCodeInvalidRequest, "Invalid Request", "Missing or invalid jsonrpc version"))
		return
	}

	ctx = logctx.WithRPCMessage(ctx, &logctx.RPCMessage{Method: req.Method, ID: req.ID.String()})
	h.log.DebugContext(ctx, "rpc request")

	switch mcp.Method(req.Method) {
	case mcp.InitializeMethod:
		h.handleInitialize(ctx, w, &req)
	case mcp.InitializedNotificationMethod:
		// One-way notification acknowledgment: no JSON-RPC envelope at all.
		w.WriteHeader(http.StatusNoContent)
	case mcp.ToolsListMethod:
		h.handleToolsList(ctx, w, &req)
	case mcp.ToolsCallMethod:
		h.handleToolsCall(ctx, w, &req)
	case mcp.PromptsListMethod:
		h.handlePromptsList(ctx, w, &req)
	default:
		h.writeResponse(ctx, w, jsonrpc.NewErrorResponse(req.ID, jsonrpc.ErrorCodeMethodNotFound, "Method not found", fmt.Sprintf("Unknown method: %s", req.Method)))
	}
}

func (h *Handler) handleInitialize(ctx context.Context, w http.ResponseWriter, req *jsonrpc.Request) {
	// Client info in params is accepted but does not alter behavior.
	h.writeResult(ctx, w, req.ID, mcp.InitializeResult{
		ProtocolVersion: mcp.ProtocolVersion,
		Capabilities:    mcp.ServerCapabilities{},
		ServerInfo:      h.registry.Info(),
	})
}

func (h *Handler) handleToolsList(ctx context.Context, w http.ResponseWriter, req *jsonrpc.Request) {
	defs := h.registry.Tools()
	tools := make([]mcp.Tool, 0, len(defs))
	for _, def := range defs {
		tools = append(tools, def.Describe())
	}
	h.writeResult(ctx, w, req.ID, mcp.ListToolsResult{Tools: tools})
}

func (h *Handler) handleToolsCall(ctx context.Context, w http.ResponseWriter, req *jsonrpc.Request) {
	var params mcp.CallToolParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			h.writeResponse(ctx, w, jsonrpc.NewErrorResponse(req.ID, jsonrpc.ErrorCodeInvalidParams, "Invalid params", err.Error()))
			return
		}
	}

	ctx = logctx.WithToolCall(ctx, &logctx.ToolCallData{ToolName: params.Name})

	text, err := h.registry.Call(ctx, params.Name, params.Arguments)
	if err != nil {
		if errors.Is(err, mcpserver.ErrToolNotFound) {
			h.log.DebugContext(ctx, "tool not found")
			h.writeResponse(ctx, w, jsonrpc.NewErrorResponse(req.ID, jsonrpc.ErrorCodeInvalidParams, "Tool not found", params.Name))
			return
		}

		// Escaped tool failure: not wrapped in a JSON-RPC error envelope.
		h.log.ErrorContext(ctx, "tool execution failed", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.writeResult(ctx, w, req.ID, mcp.CallToolResult{
		Content: []mcp.ContentBlock{{Type: mcp.ContentTypeText, Text: text}},
	})
}

func (h *Handler) handlePromptsList(ctx context.Context, w http.ResponseWriter, req *jsonrpc.Request) {
	texts := h.registry.Prompts()
	prompts := make([]mcp.Prompt, 0, len(texts))
	for _, p := range texts {
		prompts = append(prompts, mcp.Prompt{Name: mcp.DefaultPromptName, Description: p})
	}
	h.writeResult(ctx, w, req.ID, mcp.ListPromptsResult{Prompts: prompts})
}

// writeResult marshals result into a success envelope and writes it.
func (h *Handler) writeResult(ctx context.Context, w http.ResponseWriter, id *jsonrpc.RequestID, result any) {
	res, err := jsonrpc.NewResultResponse(id, result)
	if err != nil {
		h.log.ErrorContext(ctx, "failed to marshal result", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	h.writeResponse(ctx, w, res)
}

// writeResponse writes a JSON-RPC envelope. Success and error envelopes
// alike use HTTP 200; failure semantics live in the RPC layer.
func (h *Handler) writeResponse(ctx context.Context, w http.ResponseWriter, res *jsonrpc.Response) {
	h.writeJSON(ctx, w, res)
}

func (h *Handler) writeJSON(ctx context.Context, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.WarnContext(ctx, "failed to encode response", slog.String("error", err.Error()))
	}
}
