// Command mcpd serves a small MCP endpoint over plain HTTP JSON-RPC. It is
// configured entirely through the environment and registers a couple of
// built-in demonstration tools.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"

	"github.com/stackbound/mcpd/mcpserver"
	"github.com/stackbound/mcpd/plainhttp"
)

type config struct {
	ListenAddr        string `env:"MCPD_LISTEN_ADDR,default=127.0.0.1:8080"`
	Path              string `env:"MCPD_PATH,default=/mcp"`
	ServerName        string `env:"MCPD_SERVER_NAME,default=mcpd"`
	ServerVersion     string `env:"MCPD_SERVER_VERSION,default=0.1.0"`
	LogLevel          string `env:"MCPD_LOG_LEVEL,default=info"`
	LogFormat         string `env:"MCPD_LOG_FORMAT,default=text"`
	StrictContentType bool   `env:"MCPD_STRICT_CONTENT_TYPE,default=false"`
}

func main() {
	var cfg config
	if err := envdecode.Decode(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "mcpd: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logHandler, err := newLogHandler(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcpd: %v\n", err)
		os.Exit(1)
	}
	log := slog.New(logHandler)

	registry := newRegistry(cfg)

	opts := []plainhttp.Option{plainhttp.WithLogHandler(logHandler)}
	if cfg.StrictContentType {
		opts = append(opts, plainhttp.WithStrictContentType())
	}

	handler, err := plainhttp.New(registry, opts...)
	if err != nil {
		log.Error("failed to build handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.Handle(cfg.Path, handler)

	log.Info("listening",
		slog.String("addr", cfg.ListenAddr),
		slog.String("path", cfg.Path),
		slog.String("server", cfg.ServerName),
		slog.String("version", cfg.ServerVersion),
	)
	if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newLogHandler(cfg config) (slog.Handler, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid MCPD_LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	ho := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		return slog.NewJSONHandler(os.Stderr, ho), nil
	case "text":
		return slog.NewTextHandler(os.Stderr, ho), nil
	default:
		return nil, fmt.Errorf("invalid MCPD_LOG_FORMAT %q: want text or json", cfg.LogFormat)
	}
}

type echoArgs struct {
	Message string `json:"message" jsonschema:"description=Text to echo back"`
}

func newRegistry(cfg config) *mcpserver.Registry {
	return mcpserver.NewRegistry(cfg.ServerName, cfg.ServerVersion).
		AddTool(mcpserver.NewTool("Echo",
			func(ctx context.Context, a echoArgs) (string, error) {
				return a.Message, nil
			},
			mcpserver.WithToolDescription("Echo a message back to the caller"),
		)).
		AddTool(mcpserver.Tool{
			Name:        "CurrentTime",
			Description: "Report the server's current time in RFC 3339 form",
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				return time.Now().Format(time.RFC3339), nil
			},
		}).
		AddPrompt("You are talking to a demonstration MCP server.")
}
