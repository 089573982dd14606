// Package main provides the joplin-mcp gateway binary. It exposes a
// local Joplin instance's Data API as a set of MCP tools, so MCP
// clients (editors, chat frontends, agent runtimes) can list, search,
// read, and edit notes through one server process.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Paladiamors/joplin-api/pkg/config"
	"github.com/Paladiamors/joplin-api/pkg/joplin"
	"github.com/Paladiamors/joplin-api/pkg/logging"
	"github.com/Paladiamors/joplin-api/pkg/tools"
	"github.com/Paladiamors/joplin-api/pkg/tools/folders"
	"github.com/Paladiamors/joplin-api/pkg/tools/notes"
)

const (
	version    = "0.1.0"      // Version of the joplin-mcp gateway
	serverName = "joplin-mcp" // Server name reported to MCP clients

	// startupProbeTimeout bounds the reachability check at startup; it
	// is deliberately shorter than the per-request timeout so a dead
	// upstream doesn't stall serving.
	startupProbeTimeout = 5 * time.Second

	// shutdownTimeout bounds how long the SSE server may take to drain
	// connections after a shutdown signal.
	shutdownTimeout = 5 * time.Second
)

// cliFlags holds the command line configuration. Flags override both
// the config file and the environment.
type cliFlags struct {
	ConfigPath  string
	Token       string
	BaseURL     string
	Timeout     time.Duration
	Transport   string
	SSEAddr     string
	ReadOnly    bool
	ShowVersion bool
}

func main() {
	flags := parseFlags()

	// Show version if requested
	if flags.ShowVersion {
		fmt.Printf("%s v%s\n", serverName, version)
		return
	}

	// Load .env before reading the environment
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	applyFlags(&cfg, flags)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Create context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down gracefully...")
		cancel()
	}()

	if runErr := run(ctx, cfg); runErr != nil {
		cancel()
		log.Fatalf("Application error: %v", runErr)
	}
}

// parseFlags parses command line flags
func parseFlags() *cliFlags {
	flags := &cliFlags{}

	flag.StringVar(&flags.ConfigPath, "config", "", "Path to a YAML configuration file (optional)")
	flag.StringVar(&flags.Token, "token", "", "Joplin API token (or set JOPLIN_TOKEN env var)")
	flag.StringVar(&flags.BaseURL, "base-url", "", "Joplin Data API address (or set JOPLIN_BASE_URL env var)")
	flag.DurationVar(&flags.Timeout, "timeout", 0, "Upstream request timeout, e.g. 45s (or set JOPLIN_TIMEOUT env var)")
	flag.StringVar(&flags.Transport, "transport", "", "Transport to serve on: stdio or sse")
	flag.StringVar(&flags.SSEAddr, "sse-addr", "", "Listen address for the sse transport, e.g. :8765")
	flag.BoolVar(&flags.ReadOnly, "read-only", false, "Expose only tools that cannot change notes")
	flag.BoolVar(&flags.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "joplin-mcp - an MCP gateway for the Joplin Data API\n\n")
		fmt.Fprintf(os.Stderr, "Usage: joplin-mcp [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  JOPLIN_TOKEN       Joplin Web Clipper API token (required)\n")
		fmt.Fprintf(os.Stderr, "  JOPLIN_BASE_URL    Joplin Data API address (default %s)\n", config.DefaultBaseURL)
		fmt.Fprintf(os.Stderr, "  JOPLIN_TIMEOUT     Upstream request timeout, e.g. 45s\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # stdio transport (default), token from the environment\n")
		fmt.Fprintf(os.Stderr, "  JOPLIN_TOKEN=abc123 joplin-mcp\n\n")
		fmt.Fprintf(os.Stderr, "  # read-only gateway from a config file\n")
		fmt.Fprintf(os.Stderr, "  joplin-mcp -config config.yaml -read-only\n\n")
		fmt.Fprintf(os.Stderr, "  # serve over SSE for clients that speak HTTP\n")
		fmt.Fprintf(os.Stderr, "  joplin-mcp -transport sse -sse-addr :8765\n")
	}

	flag.Parse()
	return flags
}

// applyFlags overlays flags that were actually passed onto the loaded
// configuration. flag.Visit only reports set flags, so defaults here
// never clobber file or environment values.
func applyFlags(cfg *config.Config, flags *cliFlags) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "token":
			cfg.Token = flags.Token
		case "base-url":
			cfg.BaseURL = flags.BaseURL
		case "timeout":
			cfg.Timeout = flags.Timeout
		case "transport":
			cfg.Transport = flags.Transport
		case "sse-addr":
			cfg.SSEAddr = flags.SSEAddr
		case "read-only":
			cfg.Tools.ReadOnly = flags.ReadOnly
		}
	})
}

// run executes the main application logic
func run(ctx context.Context, cfg config.Config) error {
	// NewLogger hands back a stderr fallback together with its error,
	// so logging failures degrade diagnostics but never stop the
	// gateway from serving.
	logger, err := logging.NewLogger("main")
	if err != nil {
		logger.Warnf("session log file unavailable, logging to stderr: %v", err)
	}
	defer logger.Close()

	logger.Infof("starting %s v%s (transport: %s)", serverName, version, cfg.Transport)

	clientLogger, err := logging.NewLogger("joplin")
	if err != nil {
		logger.Warnf("client session log unavailable, logging to stderr: %v", err)
	}
	defer clientLogger.Close()

	client, err := joplin.NewClient(cfg.Token,
		joplin.WithBaseURL(cfg.BaseURL),
		joplin.WithTimeout(cfg.Timeout),
		joplin.WithLogger(clientLogger),
	)
	if err != nil {
		return fmt.Errorf("failed to create joplin client: %w", err)
	}

	// Probe the upstream so obvious misconfiguration shows up at
	// startup instead of on the first tool call. Joplin may simply not
	// be running yet, so an unreachable upstream is a warning, not a
	// startup failure.
	probeCtx, cancelProbe := context.WithTimeout(ctx, startupProbeTimeout)
	if err := client.Ping(probeCtx); err != nil {
		logger.Warnf("joplin not answering at %s: %v", cfg.BaseURL, err)
	} else {
		logger.Infof("joplin answering at %s", cfg.BaseURL)
	}
	cancelProbe()

	policy, err := tools.NewPolicy(cfg.Tools.ReadOnly, cfg.Tools.Allowed, cfg.Tools.Denied)
	if err != nil {
		return fmt.Errorf("invalid tool policy: %w", err)
	}

	registry := tools.NewRegistry()
	gatewayTools := []tools.Tool{
		notes.NewListNotesTool(client),
		notes.NewSearchNotesTool(client),
		notes.NewGetNoteTool(client),
		notes.NewCreateNoteTool(client),
		notes.NewUpdateNoteTool(client),
		notes.NewDeleteNoteTool(client),
		folders.NewListFoldersTool(client),
		folders.NewListNotesInFolderTool(client),
	}
	for _, tool := range gatewayTools {
		if err := registry.Register(tool); err != nil {
			return fmt.Errorf("failed to register tool: %w", err)
		}
	}

	srv := newMCPServer(registry, policy, logger)

	switch cfg.Transport {
	case config.TransportSSE:
		return runSSE(ctx, srv, cfg.SSEAddr, logger)
	default:
		return runStdio(ctx, srv, logger)
	}
}

// newMCPServer assembles the MCP server: tool-call logging hooks,
// panic recovery, and every tool the policy admits.
func newMCPServer(registry *tools.Registry, policy *tools.Policy, logger *logging.Logger) *server.MCPServer {
	hooks := &server.Hooks{}
	hooks.AddBeforeCallTool(func(ctx context.Context, id any, message *mcp.CallToolRequest) {
		logger.Infof("tool call: %s", message.Params.Name)
	})
	hooks.AddAfterCallTool(func(ctx context.Context, id any, message *mcp.CallToolRequest, result *mcp.CallToolResult) {
		if result != nil && result.IsError {
			logger.Warnf("tool call failed: %s", message.Params.Name)
		}
	})

	srv := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithHooks(hooks),
	)

	installed := registry.Install(srv, policy)
	logger.Infof("installed tools: %v", installed)
	if withheld := registry.Count() - len(installed); withheld > 0 {
		logger.Infof("%d tools withheld by policy", withheld)
	}

	return srv
}

// runStdio serves MCP over stdin/stdout. Stdout belongs to the
// protocol, so server diagnostics go to the session log instead.
func runStdio(ctx context.Context, srv *server.MCPServer, logger *logging.Logger) error {
	logger.Infof("serving on stdio")

	stdioServer := server.NewStdioServer(srv)
	stdioServer.SetErrorLogger(log.New(logger.Writer(), "", log.LstdFlags))

	err := stdioServer.Listen(ctx, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio server error: %w", err)
	}

	logger.Infof("stdio server stopped")
	return nil
}

// runSSE serves MCP over HTTP with server-sent events.
func runSSE(ctx context.Context, srv *server.MCPServer, addr string, logger *logging.Logger) error {
	sseServer := server.NewSSEServer(srv)

	errCh := make(chan error, 1)
	go func() {
		errCh <- sseServer.Start(addr)
	}()

	logger.Infof("serving SSE on %s", addr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("sse server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("sse shutdown error: %w", err)
		}
		logger.Infof("sse server stopped")
		return nil
	}
}
