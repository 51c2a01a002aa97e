// Package mcp exposes package lookup as Model Context Protocol tools over
// stdio, so editors and agents can resolve imports without the CLI.
package mcp

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/danlite/as3pkg/internal/config"
	"github.com/danlite/as3pkg/internal/resolve"
	"github.com/danlite/as3pkg/internal/version"
)

const (
	serverName = "as3pkg-mcp-server"

	toolFindPackage = "find_package"
	toolListPackage = "list_package"
)

// Server answers find_package and list_package requests
type Server struct {
	resolver         *resolve.Resolver
	lister           *resolve.Lister
	server           *mcp.Server
	diagnosticLogger *DiagnosticLogger
}

// NewServer creates an MCP server over the sources described by cfg.
// Diagnostics go to a log file so stdio stays reserved for the protocol.
func NewServer(cfg *config.Config) (*Server, error) {
	return newServer(cfg, NewDiagnosticLogger(true))
}

func newServer(cfg *config.Config, logger *DiagnosticLogger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mcp: config is required")
	}

	s := &Server{
		// No presenter: ambiguity is returned to the client as data
		resolver:         resolve.New(cfg),
		lister:           resolve.NewLister(cfg),
		diagnosticLogger: logger,
	}

	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version.Version,
	}, nil)
	s.registerTools()

	logger.Printf("MCP server initialized: %s (project root %q, %d libraries, toc %q)",
		version.FullInfo(), cfg.Project.Root, len(cfg.Libraries), cfg.Docs.TOC)
	return s, nil
}

func (s *Server) registerTools() {
	s.server.AddTool(&mcp.Tool{
		Name: toolFindPackage,
		Description: "Find the fully qualified package path of an ActionScript class name. " +
			"Searches project sources, the Flash/Flex documentation index and external libraries. " +
			"Returns status found, ambiguous (with exact and partial candidates) or not_found (with suggestions). " +
			"candidates lists exact matches first, then partial matches.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"word": {
					Type:        "string",
					Description: "Bare class name, e.g. 'Sprite' or 'EventDispatcher'",
				},
			},
			Required: []string{"word"},
		},
	}, s.handleFindPackage)

	s.server.AddTool(&mcp.Tool{
		Name:        toolListPackage,
		Description: "List the classes declared directly in a package, e.g. 'com.example.ui' or 'com.example.ui.*'. Relative paths are also tried under the project's src directory.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"path": {
					Type:        "string",
					Description: "Dotted package path or directory path",
				},
			},
			Required: []string{"path"},
		},
	}, s.handleListPackage)
}

// recoverFromPanic turns a panicking handler into an error result
func (s *Server) recoverFromPanic(operation string, handler func() (*mcp.CallToolResult, error)) (result *mcp.CallToolResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.diagnosticLogger.Errorf("panic in %s: %v\n%s", operation, r, debug.Stack())
			result, err = createErrorResponse(operation, fmt.Errorf("internal error: %v", r))
		}
	}()

	result, err = handler()
	if err != nil {
		s.diagnosticLogger.Errorf("%s: %v", operation, err)
		return createErrorResponse(operation, err)
	}
	return result, nil
}

// Start serves over stdio until ctx is done or the client disconnects
func (s *Server) Start(ctx context.Context) error {
	s.diagnosticLogger.Printf("Starting MCP server with stdio transport (%s)", version.Info())
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Connect serves a single session over t. Used with in-memory transports.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, t, nil)
}

// Shutdown flushes the diagnostic log
func (s *Server) Shutdown(ctx context.Context) error {
	s.diagnosticLogger.Printf("MCP server shutdown complete")
	return s.diagnosticLogger.Close()
}

// LogPath returns where diagnostics are written
func (s *Server) LogPath() string {
	return s.diagnosticLogger.LogPath()
}
