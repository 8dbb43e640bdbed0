// Package mcp is the tool dispatch boundary: it translates MCP tool calls
// into session lifecycle operations and wraps every outcome in a uniform
// text result. Internal failures become error-flagged tool results, never
// protocol faults.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/shellwright/shellwright/internal/privileged"
	"github.com/shellwright/shellwright/internal/syslogs"
	"github.com/shellwright/shellwright/internal/terminal"
)

const (
	serverName    = "shellwright"
	serverVersion = "0.3.0"
)

// Server wires the MCP transport to the terminal control plane.
type Server struct {
	mcpServer *server.MCPServer
	terminals *terminal.Manager
	root      *privileged.Runner
	logs      *syslogs.Service
	log       *zap.Logger
}

// NewServer builds the MCP server and registers all tools.
func NewServer(terminals *terminal.Manager, root *privileged.Runner, logs *syslogs.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		terminals: terminals,
		root:      root,
		logs:      logs,
		log:       log,
	}

	s.mcpServer = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.registerTools()

	return s
}

// Serve runs the stdio transport until the client disconnects.
func (s *Server) Serve() error {
	s.log.Info("serving MCP over stdio",
		zap.String("server", serverName),
		zap.String("version", serverVersion))
	return server.ServeStdio(s.mcpServer)
}
