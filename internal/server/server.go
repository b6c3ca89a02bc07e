// Package server is the MCP front end: tool declarations, the handler
// middleware, and the stdio/SSE transports.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jopsis/mcp-server-oci/internal/session"
)

// Server wires the session into an MCP server with every tool
// registered.
type Server struct {
	sess  *session.Session
	mcp   *server.MCPServer
	tools map[string]*RegisteredTool
}

// RegisteredTool pairs a tool declaration with its wrapped handler.
type RegisteredTool struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

// New builds the MCP server and registers the full tool set.
func New(sess *session.Session, version string) *Server {
	s := &Server{
		sess: sess,
		mcp: server.NewMCPServer(
			"mcp-server-oci",
			version,
			server.WithToolCapabilities(true),
		),
		tools: map[string]*RegisteredTool{},
	}

	s.registerProfileTools()
	s.registerCompartmentTools()
	s.registerInstanceTools()
	s.registerNetworkTools()
	s.registerIdentityTools()
	s.registerStorageTools()
	s.registerDatabaseTools()
	s.registerDbSystemTools()
	s.registerSecurityTools()
	s.registerLoadBalancerTools()
	s.registerResourceTools()
	return s
}

// MCP exposes the underlying MCP server.
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// GetTool returns a registered tool by name, or nil.
func (s *Server) GetTool(name string) *RegisteredTool {
	return s.tools[name]
}

// ServeStdio blocks serving the stdio transport.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// ServeSSE blocks serving the SSE transport on the given port.
func (s *Server) ServeSSE(port int) error {
	sse := server.NewSSEServer(s.mcp)
	return sse.Start(fmt.Sprintf(":%d", port))
}
