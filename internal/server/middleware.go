package server

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jopsis/mcp-server-oci/internal/logging"
	"github.com/jopsis/mcp-server-oci/internal/ocierr"
)

// toolFunc is a tool body adapter: it extracts parameters from the
// request and returns a JSON-marshallable payload or an error. It never
// builds error payloads itself.
type toolFunc func(ctx context.Context, request mcp.CallToolRequest) (any, error)

// register declares a tool and wraps its handler with the shared
// middleware. requiresProfile short-circuits the handler when no
// profile is active.
func (s *Server) register(tool mcp.Tool, requiresProfile bool, fn toolFunc) {
	handler := s.wrap(tool.Name, requiresProfile, fn)
	s.tools[tool.Name] = &RegisteredTool{Tool: tool, Handler: handler}
	s.mcp.AddTool(tool, handler)
}

// wrap is the single conversion point between tool bodies and MCP
// results. Errors become {"error": ...} payloads and never propagate
// to the MCP library. Exactly one exit line is logged per call.
func (s *Server) wrap(name string, requiresProfile bool, fn toolFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logging.Debug().
			Str("tool", name).
			Interface("arguments", request.GetArguments()).
			Msg("tool call")

		if requiresProfile && !s.sess.HasProfile() {
			logging.Warn().Str("tool", name).Msg("no active profile")
			return errorResult(&ocierr.NoActiveProfileError{}), nil
		}

		payload, err := fn(ctx, request)
		if err != nil {
			logging.Error().Str("tool", name).Err(err).Msg("tool failed")
			return errorResult(err), nil
		}
		logging.Debug().Str("tool", name).Msg("tool done")
		return jsonResult(payload), nil
	}
}

func errorResult(err error) *mcp.CallToolResult {
	payload := map[string]any{"error": ocierr.Summary(err)}
	if ocierr.RequiresProfile(err) {
		payload["requires_profile"] = true
	}
	return jsonResult(payload)
}

func jsonResult(payload any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		logging.Error().Err(err).Msg("encoding tool result")
		return mcp.NewToolResultText(`{"error": "failed to encode result"}`)
	}
	return mcp.NewToolResultText(string(data))
}

// requiredString extracts a required string parameter, mapping absence
// to a validation error.
func requiredString(request mcp.CallToolRequest, name string) (string, error) {
	value, err := request.RequireString(name)
	if err != nil || value == "" {
		return "", ocierr.MissingParam(name)
	}
	return value, nil
}
