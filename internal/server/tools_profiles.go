package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Profile tools manage the session's active profile; none of them
// require one to already be selected.
func (s *Server) registerProfileTools() {
	s.register(mcp.NewTool("list_oci_profiles",
		mcp.WithDescription("List the profiles available in the OCI config file (~/.oci/config)."),
	), false, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		return s.sess.Profiles()
	})

	s.register(mcp.NewTool("get_current_profile",
		mcp.WithDescription("Show the currently active OCI profile."),
	), false, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		p, err := s.sess.ActiveProfile()
		if err != nil {
			return map[string]any{
				"profile": nil,
				"message": "No OCI profile selected. Use set_oci_profile to choose one.",
			}, nil
		}
		return p, nil
	})

	s.register(mcp.NewTool("set_oci_profile",
		mcp.WithDescription("Select the OCI profile to use for all subsequent calls."),
		mcp.WithString("profile", mcp.Required(), mcp.Description("Profile name as listed by list_oci_profiles.")),
	), false, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		name, err := requiredString(request, "profile")
		if err != nil {
			return nil, err
		}
		p, err := s.sess.SetProfile(name)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success": true,
			"profile": p,
			"message": fmt.Sprintf("Profile switched to %s", p.Name),
		}, nil
	})
}
