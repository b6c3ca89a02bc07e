package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jopsis/mcp-server-oci/internal/oci"
)

// identityList registers a compartment-scoped list tool backed by the
// identity client.
func identityList[T any](s *Server, name, description string, list func(ctx context.Context, client oci.IdentityAPI, compartmentID string) ([]T, error)) {
	s.register(mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Identity()
		if err != nil {
			return nil, err
		}
		return list(ctx, client, compartmentID)
	})
}

// identityGet registers a single-resource get tool backed by the
// identity client.
func identityGet[T any](s *Server, name, description, param, paramDescription string, get func(ctx context.Context, client oci.IdentityAPI, id string) (*T, error)) {
	s.register(mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithString(param, mcp.Required(), mcp.Description(paramDescription)),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		id, err := requiredString(request, param)
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Identity()
		if err != nil {
			return nil, err
		}
		return get(ctx, client, id)
	})
}

func (s *Server) registerIdentityTools() {
	identityList(s, "list_users",
		"List IAM users in a compartment (use the tenancy OCID for all users).",
		oci.ListUsers)
	identityGet(s, "get_user",
		"Get details of an IAM user.",
		"user_id", "OCID of the user.",
		oci.GetUser)

	identityList(s, "list_groups",
		"List IAM groups in a compartment (use the tenancy OCID for all groups).",
		oci.ListGroups)
	identityGet(s, "get_group",
		"Get details of an IAM group.",
		"group_id", "OCID of the group.",
		oci.GetGroup)

	identityList(s, "list_policies",
		"List IAM policies in a compartment.",
		oci.ListPolicies)
	identityGet(s, "get_policy",
		"Get details of an IAM policy, including its statements.",
		"policy_id", "OCID of the policy.",
		oci.GetPolicy)

	identityList(s, "list_dynamic_groups",
		"List dynamic groups in a compartment (use the tenancy OCID).",
		oci.ListDynamicGroups)
	identityGet(s, "get_dynamic_group",
		"Get details of a dynamic group, including its matching rule.",
		"dynamic_group_id", "OCID of the dynamic group.",
		oci.GetDynamicGroup)
}
