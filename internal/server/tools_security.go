package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jopsis/mcp-server-oci/internal/oci"
)

func (s *Server) registerSecurityTools() {
	s.register(mcp.NewTool("list_security_lists",
		mcp.WithDescription("List security lists in a compartment with rule counts, optionally scoped to one VCN."),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment.")),
		mcp.WithString("vcn_id", mcp.Description("OCID of a VCN to restrict the listing to.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.VirtualNetwork()
		if err != nil {
			return nil, err
		}
		return oci.ListSecurityLists(ctx, client, compartmentID, request.GetString("vcn_id", ""))
	})

	s.register(mcp.NewTool("get_security_list",
		mcp.WithDescription("Get a security list with its full ingress and egress rules."),
		mcp.WithString("security_list_id", mcp.Required(), mcp.Description("OCID of the security list.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		securityListID, err := requiredString(request, "security_list_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.VirtualNetwork()
		if err != nil {
			return nil, err
		}
		return oci.GetSecurityList(ctx, client, securityListID)
	})

	s.register(mcp.NewTool("list_network_security_groups",
		mcp.WithDescription("List network security groups in a compartment, optionally scoped to one VCN."),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment.")),
		mcp.WithString("vcn_id", mcp.Description("OCID of a VCN to restrict the listing to.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.VirtualNetwork()
		if err != nil {
			return nil, err
		}
		return oci.ListNetworkSecurityGroups(ctx, client, compartmentID, request.GetString("vcn_id", ""))
	})

	s.register(mcp.NewTool("get_network_security_group",
		mcp.WithDescription("Get details of a network security group."),
		mcp.WithString("nsg_id", mcp.Required(), mcp.Description("OCID of the network security group.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		nsgID, err := requiredString(request, "nsg_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.VirtualNetwork()
		if err != nil {
			return nil, err
		}
		return oci.GetNetworkSecurityGroup(ctx, client, nsgID)
	})

	s.register(mcp.NewTool("list_vaults",
		mcp.WithDescription("List KMS vaults in a compartment."),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.KmsVault()
		if err != nil {
			return nil, err
		}
		return oci.ListVaults(ctx, client, compartmentID)
	})

	s.register(mcp.NewTool("get_vault",
		mcp.WithDescription("Get details of a KMS vault, including its management and crypto endpoints."),
		mcp.WithString("vault_id", mcp.Required(), mcp.Description("OCID of the vault.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		vaultID, err := requiredString(request, "vault_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.KmsVault()
		if err != nil {
			return nil, err
		}
		return oci.GetVault(ctx, client, vaultID)
	})

	s.register(mcp.NewTool("list_keys",
		mcp.WithDescription("List KMS keys in a compartment. Requires the vault's management endpoint (see get_vault)."),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment.")),
		mcp.WithString("management_endpoint", mcp.Required(), mcp.Description("Management endpoint URL of the vault holding the keys.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		endpoint, err := requiredString(request, "management_endpoint")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.KmsManagement(endpoint)
		if err != nil {
			return nil, err
		}
		return oci.ListKeys(ctx, client, compartmentID)
	})

	s.register(mcp.NewTool("get_key",
		mcp.WithDescription("Get details of a KMS key. Requires the vault's management endpoint (see get_vault)."),
		mcp.WithString("key_id", mcp.Required(), mcp.Description("OCID of the key.")),
		mcp.WithString("management_endpoint", mcp.Required(), mcp.Description("Management endpoint URL of the vault holding the key.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		keyID, err := requiredString(request, "key_id")
		if err != nil {
			return nil, err
		}
		endpoint, err := requiredString(request, "management_endpoint")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.KmsManagement(endpoint)
		if err != nil {
			return nil, err
		}
		return oci.GetKey(ctx, client, keyID)
	})
}
