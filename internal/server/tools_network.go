package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jopsis/mcp-server-oci/internal/oci"
)

func (s *Server) registerNetworkTools() {
	s.register(mcp.NewTool("list_vcns",
		mcp.WithDescription("List all Virtual Cloud Networks in a compartment."),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.VirtualNetwork()
		if err != nil {
			return nil, err
		}
		return oci.ListVcns(ctx, client, compartmentID)
	})

	s.register(mcp.NewTool("get_vcn",
		mcp.WithDescription("Get details of a Virtual Cloud Network."),
		mcp.WithString("vcn_id", mcp.Required(), mcp.Description("OCID of the VCN.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		vcnID, err := requiredString(request, "vcn_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.VirtualNetwork()
		if err != nil {
			return nil, err
		}
		return oci.GetVcn(ctx, client, vcnID)
	})

	s.register(mcp.NewTool("list_subnets",
		mcp.WithDescription("List subnets in a compartment, optionally scoped to one VCN."),
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
		return oci.ListSubnets(ctx, client, compartmentID, request.GetString("vcn_id", ""))
	})

	s.register(mcp.NewTool("get_subnet",
		mcp.WithDescription("Get details of a subnet."),
		mcp.WithString("subnet_id", mcp.Required(), mcp.Description("OCID of the subnet.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		subnetID, err := requiredString(request, "subnet_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.VirtualNetwork()
		if err != nil {
			return nil, err
		}
		return oci.GetSubnet(ctx, client, subnetID)
	})

	s.register(mcp.NewTool("list_vnics",
		mcp.WithDescription("List VNICs attached in a compartment, optionally filtered to one instance."),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment.")),
		mcp.WithString("instance_id", mcp.Description("OCID of an instance to restrict the listing to.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		compute, err := s.sess.Compute()
		if err != nil {
			return nil, err
		}
		network, err := s.sess.VirtualNetwork()
		if err != nil {
			return nil, err
		}
		return oci.ListVnics(ctx, compute, network, compartmentID, request.GetString("instance_id", ""))
	})

	s.register(mcp.NewTool("get_vnic",
		mcp.WithDescription("Get details of a VNIC."),
		mcp.WithString("vnic_id", mcp.Required(), mcp.Description("OCID of the VNIC.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		vnicID, err := requiredString(request, "vnic_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.VirtualNetwork()
		if err != nil {
			return nil, err
		}
		return oci.GetVnic(ctx, client, vnicID)
	})
}
