package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jopsis/mcp-server-oci/internal/oci"
)

func (s *Server) registerCompartmentTools() {
	s.register(mcp.NewTool("list_compartments",
		mcp.WithDescription("List all active compartments in the tenancy, including the root compartment."),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		client, err := s.sess.Identity()
		if err != nil {
			return nil, err
		}
		tenancy, err := s.sess.Tenancy()
		if err != nil {
			return nil, err
		}
		return oci.ListCompartments(ctx, client, tenancy)
	})
}

func (s *Server) registerInstanceTools() {
	s.register(mcp.NewTool("list_instances",
		mcp.WithDescription("List all compute instances in a compartment."),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Compute()
		if err != nil {
			return nil, err
		}
		return oci.ListInstances(ctx, client, compartmentID)
	})

	s.register(mcp.NewTool("get_instance",
		mcp.WithDescription("Get details of a compute instance, including metadata and attached VNICs."),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("OCID of the instance.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		instanceID, err := requiredString(request, "instance_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Compute()
		if err != nil {
			return nil, err
		}
		return oci.GetInstance(ctx, client, instanceID)
	})

	s.register(mcp.NewTool("start_instance",
		mcp.WithDescription("Start a stopped compute instance. Returns immediately without waiting for the transition to finish."),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("OCID of the instance.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		instanceID, err := requiredString(request, "instance_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Compute()
		if err != nil {
			return nil, err
		}
		return oci.StartInstance(ctx, client, instanceID)
	})

	s.register(mcp.NewTool("stop_instance",
		mcp.WithDescription("Stop a running compute instance. Soft stop by default; set force for an immediate power off."),
		mcp.WithString("instance_id", mcp.Required(), mcp.Description("OCID of the instance.")),
		mcp.WithBoolean("force", mcp.Description("Power off immediately instead of a graceful OS shutdown.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		instanceID, err := requiredString(request, "instance_id")
		if err != nil {
			return nil, err
		}
		force := request.GetBool("force", false)
		client, err := s.sess.Compute()
		if err != nil {
			return nil, err
		}
		return oci.StopInstance(ctx, client, instanceID, force)
	})
}
