package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jopsis/mcp-server-oci/internal/oci"
)

func (s *Server) registerResourceTools() {
	s.register(mcp.NewTool("list_availability_domains",
		mcp.WithDescription("List availability domains visible to a compartment."),
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
		return oci.ListAvailabilityDomains(ctx, client, compartmentID)
	})

	s.register(mcp.NewTool("list_fault_domains",
		mcp.WithDescription("List the fault domains of an availability domain."),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment.")),
		mcp.WithString("availability_domain", mcp.Required(), mcp.Description("Availability domain name.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		availabilityDomain, err := requiredString(request, "availability_domain")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Identity()
		if err != nil {
			return nil, err
		}
		return oci.ListFaultDomains(ctx, client, compartmentID, availabilityDomain)
	})

	s.register(mcp.NewTool("list_images",
		mcp.WithDescription("List compute images available to a compartment, optionally filtered by operating system."),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment.")),
		mcp.WithString("operating_system", mcp.Description("Operating system filter, e.g. Oracle Linux.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Compute()
		if err != nil {
			return nil, err
		}
		return oci.ListImages(ctx, client, compartmentID, request.GetString("operating_system", ""))
	})

	s.register(mcp.NewTool("get_image",
		mcp.WithDescription("Get a compute image, including its launch options."),
		mcp.WithString("image_id", mcp.Required(), mcp.Description("OCID of the image.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		imageID, err := requiredString(request, "image_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Compute()
		if err != nil {
			return nil, err
		}
		return oci.GetImage(ctx, client, imageID)
	})

	s.register(mcp.NewTool("list_shapes",
		mcp.WithDescription("List compute shapes available to a compartment, optionally scoped to one availability domain."),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment.")),
		mcp.WithString("availability_domain", mcp.Description("Availability domain to restrict the listing to.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Compute()
		if err != nil {
			return nil, err
		}
		return oci.ListShapes(ctx, client, compartmentID, request.GetString("availability_domain", ""))
	})

	s.register(mcp.NewTool("get_namespace",
		mcp.WithDescription("Get the Object Storage namespace of the tenancy."),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		client, err := s.sess.ObjectStorage()
		if err != nil {
			return nil, err
		}
		namespace, err := oci.ResolveNamespace(ctx, client)
		if err != nil {
			return nil, err
		}
		return map[string]string{"namespace": namespace}, nil
	})

	s.register(mcp.NewTool("list_regions",
		mcp.WithDescription("List all OCI regions."),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		client, err := s.sess.Identity()
		if err != nil {
			return nil, err
		}
		return oci.ListRegions(ctx, client)
	})

	s.register(mcp.NewTool("get_tenancy_info",
		mcp.WithDescription("Get details of the active profile's tenancy."),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		client, err := s.sess.Identity()
		if err != nil {
			return nil, err
		}
		tenancy, err := s.sess.Tenancy()
		if err != nil {
			return nil, err
		}
		return oci.GetTenancyInfo(ctx, client, tenancy)
	})
}
