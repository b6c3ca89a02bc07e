package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jopsis/mcp-server-oci/internal/oci"
)

func (s *Server) registerStorageTools() {
	s.register(mcp.NewTool("list_buckets",
		mcp.WithDescription("List Object Storage buckets in a compartment. The namespace is resolved automatically when omitted."),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment.")),
		mcp.WithString("namespace_name", mcp.Description("Object Storage namespace; defaults to the tenancy's namespace.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.ObjectStorage()
		if err != nil {
			return nil, err
		}
		return oci.ListBuckets(ctx, client, compartmentID, request.GetString("namespace_name", ""))
	})

	s.register(mcp.NewTool("get_bucket",
		mcp.WithDescription("Get details of an Object Storage bucket."),
		mcp.WithString("bucket_name", mcp.Required(), mcp.Description("Name of the bucket.")),
		mcp.WithString("namespace_name", mcp.Description("Object Storage namespace; defaults to the tenancy's namespace.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		bucketName, err := requiredString(request, "bucket_name")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.ObjectStorage()
		if err != nil {
			return nil, err
		}
		return oci.GetBucket(ctx, client, request.GetString("namespace_name", ""), bucketName)
	})

	s.register(mcp.NewTool("list_volumes",
		mcp.WithDescription("List block volumes in a compartment."),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.BlockStorage()
		if err != nil {
			return nil, err
		}
		return oci.ListVolumes(ctx, client, compartmentID)
	})

	s.register(mcp.NewTool("get_volume",
		mcp.WithDescription("Get details of a block volume."),
		mcp.WithString("volume_id", mcp.Required(), mcp.Description("OCID of the volume.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		volumeID, err := requiredString(request, "volume_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.BlockStorage()
		if err != nil {
			return nil, err
		}
		return oci.GetVolume(ctx, client, volumeID)
	})

	s.register(mcp.NewTool("list_boot_volumes",
		mcp.WithDescription("List boot volumes in a compartment and availability domain."),
		mcp.WithString("availability_domain", mcp.Required(), mcp.Description("Availability domain name, e.g. Uocm:PHX-AD-1.")),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		availabilityDomain, err := requiredString(request, "availability_domain")
		if err != nil {
			return nil, err
		}
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.BlockStorage()
		if err != nil {
			return nil, err
		}
		return oci.ListBootVolumes(ctx, client, availabilityDomain, compartmentID)
	})

	s.register(mcp.NewTool("get_boot_volume",
		mcp.WithDescription("Get details of a boot volume."),
		mcp.WithString("boot_volume_id", mcp.Required(), mcp.Description("OCID of the boot volume.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		bootVolumeID, err := requiredString(request, "boot_volume_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.BlockStorage()
		if err != nil {
			return nil, err
		}
		return oci.GetBootVolume(ctx, client, bootVolumeID)
	})

	s.register(mcp.NewTool("list_file_systems",
		mcp.WithDescription("List file systems in a compartment and availability domain."),
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
		client, err := s.sess.FileStorage()
		if err != nil {
			return nil, err
		}
		return oci.ListFileSystems(ctx, client, compartmentID, availabilityDomain)
	})

	s.register(mcp.NewTool("get_file_system",
		mcp.WithDescription("Get details of a file system."),
		mcp.WithString("file_system_id", mcp.Required(), mcp.Description("OCID of the file system.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		fileSystemID, err := requiredString(request, "file_system_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.FileStorage()
		if err != nil {
			return nil, err
		}
		return oci.GetFileSystem(ctx, client, fileSystemID)
	})
}
