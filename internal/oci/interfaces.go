// Package oci contains the tool bodies: thin operations over the OCI SDK
// clients that reshape responses into JSON-friendly projections.
//
// Each operation takes a narrow client interface covering only the SDK
// methods it calls, so tests can substitute fakes. The production SDK
// clients satisfy these interfaces directly.
package oci

import (
	"context"

	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/oracle/oci-go-sdk/v65/database"
	"github.com/oracle/oci-go-sdk/v65/filestorage"
	"github.com/oracle/oci-go-sdk/v65/identity"
	"github.com/oracle/oci-go-sdk/v65/keymanagement"
	"github.com/oracle/oci-go-sdk/v65/loadbalancer"
	"github.com/oracle/oci-go-sdk/v65/networkloadbalancer"
	"github.com/oracle/oci-go-sdk/v65/objectstorage"
)

// ComputeAPI is the slice of core.ComputeClient used by the tools.
type ComputeAPI interface {
	ListInstances(ctx context.Context, request core.ListInstancesRequest) (core.ListInstancesResponse, error)
	GetInstance(ctx context.Context, request core.GetInstanceRequest) (core.GetInstanceResponse, error)
	InstanceAction(ctx context.Context, request core.InstanceActionRequest) (core.InstanceActionResponse, error)
	ListVnicAttachments(ctx context.Context, request core.ListVnicAttachmentsRequest) (core.ListVnicAttachmentsResponse, error)
	ListImages(ctx context.Context, request core.ListImagesRequest) (core.ListImagesResponse, error)
	GetImage(ctx context.Context, request core.GetImageRequest) (core.GetImageResponse, error)
	ListShapes(ctx context.Context, request core.ListShapesRequest) (core.ListShapesResponse, error)
}

// VirtualNetworkAPI is the slice of core.VirtualNetworkClient used by the tools.
type VirtualNetworkAPI interface {
	ListVcns(ctx context.Context, request core.ListVcnsRequest) (core.ListVcnsResponse, error)
	GetVcn(ctx context.Context, request core.GetVcnRequest) (core.GetVcnResponse, error)
	ListSubnets(ctx context.Context, request core.ListSubnetsRequest) (core.ListSubnetsResponse, error)
	GetSubnet(ctx context.Context, request core.GetSubnetRequest) (core.GetSubnetResponse, error)
	GetVnic(ctx context.Context, request core.GetVnicRequest) (core.GetVnicResponse, error)
	ListSecurityLists(ctx context.Context, request core.ListSecurityListsRequest) (core.ListSecurityListsResponse, error)
	GetSecurityList(ctx context.Context, request core.GetSecurityListRequest) (core.GetSecurityListResponse, error)
	ListNetworkSecurityGroups(ctx context.Context, request core.ListNetworkSecurityGroupsRequest) (core.ListNetworkSecurityGroupsResponse, error)
	GetNetworkSecurityGroup(ctx context.Context, request core.GetNetworkSecurityGroupRequest) (core.GetNetworkSecurityGroupResponse, error)
}

// IdentityAPI is the slice of identity.IdentityClient used by the tools.
type IdentityAPI interface {
	ListCompartments(ctx context.Context, request identity.ListCompartmentsRequest) (identity.ListCompartmentsResponse, error)
	GetCompartment(ctx context.Context, request identity.GetCompartmentRequest) (identity.GetCompartmentResponse, error)
	ListUsers(ctx context.Context, request identity.ListUsersRequest) (identity.ListUsersResponse, error)
	GetUser(ctx context.Context, request identity.GetUserRequest) (identity.GetUserResponse, error)
	ListGroups(ctx context.Context, request identity.ListGroupsRequest) (identity.ListGroupsResponse, error)
	GetGroup(ctx context.Context, request identity.GetGroupRequest) (identity.GetGroupResponse, error)
	ListPolicies(ctx context.Context, request identity.ListPoliciesRequest) (identity.ListPoliciesResponse, error)
	GetPolicy(ctx context.Context, request identity.GetPolicyRequest) (identity.GetPolicyResponse, error)
	ListDynamicGroups(ctx context.Context, request identity.ListDynamicGroupsRequest) (identity.ListDynamicGroupsResponse, error)
	GetDynamicGroup(ctx context.Context, request identity.GetDynamicGroupRequest) (identity.GetDynamicGroupResponse, error)
	ListAvailabilityDomains(ctx context.Context, request identity.ListAvailabilityDomainsRequest) (identity.ListAvailabilityDomainsResponse, error)
	ListFaultDomains(ctx context.Context, request identity.ListFaultDomainsRequest) (identity.ListFaultDomainsResponse, error)
	// ListRegions takes no request struct in the SDK.
	ListRegions(ctx context.Context) (identity.ListRegionsResponse, error)
	GetTenancy(ctx context.Context, request identity.GetTenancyRequest) (identity.GetTenancyResponse, error)
}

// ObjectStorageAPI is the slice of objectstorage.ObjectStorageClient used by the tools.
type ObjectStorageAPI interface {
	GetNamespace(ctx context.Context, request objectstorage.GetNamespaceRequest) (objectstorage.GetNamespaceResponse, error)
	ListBuckets(ctx context.Context, request objectstorage.ListBucketsRequest) (objectstorage.ListBucketsResponse, error)
	GetBucket(ctx context.Context, request objectstorage.GetBucketRequest) (objectstorage.GetBucketResponse, error)
}

// BlockStorageAPI is the slice of core.BlockstorageClient used by the tools.
type BlockStorageAPI interface {
	ListVolumes(ctx context.Context, request core.ListVolumesRequest) (core.ListVolumesResponse, error)
	GetVolume(ctx context.Context, request core.GetVolumeRequest) (core.GetVolumeResponse, error)
	ListBootVolumes(ctx context.Context, request core.ListBootVolumesRequest) (core.ListBootVolumesResponse, error)
	GetBootVolume(ctx context.Context, request core.GetBootVolumeRequest) (core.GetBootVolumeResponse, error)
}

// FileStorageAPI is the slice of filestorage.FileStorageClient used by the tools.
type FileStorageAPI interface {
	ListFileSystems(ctx context.Context, request filestorage.ListFileSystemsRequest) (filestorage.ListFileSystemsResponse, error)
	GetFileSystem(ctx context.Context, request filestorage.GetFileSystemRequest) (filestorage.GetFileSystemResponse, error)
}

// DatabaseAPI is the slice of database.DatabaseClient used by the tools.
type DatabaseAPI interface {
	ListDbSystems(ctx context.Context, request database.ListDbSystemsRequest) (database.ListDbSystemsResponse, error)
	GetDbSystem(ctx context.Context, request database.GetDbSystemRequest) (database.GetDbSystemResponse, error)
	ListDbNodes(ctx context.Context, request database.ListDbNodesRequest) (database.ListDbNodesResponse, error)
	GetDbNode(ctx context.Context, request database.GetDbNodeRequest) (database.GetDbNodeResponse, error)
	DbNodeAction(ctx context.Context, request database.DbNodeActionRequest) (database.DbNodeActionResponse, error)
	ListDatabases(ctx context.Context, request database.ListDatabasesRequest) (database.ListDatabasesResponse, error)
	GetDatabase(ctx context.Context, request database.GetDatabaseRequest) (database.GetDatabaseResponse, error)
	ListAutonomousDatabases(ctx context.Context, request database.ListAutonomousDatabasesRequest) (database.ListAutonomousDatabasesResponse, error)
	GetAutonomousDatabase(ctx context.Context, request database.GetAutonomousDatabaseRequest) (database.GetAutonomousDatabaseResponse, error)
}

// LoadBalancerAPI is the slice of loadbalancer.LoadBalancerClient used by the tools.
type LoadBalancerAPI interface {
	ListLoadBalancers(ctx context.Context, request loadbalancer.ListLoadBalancersRequest) (loadbalancer.ListLoadBalancersResponse, error)
	GetLoadBalancer(ctx context.Context, request loadbalancer.GetLoadBalancerRequest) (loadbalancer.GetLoadBalancerResponse, error)
}

// NetworkLoadBalancerAPI is the slice of networkloadbalancer.NetworkLoadBalancerClient used by the tools.
type NetworkLoadBalancerAPI interface {
	ListNetworkLoadBalancers(ctx context.Context, request networkloadbalancer.ListNetworkLoadBalancersRequest) (networkloadbalancer.ListNetworkLoadBalancersResponse, error)
	GetNetworkLoadBalancer(ctx context.Context, request networkloadbalancer.GetNetworkLoadBalancerRequest) (networkloadbalancer.GetNetworkLoadBalancerResponse, error)
}

// KmsVaultAPI is the slice of keymanagement.KmsVaultClient used by the tools.
type KmsVaultAPI interface {
	ListVaults(ctx context.Context, request keymanagement.ListVaultsRequest) (keymanagement.ListVaultsResponse, error)
	GetVault(ctx context.Context, request keymanagement.GetVaultRequest) (keymanagement.GetVaultResponse, error)
}

// KmsManagementAPI is the slice of keymanagement.KmsManagementClient used by
// the tools. Management clients are bound to a vault's management endpoint.
type KmsManagementAPI interface {
	ListKeys(ctx context.Context, request keymanagement.ListKeysRequest) (keymanagement.ListKeysResponse, error)
	GetKey(ctx context.Context, request keymanagement.GetKeyRequest) (keymanagement.GetKeyResponse, error)
}
