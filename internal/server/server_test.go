package server

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jopsis/mcp-server-oci/internal/oci"
	"github.com/jopsis/mcp-server-oci/internal/profile"
	"github.com/jopsis/mcp-server-oci/internal/session"
)

// fakeCompute serves one canned instance page and records calls.
type fakeCompute struct {
	oci.ComputeAPI

	listCalls int
	listErr   error
}

func (f *fakeCompute) ListInstances(ctx context.Context, request core.ListInstancesRequest) (core.ListInstancesResponse, error) {
	f.listCalls++
	if f.listErr != nil {
		return core.ListInstancesResponse{}, f.listErr
	}
	return core.ListInstancesResponse{
		Items: []core.Instance{{
			Id:             common.String("ocid1.instance.oc1..i1"),
			DisplayName:    common.String("web-1"),
			LifecycleState: core.InstanceLifecycleStateRunning,
		}},
	}, nil
}

type fakeVirtualNetwork struct{ oci.VirtualNetworkAPI }
type fakeIdentity struct{ oci.IdentityAPI }
type fakeObjectStorage struct{ oci.ObjectStorageAPI }
type fakeBlockStorage struct{ oci.BlockStorageAPI }
type fakeFileStorage struct{ oci.FileStorageAPI }
type fakeDatabase struct{ oci.DatabaseAPI }
type fakeLoadBalancer struct{ oci.LoadBalancerAPI }
type fakeNetworkLoadBalancer struct{ oci.NetworkLoadBalancerAPI }
type fakeKmsVault struct{ oci.KmsVaultAPI }
type fakeKmsManagement struct{ oci.KmsManagementAPI }

// fakeFactory hands out the shared fakeCompute and inert fakes for the
// rest.
type fakeFactory struct {
	compute *fakeCompute
	builds  int
}

func (f *fakeFactory) Compute(p profile.Profile) (oci.ComputeAPI, error) {
	f.builds++
	return f.compute, nil
}

func (f *fakeFactory) VirtualNetwork(p profile.Profile) (oci.VirtualNetworkAPI, error) {
	return fakeVirtualNetwork{}, nil
}

func (f *fakeFactory) Identity(p profile.Profile) (oci.IdentityAPI, error) {
	return fakeIdentity{}, nil
}

func (f *fakeFactory) ObjectStorage(p profile.Profile) (oci.ObjectStorageAPI, error) {
	return fakeObjectStorage{}, nil
}

func (f *fakeFactory) BlockStorage(p profile.Profile) (oci.BlockStorageAPI, error) {
	return fakeBlockStorage{}, nil
}

func (f *fakeFactory) FileStorage(p profile.Profile) (oci.FileStorageAPI, error) {
	return fakeFileStorage{}, nil
}

func (f *fakeFactory) Database(p profile.Profile) (oci.DatabaseAPI, error) {
	return fakeDatabase{}, nil
}

func (f *fakeFactory) LoadBalancer(p profile.Profile) (oci.LoadBalancerAPI, error) {
	return fakeLoadBalancer{}, nil
}

func (f *fakeFactory) NetworkLoadBalancer(p profile.Profile) (oci.NetworkLoadBalancerAPI, error) {
	return fakeNetworkLoadBalancer{}, nil
}

func (f *fakeFactory) KmsVault(p profile.Profile) (oci.KmsVaultAPI, error) {
	return fakeKmsVault{}, nil
}

func (f *fakeFactory) KmsManagement(p profile.Profile, endpoint string) (oci.KmsManagementAPI, error) {
	return fakeKmsManagement{}, nil
}

const testConfig = `[TEST]
user=ocid1.user.oc1..test
tenancy=ocid1.tenancy.oc1..test
region=eu-frankfurt-1
fingerprint=aa:bb
`

func newTestServer(t *testing.T) (*Server, *fakeFactory) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

	factory := &fakeFactory{compute: &fakeCompute{}}
	sess := session.New(profile.NewRegistry(path), factory)
	return New(sess, "test"), factory
}

func callTool(t *testing.T, s *Server, name string, args map[string]any) string {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "tool %s should be registered", name)

	request := mcp.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = args

	result, err := tool.Handler(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "content should be text")
	return text.Text
}

func TestToolRequiresProfileShortCircuit(t *testing.T) {
	s, factory := newTestServer(t)

	text := callTool(t, s, "list_instances", map[string]any{
		"compartment_id": "ocid1.compartment.oc1..c",
	})

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &payload))
	assert.Equal(t, true, payload["requires_profile"])
	assert.Contains(t, payload["error"], "No OCI profile selected")
	assert.Equal(t, 0, factory.builds, "handler must not run without a profile")
	assert.Equal(t, 0, factory.compute.listCalls)
}

func TestProfileToolsDoNotRequireProfile(t *testing.T) {
	s, _ := newTestServer(t)

	text := callTool(t, s, "get_current_profile", nil)
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &payload))
	assert.Nil(t, payload["profile"])

	text = callTool(t, s, "list_oci_profiles", nil)
	var profiles []map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &profiles))
	require.Len(t, profiles, 1)
	assert.Equal(t, "TEST", profiles[0]["name"])
}

func TestSetProfileThenListInstances(t *testing.T) {
	s, factory := newTestServer(t)

	text := callTool(t, s, "set_oci_profile", map[string]any{"profile": "TEST"})
	var switched map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &switched))
	assert.Equal(t, true, switched["success"])

	text = callTool(t, s, "list_instances", map[string]any{
		"compartment_id": "ocid1.compartment.oc1..c",
	})
	var instances []map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &instances))
	require.Len(t, instances, 1)
	assert.Equal(t, "web-1", instances[0]["name"])
	assert.Equal(t, true, instances[0]["is_running"])
	assert.Equal(t, 1, factory.compute.listCalls)
}

func TestSetUnknownProfileError(t *testing.T) {
	s, _ := newTestServer(t)

	text := callTool(t, s, "set_oci_profile", map[string]any{"profile": "NOPE"})
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &payload))
	assert.Contains(t, payload["error"], "not found")
	assert.Nil(t, payload["requires_profile"])
}

func TestMissingRequiredParam(t *testing.T) {
	s, _ := newTestServer(t)
	callTool(t, s, "set_oci_profile", map[string]any{"profile": "TEST"})

	text := callTool(t, s, "list_instances", nil)
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &payload))
	assert.Contains(t, payload["error"], "compartment_id")
}

func TestProviderErrorConversion(t *testing.T) {
	s, factory := newTestServer(t)
	factory.compute.listErr = errors.New("service unavailable")

	callTool(t, s, "set_oci_profile", map[string]any{"profile": "TEST"})
	text := callTool(t, s, "list_instances", map[string]any{
		"compartment_id": "ocid1.compartment.oc1..c",
	})

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &payload))
	assert.Equal(t, "service unavailable", payload["error"])
}

func TestAllCatalogToolsRegistered(t *testing.T) {
	s, _ := newTestServer(t)

	names := []string{
		"list_oci_profiles", "get_current_profile", "set_oci_profile",
		"list_compartments",
		"list_instances", "get_instance", "start_instance", "stop_instance",
		"list_vcns", "get_vcn", "list_subnets", "get_subnet", "list_vnics", "get_vnic",
		"list_users", "get_user", "list_groups", "get_group",
		"list_policies", "get_policy", "list_dynamic_groups", "get_dynamic_group",
		"list_buckets", "get_bucket", "list_volumes", "get_volume",
		"list_boot_volumes", "get_boot_volume", "list_file_systems", "get_file_system",
		"list_databases", "get_database", "list_autonomous_databases", "get_autonomous_database",
		"list_db_systems", "get_db_system", "list_db_nodes", "get_db_node",
		"start_db_node", "stop_db_node", "reboot_db_node", "reset_db_node",
		"softreset_db_node", "start_db_system", "stop_db_system",
		"list_security_lists", "get_security_list",
		"list_network_security_groups", "get_network_security_group",
		"list_vaults", "get_vault", "list_keys", "get_key",
		"list_load_balancers", "get_load_balancer",
		"list_network_load_balancers", "get_network_load_balancer",
		"list_availability_domains", "list_fault_domains",
		"list_images", "get_image", "list_shapes",
		"get_namespace", "list_regions", "get_tenancy_info",
	}
	for _, name := range names {
		assert.NotNil(t, s.GetTool(name), "tool %s should be registered", name)
	}
	assert.Len(t, names, 65)
}
