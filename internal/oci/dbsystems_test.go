package oci

import (
	"context"
	"testing"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDatabaseAPI serves DB nodes by OCID and records node actions.
type fakeDatabaseAPI struct {
	DatabaseAPI

	nodes   map[string]database.DbNode
	actions []database.DbNodeActionRequest
}

func (f *fakeDatabaseAPI) GetDbNode(ctx context.Context, request database.GetDbNodeRequest) (database.GetDbNodeResponse, error) {
	return database.GetDbNodeResponse{DbNode: f.nodes[*request.DbNodeId]}, nil
}

func (f *fakeDatabaseAPI) ListDbNodes(ctx context.Context, request database.ListDbNodesRequest) (database.ListDbNodesResponse, error) {
	var items []database.DbNodeSummary
	for id, node := range f.nodes {
		items = append(items, database.DbNodeSummary{
			Id:             common.String(id),
			DbSystemId:     request.DbSystemId,
			LifecycleState: database.DbNodeSummaryLifecycleStateEnum(node.LifecycleState),
		})
	}
	return database.ListDbNodesResponse{Items: items}, nil
}

func (f *fakeDatabaseAPI) DbNodeAction(ctx context.Context, request database.DbNodeActionRequest) (database.DbNodeActionResponse, error) {
	f.actions = append(f.actions, request)
	return database.DbNodeActionResponse{}, nil
}

func dbNode(state database.DbNodeLifecycleStateEnum) database.DbNode {
	return database.DbNode{
		Id:             common.String("ocid1.dbnode.oc1..n1"),
		LifecycleState: state,
	}
}

func TestStartDbNode(t *testing.T) {
	t.Run("already running", func(t *testing.T) {
		fake := &fakeDatabaseAPI{nodes: map[string]database.DbNode{
			"ocid1.dbnode.oc1..n1": dbNode(database.DbNodeLifecycleStateAvailable),
		}}

		result, err := StartDbNode(context.Background(), fake, "ocid1.dbnode.oc1..n1")
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.True(t, result.AlreadyRunning)
		assert.Empty(t, fake.actions)
	})

	t.Run("stopped issues start", func(t *testing.T) {
		fake := &fakeDatabaseAPI{nodes: map[string]database.DbNode{
			"ocid1.dbnode.oc1..n1": dbNode(database.DbNodeLifecycleStateStopped),
		}}

		result, err := StartDbNode(context.Background(), fake, "ocid1.dbnode.oc1..n1")
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "STARTING", result.CurrentState)
		require.Len(t, fake.actions, 1)
		assert.Equal(t, database.DbNodeActionActionStart, fake.actions[0].Action)
	})

	t.Run("transitional state rejected", func(t *testing.T) {
		fake := &fakeDatabaseAPI{nodes: map[string]database.DbNode{
			"ocid1.dbnode.oc1..n1": dbNode(database.DbNodeLifecycleStateStarting),
		}}

		result, err := StartDbNode(context.Background(), fake, "ocid1.dbnode.oc1..n1")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Empty(t, fake.actions)
	})
}

func TestStopDbNode(t *testing.T) {
	t.Run("already stopped", func(t *testing.T) {
		fake := &fakeDatabaseAPI{nodes: map[string]database.DbNode{
			"ocid1.dbnode.oc1..n1": dbNode(database.DbNodeLifecycleStateStopped),
		}}

		result, err := StopDbNode(context.Background(), fake, "ocid1.dbnode.oc1..n1", false)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.True(t, result.AlreadyStopped)
		assert.Empty(t, fake.actions)
	})

	t.Run("available issues stop", func(t *testing.T) {
		fake := &fakeDatabaseAPI{nodes: map[string]database.DbNode{
			"ocid1.dbnode.oc1..n1": dbNode(database.DbNodeLifecycleStateAvailable),
		}}

		result, err := StopDbNode(context.Background(), fake, "ocid1.dbnode.oc1..n1", true)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "STOPPING", result.CurrentState)
		assert.Equal(t, "soft", result.StopType)
		require.Len(t, fake.actions, 1)
		assert.Equal(t, database.DbNodeActionActionStop, fake.actions[0].Action)
	})
}

func TestSoftResetDbNodeAction(t *testing.T) {
	fake := &fakeDatabaseAPI{nodes: map[string]database.DbNode{
		"ocid1.dbnode.oc1..n1": dbNode(database.DbNodeLifecycleStateAvailable),
	}}

	result, err := SoftResetDbNode(context.Background(), fake, "ocid1.dbnode.oc1..n1")
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.Len(t, fake.actions, 1)
	assert.Equal(t, database.DbNodeActionActionSoftreset, fake.actions[0].Action)
}

func TestStopDbSystemFanout(t *testing.T) {
	fake := &fakeDatabaseAPI{nodes: map[string]database.DbNode{
		"ocid1.dbnode.oc1..n1": dbNode(database.DbNodeLifecycleStateAvailable),
		"ocid1.dbnode.oc1..n2": dbNode(database.DbNodeLifecycleStateStopped),
	}}

	result, err := StopDbSystem(context.Background(), fake, "ocid1.dbsystem.oc1..s1", "ocid1.compartment.oc1..c", false)
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.Len(t, result.Results, 2)

	// Only the running node gets an action; the stopped one short-circuits.
	require.Len(t, fake.actions, 1)
	for _, nodeResult := range result.Results {
		assert.True(t, nodeResult.Success)
	}
}

func TestStartDbSystemNoNodes(t *testing.T) {
	fake := &fakeDatabaseAPI{nodes: map[string]database.DbNode{}}

	result, err := StartDbSystem(context.Background(), fake, "ocid1.dbsystem.oc1..s1", "ocid1.compartment.oc1..c")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Empty(t, result.Results)
}
