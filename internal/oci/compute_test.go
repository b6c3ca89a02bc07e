package oci

import (
	"context"
	"testing"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeComputeAPI serves canned responses and records instance actions.
type fakeComputeAPI struct {
	ComputeAPI

	instance  core.Instance
	listPages []core.ListInstancesResponse
	listCalls int
	actions   []core.InstanceActionActionEnum
}

func (f *fakeComputeAPI) GetInstance(ctx context.Context, request core.GetInstanceRequest) (core.GetInstanceResponse, error) {
	return core.GetInstanceResponse{Instance: f.instance}, nil
}

func (f *fakeComputeAPI) ListInstances(ctx context.Context, request core.ListInstancesRequest) (core.ListInstancesResponse, error) {
	resp := f.listPages[f.listCalls]
	f.listCalls++
	return resp, nil
}

func (f *fakeComputeAPI) ListVnicAttachments(ctx context.Context, request core.ListVnicAttachmentsRequest) (core.ListVnicAttachmentsResponse, error) {
	return core.ListVnicAttachmentsResponse{}, nil
}

func (f *fakeComputeAPI) InstanceAction(ctx context.Context, request core.InstanceActionRequest) (core.InstanceActionResponse, error) {
	f.actions = append(f.actions, request.Action)
	return core.InstanceActionResponse{}, nil
}

func instanceInState(state core.InstanceLifecycleStateEnum) core.Instance {
	return core.Instance{
		Id:             common.String("ocid1.instance.oc1..test"),
		DisplayName:    common.String("web-1"),
		LifecycleState: state,
	}
}

func TestListInstancesPagination(t *testing.T) {
	fake := &fakeComputeAPI{
		listPages: []core.ListInstancesResponse{
			{
				Items:       []core.Instance{instanceInState(core.InstanceLifecycleStateRunning)},
				OpcNextPage: common.String("page2"),
			},
			{
				Items: []core.Instance{instanceInState(core.InstanceLifecycleStateStopped)},
			},
		},
	}

	instances, err := ListInstances(context.Background(), fake, "ocid1.compartment.oc1..c")
	require.NoError(t, err)
	require.Len(t, instances, 2)
	assert.Equal(t, 2, fake.listCalls)
	assert.True(t, instances[0].IsRunning)
	assert.False(t, instances[1].IsRunning)
}

func TestStartInstance(t *testing.T) {
	tests := []struct {
		name           string
		state          core.InstanceLifecycleStateEnum
		wantSuccess    bool
		wantAlready    bool
		wantActions    int
		wantState      string
	}{
		{
			name:        "already running",
			state:       core.InstanceLifecycleStateRunning,
			wantSuccess: true,
			wantAlready: true,
			wantActions: 0,
			wantState:   "RUNNING",
		},
		{
			name:        "stopped issues start",
			state:       core.InstanceLifecycleStateStopped,
			wantSuccess: true,
			wantActions: 1,
			wantState:   "STARTING",
		},
		{
			name:        "transitional state rejected",
			state:       core.InstanceLifecycleStateTerminating,
			wantSuccess: false,
			wantActions: 0,
			wantState:   "TERMINATING",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeComputeAPI{instance: instanceInState(tt.state)}

			result, err := StartInstance(context.Background(), fake, "ocid1.instance.oc1..test")
			require.NoError(t, err)
			assert.Equal(t, tt.wantSuccess, result.Success)
			assert.Equal(t, tt.wantAlready, result.AlreadyRunning)
			assert.Equal(t, tt.wantState, result.CurrentState)
			require.Len(t, fake.actions, tt.wantActions)
			if tt.wantActions == 1 {
				assert.Equal(t, core.InstanceActionActionStart, fake.actions[0])
			}
		})
	}
}

func TestStopInstance(t *testing.T) {
	t.Run("already stopped", func(t *testing.T) {
		fake := &fakeComputeAPI{instance: instanceInState(core.InstanceLifecycleStateStopped)}

		result, err := StopInstance(context.Background(), fake, "ocid1.instance.oc1..test", false)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.True(t, result.AlreadyStopped)
		assert.Empty(t, fake.actions)
	})

	t.Run("soft stop by default", func(t *testing.T) {
		fake := &fakeComputeAPI{instance: instanceInState(core.InstanceLifecycleStateRunning)}

		result, err := StopInstance(context.Background(), fake, "ocid1.instance.oc1..test", false)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "soft", result.StopType)
		assert.Equal(t, "STOPPING", result.CurrentState)
		require.Len(t, fake.actions, 1)
		assert.Equal(t, core.InstanceActionActionSoftstop, fake.actions[0])
	})

	t.Run("force stop", func(t *testing.T) {
		fake := &fakeComputeAPI{instance: instanceInState(core.InstanceLifecycleStateRunning)}

		result, err := StopInstance(context.Background(), fake, "ocid1.instance.oc1..test", true)
		require.NoError(t, err)
		assert.Equal(t, "force", result.StopType)
		require.Len(t, fake.actions, 1)
		assert.Equal(t, core.InstanceActionActionStop, fake.actions[0])
	})

	t.Run("transitional state rejected", func(t *testing.T) {
		fake := &fakeComputeAPI{instance: instanceInState(core.InstanceLifecycleStateStopping)}

		result, err := StopInstance(context.Background(), fake, "ocid1.instance.oc1..test", false)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Empty(t, fake.actions)
	})
}
