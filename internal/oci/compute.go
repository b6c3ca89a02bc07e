package oci

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
)

// InstanceSummary is the reshaped form of a compute instance as returned
// by list_instances.
type InstanceSummary struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	LifecycleState     string   `json:"lifecycle_state"`
	Shape              string   `json:"shape"`
	TimeCreated        string   `json:"time_created"`
	AvailabilityDomain string   `json:"availability_domain"`
	CompartmentID      string   `json:"compartment_id"`
	FaultDomain        string   `json:"fault_domain"`
	IsRunning          bool     `json:"is_running"`
	OcpuCount          *float32 `json:"ocpu_count"`
	MemoryInGBs        *float32 `json:"memory_in_gbs"`
}

// VnicAttachmentInfo is the per-attachment slice of instance details.
type VnicAttachmentInfo struct {
	ID             string `json:"id"`
	DisplayName    string `json:"display_name"`
	LifecycleState string `json:"lifecycle_state"`
	VnicID         string `json:"vnic_id"`
}

// InstanceDetails is the reshaped form of a single instance, including
// its VNIC attachments.
type InstanceDetails struct {
	InstanceSummary
	Metadata        map[string]string    `json:"metadata"`
	VnicAttachments []VnicAttachmentInfo `json:"vnic_attachments"`
}

func newInstanceSummary(inst core.Instance) InstanceSummary {
	s := InstanceSummary{
		ID:                 str(inst.Id),
		Name:               str(inst.DisplayName),
		LifecycleState:     string(inst.LifecycleState),
		Shape:              str(inst.Shape),
		TimeCreated:        timeStr(inst.TimeCreated),
		AvailabilityDomain: str(inst.AvailabilityDomain),
		CompartmentID:      str(inst.CompartmentId),
		FaultDomain:        str(inst.FaultDomain),
		IsRunning:          inst.LifecycleState == core.InstanceLifecycleStateRunning,
	}
	if inst.ShapeConfig != nil {
		s.OcpuCount = inst.ShapeConfig.Ocpus
		s.MemoryInGBs = inst.ShapeConfig.MemoryInGBs
	}
	return s
}

// ListInstances lists all compute instances in a compartment.
func ListInstances(ctx context.Context, client ComputeAPI, compartmentID string) ([]InstanceSummary, error) {
	instances := []InstanceSummary{}
	req := core.ListInstancesRequest{CompartmentId: common.String(compartmentID)}
	for {
		resp, err := client.ListInstances(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, inst := range resp.Items {
			instances = append(instances, newInstanceSummary(inst))
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return instances, nil
}

// GetInstance returns a single instance with its VNIC attachments.
func GetInstance(ctx context.Context, client ComputeAPI, instanceID string) (*InstanceDetails, error) {
	resp, err := client.GetInstance(ctx, core.GetInstanceRequest{InstanceId: common.String(instanceID)})
	if err != nil {
		return nil, err
	}
	inst := resp.Instance

	details := &InstanceDetails{
		InstanceSummary: newInstanceSummary(inst),
		Metadata:        inst.Metadata,
		VnicAttachments: []VnicAttachmentInfo{},
	}

	attachReq := core.ListVnicAttachmentsRequest{
		CompartmentId: inst.CompartmentId,
		InstanceId:    common.String(instanceID),
	}
	for {
		attachResp, err := client.ListVnicAttachments(ctx, attachReq)
		if err != nil {
			return nil, err
		}
		for _, att := range attachResp.Items {
			details.VnicAttachments = append(details.VnicAttachments, VnicAttachmentInfo{
				ID:             str(att.Id),
				DisplayName:    str(att.DisplayName),
				LifecycleState: string(att.LifecycleState),
				VnicID:         str(att.VnicId),
			})
		}
		if attachResp.OpcNextPage == nil {
			break
		}
		attachReq.Page = attachResp.OpcNextPage
	}
	return details, nil
}

// StartInstance starts a stopped instance. The action is fire-and-forget:
// the reported state is the expected transitional one, not a confirmed
// terminal state.
func StartInstance(ctx context.Context, client ComputeAPI, instanceID string) (*ActionResult, error) {
	resp, err := client.GetInstance(ctx, core.GetInstanceRequest{InstanceId: common.String(instanceID)})
	if err != nil {
		return nil, err
	}
	inst := resp.Instance

	switch inst.LifecycleState {
	case core.InstanceLifecycleStateRunning:
		return &ActionResult{
			Success:        true,
			Message:        fmt.Sprintf("Instance %s (%s) is already running", str(inst.DisplayName), instanceID),
			CurrentState:   string(inst.LifecycleState),
			AlreadyRunning: true,
		}, nil
	case core.InstanceLifecycleStateStopped:
		// fall through to the action
	default:
		return &ActionResult{
			Success:      false,
			Message:      fmt.Sprintf("Cannot start instance %s (%s). Current state: %s", str(inst.DisplayName), instanceID, inst.LifecycleState),
			CurrentState: string(inst.LifecycleState),
		}, nil
	}

	_, err = client.InstanceAction(ctx, core.InstanceActionRequest{
		InstanceId: common.String(instanceID),
		Action:     core.InstanceActionActionStart,
	})
	if err != nil {
		return nil, err
	}
	return &ActionResult{
		Success:      true,
		Message:      fmt.Sprintf("Instance %s (%s) is starting. Check status later.", str(inst.DisplayName), instanceID),
		CurrentState: string(core.InstanceLifecycleStateStarting),
		InstanceID:   instanceID,
	}, nil
}

// StopInstance stops a running instance, gracefully by default or with a
// hard power-off when force is set.
func StopInstance(ctx context.Context, client ComputeAPI, instanceID string, force bool) (*ActionResult, error) {
	resp, err := client.GetInstance(ctx, core.GetInstanceRequest{InstanceId: common.String(instanceID)})
	if err != nil {
		return nil, err
	}
	inst := resp.Instance

	switch inst.LifecycleState {
	case core.InstanceLifecycleStateStopped:
		return &ActionResult{
			Success:        true,
			Message:        fmt.Sprintf("Instance %s (%s) is already stopped", str(inst.DisplayName), instanceID),
			CurrentState:   string(inst.LifecycleState),
			AlreadyStopped: true,
		}, nil
	case core.InstanceLifecycleStateRunning:
		// fall through to the action
	default:
		return &ActionResult{
			Success:      false,
			Message:      fmt.Sprintf("Cannot stop instance %s (%s). Current state: %s", str(inst.DisplayName), instanceID, inst.LifecycleState),
			CurrentState: string(inst.LifecycleState),
		}, nil
	}

	action := core.InstanceActionActionSoftstop
	stopType := "soft"
	if force {
		action = core.InstanceActionActionStop
		stopType = "force"
	}
	_, err = client.InstanceAction(ctx, core.InstanceActionRequest{
		InstanceId: common.String(instanceID),
		Action:     action,
	})
	if err != nil {
		return nil, err
	}
	return &ActionResult{
		Success:      true,
		Message:      "Instance stop operation initiated. Check status with get_instance to monitor progress.",
		CurrentState: string(core.InstanceLifecycleStateStopping),
		InstanceID:   instanceID,
		StopType:     stopType,
	}, nil
}
