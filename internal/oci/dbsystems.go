package oci

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/database"
)

// DbSystemInfo is the reshaped form of a DB system.
type DbSystemInfo struct {
	ID                   string   `json:"id"`
	DisplayName          string   `json:"display_name"`
	LifecycleState       string   `json:"lifecycle_state"`
	Shape                string   `json:"shape"`
	DatabaseEdition      string   `json:"database_edition"`
	AvailabilityDomain   string   `json:"availability_domain"`
	TimeCreated          string   `json:"time_created"`
	SubnetID             string   `json:"subnet_id"`
	CompartmentID        string   `json:"compartment_id"`
	NodeCount            *int     `json:"node_count"`
	Version              string   `json:"version"`
	CpuCoreCount         *int     `json:"cpu_core_count"`
	DataStorageSizeInGBs *int     `json:"data_storage_size_in_gb"`
	ListenerPort         *int     `json:"listener_port,omitempty"`
	ScanDnsRecordID      string   `json:"scan_dns_record_id,omitempty"`
	SshPublicKeys        []string `json:"ssh_public_keys,omitempty"`
}

// ListDbSystems lists DB systems in a compartment.
func ListDbSystems(ctx context.Context, client DatabaseAPI, compartmentID string) ([]DbSystemInfo, error) {
	systems := []DbSystemInfo{}
	req := database.ListDbSystemsRequest{CompartmentId: common.String(compartmentID)}
	for {
		resp, err := client.ListDbSystems(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, d := range resp.Items {
			systems = append(systems, DbSystemInfo{
				ID:                   str(d.Id),
				DisplayName:          str(d.DisplayName),
				LifecycleState:       string(d.LifecycleState),
				Shape:                str(d.Shape),
				DatabaseEdition:      string(d.DatabaseEdition),
				AvailabilityDomain:   str(d.AvailabilityDomain),
				TimeCreated:          timeStr(d.TimeCreated),
				SubnetID:             str(d.SubnetId),
				CompartmentID:        str(d.CompartmentId),
				NodeCount:            d.NodeCount,
				Version:              str(d.Version),
				CpuCoreCount:         d.CpuCoreCount,
				DataStorageSizeInGBs: d.DataStorageSizeInGBs,
			})
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return systems, nil
}

// GetDbSystem returns a single DB system.
func GetDbSystem(ctx context.Context, client DatabaseAPI, dbSystemID string) (*DbSystemInfo, error) {
	resp, err := client.GetDbSystem(ctx, database.GetDbSystemRequest{DbSystemId: common.String(dbSystemID)})
	if err != nil {
		return nil, err
	}
	d := resp.DbSystem
	return &DbSystemInfo{
		ID:                   str(d.Id),
		DisplayName:          str(d.DisplayName),
		LifecycleState:       string(d.LifecycleState),
		Shape:                str(d.Shape),
		DatabaseEdition:      string(d.DatabaseEdition),
		AvailabilityDomain:   str(d.AvailabilityDomain),
		TimeCreated:          timeStr(d.TimeCreated),
		SubnetID:             str(d.SubnetId),
		CompartmentID:        str(d.CompartmentId),
		NodeCount:            d.NodeCount,
		Version:              str(d.Version),
		CpuCoreCount:         d.CpuCoreCount,
		DataStorageSizeInGBs: d.DataStorageSizeInGBs,
		ListenerPort:         d.ListenerPort,
		ScanDnsRecordID:      str(d.ScanDnsRecordId),
		SshPublicKeys:        d.SshPublicKeys,
	}, nil
}

// DbNodeInfo is the reshaped form of a DB node.
type DbNodeInfo struct {
	ID                      string `json:"id"`
	DbSystemID              string `json:"db_system_id"`
	Hostname                string `json:"hostname"`
	VnicID                  string `json:"vnic_id"`
	LifecycleState          string `json:"lifecycle_state"`
	SoftwareStorageSizeInGB *int   `json:"software_storage_size_in_gb"`
	TimeCreated             string `json:"time_created"`
}

// ListDbNodes lists DB nodes in a compartment. With dbSystemID empty the
// listing fans out over every DB system in the compartment.
func ListDbNodes(ctx context.Context, client DatabaseAPI, compartmentID, dbSystemID string) ([]DbNodeInfo, error) {
	systemIDs := []string{dbSystemID}
	if dbSystemID == "" {
		systems, err := ListDbSystems(ctx, client, compartmentID)
		if err != nil {
			return nil, err
		}
		systemIDs = systemIDs[:0]
		for _, s := range systems {
			systemIDs = append(systemIDs, s.ID)
		}
	}

	nodes := []DbNodeInfo{}
	for _, id := range systemIDs {
		req := database.ListDbNodesRequest{
			CompartmentId: common.String(compartmentID),
			DbSystemId:    common.String(id),
		}
		for {
			resp, err := client.ListDbNodes(ctx, req)
			if err != nil {
				return nil, err
			}
			for _, n := range resp.Items {
				nodes = append(nodes, DbNodeInfo{
					ID:                      str(n.Id),
					DbSystemID:              str(n.DbSystemId),
					Hostname:                str(n.Hostname),
					VnicID:                  str(n.VnicId),
					LifecycleState:          string(n.LifecycleState),
					SoftwareStorageSizeInGB: n.SoftwareStorageSizeInGB,
					TimeCreated:             timeStr(n.TimeCreated),
				})
			}
			if resp.OpcNextPage == nil {
				break
			}
			req.Page = resp.OpcNextPage
		}
	}
	return nodes, nil
}

// GetDbNode returns a single DB node.
func GetDbNode(ctx context.Context, client DatabaseAPI, dbNodeID string) (*DbNodeInfo, error) {
	resp, err := client.GetDbNode(ctx, database.GetDbNodeRequest{DbNodeId: common.String(dbNodeID)})
	if err != nil {
		return nil, err
	}
	n := resp.DbNode
	return &DbNodeInfo{
		ID:                      str(n.Id),
		DbSystemID:              str(n.DbSystemId),
		Hostname:                str(n.Hostname),
		VnicID:                  str(n.VnicId),
		LifecycleState:          string(n.LifecycleState),
		SoftwareStorageSizeInGB: n.SoftwareStorageSizeInGB,
		TimeCreated:             timeStr(n.TimeCreated),
	}, nil
}

// StartDbNode starts a stopped DB node. Fire-and-forget, like the
// instance actions.
func StartDbNode(ctx context.Context, client DatabaseAPI, dbNodeID string) (*ActionResult, error) {
	resp, err := client.GetDbNode(ctx, database.GetDbNodeRequest{DbNodeId: common.String(dbNodeID)})
	if err != nil {
		return nil, err
	}
	node := resp.DbNode

	switch node.LifecycleState {
	case database.DbNodeLifecycleStateAvailable:
		return &ActionResult{
			Success:        true,
			Message:        fmt.Sprintf("DB Node %s is already running", dbNodeID),
			CurrentState:   string(node.LifecycleState),
			AlreadyRunning: true,
			DbNodeID:       dbNodeID,
		}, nil
	case database.DbNodeLifecycleStateStopped:
		// fall through to the action
	default:
		return &ActionResult{
			Success:      false,
			Message:      fmt.Sprintf("Cannot start DB Node %s. Current state: %s", dbNodeID, node.LifecycleState),
			CurrentState: string(node.LifecycleState),
			DbNodeID:     dbNodeID,
		}, nil
	}

	_, err = client.DbNodeAction(ctx, database.DbNodeActionRequest{
		DbNodeId: common.String(dbNodeID),
		Action:   database.DbNodeActionActionStart,
	})
	if err != nil {
		return nil, err
	}
	return &ActionResult{
		Success:      true,
		Message:      fmt.Sprintf("DB Node %s start requested successfully", dbNodeID),
		CurrentState: string(database.DbNodeLifecycleStateStarting),
		DbNodeID:     dbNodeID,
	}, nil
}

// StopDbNode stops a running DB node. The service's STOP action shuts
// the node down gracefully; soft is accepted for interface compatibility
// and reflected in the result only.
func StopDbNode(ctx context.Context, client DatabaseAPI, dbNodeID string, soft bool) (*ActionResult, error) {
	resp, err := client.GetDbNode(ctx, database.GetDbNodeRequest{DbNodeId: common.String(dbNodeID)})
	if err != nil {
		return nil, err
	}
	node := resp.DbNode

	switch node.LifecycleState {
	case database.DbNodeLifecycleStateStopped:
		return &ActionResult{
			Success:        true,
			Message:        fmt.Sprintf("DB Node %s is already stopped", dbNodeID),
			CurrentState:   string(node.LifecycleState),
			AlreadyStopped: true,
			DbNodeID:       dbNodeID,
		}, nil
	case database.DbNodeLifecycleStateAvailable:
		// fall through to the action
	default:
		return &ActionResult{
			Success:      false,
			Message:      fmt.Sprintf("Cannot stop DB Node %s. Current state: %s", dbNodeID, node.LifecycleState),
			CurrentState: string(node.LifecycleState),
			DbNodeID:     dbNodeID,
		}, nil
	}

	_, err = client.DbNodeAction(ctx, database.DbNodeActionRequest{
		DbNodeId: common.String(dbNodeID),
		Action:   database.DbNodeActionActionStop,
	})
	if err != nil {
		return nil, err
	}
	stopType := "force"
	if soft {
		stopType = "soft"
	}
	return &ActionResult{
		Success:      true,
		Message:      fmt.Sprintf("DB Node %s stop requested successfully", dbNodeID),
		CurrentState: string(database.DbNodeLifecycleStateStopping),
		DbNodeID:     dbNodeID,
		StopType:     stopType,
	}, nil
}

// RebootDbNode requests a graceful reboot of a DB node.
func RebootDbNode(ctx context.Context, client DatabaseAPI, dbNodeID string) (*ActionResult, error) {
	return dbNodeAction(ctx, client, dbNodeID, database.DbNodeActionActionReset, "reboot")
}

// ResetDbNode requests a hard reset (power cycle) of a DB node.
func ResetDbNode(ctx context.Context, client DatabaseAPI, dbNodeID string) (*ActionResult, error) {
	return dbNodeAction(ctx, client, dbNodeID, database.DbNodeActionActionReset, "reset")
}

// SoftResetDbNode requests a graceful OS reboot of a DB node.
func SoftResetDbNode(ctx context.Context, client DatabaseAPI, dbNodeID string) (*ActionResult, error) {
	return dbNodeAction(ctx, client, dbNodeID, database.DbNodeActionActionSoftreset, "soft reset")
}

func dbNodeAction(ctx context.Context, client DatabaseAPI, dbNodeID string, action database.DbNodeActionActionEnum, verb string) (*ActionResult, error) {
	_, err := client.DbNodeAction(ctx, database.DbNodeActionRequest{
		DbNodeId: common.String(dbNodeID),
		Action:   action,
	})
	if err != nil {
		return nil, err
	}
	return &ActionResult{
		Success:  true,
		Message:  fmt.Sprintf("DB Node %s %s requested successfully", dbNodeID, verb),
		DbNodeID: dbNodeID,
	}, nil
}

// StartDbSystem starts every node of a DB system. Per-node failures are
// reported in the result instead of aborting the fan-out.
func StartDbSystem(ctx context.Context, client DatabaseAPI, dbSystemID, compartmentID string) (*FanoutResult, error) {
	return dbSystemFanout(ctx, client, dbSystemID, compartmentID, "Start",
		func(nodeID string) (*ActionResult, error) {
			return StartDbNode(ctx, client, nodeID)
		})
}

// StopDbSystem stops every node of a DB system.
func StopDbSystem(ctx context.Context, client DatabaseAPI, dbSystemID, compartmentID string, soft bool) (*FanoutResult, error) {
	return dbSystemFanout(ctx, client, dbSystemID, compartmentID, "Stop",
		func(nodeID string) (*ActionResult, error) {
			return StopDbNode(ctx, client, nodeID, soft)
		})
}

func dbSystemFanout(ctx context.Context, client DatabaseAPI, dbSystemID, compartmentID, verb string, action func(nodeID string) (*ActionResult, error)) (*FanoutResult, error) {
	nodes, err := ListDbNodes(ctx, client, compartmentID, dbSystemID)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return &FanoutResult{
			Success: false,
			Message: fmt.Sprintf("No DB Nodes found for DB System %s", dbSystemID),
		}, nil
	}

	results := make([]NodeActionResult, 0, len(nodes))
	for _, node := range nodes {
		res, err := action(node.ID)
		if err != nil {
			results = append(results, NodeActionResult{
				DbNodeID: node.ID,
				Success:  false,
				Message:  fmt.Sprintf("Error on node: %s", err),
			})
			continue
		}
		results = append(results, NodeActionResult{
			DbNodeID:     node.ID,
			Success:      res.Success,
			Message:      res.Message,
			CurrentState: res.CurrentState,
		})
	}
	return &FanoutResult{
		Success: true,
		Message: fmt.Sprintf("%s requested for %d DB Nodes", verb, len(nodes)),
		Results: results,
	}, nil
}
