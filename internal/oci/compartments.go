package oci

import (
	"context"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/identity"

	"github.com/jopsis/mcp-server-oci/internal/logging"
)

// CompartmentInfo is the reshaped form of a compartment.
type CompartmentInfo struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	ParentCompartmentID string `json:"parent_compartment_id,omitempty"`
	LifecycleState      string `json:"lifecycle_state"`
	IsAccessible        bool   `json:"is_accessible"`
	TimeCreated         string `json:"time_created"`
	IsRoot              bool   `json:"is_root"`
}

// ListCompartments lists the root compartment (the tenancy) followed by
// every active compartment in the subtree.
func ListCompartments(ctx context.Context, client IdentityAPI, tenancyID string) ([]CompartmentInfo, error) {
	compartments := []CompartmentInfo{}

	rootResp, err := client.GetCompartment(ctx, identity.GetCompartmentRequest{CompartmentId: common.String(tenancyID)})
	if err != nil {
		// The root compartment may be inaccessible under restrictive
		// policies; the subtree listing can still succeed.
		logging.Warn().Err(err).Msg("could not get root compartment")
	} else {
		root := rootResp.Compartment
		compartments = append(compartments, CompartmentInfo{
			ID:             str(root.Id),
			Name:           str(root.Name),
			Description:    str(root.Description),
			LifecycleState: string(root.LifecycleState),
			IsAccessible:   true,
			TimeCreated:    timeStr(root.TimeCreated),
			IsRoot:         true,
		})
	}

	req := identity.ListCompartmentsRequest{
		CompartmentId:          common.String(tenancyID),
		CompartmentIdInSubtree: common.Bool(true),
		LifecycleState:         identity.CompartmentLifecycleStateActive,
	}
	for {
		resp, err := client.ListCompartments(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, c := range resp.Items {
			compartments = append(compartments, CompartmentInfo{
				ID:                  str(c.Id),
				Name:                str(c.Name),
				Description:         str(c.Description),
				ParentCompartmentID: str(c.CompartmentId),
				LifecycleState:      string(c.LifecycleState),
				IsAccessible:        c.LifecycleState == identity.CompartmentLifecycleStateActive,
				TimeCreated:         timeStr(c.TimeCreated),
				IsRoot:              false,
			})
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return compartments, nil
}
