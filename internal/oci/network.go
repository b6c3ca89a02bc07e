package oci

import (
	"context"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
)

// VcnInfo is the reshaped form of a Virtual Cloud Network.
type VcnInfo struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	LifecycleState        string   `json:"lifecycle_state"`
	CidrBlock             string   `json:"cidr_block"`
	TimeCreated           string   `json:"time_created"`
	CompartmentID         string   `json:"compartment_id"`
	DnsLabel              string   `json:"dns_label"`
	DefaultDhcpOptionsID  string   `json:"default_dhcp_options_id"`
	DefaultRouteTableID   string   `json:"default_route_table_id"`
	DefaultSecurityListID string   `json:"default_security_list_id"`
	Ipv6CidrBlocks        []string `json:"ipv6_cidr_blocks,omitempty"`
}

func newVcnInfo(vcn core.Vcn) VcnInfo {
	return VcnInfo{
		ID:                    str(vcn.Id),
		Name:                  str(vcn.DisplayName),
		LifecycleState:        string(vcn.LifecycleState),
		CidrBlock:             str(vcn.CidrBlock),
		TimeCreated:           timeStr(vcn.TimeCreated),
		CompartmentID:         str(vcn.CompartmentId),
		DnsLabel:              str(vcn.DnsLabel),
		DefaultDhcpOptionsID:  str(vcn.DefaultDhcpOptionsId),
		DefaultRouteTableID:   str(vcn.DefaultRouteTableId),
		DefaultSecurityListID: str(vcn.DefaultSecurityListId),
		Ipv6CidrBlocks:        vcn.Ipv6CidrBlocks,
	}
}

// ListVcns lists all VCNs in a compartment.
func ListVcns(ctx context.Context, client VirtualNetworkAPI, compartmentID string) ([]VcnInfo, error) {
	vcns := []VcnInfo{}
	req := core.ListVcnsRequest{CompartmentId: common.String(compartmentID)}
	for {
		resp, err := client.ListVcns(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, vcn := range resp.Items {
			vcns = append(vcns, newVcnInfo(vcn))
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return vcns, nil
}

// GetVcn returns a single VCN.
func GetVcn(ctx context.Context, client VirtualNetworkAPI, vcnID string) (*VcnInfo, error) {
	resp, err := client.GetVcn(ctx, core.GetVcnRequest{VcnId: common.String(vcnID)})
	if err != nil {
		return nil, err
	}
	info := newVcnInfo(resp.Vcn)
	return &info, nil
}

// SubnetInfo is the reshaped form of a subnet.
type SubnetInfo struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	LifecycleState         string   `json:"lifecycle_state"`
	CidrBlock              string   `json:"cidr_block"`
	AvailabilityDomain     string   `json:"availability_domain"`
	CompartmentID          string   `json:"compartment_id"`
	VcnID                  string   `json:"vcn_id"`
	RouteTableID           string   `json:"route_table_id"`
	DhcpOptionsID          string   `json:"dhcp_options_id"`
	SecurityListIDs        []string `json:"security_list_ids"`
	TimeCreated            string   `json:"time_created"`
	ProhibitPublicIPOnVnic bool     `json:"prohibit_public_ip_on_vnic"`
	Ipv6CidrBlock          string   `json:"ipv6_cidr_block,omitempty"`
}

func newSubnetInfo(subnet core.Subnet) SubnetInfo {
	return SubnetInfo{
		ID:                     str(subnet.Id),
		Name:                   str(subnet.DisplayName),
		LifecycleState:         string(subnet.LifecycleState),
		CidrBlock:              str(subnet.CidrBlock),
		AvailabilityDomain:     str(subnet.AvailabilityDomain),
		CompartmentID:          str(subnet.CompartmentId),
		VcnID:                  str(subnet.VcnId),
		RouteTableID:           str(subnet.RouteTableId),
		DhcpOptionsID:          str(subnet.DhcpOptionsId),
		SecurityListIDs:        subnet.SecurityListIds,
		TimeCreated:            timeStr(subnet.TimeCreated),
		ProhibitPublicIPOnVnic: boolVal(subnet.ProhibitPublicIpOnVnic),
		Ipv6CidrBlock:          str(subnet.Ipv6CidrBlock),
	}
}

// ListSubnets lists subnets in a compartment. When vcnID is empty the
// listing covers every VCN in the compartment.
func ListSubnets(ctx context.Context, client VirtualNetworkAPI, compartmentID, vcnID string) ([]SubnetInfo, error) {
	vcnIDs := []string{vcnID}
	if vcnID == "" {
		vcns, err := ListVcns(ctx, client, compartmentID)
		if err != nil {
			return nil, err
		}
		vcnIDs = vcnIDs[:0]
		for _, vcn := range vcns {
			vcnIDs = append(vcnIDs, vcn.ID)
		}
	}

	subnets := []SubnetInfo{}
	for _, id := range vcnIDs {
		req := core.ListSubnetsRequest{
			CompartmentId: common.String(compartmentID),
			VcnId:         common.String(id),
		}
		for {
			resp, err := client.ListSubnets(ctx, req)
			if err != nil {
				return nil, err
			}
			for _, subnet := range resp.Items {
				subnets = append(subnets, newSubnetInfo(subnet))
			}
			if resp.OpcNextPage == nil {
				break
			}
			req.Page = resp.OpcNextPage
		}
	}
	return subnets, nil
}

// GetSubnet returns a single subnet.
func GetSubnet(ctx context.Context, client VirtualNetworkAPI, subnetID string) (*SubnetInfo, error) {
	resp, err := client.GetSubnet(ctx, core.GetSubnetRequest{SubnetId: common.String(subnetID)})
	if err != nil {
		return nil, err
	}
	info := newSubnetInfo(resp.Subnet)
	return &info, nil
}

// VnicInfo is the reshaped form of a VNIC, optionally annotated with its
// attachment when listed through an instance.
type VnicInfo struct {
	ID                       string   `json:"id"`
	DisplayName              string   `json:"display_name"`
	HostnameLabel            string   `json:"hostname_label"`
	IsPrimary                bool     `json:"is_primary"`
	LifecycleState           string   `json:"lifecycle_state"`
	MacAddress               string   `json:"mac_address"`
	PrivateIP                string   `json:"private_ip"`
	PublicIP                 string   `json:"public_ip"`
	SubnetID                 string   `json:"subnet_id"`
	TimeCreated              string   `json:"time_created"`
	CompartmentID            string   `json:"compartment_id"`
	AttachmentID             string   `json:"attachment_id,omitempty"`
	InstanceID               string   `json:"instance_id,omitempty"`
	AttachmentLifecycleState string   `json:"attachment_lifecycle_state,omitempty"`
	Ipv6Addresses            []string `json:"ipv6_addresses,omitempty"`
}

func newVnicInfo(vnic core.Vnic) VnicInfo {
	return VnicInfo{
		ID:             str(vnic.Id),
		DisplayName:    str(vnic.DisplayName),
		HostnameLabel:  str(vnic.HostnameLabel),
		IsPrimary:      boolVal(vnic.IsPrimary),
		LifecycleState: string(vnic.LifecycleState),
		MacAddress:     str(vnic.MacAddress),
		PrivateIP:      str(vnic.PrivateIp),
		PublicIP:       str(vnic.PublicIp),
		SubnetID:       str(vnic.SubnetId),
		TimeCreated:    timeStr(vnic.TimeCreated),
		CompartmentID:  str(vnic.CompartmentId),
		Ipv6Addresses:  vnic.Ipv6Addresses,
	}
}

// ListVnics lists VNICs attached in a compartment, optionally filtered to
// one instance. Attachments whose VNIC cannot be fetched are skipped.
func ListVnics(ctx context.Context, compute ComputeAPI, network VirtualNetworkAPI, compartmentID, instanceID string) ([]VnicInfo, error) {
	req := core.ListVnicAttachmentsRequest{CompartmentId: common.String(compartmentID)}
	if instanceID != "" {
		req.InstanceId = common.String(instanceID)
	}

	vnics := []VnicInfo{}
	for {
		resp, err := compute.ListVnicAttachments(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, att := range resp.Items {
			if att.VnicId == nil {
				continue
			}
			vnicResp, err := network.GetVnic(ctx, core.GetVnicRequest{VnicId: att.VnicId})
			if err != nil {
				return nil, err
			}
			info := newVnicInfo(vnicResp.Vnic)
			info.AttachmentID = str(att.Id)
			info.InstanceID = str(att.InstanceId)
			info.AttachmentLifecycleState = string(att.LifecycleState)
			vnics = append(vnics, info)
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return vnics, nil
}

// GetVnic returns a single VNIC.
func GetVnic(ctx context.Context, client VirtualNetworkAPI, vnicID string) (*VnicInfo, error) {
	resp, err := client.GetVnic(ctx, core.GetVnicRequest{VnicId: common.String(vnicID)})
	if err != nil {
		return nil, err
	}
	info := newVnicInfo(resp.Vnic)
	return &info, nil
}
