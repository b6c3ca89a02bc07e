package oci

import (
	"context"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/oracle/oci-go-sdk/v65/keymanagement"
)

// PortRange is a contiguous span of ports in a security rule option.
type PortRange struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

// TcpUdpOptions carries the port ranges of a TCP or UDP security rule.
type TcpUdpOptions struct {
	DestinationPortRange *PortRange `json:"destination_port_range,omitempty"`
	SourcePortRange      *PortRange `json:"source_port_range,omitempty"`
}

// IcmpOptions carries the type and code filter of an ICMP security rule.
type IcmpOptions struct {
	Type *int `json:"type"`
	Code *int `json:"code,omitempty"`
}

// SecurityRule is the reshaped form of one ingress or egress rule of a
// security list. Source fields are set for ingress rules, destination
// fields for egress rules.
type SecurityRule struct {
	Protocol        string         `json:"protocol"`
	Source          string         `json:"source,omitempty"`
	SourceType      string         `json:"source_type,omitempty"`
	Destination     string         `json:"destination,omitempty"`
	DestinationType string         `json:"destination_type,omitempty"`
	IsStateless     bool           `json:"is_stateless"`
	Description     string         `json:"description,omitempty"`
	TcpOptions      *TcpUdpOptions `json:"tcp_options,omitempty"`
	UdpOptions      *TcpUdpOptions `json:"udp_options,omitempty"`
	IcmpOptions     *IcmpOptions   `json:"icmp_options,omitempty"`
}

func newPortRange(pr *core.PortRange) *PortRange {
	if pr == nil {
		return nil
	}
	return &PortRange{Min: pr.Min, Max: pr.Max}
}

func newTCPOptions(opts *core.TcpOptions) *TcpUdpOptions {
	if opts == nil {
		return nil
	}
	return &TcpUdpOptions{
		DestinationPortRange: newPortRange(opts.DestinationPortRange),
		SourcePortRange:      newPortRange(opts.SourcePortRange),
	}
}

func newUDPOptions(opts *core.UdpOptions) *TcpUdpOptions {
	if opts == nil {
		return nil
	}
	return &TcpUdpOptions{
		DestinationPortRange: newPortRange(opts.DestinationPortRange),
		SourcePortRange:      newPortRange(opts.SourcePortRange),
	}
}

func newICMPOptions(opts *core.IcmpOptions) *IcmpOptions {
	if opts == nil {
		return nil
	}
	return &IcmpOptions{Type: opts.Type, Code: opts.Code}
}

func newIngressRule(rule core.IngressSecurityRule) SecurityRule {
	return SecurityRule{
		Protocol:    str(rule.Protocol),
		Source:      str(rule.Source),
		SourceType:  string(rule.SourceType),
		IsStateless: boolVal(rule.IsStateless),
		Description: str(rule.Description),
		TcpOptions:  newTCPOptions(rule.TcpOptions),
		UdpOptions:  newUDPOptions(rule.UdpOptions),
		IcmpOptions: newICMPOptions(rule.IcmpOptions),
	}
}

func newEgressRule(rule core.EgressSecurityRule) SecurityRule {
	return SecurityRule{
		Protocol:        str(rule.Protocol),
		Destination:     str(rule.Destination),
		DestinationType: string(rule.DestinationType),
		IsStateless:     boolVal(rule.IsStateless),
		Description:     str(rule.Description),
		TcpOptions:      newTCPOptions(rule.TcpOptions),
		UdpOptions:      newUDPOptions(rule.UdpOptions),
		IcmpOptions:     newICMPOptions(rule.IcmpOptions),
	}
}

// SecurityListSummary is the list-level view of a security list: rule
// counts only, the rules themselves come with the get call.
type SecurityListSummary struct {
	ID               string `json:"id"`
	DisplayName      string `json:"display_name"`
	VcnID            string `json:"vcn_id"`
	CompartmentID    string `json:"compartment_id"`
	LifecycleState   string `json:"lifecycle_state"`
	TimeCreated      string `json:"time_created"`
	IngressRuleCount int    `json:"ingress_rule_count"`
	EgressRuleCount  int    `json:"egress_rule_count"`
}

// SecurityListDetails is the full view of a security list including
// every ingress and egress rule.
type SecurityListDetails struct {
	ID             string         `json:"id"`
	DisplayName    string         `json:"display_name"`
	VcnID          string         `json:"vcn_id"`
	CompartmentID  string         `json:"compartment_id"`
	LifecycleState string         `json:"lifecycle_state"`
	TimeCreated    string         `json:"time_created"`
	IngressRules   []SecurityRule `json:"ingress_rules"`
	EgressRules    []SecurityRule `json:"egress_rules"`
}

// ListSecurityLists lists security lists in a compartment, optionally
// scoped to one VCN.
func ListSecurityLists(ctx context.Context, client VirtualNetworkAPI, compartmentID, vcnID string) ([]SecurityListSummary, error) {
	req := core.ListSecurityListsRequest{CompartmentId: common.String(compartmentID)}
	if vcnID != "" {
		req.VcnId = common.String(vcnID)
	}

	lists := []SecurityListSummary{}
	for {
		resp, err := client.ListSecurityLists(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, sl := range resp.Items {
			lists = append(lists, SecurityListSummary{
				ID:               str(sl.Id),
				DisplayName:      str(sl.DisplayName),
				VcnID:            str(sl.VcnId),
				CompartmentID:    str(sl.CompartmentId),
				LifecycleState:   string(sl.LifecycleState),
				TimeCreated:      timeStr(sl.TimeCreated),
				IngressRuleCount: len(sl.IngressSecurityRules),
				EgressRuleCount:  len(sl.EgressSecurityRules),
			})
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return lists, nil
}

// GetSecurityList returns a single security list with its full rule set.
func GetSecurityList(ctx context.Context, client VirtualNetworkAPI, securityListID string) (*SecurityListDetails, error) {
	resp, err := client.GetSecurityList(ctx, core.GetSecurityListRequest{SecurityListId: common.String(securityListID)})
	if err != nil {
		return nil, err
	}
	sl := resp.SecurityList

	details := &SecurityListDetails{
		ID:             str(sl.Id),
		DisplayName:    str(sl.DisplayName),
		VcnID:          str(sl.VcnId),
		CompartmentID:  str(sl.CompartmentId),
		LifecycleState: string(sl.LifecycleState),
		TimeCreated:    timeStr(sl.TimeCreated),
		IngressRules:   []SecurityRule{},
		EgressRules:    []SecurityRule{},
	}
	for _, rule := range sl.IngressSecurityRules {
		details.IngressRules = append(details.IngressRules, newIngressRule(rule))
	}
	for _, rule := range sl.EgressSecurityRules {
		details.EgressRules = append(details.EgressRules, newEgressRule(rule))
	}
	return details, nil
}

// NetworkSecurityGroupInfo is the reshaped form of an NSG.
type NetworkSecurityGroupInfo struct {
	ID             string `json:"id"`
	DisplayName    string `json:"display_name"`
	VcnID          string `json:"vcn_id"`
	CompartmentID  string `json:"compartment_id"`
	LifecycleState string `json:"lifecycle_state"`
	TimeCreated    string `json:"time_created"`
}

func newNsgInfo(nsg core.NetworkSecurityGroup) NetworkSecurityGroupInfo {
	return NetworkSecurityGroupInfo{
		ID:             str(nsg.Id),
		DisplayName:    str(nsg.DisplayName),
		VcnID:          str(nsg.VcnId),
		CompartmentID:  str(nsg.CompartmentId),
		LifecycleState: string(nsg.LifecycleState),
		TimeCreated:    timeStr(nsg.TimeCreated),
	}
}

// ListNetworkSecurityGroups lists NSGs in a compartment, optionally
// scoped to one VCN.
func ListNetworkSecurityGroups(ctx context.Context, client VirtualNetworkAPI, compartmentID, vcnID string) ([]NetworkSecurityGroupInfo, error) {
	req := core.ListNetworkSecurityGroupsRequest{CompartmentId: common.String(compartmentID)}
	if vcnID != "" {
		req.VcnId = common.String(vcnID)
	}

	nsgs := []NetworkSecurityGroupInfo{}
	for {
		resp, err := client.ListNetworkSecurityGroups(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, nsg := range resp.Items {
			nsgs = append(nsgs, newNsgInfo(nsg))
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return nsgs, nil
}

// GetNetworkSecurityGroup returns a single NSG.
func GetNetworkSecurityGroup(ctx context.Context, client VirtualNetworkAPI, nsgID string) (*NetworkSecurityGroupInfo, error) {
	resp, err := client.GetNetworkSecurityGroup(ctx, core.GetNetworkSecurityGroupRequest{
		NetworkSecurityGroupId: common.String(nsgID),
	})
	if err != nil {
		return nil, err
	}
	info := newNsgInfo(resp.NetworkSecurityGroup)
	return &info, nil
}

// VaultInfo is the reshaped form of a KMS vault.
type VaultInfo struct {
	ID                 string `json:"id"`
	DisplayName        string `json:"display_name"`
	CompartmentID      string `json:"compartment_id"`
	LifecycleState     string `json:"lifecycle_state"`
	TimeCreated        string `json:"time_created"`
	VaultType          string `json:"vault_type"`
	ManagementEndpoint string `json:"management_endpoint"`
	CryptoEndpoint     string `json:"crypto_endpoint"`
}

// ListVaults lists KMS vaults in a compartment.
func ListVaults(ctx context.Context, client KmsVaultAPI, compartmentID string) ([]VaultInfo, error) {
	vaults := []VaultInfo{}
	req := keymanagement.ListVaultsRequest{CompartmentId: common.String(compartmentID)}
	for {
		resp, err := client.ListVaults(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, vault := range resp.Items {
			vaults = append(vaults, VaultInfo{
				ID:                 str(vault.Id),
				DisplayName:        str(vault.DisplayName),
				CompartmentID:      str(vault.CompartmentId),
				LifecycleState:     string(vault.LifecycleState),
				TimeCreated:        timeStr(vault.TimeCreated),
				VaultType:          string(vault.VaultType),
				ManagementEndpoint: str(vault.ManagementEndpoint),
				CryptoEndpoint:     str(vault.CryptoEndpoint),
			})
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return vaults, nil
}

// GetVault returns a single KMS vault.
func GetVault(ctx context.Context, client KmsVaultAPI, vaultID string) (*VaultInfo, error) {
	resp, err := client.GetVault(ctx, keymanagement.GetVaultRequest{VaultId: common.String(vaultID)})
	if err != nil {
		return nil, err
	}
	vault := resp.Vault
	return &VaultInfo{
		ID:                 str(vault.Id),
		DisplayName:        str(vault.DisplayName),
		CompartmentID:      str(vault.CompartmentId),
		LifecycleState:     string(vault.LifecycleState),
		TimeCreated:        timeStr(vault.TimeCreated),
		VaultType:          string(vault.VaultType),
		ManagementEndpoint: str(vault.ManagementEndpoint),
		CryptoEndpoint:     str(vault.CryptoEndpoint),
	}, nil
}

// KeyShape describes the algorithm and length of a KMS key.
type KeyShape struct {
	Algorithm string `json:"algorithm"`
	Length    *int   `json:"length"`
}

// KeyInfo is the reshaped form of a KMS key.
type KeyInfo struct {
	ID                string    `json:"id"`
	DisplayName       string    `json:"display_name"`
	CompartmentID     string    `json:"compartment_id"`
	LifecycleState    string    `json:"lifecycle_state"`
	TimeCreated       string    `json:"time_created"`
	VaultID           string    `json:"vault_id"`
	ProtectionMode    string    `json:"protection_mode"`
	CurrentKeyVersion string    `json:"current_key_version,omitempty"`
	KeyShape          *KeyShape `json:"key_shape,omitempty"`
}

// ListKeys lists KMS keys in a compartment via a vault-bound management
// client.
func ListKeys(ctx context.Context, client KmsManagementAPI, compartmentID string) ([]KeyInfo, error) {
	keys := []KeyInfo{}
	req := keymanagement.ListKeysRequest{CompartmentId: common.String(compartmentID)}
	for {
		resp, err := client.ListKeys(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, key := range resp.Items {
			keys = append(keys, KeyInfo{
				ID:             str(key.Id),
				DisplayName:    str(key.DisplayName),
				CompartmentID:  str(key.CompartmentId),
				LifecycleState: string(key.LifecycleState),
				TimeCreated:    timeStr(key.TimeCreated),
				VaultID:        str(key.VaultId),
				ProtectionMode: string(key.ProtectionMode),
			})
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return keys, nil
}

// GetKey returns a single KMS key.
func GetKey(ctx context.Context, client KmsManagementAPI, keyID string) (*KeyInfo, error) {
	resp, err := client.GetKey(ctx, keymanagement.GetKeyRequest{KeyId: common.String(keyID)})
	if err != nil {
		return nil, err
	}
	key := resp.Key

	info := &KeyInfo{
		ID:                str(key.Id),
		DisplayName:       str(key.DisplayName),
		CompartmentID:     str(key.CompartmentId),
		LifecycleState:    string(key.LifecycleState),
		TimeCreated:       timeStr(key.TimeCreated),
		VaultID:           str(key.VaultId),
		ProtectionMode:    string(key.ProtectionMode),
		CurrentKeyVersion: str(key.CurrentKeyVersion),
	}
	if key.KeyShape != nil {
		info.KeyShape = &KeyShape{
			Algorithm: string(key.KeyShape.Algorithm),
			Length:    key.KeyShape.Length,
		}
	}
	return info, nil
}
