package oci

import (
	"context"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/loadbalancer"
	"github.com/oracle/oci-go-sdk/v65/networkloadbalancer"
)

// LbIPAddress is one IP address assigned to a load balancer.
type LbIPAddress struct {
	IPAddress string `json:"ip_address"`
	IsPublic  bool   `json:"is_public"`
	IPVersion string `json:"ip_version,omitempty"`
}

// LbHealthChecker is the reshaped health check policy of a backend set.
type LbHealthChecker struct {
	Protocol         string `json:"protocol"`
	Port             *int   `json:"port,omitempty"`
	URLPath          string `json:"url_path,omitempty"`
	ReturnCode       *int   `json:"return_code,omitempty"`
	Retries          *int   `json:"retries,omitempty"`
	TimeoutInMillis  *int   `json:"timeout_in_millis,omitempty"`
	IntervalInMillis *int   `json:"interval_in_millis,omitempty"`
}

// LbBackend is one backend server of a backend set.
type LbBackend struct {
	Name      string `json:"name,omitempty"`
	IPAddress string `json:"ip_address"`
	Port      *int   `json:"port"`
	Weight    *int   `json:"weight,omitempty"`
	TargetID  string `json:"target_id,omitempty"`
	IsDrain   bool   `json:"is_drain"`
	IsBackup  bool   `json:"is_backup"`
	IsOffline bool   `json:"is_offline"`
}

// LbBackendSet is the reshaped form of a backend set.
type LbBackendSet struct {
	Policy           string           `json:"policy"`
	IsPreserveSource *bool            `json:"is_preserve_source,omitempty"`
	Backends         []LbBackend      `json:"backends"`
	HealthChecker    *LbHealthChecker `json:"health_checker,omitempty"`
}

// LbListener is the reshaped form of a listener.
type LbListener struct {
	DefaultBackendSetName string `json:"default_backend_set_name"`
	Port                  *int   `json:"port"`
	Protocol              string `json:"protocol"`
	IPVersion             string `json:"ip_version,omitempty"`
	SslCertificateName    string `json:"ssl_certificate_name,omitempty"`
}

// LoadBalancerSummary is the list-level view of a load balancer.
type LoadBalancerSummary struct {
	ID                      string        `json:"id"`
	DisplayName             string        `json:"display_name"`
	CompartmentID           string        `json:"compartment_id"`
	LifecycleState          string        `json:"lifecycle_state"`
	TimeCreated             string        `json:"time_created"`
	ShapeName               string        `json:"shape_name"`
	IsPrivate               bool          `json:"is_private"`
	IPAddresses             []LbIPAddress `json:"ip_addresses"`
	SubnetIds               []string      `json:"subnet_ids,omitempty"`
	NetworkSecurityGroupIds []string      `json:"network_security_group_ids,omitempty"`
}

// LoadBalancerDetails is the full view including backend sets and
// listeners.
type LoadBalancerDetails struct {
	LoadBalancerSummary
	BackendSets map[string]LbBackendSet `json:"backend_sets"`
	Listeners   map[string]LbListener   `json:"listeners"`
}

func newLbSummary(lb loadbalancer.LoadBalancer) LoadBalancerSummary {
	summary := LoadBalancerSummary{
		ID:                      str(lb.Id),
		DisplayName:             str(lb.DisplayName),
		CompartmentID:           str(lb.CompartmentId),
		LifecycleState:          string(lb.LifecycleState),
		TimeCreated:             timeStr(lb.TimeCreated),
		ShapeName:               str(lb.ShapeName),
		IsPrivate:               boolVal(lb.IsPrivate),
		IPAddresses:             []LbIPAddress{},
		SubnetIds:               lb.SubnetIds,
		NetworkSecurityGroupIds: lb.NetworkSecurityGroupIds,
	}
	for _, ip := range lb.IpAddresses {
		summary.IPAddresses = append(summary.IPAddresses, LbIPAddress{
			IPAddress: str(ip.IpAddress),
			IsPublic:  boolVal(ip.IsPublic),
		})
	}
	return summary
}

func newLbHealthChecker(hc *loadbalancer.HealthChecker) *LbHealthChecker {
	if hc == nil {
		return nil
	}
	return &LbHealthChecker{
		Protocol:         str(hc.Protocol),
		Port:             hc.Port,
		URLPath:          str(hc.UrlPath),
		ReturnCode:       hc.ReturnCode,
		Retries:          hc.Retries,
		TimeoutInMillis:  hc.TimeoutInMillis,
		IntervalInMillis: hc.IntervalInMillis,
	}
}

// ListLoadBalancers lists load balancers in a compartment.
func ListLoadBalancers(ctx context.Context, client LoadBalancerAPI, compartmentID string) ([]LoadBalancerSummary, error) {
	lbs := []LoadBalancerSummary{}
	req := loadbalancer.ListLoadBalancersRequest{CompartmentId: common.String(compartmentID)}
	for {
		resp, err := client.ListLoadBalancers(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, lb := range resp.Items {
			lbs = append(lbs, newLbSummary(lb))
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return lbs, nil
}

// GetLoadBalancer returns a single load balancer with its backend sets
// and listeners.
func GetLoadBalancer(ctx context.Context, client LoadBalancerAPI, loadBalancerID string) (*LoadBalancerDetails, error) {
	resp, err := client.GetLoadBalancer(ctx, loadbalancer.GetLoadBalancerRequest{
		LoadBalancerId: common.String(loadBalancerID),
	})
	if err != nil {
		return nil, err
	}
	lb := resp.LoadBalancer

	details := &LoadBalancerDetails{
		LoadBalancerSummary: newLbSummary(lb),
		BackendSets:         map[string]LbBackendSet{},
		Listeners:           map[string]LbListener{},
	}
	for name, bs := range lb.BackendSets {
		set := LbBackendSet{
			Policy:        str(bs.Policy),
			Backends:      []LbBackend{},
			HealthChecker: newLbHealthChecker(bs.HealthChecker),
		}
		for _, b := range bs.Backends {
			set.Backends = append(set.Backends, LbBackend{
				Name:      str(b.Name),
				IPAddress: str(b.IpAddress),
				Port:      b.Port,
				Weight:    b.Weight,
				IsDrain:   boolVal(b.Drain),
				IsBackup:  boolVal(b.Backup),
				IsOffline: boolVal(b.Offline),
			})
		}
		details.BackendSets[name] = set
	}
	for name, listener := range lb.Listeners {
		entry := LbListener{
			DefaultBackendSetName: str(listener.DefaultBackendSetName),
			Port:                  listener.Port,
			Protocol:              str(listener.Protocol),
		}
		if listener.SslConfiguration != nil {
			entry.SslCertificateName = str(listener.SslConfiguration.CertificateName)
		}
		details.Listeners[name] = entry
	}
	return details, nil
}

// NetworkLoadBalancerSummary is the list-level view of a network load
// balancer.
type NetworkLoadBalancerSummary struct {
	ID                          string        `json:"id"`
	DisplayName                 string        `json:"display_name"`
	CompartmentID               string        `json:"compartment_id"`
	LifecycleState              string        `json:"lifecycle_state"`
	TimeCreated                 string        `json:"time_created"`
	IsPrivate                   bool          `json:"is_private"`
	IsPreserveSourceDestination bool          `json:"is_preserve_source_destination"`
	SubnetID                    string        `json:"subnet_id"`
	IPAddresses                 []LbIPAddress `json:"ip_addresses"`
	NetworkSecurityGroupIds     []string      `json:"network_security_group_ids,omitempty"`
	NlbIPVersion                string        `json:"nlb_ip_version,omitempty"`
}

// NetworkLoadBalancerDetails is the full view including backend sets
// and listeners.
type NetworkLoadBalancerDetails struct {
	NetworkLoadBalancerSummary
	BackendSets map[string]LbBackendSet `json:"backend_sets"`
	Listeners   map[string]LbListener   `json:"listeners"`
}

func nlbIPAddresses(addrs []networkloadbalancer.IpAddress) []LbIPAddress {
	out := []LbIPAddress{}
	for _, ip := range addrs {
		out = append(out, LbIPAddress{
			IPAddress: str(ip.IpAddress),
			IsPublic:  boolVal(ip.IsPublic),
			IPVersion: string(ip.IpVersion),
		})
	}
	return out
}

// ListNetworkLoadBalancers lists network load balancers in a compartment.
func ListNetworkLoadBalancers(ctx context.Context, client NetworkLoadBalancerAPI, compartmentID string) ([]NetworkLoadBalancerSummary, error) {
	nlbs := []NetworkLoadBalancerSummary{}
	req := networkloadbalancer.ListNetworkLoadBalancersRequest{CompartmentId: common.String(compartmentID)}
	for {
		resp, err := client.ListNetworkLoadBalancers(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, nlb := range resp.Items {
			nlbs = append(nlbs, NetworkLoadBalancerSummary{
				ID:                          str(nlb.Id),
				DisplayName:                 str(nlb.DisplayName),
				CompartmentID:               str(nlb.CompartmentId),
				LifecycleState:              string(nlb.LifecycleState),
				TimeCreated:                 timeStr(nlb.TimeCreated),
				IsPrivate:                   boolVal(nlb.IsPrivate),
				IsPreserveSourceDestination: boolVal(nlb.IsPreserveSourceDestination),
				SubnetID:                    str(nlb.SubnetId),
				IPAddresses:                 nlbIPAddresses(nlb.IpAddresses),
				NetworkSecurityGroupIds:     nlb.NetworkSecurityGroupIds,
				NlbIPVersion:                string(nlb.NlbIpVersion),
			})
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return nlbs, nil
}

// GetNetworkLoadBalancer returns a single network load balancer with
// its backend sets and listeners.
func GetNetworkLoadBalancer(ctx context.Context, client NetworkLoadBalancerAPI, networkLoadBalancerID string) (*NetworkLoadBalancerDetails, error) {
	resp, err := client.GetNetworkLoadBalancer(ctx, networkloadbalancer.GetNetworkLoadBalancerRequest{
		NetworkLoadBalancerId: common.String(networkLoadBalancerID),
	})
	if err != nil {
		return nil, err
	}
	nlb := resp.NetworkLoadBalancer

	details := &NetworkLoadBalancerDetails{
		NetworkLoadBalancerSummary: NetworkLoadBalancerSummary{
			ID:                          str(nlb.Id),
			DisplayName:                 str(nlb.DisplayName),
			CompartmentID:               str(nlb.CompartmentId),
			LifecycleState:              string(nlb.LifecycleState),
			TimeCreated:                 timeStr(nlb.TimeCreated),
			IsPrivate:                   boolVal(nlb.IsPrivate),
			IsPreserveSourceDestination: boolVal(nlb.IsPreserveSourceDestination),
			SubnetID:                    str(nlb.SubnetId),
			IPAddresses:                 nlbIPAddresses(nlb.IpAddresses),
			NetworkSecurityGroupIds:     nlb.NetworkSecurityGroupIds,
			NlbIPVersion:                string(nlb.NlbIpVersion),
		},
		BackendSets: map[string]LbBackendSet{},
		Listeners:   map[string]LbListener{},
	}
	for name, bs := range nlb.BackendSets {
		set := LbBackendSet{
			Policy:           string(bs.Policy),
			IsPreserveSource: bs.IsPreserveSource,
			Backends:         []LbBackend{},
		}
		if bs.HealthChecker != nil {
			set.HealthChecker = &LbHealthChecker{
				Protocol:         string(bs.HealthChecker.Protocol),
				Port:             bs.HealthChecker.Port,
				URLPath:          str(bs.HealthChecker.UrlPath),
				ReturnCode:       bs.HealthChecker.ReturnCode,
				Retries:          bs.HealthChecker.Retries,
				TimeoutInMillis:  bs.HealthChecker.TimeoutInMillis,
				IntervalInMillis: bs.HealthChecker.IntervalInMillis,
			}
		}
		for _, b := range bs.Backends {
			set.Backends = append(set.Backends, LbBackend{
				Name:      str(b.Name),
				IPAddress: str(b.IpAddress),
				Port:      b.Port,
				Weight:    b.Weight,
				TargetID:  str(b.TargetId),
				IsDrain:   boolVal(b.IsDrain),
				IsBackup:  boolVal(b.IsBackup),
				IsOffline: boolVal(b.IsOffline),
			})
		}
		details.BackendSets[name] = set
	}
	for name, listener := range nlb.Listeners {
		details.Listeners[name] = LbListener{
			DefaultBackendSetName: str(listener.DefaultBackendSetName),
			Port:                  listener.Port,
			Protocol:              string(listener.Protocol),
			IPVersion:             string(listener.IpVersion),
		}
	}
	return details, nil
}
