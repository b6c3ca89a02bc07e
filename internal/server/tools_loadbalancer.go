package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jopsis/mcp-server-oci/internal/oci"
)

func (s *Server) registerLoadBalancerTools() {
	s.register(mcp.NewTool("list_load_balancers",
		mcp.WithDescription("List load balancers in a compartment."),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.LoadBalancer()
		if err != nil {
			return nil, err
		}
		return oci.ListLoadBalancers(ctx, client, compartmentID)
	})

	s.register(mcp.NewTool("get_load_balancer",
		mcp.WithDescription("Get a load balancer with its backend sets and listeners."),
		mcp.WithString("load_balancer_id", mcp.Required(), mcp.Description("OCID of the load balancer.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		loadBalancerID, err := requiredString(request, "load_balancer_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.LoadBalancer()
		if err != nil {
			return nil, err
		}
		return oci.GetLoadBalancer(ctx, client, loadBalancerID)
	})

	s.register(mcp.NewTool("list_network_load_balancers",
		mcp.WithDescription("List network load balancers in a compartment."),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.NetworkLoadBalancer()
		if err != nil {
			return nil, err
		}
		return oci.ListNetworkLoadBalancers(ctx, client, compartmentID)
	})

	s.register(mcp.NewTool("get_network_load_balancer",
		mcp.WithDescription("Get a network load balancer with its backend sets and listeners."),
		mcp.WithString("network_load_balancer_id", mcp.Required(), mcp.Description("OCID of the network load balancer.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		networkLoadBalancerID, err := requiredString(request, "network_load_balancer_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.NetworkLoadBalancer()
		if err != nil {
			return nil, err
		}
		return oci.GetNetworkLoadBalancer(ctx, client, networkLoadBalancerID)
	})
}
