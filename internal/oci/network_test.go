package oci

import (
	"context"
	"testing"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVcnAPI serves VCNs with one subnet each and canned security lists.
type fakeVcnAPI struct {
	VirtualNetworkAPI

	vcns         []core.Vcn
	securityList core.SecurityList
	subnetCalls  []string
}

func (f *fakeVcnAPI) ListVcns(ctx context.Context, request core.ListVcnsRequest) (core.ListVcnsResponse, error) {
	return core.ListVcnsResponse{Items: f.vcns}, nil
}

func (f *fakeVcnAPI) ListSubnets(ctx context.Context, request core.ListSubnetsRequest) (core.ListSubnetsResponse, error) {
	f.subnetCalls = append(f.subnetCalls, *request.VcnId)
	return core.ListSubnetsResponse{
		Items: []core.Subnet{{
			Id:    common.String("ocid1.subnet.oc1.." + *request.VcnId),
			VcnId: request.VcnId,
		}},
	}, nil
}

func (f *fakeVcnAPI) GetSecurityList(ctx context.Context, request core.GetSecurityListRequest) (core.GetSecurityListResponse, error) {
	return core.GetSecurityListResponse{SecurityList: f.securityList}, nil
}

func TestListSubnetsFansOutOverVcns(t *testing.T) {
	fake := &fakeVcnAPI{
		vcns: []core.Vcn{
			{Id: common.String("vcn1")},
			{Id: common.String("vcn2")},
		},
	}

	subnets, err := ListSubnets(context.Background(), fake, "ocid1.compartment.oc1..c", "")
	require.NoError(t, err)
	require.Len(t, subnets, 2)
	assert.Equal(t, []string{"vcn1", "vcn2"}, fake.subnetCalls)
}

func TestListSubnetsScopedToOneVcn(t *testing.T) {
	fake := &fakeVcnAPI{}

	subnets, err := ListSubnets(context.Background(), fake, "ocid1.compartment.oc1..c", "vcn9")
	require.NoError(t, err)
	require.Len(t, subnets, 1)
	assert.Equal(t, []string{"vcn9"}, fake.subnetCalls)
}

func TestGetSecurityListRuleProjection(t *testing.T) {
	fake := &fakeVcnAPI{
		securityList: core.SecurityList{
			Id:          common.String("ocid1.securitylist.oc1..sl1"),
			DisplayName: common.String("default"),
			IngressSecurityRules: []core.IngressSecurityRule{{
				Protocol:    common.String("6"),
				Source:      common.String("0.0.0.0/0"),
				SourceType:  core.IngressSecurityRuleSourceTypeCidrBlock,
				IsStateless: common.Bool(false),
				TcpOptions: &core.TcpOptions{
					DestinationPortRange: &core.PortRange{
						Min: common.Int(22),
						Max: common.Int(22),
					},
				},
			}},
			EgressSecurityRules: []core.EgressSecurityRule{{
				Protocol:    common.String("all"),
				Destination: common.String("0.0.0.0/0"),
			}},
		},
	}

	details, err := GetSecurityList(context.Background(), fake, "ocid1.securitylist.oc1..sl1")
	require.NoError(t, err)

	require.Len(t, details.IngressRules, 1)
	ingress := details.IngressRules[0]
	assert.Equal(t, "6", ingress.Protocol)
	assert.Equal(t, "0.0.0.0/0", ingress.Source)
	assert.Equal(t, "CIDR_BLOCK", ingress.SourceType)
	require.NotNil(t, ingress.TcpOptions)
	require.NotNil(t, ingress.TcpOptions.DestinationPortRange)
	assert.Equal(t, 22, *ingress.TcpOptions.DestinationPortRange.Min)
	assert.Nil(t, ingress.IcmpOptions)

	require.Len(t, details.EgressRules, 1)
	assert.Equal(t, "0.0.0.0/0", details.EgressRules[0].Destination)
}
