package session

import (
	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/oracle/oci-go-sdk/v65/database"
	"github.com/oracle/oci-go-sdk/v65/filestorage"
	"github.com/oracle/oci-go-sdk/v65/identity"
	"github.com/oracle/oci-go-sdk/v65/keymanagement"
	"github.com/oracle/oci-go-sdk/v65/loadbalancer"
	"github.com/oracle/oci-go-sdk/v65/networkloadbalancer"
	"github.com/oracle/oci-go-sdk/v65/objectstorage"

	"github.com/jopsis/mcp-server-oci/internal/oci"
	"github.com/jopsis/mcp-server-oci/internal/profile"
)

// sdkFactory builds real OCI SDK clients from the profile's entry in
// the config file.
type sdkFactory struct{}

// NewSDKFactory returns the production client factory.
func NewSDKFactory() Factory {
	return sdkFactory{}
}

func (sdkFactory) provider(p profile.Profile) common.ConfigurationProvider {
	return common.CustomProfileConfigProvider(p.ConfigPath, p.Name)
}

func (f sdkFactory) Compute(p profile.Profile) (oci.ComputeAPI, error) {
	c, err := core.NewComputeClientWithConfigurationProvider(f.provider(p))
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (f sdkFactory) VirtualNetwork(p profile.Profile) (oci.VirtualNetworkAPI, error) {
	c, err := core.NewVirtualNetworkClientWithConfigurationProvider(f.provider(p))
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (f sdkFactory) Identity(p profile.Profile) (oci.IdentityAPI, error) {
	c, err := identity.NewIdentityClientWithConfigurationProvider(f.provider(p))
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (f sdkFactory) ObjectStorage(p profile.Profile) (oci.ObjectStorageAPI, error) {
	c, err := objectstorage.NewObjectStorageClientWithConfigurationProvider(f.provider(p))
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (f sdkFactory) BlockStorage(p profile.Profile) (oci.BlockStorageAPI, error) {
	c, err := core.NewBlockstorageClientWithConfigurationProvider(f.provider(p))
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (f sdkFactory) FileStorage(p profile.Profile) (oci.FileStorageAPI, error) {
	c, err := filestorage.NewFileStorageClientWithConfigurationProvider(f.provider(p))
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (f sdkFactory) Database(p profile.Profile) (oci.DatabaseAPI, error) {
	c, err := database.NewDatabaseClientWithConfigurationProvider(f.provider(p))
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (f sdkFactory) LoadBalancer(p profile.Profile) (oci.LoadBalancerAPI, error) {
	c, err := loadbalancer.NewLoadBalancerClientWithConfigurationProvider(f.provider(p))
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (f sdkFactory) NetworkLoadBalancer(p profile.Profile) (oci.NetworkLoadBalancerAPI, error) {
	c, err := networkloadbalancer.NewNetworkLoadBalancerClientWithConfigurationProvider(f.provider(p))
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (f sdkFactory) KmsVault(p profile.Profile) (oci.KmsVaultAPI, error) {
	c, err := keymanagement.NewKmsVaultClientWithConfigurationProvider(f.provider(p))
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (f sdkFactory) KmsManagement(p profile.Profile, managementEndpoint string) (oci.KmsManagementAPI, error) {
	c, err := keymanagement.NewKmsManagementClientWithConfigurationProvider(f.provider(p), managementEndpoint)
	if err != nil {
		return nil, err
	}
	return c, nil
}
