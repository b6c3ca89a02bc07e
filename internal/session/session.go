// Package session holds the server's runtime state: the active OCI
// profile and the service clients built from it.
//
// All tool handlers share one Session. Switching profiles drops every
// cached client so the next call authenticates with the new identity.
package session

import (
	"sync"

	"github.com/jopsis/mcp-server-oci/internal/oci"
	"github.com/jopsis/mcp-server-oci/internal/ocierr"
	"github.com/jopsis/mcp-server-oci/internal/profile"
)

// Factory builds service clients for a profile. The production factory
// wraps the OCI SDK constructors; tests substitute fakes.
type Factory interface {
	Compute(p profile.Profile) (oci.ComputeAPI, error)
	VirtualNetwork(p profile.Profile) (oci.VirtualNetworkAPI, error)
	Identity(p profile.Profile) (oci.IdentityAPI, error)
	ObjectStorage(p profile.Profile) (oci.ObjectStorageAPI, error)
	BlockStorage(p profile.Profile) (oci.BlockStorageAPI, error)
	FileStorage(p profile.Profile) (oci.FileStorageAPI, error)
	Database(p profile.Profile) (oci.DatabaseAPI, error)
	LoadBalancer(p profile.Profile) (oci.LoadBalancerAPI, error)
	NetworkLoadBalancer(p profile.Profile) (oci.NetworkLoadBalancerAPI, error)
	KmsVault(p profile.Profile) (oci.KmsVaultAPI, error)
	KmsManagement(p profile.Profile, managementEndpoint string) (oci.KmsManagementAPI, error)
}

// Session is the mutable state behind the MCP tools.
type Session struct {
	mu       sync.Mutex
	registry *profile.Registry
	factory  Factory

	active  *profile.Profile
	clients map[string]any
	kms     map[string]oci.KmsManagementAPI
}

// New returns a session with no active profile.
func New(registry *profile.Registry, factory Factory) *Session {
	return &Session{
		registry: registry,
		factory:  factory,
		clients:  map[string]any{},
		kms:      map[string]oci.KmsManagementAPI{},
	}
}

// Profiles lists the profiles of the backing config file.
func (s *Session) Profiles() ([]profile.Profile, error) {
	return s.registry.List()
}

// ActiveProfile returns the currently selected profile.
func (s *Session) ActiveProfile() (profile.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return profile.Profile{}, &ocierr.NoActiveProfileError{}
	}
	return *s.active, nil
}

// HasProfile reports whether a profile is selected.
func (s *Session) HasProfile() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active != nil
}

// SetProfile validates the named profile against the config file and
// makes it active, dropping all cached clients. On failure the previous
// profile stays active.
func (s *Session) SetProfile(name string) (profile.Profile, error) {
	p, err := s.registry.Get(name)
	if err != nil {
		return profile.Profile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = &p
	s.clients = map[string]any{}
	s.kms = map[string]oci.KmsManagementAPI{}
	return p, nil
}

// client returns the cached client under key, building it on first use.
func client[T any](s *Session, key string, build func(Factory, profile.Profile) (T, error)) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return zero, &ocierr.NoActiveProfileError{}
	}
	if cached, ok := s.clients[key]; ok {
		return cached.(T), nil
	}
	built, err := build(s.factory, *s.active)
	if err != nil {
		return zero, err
	}
	s.clients[key] = built
	return built, nil
}

// Compute returns the compute client for the active profile.
func (s *Session) Compute() (oci.ComputeAPI, error) {
	return client(s, "compute", Factory.Compute)
}

// VirtualNetwork returns the virtual network client for the active profile.
func (s *Session) VirtualNetwork() (oci.VirtualNetworkAPI, error) {
	return client(s, "virtualnetwork", Factory.VirtualNetwork)
}

// Identity returns the identity client for the active profile.
func (s *Session) Identity() (oci.IdentityAPI, error) {
	return client(s, "identity", Factory.Identity)
}

// ObjectStorage returns the object storage client for the active profile.
func (s *Session) ObjectStorage() (oci.ObjectStorageAPI, error) {
	return client(s, "objectstorage", Factory.ObjectStorage)
}

// BlockStorage returns the block storage client for the active profile.
func (s *Session) BlockStorage() (oci.BlockStorageAPI, error) {
	return client(s, "blockstorage", Factory.BlockStorage)
}

// FileStorage returns the file storage client for the active profile.
func (s *Session) FileStorage() (oci.FileStorageAPI, error) {
	return client(s, "filestorage", Factory.FileStorage)
}

// Database returns the database client for the active profile.
func (s *Session) Database() (oci.DatabaseAPI, error) {
	return client(s, "database", Factory.Database)
}

// LoadBalancer returns the load balancer client for the active profile.
func (s *Session) LoadBalancer() (oci.LoadBalancerAPI, error) {
	return client(s, "loadbalancer", Factory.LoadBalancer)
}

// NetworkLoadBalancer returns the network load balancer client for the
// active profile.
func (s *Session) NetworkLoadBalancer() (oci.NetworkLoadBalancerAPI, error) {
	return client(s, "networkloadbalancer", Factory.NetworkLoadBalancer)
}

// KmsVault returns the KMS vault client for the active profile.
func (s *Session) KmsVault() (oci.KmsVaultAPI, error) {
	return client(s, "kmsvault", Factory.KmsVault)
}

// KmsManagement returns the KMS management client bound to a vault's
// management endpoint. Clients are cached per endpoint.
func (s *Session) KmsManagement(managementEndpoint string) (oci.KmsManagementAPI, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, &ocierr.NoActiveProfileError{}
	}
	if cached, ok := s.kms[managementEndpoint]; ok {
		return cached, nil
	}
	built, err := s.factory.KmsManagement(*s.active, managementEndpoint)
	if err != nil {
		return nil, err
	}
	s.kms[managementEndpoint] = built
	return built, nil
}

// Tenancy returns the tenancy OCID of the active profile.
func (s *Session) Tenancy() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return "", &ocierr.NoActiveProfileError{}
	}
	return s.active.Tenancy, nil
}
