package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jopsis/mcp-server-oci/internal/oci"
	"github.com/jopsis/mcp-server-oci/internal/ocierr"
	"github.com/jopsis/mcp-server-oci/internal/profile"
)

// Interface-embedding fakes: the session never invokes client methods,
// it only builds and caches them.
type fakeCompute struct{ oci.ComputeAPI }
type fakeVirtualNetwork struct{ oci.VirtualNetworkAPI }
type fakeIdentity struct{ oci.IdentityAPI }
type fakeObjectStorage struct{ oci.ObjectStorageAPI }
type fakeBlockStorage struct{ oci.BlockStorageAPI }
type fakeFileStorage struct{ oci.FileStorageAPI }
type fakeDatabase struct{ oci.DatabaseAPI }
type fakeLoadBalancer struct{ oci.LoadBalancerAPI }
type fakeNetworkLoadBalancer struct{ oci.NetworkLoadBalancerAPI }
type fakeKmsVault struct{ oci.KmsVaultAPI }
type fakeKmsManagement struct {
	oci.KmsManagementAPI
	endpoint string
}

// countingFactory records every build as "service/profile".
type countingFactory struct {
	builds map[string]int
}

func newCountingFactory() *countingFactory {
	return &countingFactory{builds: map[string]int{}}
}

func (f *countingFactory) bump(service string, p profile.Profile) {
	f.builds[service+"/"+p.Name]++
}

func (f *countingFactory) Compute(p profile.Profile) (oci.ComputeAPI, error) {
	f.bump("compute", p)
	return fakeCompute{}, nil
}

func (f *countingFactory) VirtualNetwork(p profile.Profile) (oci.VirtualNetworkAPI, error) {
	f.bump("virtualnetwork", p)
	return fakeVirtualNetwork{}, nil
}

func (f *countingFactory) Identity(p profile.Profile) (oci.IdentityAPI, error) {
	f.bump("identity", p)
	return fakeIdentity{}, nil
}

func (f *countingFactory) ObjectStorage(p profile.Profile) (oci.ObjectStorageAPI, error) {
	f.bump("objectstorage", p)
	return fakeObjectStorage{}, nil
}

func (f *countingFactory) BlockStorage(p profile.Profile) (oci.BlockStorageAPI, error) {
	f.bump("blockstorage", p)
	return fakeBlockStorage{}, nil
}

func (f *countingFactory) FileStorage(p profile.Profile) (oci.FileStorageAPI, error) {
	f.bump("filestorage", p)
	return fakeFileStorage{}, nil
}

func (f *countingFactory) Database(p profile.Profile) (oci.DatabaseAPI, error) {
	f.bump("database", p)
	return fakeDatabase{}, nil
}

func (f *countingFactory) LoadBalancer(p profile.Profile) (oci.LoadBalancerAPI, error) {
	f.bump("loadbalancer", p)
	return fakeLoadBalancer{}, nil
}

func (f *countingFactory) NetworkLoadBalancer(p profile.Profile) (oci.NetworkLoadBalancerAPI, error) {
	f.bump("networkloadbalancer", p)
	return fakeNetworkLoadBalancer{}, nil
}

func (f *countingFactory) KmsVault(p profile.Profile) (oci.KmsVaultAPI, error) {
	f.bump("kmsvault", p)
	return fakeKmsVault{}, nil
}

func (f *countingFactory) KmsManagement(p profile.Profile, endpoint string) (oci.KmsManagementAPI, error) {
	f.bump("kmsmanagement:"+endpoint, p)
	return fakeKmsManagement{endpoint: endpoint}, nil
}

const testConfig = `[ALPHA]
user=ocid1.user.oc1..alpha
tenancy=ocid1.tenancy.oc1..alpha
region=eu-frankfurt-1
fingerprint=aa:bb

[BETA]
user=ocid1.user.oc1..beta
tenancy=ocid1.tenancy.oc1..beta
region=us-ashburn-1
fingerprint=cc:dd
`

func newTestSession(t *testing.T) (*Session, *countingFactory) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))
	factory := newCountingFactory()
	return New(profile.NewRegistry(path), factory), factory
}

func TestSessionNoActiveProfile(t *testing.T) {
	sess, _ := newTestSession(t)

	assert.False(t, sess.HasProfile())

	_, err := sess.ActiveProfile()
	var nap *ocierr.NoActiveProfileError
	require.True(t, errors.As(err, &nap))

	_, err = sess.Compute()
	require.True(t, errors.As(err, &nap))

	_, err = sess.KmsManagement("https://kms.example.com")
	require.True(t, errors.As(err, &nap))

	_, err = sess.Tenancy()
	require.True(t, errors.As(err, &nap))
}

func TestSessionSetProfile(t *testing.T) {
	sess, _ := newTestSession(t)

	p, err := sess.SetProfile("ALPHA")
	require.NoError(t, err)
	assert.Equal(t, "ALPHA", p.Name)
	assert.True(t, sess.HasProfile())

	active, err := sess.ActiveProfile()
	require.NoError(t, err)
	assert.Equal(t, "ALPHA", active.Name)

	tenancy, err := sess.Tenancy()
	require.NoError(t, err)
	assert.Equal(t, "ocid1.tenancy.oc1..alpha", tenancy)
}

func TestSessionSetUnknownProfileKeepsState(t *testing.T) {
	sess, _ := newTestSession(t)

	_, err := sess.SetProfile("NOPE")
	var notFound *ocierr.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.False(t, sess.HasProfile())

	_, err = sess.SetProfile("ALPHA")
	require.NoError(t, err)

	_, err = sess.SetProfile("NOPE")
	require.Error(t, err)

	active, err := sess.ActiveProfile()
	require.NoError(t, err)
	assert.Equal(t, "ALPHA", active.Name, "failed switch must not change the active profile")
}

func TestSessionCachesClients(t *testing.T) {
	sess, factory := newTestSession(t)
	_, err := sess.SetProfile("ALPHA")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := sess.Compute()
		require.NoError(t, err)
	}
	_, err = sess.Database()
	require.NoError(t, err)

	assert.Equal(t, 1, factory.builds["compute/ALPHA"])
	assert.Equal(t, 1, factory.builds["database/ALPHA"])
}

func TestSessionProfileSwitchRebuildsClients(t *testing.T) {
	sess, factory := newTestSession(t)

	_, err := sess.SetProfile("ALPHA")
	require.NoError(t, err)
	_, err = sess.Compute()
	require.NoError(t, err)

	_, err = sess.SetProfile("BETA")
	require.NoError(t, err)
	_, err = sess.Compute()
	require.NoError(t, err)
	_, err = sess.Compute()
	require.NoError(t, err)

	assert.Equal(t, 1, factory.builds["compute/ALPHA"])
	assert.Equal(t, 1, factory.builds["compute/BETA"])
}

func TestSessionKmsManagementPerEndpoint(t *testing.T) {
	sess, factory := newTestSession(t)
	_, err := sess.SetProfile("ALPHA")
	require.NoError(t, err)

	a, err := sess.KmsManagement("https://a.example.com")
	require.NoError(t, err)
	b, err := sess.KmsManagement("https://b.example.com")
	require.NoError(t, err)
	a2, err := sess.KmsManagement("https://a.example.com")
	require.NoError(t, err)

	assert.Equal(t, a, a2)
	assert.NotEqual(t, a, b)
	assert.Equal(t, 1, factory.builds["kmsmanagement:https://a.example.com/ALPHA"])
	assert.Equal(t, 1, factory.builds["kmsmanagement:https://b.example.com/ALPHA"])
}
