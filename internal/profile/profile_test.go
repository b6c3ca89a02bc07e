package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jopsis/mcp-server-oci/internal/ocierr"
)

const twoProfileConfig = `[DEFAULT]
user=ocid1.user.oc1..default
fingerprint=aa:bb:cc:dd
tenancy=ocid1.tenancy.oc1..default
region=eu-frankfurt-1
key_file=/home/user/.oci/default.pem

[PROD]
user=ocid1.user.oc1..prod
fingerprint=11:22:33:44
tenancy=ocid1.tenancy.oc1..prod
region=us-ashburn-1
key_file=/home/user/.oci/prod.pem
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry(writeConfig(t, twoProfileConfig))

	profiles, err := r.List()
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	assert.Equal(t, "DEFAULT", profiles[0].Name)
	assert.Equal(t, "ocid1.tenancy.oc1..default", profiles[0].Tenancy)
	assert.Equal(t, "eu-frankfurt-1", profiles[0].Region)

	assert.Equal(t, "PROD", profiles[1].Name)
	assert.Equal(t, "ocid1.user.oc1..prod", profiles[1].User)
	assert.Equal(t, "11:22:33:44", profiles[1].Fingerprint)
	assert.Equal(t, r.Path(), profiles[1].ConfigPath)
}

func TestRegistryListRereadsFile(t *testing.T) {
	path := writeConfig(t, twoProfileConfig)
	r := NewRegistry(path)

	profiles, err := r.List()
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	extra := twoProfileConfig + "\n[DEV]\nuser=ocid1.user.oc1..dev\ntenancy=ocid1.tenancy.oc1..dev\nregion=eu-madrid-1\n"
	require.NoError(t, os.WriteFile(path, []byte(extra), 0o600))

	profiles, err = r.List()
	require.NoError(t, err)
	require.Len(t, profiles, 3)
	assert.Equal(t, "DEV", profiles[2].Name)
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry(writeConfig(t, twoProfileConfig))

	p, err := r.Get("PROD")
	require.NoError(t, err)
	assert.Equal(t, "PROD", p.Name)
	assert.Equal(t, "us-ashburn-1", p.Region)

	_, err = r.Get("STAGING")
	var notFound *ocierr.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "profile", notFound.Kind)
	assert.Equal(t, "STAGING", notFound.Name)
}

func TestRegistryMissingFile(t *testing.T) {
	r := NewRegistry(filepath.Join(t.TempDir(), "nope"))

	_, err := r.List()
	var confErr *ocierr.ConfigurationError
	require.True(t, errors.As(err, &confErr))
}

func TestRegistryMalformedFile(t *testing.T) {
	r := NewRegistry(writeConfig(t, "[BROKEN\nuser=x\n"))

	_, err := r.List()
	var confErr *ocierr.ConfigurationError
	require.True(t, errors.As(err, &confErr))
}

func TestDefaultConfigPathEnvOverride(t *testing.T) {
	path := writeConfig(t, twoProfileConfig)
	t.Setenv("OCI_CONFIG_FILE", path)

	r := NewRegistry("")
	assert.Equal(t, path, r.Path())

	profiles, err := r.List()
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
}
