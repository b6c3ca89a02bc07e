// Package profile reads named OCI profiles from the standard credentials
// file (~/.oci/config or the OCI_CONFIG_FILE override).
//
// The file is re-read on every call so that edits made while the server
// is running are picked up without a restart.
package profile

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/jopsis/mcp-server-oci/internal/ocierr"
)

// Profile is one named section of the OCI credentials file. Immutable
// once read.
type Profile struct {
	Name        string `json:"name"`
	User        string `json:"user"`
	Tenancy     string `json:"tenancy"`
	Region      string `json:"region"`
	Fingerprint string `json:"fingerprint"`
	KeyFile     string `json:"-"`

	// ConfigPath is the file the profile was read from, needed to build
	// SDK configuration providers against the same source.
	ConfigPath string `json:"-"`
}

// Registry lists and resolves profiles from a credentials file.
type Registry struct {
	path string
}

// NewRegistry creates a registry reading from path. An empty path selects
// the default location (OCI_CONFIG_FILE, falling back to ~/.oci/config).
func NewRegistry(path string) *Registry {
	if path == "" {
		path = DefaultConfigPath()
	}
	return &Registry{path: path}
}

// DefaultConfigPath returns the OCI credentials file location, honoring
// the OCI_CONFIG_FILE environment variable.
func DefaultConfigPath() string {
	if p := os.Getenv("OCI_CONFIG_FILE"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".oci/config"
	}
	return filepath.Join(home, ".oci", "config")
}

// Path returns the credentials file location this registry reads.
func (r *Registry) Path() string { return r.path }

// List returns all profiles in file order. The file is parsed fresh on
// every call.
func (r *Registry) List() ([]Profile, error) {
	if _, err := os.Stat(r.path); err != nil {
		return nil, &ocierr.ConfigurationError{Path: r.path, Err: err}
	}

	f, err := ini.Load(r.path)
	if err != nil {
		return nil, &ocierr.ConfigurationError{Path: r.path, Err: err}
	}

	var profiles []Profile
	for _, section := range f.Sections() {
		// ini surfaces a synthetic DEFAULT section even when the file has
		// none; only a populated one is a real OCI profile.
		if section.Name() == ini.DefaultSection && len(section.Keys()) == 0 {
			continue
		}
		profiles = append(profiles, Profile{
			Name:        section.Name(),
			User:        section.Key("user").String(),
			Tenancy:     section.Key("tenancy").String(),
			Region:      section.Key("region").String(),
			Fingerprint: section.Key("fingerprint").String(),
			KeyFile:     section.Key("key_file").String(),
			ConfigPath:  r.path,
		})
	}
	return profiles, nil
}

// Get resolves a single profile by name.
func (r *Registry) Get(name string) (Profile, error) {
	profiles, err := r.List()
	if err != nil {
		return Profile{}, err
	}
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, &ocierr.NotFoundError{Kind: "profile", Name: name}
}
