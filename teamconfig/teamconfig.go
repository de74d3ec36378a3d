// Package teamconfig reads Zowe team configuration files and turns their
// profiles into connections.
package teamconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	zosmferrors "github.com/zostools/zosmf-go/errors"
	"github.com/zostools/zosmf-go/zosmf"
)

// ConfigFileName is the well-known team configuration file name.
const ConfigFileName = "zowe.config.json"

// Profile types looked up through defaults.
const (
	ProfileTypeZosmf = "zosmf"
	ProfileTypeBase  = "base"
)

// Profile is one profile section of a team configuration file.
type Profile struct {
	// Type of the profile, e.g. "zosmf" or "base"
	Type string `json:"type"`

	// Properties holds the raw property values of the section
	Properties map[string]any `json:"properties"`

	// Secure lists property names stored in the secure vault instead of
	// the file
	Secure []string `json:"secure"`
}

// TeamConfig is a parsed team configuration file.
type TeamConfig struct {
	Schema    string             `json:"$schema"`
	Defaults  map[string]string  `json:"defaults"`
	Profiles  map[string]Profile `json:"profiles"`
	AutoStore bool               `json:"autoStore"`
}

// DefaultPath returns the team configuration location under the user's
// home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".zowe", ConfigFileName), nil
}

// Load parses the team configuration file at path.
func Load(path string) (*TeamConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zosmferrors.NewNotFound("team configuration", path)
		}
		return nil, fmt.Errorf("failed to read team configuration %s: %w", path, err)
	}
	var config TeamConfig
	if err := json.Unmarshal(content, &config); err != nil {
		return nil, zosmferrors.NewUnparsable(err)
	}
	return &config, nil
}

// Profile returns the named profile with the base profile's properties
// merged in for any property the profile itself does not set.
func (c *TeamConfig) Profile(name string) (Profile, error) {
	profile, ok := c.Profiles[name]
	if !ok {
		return Profile{}, zosmferrors.NewNotFound("profile", name)
	}

	merged := make(map[string]any, len(profile.Properties))
	if err := mergo.Merge(&merged, profile.Properties); err != nil {
		return Profile{}, fmt.Errorf("failed to merge profile properties: %w", err)
	}
	if baseName, ok := c.Defaults[ProfileTypeBase]; ok && baseName != name {
		if base, ok := c.Profiles[baseName]; ok {
			if err := mergo.Merge(&merged, base.Properties); err != nil {
				return Profile{}, fmt.Errorf("failed to merge base profile properties: %w", err)
			}
		}
	}
	profile.Properties = merged
	return profile, nil
}

// DefaultProfile returns the profile the defaults section names for the
// given profile type.
func (c *TeamConfig) DefaultProfile(profileType string) (Profile, error) {
	name, ok := c.Defaults[profileType]
	if !ok {
		return Profile{}, zosmferrors.NewNotFound("default profile for type", profileType)
	}
	return c.Profile(name)
}

// Connection builds a connection from the named zosmf profile.
func (c *TeamConfig) Connection(profileName string) (zosmf.Connection, error) {
	var profile Profile
	var err error
	if profileName == "" {
		profile, err = c.DefaultProfile(ProfileTypeZosmf)
	} else {
		profile, err = c.Profile(profileName)
	}
	if err != nil {
		return zosmf.Connection{}, err
	}

	connection := zosmf.Connection{
		Host:     stringProperty(profile.Properties, "host"),
		Port:     stringProperty(profile.Properties, "port"),
		User:     stringProperty(profile.Properties, "user"),
		Password: stringProperty(profile.Properties, "password"),
		BasePath: stringProperty(profile.Properties, "basePath"),
	}
	return connection, nil
}

// stringProperty renders a property value as a string. Ports are commonly
// written as JSON numbers.
func stringProperty(properties map[string]any, key string) string {
	value, ok := properties[key]
	if !ok {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
