package teamconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	zosmferrors "github.com/zostools/zosmf-go/errors"
	"github.com/zostools/zosmf-go/teamconfig"
)

const sampleConfig = `{
  "$schema": "./zowe.schema.json",
  "defaults": {
    "zosmf": "lpar1",
    "base": "global"
  },
  "autoStore": true,
  "profiles": {
    "lpar1": {
      "type": "zosmf",
      "properties": {
        "host": "lpar1.example.com",
        "port": 10443
      },
      "secure": ["user", "password"]
    },
    "lpar2": {
      "type": "zosmf",
      "properties": {
        "host": "lpar2.example.com",
        "port": 443,
        "user": "LPAR2USR"
      }
    },
    "global": {
      "type": "base",
      "properties": {
        "user": "IBMUSER",
        "password": "secret"
      }
    }
  }
}`

func writeSampleConfig(t *testing.T) string {
	path := filepath.Join(t.TempDir(), teamconfig.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("parses a configuration file", func(t *testing.T) {
		config, err := teamconfig.Load(writeSampleConfig(t))

		require.NoError(t, err)
		assert.Equal(t, "lpar1", config.Defaults["zosmf"])
		assert.Len(t, config.Profiles, 3)
		assert.Equal(t, []string{"user", "password"}, config.Profiles["lpar1"].Secure)
	})

	t.Run("reports a missing file", func(t *testing.T) {
		_, err := teamconfig.Load(filepath.Join(t.TempDir(), "nope.json"))

		assert.True(t, zosmferrors.IsNotFound(err))
	})

	t.Run("reports an unparsable file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), teamconfig.ConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		_, err := teamconfig.Load(path)

		assert.True(t, zosmferrors.IsRemote(err))
	})
}

func TestProfileMerging(t *testing.T) {
	config, err := teamconfig.Load(writeSampleConfig(t))
	require.NoError(t, err)

	t.Run("fills missing properties from the base profile", func(t *testing.T) {
		profile, err := config.Profile("lpar1")

		require.NoError(t, err)
		assert.Equal(t, "lpar1.example.com", profile.Properties["host"])
		assert.Equal(t, "IBMUSER", profile.Properties["user"])
		assert.Equal(t, "secret", profile.Properties["password"])
	})

	t.Run("keeps the profile's own properties over the base", func(t *testing.T) {
		profile, err := config.Profile("lpar2")

		require.NoError(t, err)
		assert.Equal(t, "LPAR2USR", profile.Properties["user"])
		assert.Equal(t, "secret", profile.Properties["password"])
	})

	t.Run("reports an unknown profile", func(t *testing.T) {
		_, err := config.Profile("lpar9")

		assert.True(t, zosmferrors.IsNotFound(err))
	})
}

func TestConnection(t *testing.T) {
	config, err := teamconfig.Load(writeSampleConfig(t))
	require.NoError(t, err)

	t.Run("builds a connection from the default zosmf profile", func(t *testing.T) {
		connection, err := config.Connection("")

		require.NoError(t, err)
		assert.Equal(t, "lpar1.example.com", connection.Host)
		assert.Equal(t, "10443", connection.Port)
		assert.Equal(t, "IBMUSER", connection.User)
		require.NoError(t, connection.Validate())
	})

	t.Run("builds a connection from a named profile", func(t *testing.T) {
		connection, err := config.Connection("lpar2")

		require.NoError(t, err)
		assert.Equal(t, "lpar2.example.com", connection.Host)
		assert.Equal(t, "LPAR2USR", connection.User)
	})
}
