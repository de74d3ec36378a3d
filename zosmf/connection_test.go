package zosmf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	zosmferrors "github.com/zostools/zosmf-go/errors"
	"github.com/zostools/zosmf-go/zosmf"
)

func validConnection() zosmf.Connection {
	return zosmf.Connection{
		Host:     "zosmf.example.com",
		Port:     "443",
		User:     "IBMUSER",
		Password: "secret",
	}
}

func TestConnectionValidate(t *testing.T) {
	assert.NoError(t, validConnection().Validate())

	mutations := map[string]func(*zosmf.Connection){
		"host":     func(c *zosmf.Connection) { c.Host = "" },
		"port":     func(c *zosmf.Connection) { c.Port = " " },
		"user":     func(c *zosmf.Connection) { c.User = "" },
		"password": func(c *zosmf.Connection) { c.Password = "" },
	}
	for name, mutate := range mutations {
		t.Run("missing "+name, func(t *testing.T) {
			connection := validConnection()
			mutate(&connection)

			err := connection.Validate()

			assert.True(t, zosmferrors.IsInvalid(err))
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestConnectionBaseURL(t *testing.T) {
	assert.Equal(t, "https://zosmf.example.com:443", validConnection().BaseURL())

	withBasePath := validConnection()
	withBasePath.BasePath = "https://gateway.example.com/zosmf-proxy/"
	assert.Equal(t, "https://gateway.example.com/zosmf-proxy", withBasePath.BaseURL())
}

func TestConnectionAuthEncoding(t *testing.T) {
	// base64("IBMUSER:secret")
	assert.Equal(t, "SUJNVVNFUjpzZWNyZXQ=", validConnection().AuthEncoding())
}
