package zosmf

import (
	"encoding/base64"
	"fmt"
	"strings"

	zosmferrors "github.com/zostools/zosmf-go/errors"
)

// Connection holds the information needed to reach a z/OSMF instance.
// Construct one per target system; it is immutable after construction
// and safe for concurrent use.
type Connection struct {
	// Host name or IP address of the z/OSMF server
	Host string

	// Port z/OSMF is listening on, typically 443
	Port string

	// User id for basic authentication
	User string

	// Password for basic authentication
	Password string

	// BasePath overrides the scheme://host:port prefix used for every
	// request. Intended for tests and for gateways that front z/OSMF.
	BasePath string
}

// Validate checks that all required connection fields are present.
func (c Connection) Validate() error {
	switch {
	case strings.TrimSpace(c.Host) == "":
		return zosmferrors.NewInvalid("connection host not specified")
	case strings.TrimSpace(c.Port) == "":
		return zosmferrors.NewInvalid("connection port not specified")
	case strings.TrimSpace(c.User) == "":
		return zosmferrors.NewInvalid("connection user not specified")
	case strings.TrimSpace(c.Password) == "":
		return zosmferrors.NewInvalid("connection password not specified")
	}
	return nil
}

// BaseURL returns the prefix every z/OSMF resource path is appended to.
func (c Connection) BaseURL() string {
	if c.BasePath != "" {
		return strings.TrimSuffix(c.BasePath, "/")
	}
	return fmt.Sprintf("https://%s:%s", c.Host, c.Port)
}

// AuthEncoding returns the base64 user:password value for the basic
// authentication header.
func (c Connection) AuthEncoding() string {
	return base64.StdEncoding.EncodeToString([]byte(c.User + ":" + c.Password))
}
