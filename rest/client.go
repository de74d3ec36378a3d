// Package rest executes HTTP requests against z/OSMF REST endpoints. It owns
// authentication headers, request logging and the mapping of non-2xx replies
// onto the SDK error taxonomy. Service packages build resource URLs and hand
// them to a Client.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	zosmferrors "github.com/zostools/zosmf-go/errors"
	"github.com/zostools/zosmf-go/zosmf"
)

const (
	// CsrfHeaderKey must accompany every z/OSMF request; the value is
	// irrelevant but the header must be present.
	CsrfHeaderKey = "X-CSRF-ZOSMF-HEADER"

	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=UTF-8"

	defaultTimeout = 5 * time.Minute
)

// Client issues authenticated requests against one z/OSMF instance.
type Client struct {
	connection zosmf.Connection
	httpClient *http.Client
	logger     zerolog.Logger
}

// New returns a Client for the given connection. Pass a nil httpClient to use
// a default one with a 5 minute timeout; tests and callers with custom TLS
// requirements inject their own.
func New(connection zosmf.Connection, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		connection: connection,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Connection returns the connection this client was built with.
func (c *Client) Connection() zosmf.Connection {
	return c.connection
}

// URL joins the connection's base URL with a z/OSMF resource path.
func (c *Client) URL(resource string) string {
	return c.connection.BaseURL() + resource
}

// GetJSON issues a GET and decodes the JSON reply into out.
func (c *Client) GetJSON(ctx context.Context, url string, out any) error {
	response, err := c.execute(ctx, http.MethodGet, url, "", contentTypeJSON, nil)
	if err != nil {
		return err
	}
	return decodeBody(response.Body, out)
}

// GetText issues a GET and returns the raw text reply.
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	response, err := c.execute(ctx, http.MethodGet, url, "", contentTypeText, nil)
	if err != nil {
		return "", err
	}
	return response.Body, nil
}

// PutJSON issues a PUT with a JSON body and decodes the reply into out when
// out is non-nil.
func (c *Client) PutJSON(ctx context.Context, url string, body any, out any, headers map[string]string) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	response, err := c.execute(ctx, http.MethodPut, url, string(encoded), contentTypeJSON, headers)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeBody(response.Body, out)
}

// PutText issues a PUT with a plain-text body.
func (c *Client) PutText(ctx context.Context, url, body string, headers map[string]string) (Response, error) {
	return c.execute(ctx, http.MethodPut, url, body, contentTypeText, headers)
}

// PostJSON issues a POST with a JSON body and decodes the reply into out when
// out is non-nil.
func (c *Client) PostJSON(ctx context.Context, url string, body any, out any) error {
	var encoded string
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		encoded = string(raw)
	}
	response, err := c.execute(ctx, http.MethodPost, url, encoded, contentTypeJSON, nil)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeBody(response.Body, out)
}

// Delete issues a DELETE with optional extra headers.
func (c *Client) Delete(ctx context.Context, url string, headers map[string]string) (Response, error) {
	return c.execute(ctx, http.MethodDelete, url, "", contentTypeJSON, headers)
}

func (c *Client) execute(ctx context.Context, method, url, body, contentType string, headers map[string]string) (Response, error) {
	if err := c.connection.Validate(); err != nil {
		return Response{}, err
	}

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return Response{}, fmt.Errorf("failed to build %s request: %w", method, err)
	}

	request.Header.Set("Authorization", "Basic "+c.connection.AuthEncoding())
	request.Header.Set("Content-Type", contentType)
	request.Header.Set(CsrfHeaderKey, "")
	for key, value := range headers {
		request.Header.Set(key, value)
	}

	requestID := uuid.NewString()
	logger := c.logger.With().Str("requestId", requestID).Logger()
	logger.Debug().Str("method", method).Str("url", url).Msg("Executing z/OSMF request")

	reply, err := c.httpClient.Do(request)
	if err != nil {
		return Response{}, fmt.Errorf("failed to execute %s %s: %w", method, url, err)
	}
	defer func() { _ = reply.Body.Close() }()

	raw, err := io.ReadAll(reply.Body)
	if err != nil {
		return Response{}, fmt.Errorf("failed to read response body: %w", err)
	}

	response := Response{
		Body:       string(raw),
		StatusCode: reply.StatusCode,
		StatusText: http.StatusText(reply.StatusCode),
	}
	logger.Debug().Int("statusCode", response.StatusCode).Msg("Received z/OSMF response")

	if IsHTTPError(response.StatusCode) {
		return response, zosmferrors.NewRemote(response.StatusCode, response.StatusText, response.Body)
	}
	return response, nil
}

func decodeBody(body string, out any) error {
	if err := json.Unmarshal([]byte(body), out); err != nil {
		return zosmferrors.NewUnparsable(err)
	}
	return nil
}

// EncodeURIComponent escapes a value for use in a z/OSMF resource path,
// keeping the characters the server expects unescaped.
func EncodeURIComponent(value string) string {
	encoded := url.QueryEscape(value)
	replacer := strings.NewReplacer(
		"+", "%20",
		"%21", "!",
		"%27", "'",
		"%28", "(",
		"%29", ")",
		"%7E", "~",
	)
	return replacer.Replace(encoded)
}
