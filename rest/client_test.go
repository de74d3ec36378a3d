package rest_test

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	zosmferrors "github.com/zostools/zosmf-go/errors"
	"github.com/zostools/zosmf-go/rest"
	"github.com/zostools/zosmf-go/zosmf"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *rest.Client {
	server := httptest.NewTLSServer(handler)
	t.Cleanup(server.Close)
	connection := zosmf.Connection{
		Host:     "zosmf.test",
		Port:     "443",
		User:     "IBMUSER",
		Password: "secret",
		BasePath: server.URL,
	}
	return rest.New(connection, server.Client(), zerolog.Nop())
}

func TestClientHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		expected := base64.StdEncoding.EncodeToString([]byte("IBMUSER:secret"))
		assert.Equal(t, "Basic "+expected, r.Header.Get("Authorization"))
		assert.Len(t, r.Header.Values(rest.CsrfHeaderKey), 1, "CSRF header must be present on every request")
		_, _ = w.Write([]byte(`{}`))
	})

	err := client.GetJSON(context.Background(), client.URL("/zosmf/info"), &map[string]any{})

	require.NoError(t, err)
}

func TestClientVerbs(t *testing.T) {
	t.Run("GetText returns the raw body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			_, _ = w.Write([]byte("line one\nline two"))
		})

		body, err := client.GetText(context.Background(), client.URL("/records"))

		require.NoError(t, err)
		assert.Equal(t, "line one\nline two", body)
	})

	t.Run("PutJSON encodes the body and decodes the reply", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"cmd":"D T"}`, string(body))
			_, _ = w.Write([]byte(`{"cmd-response":"RESPONSE"}`))
		})

		var reply map[string]string
		err := client.PutJSON(context.Background(), client.URL("/consoles"), map[string]string{"cmd": "D T"}, &reply, nil)

		require.NoError(t, err)
		assert.Equal(t, "RESPONSE", reply["cmd-response"])
	})

	t.Run("PutText sends extra headers", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "text/plain; charset=UTF-8", r.Header.Get("Content-Type"))
			assert.Equal(t, "F", r.Header.Get("X-IBM-Intrdr-Recfm"))
			w.WriteHeader(http.StatusCreated)
		})

		response, err := client.PutText(context.Background(), client.URL("/jobs"), "//JOB ...",
			map[string]string{"X-IBM-Intrdr-Recfm": "F"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, response.StatusCode)
	})

	t.Run("Delete forwards headers and returns the response", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "2.0", r.Header.Get("X-IBM-Job-Modify-Version"))
			w.WriteHeader(http.StatusOK)
		})

		response, err := client.Delete(context.Background(), client.URL("/jobs/A/B"),
			map[string]string{"X-IBM-Job-Modify-Version": "2.0"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, response.StatusCode)
	})
}

func TestClientErrors(t *testing.T) {
	t.Run("non-2xx becomes a remote error carrying the body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("credentials rejected"))
		})

		err := client.GetJSON(context.Background(), client.URL("/zosmf/info"), &map[string]any{})

		require.Error(t, err)
		assert.True(t, zosmferrors.IsRemote(err))
		assert.Contains(t, err.Error(), "credentials rejected")
	})

	t.Run("an unparsable body is a remote error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		})

		err := client.GetJSON(context.Background(), client.URL("/zosmf/info"), &map[string]any{})

		require.Error(t, err)
		assert.True(t, zosmferrors.IsRemote(err))
	})

	t.Run("an invalid connection fails before any request", func(t *testing.T) {
		client := rest.New(zosmf.Connection{Host: "zosmf.test"}, nil, zerolog.Nop())

		err := client.GetJSON(context.Background(), "https://zosmf.test/zosmf/info", &map[string]any{})

		assert.True(t, zosmferrors.IsInvalid(err))
	})
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "IBMUSER.PUBLIC.CNTL(IEFBR14)", rest.EncodeURIComponent("IBMUSER.PUBLIC.CNTL(IEFBR14)"))
	assert.Equal(t, "A%20B", rest.EncodeURIComponent("A B"))
	assert.Equal(t, "A%2FB", rest.EncodeURIComponent("A/B"))
}
