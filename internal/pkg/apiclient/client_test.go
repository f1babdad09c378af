// internal/pkg/apiclient/client_test.go
package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSONSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 1, "title": "Backpack"}`))
	}))
	defer server.Close()

	client := New(server.URL)

	var out struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	}
	err := client.GetJSON(context.Background(), "/products/1", &out)
	require.NoError(t, err)
	assert.Equal(t, 1, out.ID)
	assert.Equal(t, "Backpack", out.Title)
}

func TestGetJSONNormalizesPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.URL + "/")

	var out []any
	err := client.GetJSON(context.Background(), "  //products ", &out)
	require.NoError(t, err)
	assert.Equal(t, "/products", gotPath)
}

func TestGetJSONAbsoluteURLBypassesBase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	// Base URL points nowhere; the absolute path must win.
	client := New("http://base.invalid")

	var out map[string]bool
	err := client.GetJSON(context.Background(), server.URL+"/anything?x=1", &out)
	require.NoError(t, err)
	assert.True(t, out["ok"])
}

func TestGetJSONAPIErrorWithBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Service Unavailable"))
	}))
	defer server.Close()

	client := New(server.URL)

	var out any
	err := client.GetJSON(context.Background(), "/products", &out)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.Equal(t, "Service Unavailable", apiErr.Message)
	assert.Equal(t, "[API Error] 503: Service Unavailable", err.Error())
}

func TestGetJSONAPIErrorEmptyBodyUsesReasonPhrase(t *testing.T) {
	tests := []struct {
		status   int
		expected string
	}{
		{status: http.StatusUnauthorized, expected: "[API Error] 401: Unauthorized"},
		{status: http.StatusNotFound, expected: "[API Error] 404: Not Found"},
		{status: http.StatusServiceUnavailable, expected: "[API Error] 503: Service Unavailable"},
		{status: http.StatusTeapot, expected: "[API Error] 418: I'm a teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := New(server.URL)

			var out any
			err := client.GetJSON(context.Background(), "/products", &out)
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestGetJSONParseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer server.Close()

	client := New(server.URL)

	var out any
	err := client.GetJSON(context.Background(), "/products", &out)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, err.Error(), "failed to parse JSON response")
	assert.Contains(t, err.Error(), parseErr.Err.Error())
}

func TestGetJSONNetworkError(t *testing.T) {
	// Reserved TLD, guaranteed to fail resolution.
	client := New("http://storefront.invalid")

	var out any
	err := client.GetJSON(context.Background(), "/products", &out)
	require.Error(t, err)

	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestGetJSONContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := New(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out any
	err := client.GetJSON(ctx, "/products", &out)
	require.Error(t, err)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.True(t, errors.Is(err, context.Canceled))
}
