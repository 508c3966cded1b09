// Package testutil holds helpers shared by the SDK's tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	nylas "github.com/nhle/nylas-go"
)

// NewAPIServer starts a mock API server backed by handler and returns
// it together with a Config pointing at it. The server is shut down
// when the test completes.
func NewAPIServer(t *testing.T, handler http.Handler) (*httptest.Server, nylas.Config) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server, nylas.Config{
		ClientID:     "test-client-id",
		ClientSecret: "test-client-secret",
		APIServer:    server.URL,
	}
}

// NewClient builds a client against a mock API server with diagnostics
// silenced.
func NewClient(t *testing.T, handler http.Handler) *nylas.Client {
	t.Helper()

	_, cfg := NewAPIServer(t, handler)
	client, err := nylas.NewClient(cfg, nylas.WithLogger(nylas.NopLogger{}))
	if err != nil {
		t.Fatalf("creating test client: %v", err)
	}
	return client
}
