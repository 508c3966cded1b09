package nylas

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strings"
	"testing"
)

var testConfig = Config{
	ClientID:     "client-id",
	ClientSecret: "client-secret",
	APIServer:    "https://api.test",
}

func TestBuildRequestOptions_Defaults(t *testing.T) {
	opts := buildRequestOptions(testConfig, "token", RequestDescriptor{Path: "/threads"})

	if opts.method != http.MethodGet {
		t.Errorf("expected default method GET, got %q", opts.method)
	}
	if opts.url != "https://api.test/threads" {
		t.Errorf("unexpected url %q", opts.url)
	}
	if !opts.json {
		t.Error("expected json to default to true")
	}
	if body, ok := opts.body.(map[string]any); !ok || len(body) != 0 {
		t.Errorf("expected empty object body, got %#v", opts.body)
	}
}

func TestBuildRequestOptions_AuthPrincipal(t *testing.T) {
	// Regular paths authenticate with the caller's access token.
	opts := buildRequestOptions(testConfig, "token", RequestDescriptor{Path: "/threads"})
	if !opts.hasAuth || opts.authPrincipal != "token" {
		t.Errorf("expected access-token auth, got %+v", opts)
	}

	// Management paths use the client secret, access token or not.
	opts = buildRequestOptions(testConfig, "token", RequestDescriptor{Path: "/a/client-id/accounts"})
	if !opts.hasAuth || opts.authPrincipal != "client-secret" {
		t.Errorf("expected client-secret auth, got %+v", opts)
	}

	// No credential at all: auth is omitted, not an error.
	opts = buildRequestOptions(testConfig, "", RequestDescriptor{Path: "/threads"})
	if opts.hasAuth {
		t.Errorf("expected no auth, got principal %q", opts.authPrincipal)
	}
}

func TestBuildRequestOptions_ExpandedQuery(t *testing.T) {
	opts := buildRequestOptions(testConfig, "token", RequestDescriptor{
		Path:  "/threads",
		Query: map[string]any{"expanded": true, "limit": 5},
	})
	if got := opts.query.Get("view"); got != "expanded" {
		t.Errorf("expected view=expanded, got %q", got)
	}
	if opts.query.Has("expanded") {
		t.Error("expanded key must never be sent")
	}
	if got := opts.query.Get("limit"); got != "5" {
		t.Errorf("expected limit=5, got %q", got)
	}

	// Any non-true value removes the key without adding a view.
	for _, value := range []any{false, "true", 1} {
		opts := buildRequestOptions(testConfig, "token", RequestDescriptor{
			Path:  "/threads",
			Query: map[string]any{"expanded": value},
		})
		if opts.query.Has("expanded") || opts.query.Has("view") {
			t.Errorf("expanded=%v: expected neither expanded nor view, got %v", value, opts.query)
		}
	}
}

func TestBuildRequestOptions_DoesNotMutateDescriptor(t *testing.T) {
	query := map[string]any{"expanded": true}
	headers := map[string]string{"Accept": "message/rfc822"}
	buildRequestOptions(testConfig, "token", RequestDescriptor{
		Path:    "/messages/abc",
		Query:   query,
		Headers: headers,
	})

	if _, ok := query["expanded"]; !ok {
		t.Error("translator mutated the caller's query map")
	}
	if len(headers) != 1 {
		t.Error("translator mutated the caller's headers map")
	}
}

func TestBuildRequestOptions_Headers(t *testing.T) {
	opts := buildRequestOptions(testConfig, "token", RequestDescriptor{Path: "/threads"})

	if ua := opts.headers["User-Agent"]; !strings.HasPrefix(ua, "Nylas Go SDK ") {
		t.Errorf("unexpected default User-Agent %q", ua)
	}
	if got := opts.headers["Nylas-API-Version"]; got != SupportedAPIVersion {
		t.Errorf("expected API version header %q, got %q", SupportedAPIVersion, got)
	}
	if got := opts.headers["Nylas-SDK-API-Version"]; got != SupportedAPIVersion {
		t.Errorf("expected SDK version header %q, got %q", SupportedAPIVersion, got)
	}
	if got := opts.headers["X-Nylas-Client-Id"]; got != "client-id" {
		t.Errorf("expected client-id header, got %q", got)
	}

	// A caller-supplied User-Agent wins; version headers never do.
	opts = buildRequestOptions(testConfig, "token", RequestDescriptor{
		Path: "/threads",
		Headers: map[string]string{
			"User-Agent":        "custom-agent",
			"Nylas-API-Version": "0.1",
		},
	})
	if got := opts.headers["User-Agent"]; got != "custom-agent" {
		t.Errorf("expected caller User-Agent to win, got %q", got)
	}
	if got := opts.headers["Nylas-API-Version"]; got != SupportedAPIVersion {
		t.Errorf("expected version header to be overwritten, got %q", got)
	}
}

func TestBuildRequestOptions_FormDataExcludesBody(t *testing.T) {
	opts := buildRequestOptions(testConfig, "token", RequestDescriptor{
		Path:     "/files",
		Method:   "POST",
		FormData: map[string]string{"file": "contents"},
	})
	if opts.body != nil {
		t.Errorf("expected nil body when form data is present, got %#v", opts.body)
	}
	if len(opts.formData) != 1 {
		t.Errorf("expected form data to pass through, got %#v", opts.formData)
	}
}

func TestNewHTTPRequest_BasicAuth(t *testing.T) {
	opts := buildRequestOptions(testConfig, "token", RequestDescriptor{Path: "/threads"})
	req, err := newHTTPRequest(context.Background(), opts)
	if err != nil {
		t.Fatalf("newHTTPRequest: %v", err)
	}

	// Principal with a blank password, sent preemptively.
	expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("token:"))
	if got := req.Header.Get("Authorization"); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestNewHTTPRequest_QueryAndBody(t *testing.T) {
	opts := buildRequestOptions(testConfig, "token", RequestDescriptor{
		Path:   "/events",
		Method: "POST",
		Query:  map[string]any{"notify_participants": true},
		Body:   map[string]any{"title": "standup"},
	})
	req, err := newHTTPRequest(context.Background(), opts)
	if err != nil {
		t.Fatalf("newHTTPRequest: %v", err)
	}

	if got := req.URL.Query().Get("notify_participants"); got != "true" {
		t.Errorf("expected notify_participants=true, got %q", got)
	}
	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("expected JSON content type, got %q", got)
	}
	body, _ := io.ReadAll(req.Body)
	if string(body) != `{"title":"standup"}` {
		t.Errorf("unexpected body %s", body)
	}
}

func TestNewHTTPRequest_FormData(t *testing.T) {
	opts := buildRequestOptions(testConfig, "token", RequestDescriptor{
		Path:     "/files",
		Method:   "POST",
		FormData: map[string]string{"field": "value"},
	})
	req, err := newHTTPRequest(context.Background(), opts)
	if err != nil {
		t.Fatalf("newHTTPRequest: %v", err)
	}

	if got := req.Header.Get("Content-Type"); !strings.HasPrefix(got, "multipart/form-data") {
		t.Errorf("expected multipart content type, got %q", got)
	}
}

func TestNewHTTPRequest_RawBody(t *testing.T) {
	opts := buildRequestOptions(testConfig, "token", RequestDescriptor{
		Path:   "/raw",
		Method: "POST",
		Body:   "plain text",
		NoJSON: true,
	})
	req, err := newHTTPRequest(context.Background(), opts)
	if err != nil {
		t.Fatalf("newHTTPRequest: %v", err)
	}
	body, _ := io.ReadAll(req.Body)
	if string(body) != "plain text" {
		t.Errorf("unexpected raw body %q", body)
	}
	if got := req.Header.Get("Content-Type"); got != "" {
		t.Errorf("expected no content type for raw body, got %q", got)
	}

	opts.body = 42
	if _, err := newHTTPRequest(context.Background(), opts); err == nil {
		t.Error("expected an error for a non-string raw body")
	}
}
