package nylas

import (
	"net/http"
	"testing"
)

func TestNormalizeError_MessageAndMissingFields(t *testing.T) {
	body := []byte(`{"message": "not found", "missing_fields": ["x"]}`)
	apiErr := normalizeError(body, 404, genericFailureMessage)

	if apiErr.Message != "not found: x" {
		t.Errorf("unexpected message %q", apiErr.Message)
	}
	if apiErr.StatusCode != 404 {
		t.Errorf("expected status 404, got %d", apiErr.StatusCode)
	}
}

func TestNormalizeError_ServerError(t *testing.T) {
	body := []byte(`{"message": "sync failed", "server_error": "IMAP timeout"}`)
	apiErr := normalizeError(body, 502, genericFailureMessage)

	if apiErr.Message != "sync failed (Server Error: IMAP timeout)" {
		t.Errorf("unexpected message %q", apiErr.Message)
	}
	if apiErr.ServerError != "IMAP timeout" {
		t.Errorf("unexpected server error %q", apiErr.ServerError)
	}
}

func TestNormalizeError_Fallbacks(t *testing.T) {
	// No message in the body: the caller-supplied fallback is used.
	apiErr := normalizeError([]byte(`{}`), 500, genericFailureMessage)
	if apiErr.Message != "request failed" {
		t.Errorf("unexpected message %q", apiErr.Message)
	}

	// A non-JSON body is tolerated.
	apiErr = normalizeError([]byte("<html>bad gateway</html>"), 502, genericFailureMessage)
	if apiErr.Message != "request failed" || apiErr.StatusCode != 502 {
		t.Errorf("unexpected error %+v", apiErr)
	}
}

func TestNormalizeError_MissingFieldsString(t *testing.T) {
	// missing_fields arrives either as a list or as a bare string.
	body := []byte(`{"message": "bad request", "missing_fields": "to"}`)
	apiErr := normalizeError(body, 400, genericFailureMessage)
	if apiErr.Message != "bad request: to" {
		t.Errorf("unexpected message %q", apiErr.Message)
	}

	body = []byte(`{"message": "bad request", "missing_fields": ["to", "subject"]}`)
	apiErr = normalizeError(body, 400, genericFailureMessage)
	if apiErr.Message != "bad request: to,subject" {
		t.Errorf("unexpected message %q", apiErr.Message)
	}
}

func TestParseResponseBody(t *testing.T) {
	parsed, err := parseResponseBody([]byte(`{"foo": 1}`))
	if err != nil {
		t.Fatalf("parseResponseBody: %v", err)
	}
	object, ok := parsed.(map[string]any)
	if !ok || object["foo"] != float64(1) {
		t.Errorf("unexpected parse result %#v", parsed)
	}

	// An empty body resolves to an empty object.
	parsed, err = parseResponseBody(nil)
	if err != nil {
		t.Fatalf("parseResponseBody(empty): %v", err)
	}
	if object, ok := parsed.(map[string]any); !ok || len(object) != 0 {
		t.Errorf("expected empty object, got %#v", parsed)
	}

	// Parse failure propagates.
	if _, err := parseResponseBody([]byte("not json")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestRawResponseFilename(t *testing.T) {
	raw := &RawResponse{Headers: http.Header{
		"Content-Disposition": []string{`attachment; filename="report.pdf"; size=12`},
	}}
	if got := raw.Filename(); got != "report.pdf" {
		t.Errorf("unexpected filename %q", got)
	}

	raw = &RawResponse{Headers: http.Header{}}
	if got := raw.Filename(); got != "" {
		t.Errorf("expected empty filename, got %q", got)
	}
}
