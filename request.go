package nylas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
)

// RequestDescriptor declaratively describes one outbound API request
// before it is translated into transport options. Descriptors are
// value-typed inputs: the translator never mutates the caller's maps.
type RequestDescriptor struct {
	// Path is appended to the configured API server by direct
	// concatenation. Paths prefixed "/a/" are management paths and
	// authenticate with the client secret instead of the access
	// token.
	Path string

	// Method defaults to GET when empty.
	Method string

	// Headers are sent as given. A User-Agent supplied here wins over
	// the SDK default; the version and client-id headers are always
	// overwritten.
	Headers map[string]string

	// Query parameters. A key "expanded" with the value true is
	// rewritten to view=expanded; the "expanded" key itself is never
	// sent, whatever its value.
	Query map[string]any

	// Body is the JSON request payload. When nil (and FormData is
	// empty) an empty JSON object is sent.
	Body any

	// FormData, when non-empty, is sent as multipart form data
	// instead of Body.
	FormData map[string]string

	// Download marks a request whose success result must expose the
	// response headers and raw bytes rather than parsed JSON.
	Download bool

	// NoJSON disables the automatic JSON encoding of Body: the body
	// is sent verbatim (string or []byte). The response body is still
	// interpreted as JSON afterwards.
	NoJSON bool
}

// httpOptions is the resolved, transport-ready form of a descriptor.
type httpOptions struct {
	method   string
	url      string
	headers  map[string]string
	query    url.Values
	json     bool
	body     any
	formData map[string]string
	download bool

	// authPrincipal is sent as the basic-auth user with a blank
	// password. hasAuth is false when no credential applies to the
	// target path.
	authPrincipal string
	hasAuth       bool
}

// managementPathPrefix marks endpoints authenticated with the
// application's client secret rather than a per-account access token.
const managementPathPrefix = "/a/"

// buildRequestOptions translates a descriptor into concrete transport
// options, injecting credentials and the standard headers. It is a
// pure function of its inputs.
func buildRequestOptions(cfg Config, accessToken string, desc RequestDescriptor) httpOptions {
	opts := httpOptions{
		method:   desc.Method,
		url:      cfg.APIServer + desc.Path,
		headers:  map[string]string{},
		query:    url.Values{},
		json:     !desc.NoJSON,
		formData: desc.FormData,
		download: desc.Download,
	}
	if opts.method == "" {
		opts.method = http.MethodGet
	}

	if len(desc.FormData) == 0 {
		opts.body = desc.Body
		if opts.body == nil {
			opts.body = map[string]any{}
		}
	}

	for key, value := range desc.Query {
		if key == "expanded" {
			if b, ok := value.(bool); ok && b {
				opts.query.Set("view", "expanded")
			}
			continue
		}
		appendQueryValue(opts.query, key, value)
	}

	principal := accessToken
	if strings.HasPrefix(desc.Path, managementPathPrefix) {
		principal = cfg.ClientSecret
	}
	if principal != "" {
		opts.authPrincipal = principal
		opts.hasAuth = true
	}

	for key, value := range desc.Headers {
		opts.headers[key] = value
	}
	if _, ok := opts.headers["User-Agent"]; !ok {
		opts.headers["User-Agent"] = "Nylas Go SDK " + Version
	}
	opts.headers["Nylas-API-Version"] = SupportedAPIVersion
	opts.headers["Nylas-SDK-API-Version"] = SupportedAPIVersion
	opts.headers["X-Nylas-Client-Id"] = cfg.ClientID

	return opts
}

// appendQueryValue flattens a query value into url.Values. Slices
// produce one entry per element; everything else is formatted with
// fmt.Sprint.
func appendQueryValue(q url.Values, key string, value any) {
	switch v := value.(type) {
	case []string:
		for _, item := range v {
			q.Add(key, item)
		}
	case []any:
		for _, item := range v {
			q.Add(key, fmt.Sprint(item))
		}
	default:
		q.Add(key, fmt.Sprint(v))
	}
}

// newHTTPRequest materializes resolved options into an *http.Request.
func newHTTPRequest(ctx context.Context, opts httpOptions) (*http.Request, error) {
	var (
		body        io.Reader
		contentType string
	)

	switch {
	case len(opts.formData) > 0:
		buf := &bytes.Buffer{}
		writer := multipart.NewWriter(buf)
		for field, value := range opts.formData {
			if err := writer.WriteField(field, value); err != nil {
				return nil, fmt.Errorf("writing form field %q: %w", field, err)
			}
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("finalizing form data: %w", err)
		}
		body = buf
		contentType = writer.FormDataContentType()

	case opts.json:
		data, err := json.Marshal(opts.body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"

	default:
		switch raw := opts.body.(type) {
		case nil:
		case string:
			body = strings.NewReader(raw)
		case []byte:
			body = bytes.NewReader(raw)
		default:
			return nil, fmt.Errorf(
				"non-JSON request body must be a string or []byte, got %T",
				opts.body,
			)
		}
	}

	target := opts.url
	if encoded := opts.query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, opts.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating request %s %s: %w", opts.method, opts.url, err)
	}

	for key, value := range opts.headers {
		req.Header.Set(key, value)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if opts.hasAuth {
		// Credentials are sent preemptively, without waiting for a
		// challenge: principal as the user, blank password.
		req.SetBasicAuth(opts.authPrincipal, "")
	}

	return req, nil
}
