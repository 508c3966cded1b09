package nylas

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// RawResponse is the success result of a download-flavored request.
// Callers of downloads need the response headers (content type,
// filename) alongside the unparsed bytes.
type RawResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Filename extracts the filename parameter of the Content-Disposition
// header, or "" when absent.
func (r *RawResponse) Filename() string {
	disposition := r.Headers.Get("Content-Disposition")
	idx := strings.Index(strings.ToLower(disposition), "filename=")
	if idx == -1 {
		return ""
	}
	name := disposition[idx+len("filename="):]
	if semi := strings.Index(name, ";"); semi != -1 {
		name = name[:semi]
	}
	return strings.TrimSpace(strings.Trim(name, `"`))
}

// responseMeta carries the transport metadata of a successful round
// trip, after its body has been fully read.
type responseMeta struct {
	StatusCode int
	Header     http.Header
}

// errorPayload is the error-shaped body the API produces on failures.
// missing_fields arrives either as a string or as a list.
type errorPayload struct {
	Message       string `json:"message"`
	MissingFields any    `json:"missing_fields"`
	ServerError   string `json:"server_error"`
}

// genericFailureMessage is used when a failed response carries no
// message of its own.
const genericFailureMessage = "request failed"

// successStatus reports whether code signals success. Anything above
// 299 is a failure.
func successStatus(code int) bool {
	return code <= 299
}

// normalizeError turns a failed response body into an APIError,
// augmenting the base message with the body's missing_fields and
// server_error details when present.
func normalizeError(body []byte, statusCode int, fallbackMessage string) *APIError {
	var payload errorPayload
	// A non-JSON failure body is tolerated; the fallback message is
	// used instead.
	_ = json.Unmarshal(body, &payload)

	message := payload.Message
	if message == "" {
		message = fallbackMessage
	}

	missing := missingFieldsList(payload.MissingFields)
	if len(missing) > 0 {
		message += ": " + strings.Join(missing, ",")
	}
	if payload.ServerError != "" {
		message += " (Server Error: " + payload.ServerError + ")"
	}

	return &APIError{
		Message:       message,
		StatusCode:    statusCode,
		MissingFields: missing,
		ServerError:   payload.ServerError,
	}
}

// missingFieldsList normalizes the missing_fields value, which the API
// sends either as a single string or as a list.
func missingFieldsList(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []any:
		fields := make([]string, 0, len(v))
		for _, item := range v {
			fields = append(fields, fmt.Sprint(item))
		}
		return fields
	default:
		return []string{fmt.Sprint(v)}
	}
}

// parseResponseBody decodes a successful non-download body. An empty
// body resolves to an empty object, matching the request default.
func parseResponseBody(body []byte) (any, error) {
	if len(body) == 0 {
		return map[string]any{}, nil
	}
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parsing response body: %w", err)
	}
	return parsed, nil
}
