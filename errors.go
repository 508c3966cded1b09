package nylas

import (
	"errors"
	"fmt"
)

// InvalidArgumentError indicates that a caller supplied a malformed or
// missing argument (for example an API server URL without a scheme, or
// an empty authorization code). It is always returned synchronously,
// before any network activity begins.
type InvalidArgumentError struct {
	Argument string
	Message  string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Argument, e.Message)
}

// IsInvalidArgument reports whether err (or any error in its chain) is
// an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var argErr *InvalidArgumentError
	return errors.As(err, &argErr)
}

// ConfigurationError indicates that a required credential has not been
// configured yet (client ID or client secret missing).
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// IsConfigurationError reports whether err (or any error in its chain)
// is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// TransportError indicates that no response was received from the API
// server at all: the request failed below the HTTP layer.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err (or any error in its chain) is a
// TransportError.
func IsTransportError(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// APIError is returned when the API server answered with a non-success
// status code or a body-signaled failure. Message already includes any
// detail extracted from the body's missing_fields and server_error
// fields.
type APIError struct {
	Message    string
	StatusCode int

	// MissingFields lists the fields the server reported as absent
	// from the request, when it did.
	MissingFields []string

	// ServerError carries the server_error field of the body, when
	// present.
	ServerError string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsAPIError reports whether err (or any error in its chain) is an
// APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// StatusCode extracts the HTTP status code from an APIError in err's
// chain. It returns 0 when err carries no API status.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
