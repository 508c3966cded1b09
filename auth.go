package nylas

import (
	"context"
	"encoding/json"
	"strings"
)

// AuthenticateURLOptions parameterizes the hosted-authentication URL.
// None of the fields are URL-encoded by the builder; callers must
// pre-encode values that need it.
type AuthenticateURLOptions struct {
	// RedirectURI is where the browser is sent back to with the
	// authorization code. Required.
	RedirectURI string

	// LoginHint pre-fills the email address on the login page.
	LoginHint string

	// State is echoed back on the redirect when supplied.
	State string

	// Scopes restricts the grant; joined with commas when supplied.
	Scopes []string
}

// AuthenticationURL builds the URL a user visits to authorize the
// application. The URL is constructed by literal concatenation, in
// the fixed parameter order the hosted flow expects.
func (c *Client) AuthenticationURL(opts AuthenticateURLOptions) (string, error) {
	if c.config.ClientID == "" {
		return "", &ConfigurationError{
			Message: "cannot build an authentication URL without a client ID",
		}
	}
	if opts.RedirectURI == "" {
		return "", &InvalidArgumentError{
			Argument: "RedirectURI",
			Message:  "a redirect URI is required",
		}
	}

	authURL := c.config.APIServer + "/oauth/authorize" +
		"?client_id=" + c.config.ClientID +
		"&response_type=code" +
		"&login_hint=" + opts.LoginHint +
		"&redirect_uri=" + opts.RedirectURI
	if opts.State != "" {
		authURL += "&state=" + opts.State
	}
	if len(opts.Scopes) > 0 {
		authURL += "&scopes=" + strings.Join(opts.Scopes, ",")
	}

	return authURL, nil
}

// ExchangeCallback is the legacy completion signature of the code
// exchange: (err, "") on failure, (nil, token) on success.
type ExchangeCallback func(err error, accessToken string)

// noAccessTokenMessage is the exchange flow's fallback for failure
// bodies that carry no message.
const noAccessTokenMessage = "No access token in response"

// ExchangeCodeForToken trades an authorization code for a per-account
// access token via GET /oauth/token. Validation errors are returned
// before any network activity.
func (c *Client) ExchangeCodeForToken(ctx context.Context, code string) (string, error) {
	if !c.config.clientCredentials() {
		return "", &ConfigurationError{
			Message: "cannot exchange an authorization code without a client ID and secret",
		}
	}
	if code == "" {
		return "", &InvalidArgumentError{
			Argument: "code",
			Message:  "an authorization code is required",
		}
	}

	desc := RequestDescriptor{
		Path: "/oauth/token",
		Query: map[string]any{
			"client_id":     c.config.ClientID,
			"client_secret": c.config.ClientSecret,
			"grant_type":    "authorization_code",
			"code":          code,
		},
	}

	conn := newConnection(c, "")
	resp, body, err := conn.roundTrip(ctx, desc, noAccessTokenMessage)
	if err != nil {
		return "", err
	}

	var token struct {
		AccessToken string `json:"access_token"`
		Message     string `json:"message"`
	}
	// Tolerate a non-JSON body; it is treated as a missing token.
	_ = json.Unmarshal(body, &token)

	if token.AccessToken == "" {
		message := token.Message
		if message == "" {
			message = noAccessTokenMessage
		}
		return "", &APIError{Message: message, StatusCode: resp.StatusCode}
	}

	return token.AccessToken, nil
}

// ExchangeCodeForTokenWithCallback behaves like ExchangeCodeForToken
// and additionally notifies the legacy callback with the settled
// outcome.
func (c *Client) ExchangeCodeForTokenWithCallback(ctx context.Context, code string, callback ExchangeCallback) (string, error) {
	token, err := c.ExchangeCodeForToken(ctx, code)
	if callback != nil {
		callback(err, token)
	}
	return token, err
}
