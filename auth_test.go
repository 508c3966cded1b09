package nylas_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nylas "github.com/nhle/nylas-go"
	"github.com/nhle/nylas-go/tests/testutil"
)

func TestAuthenticationURL(t *testing.T) {
	client, err := nylas.NewClient(nylas.Config{
		ClientID:  "abc",
		APIServer: "https://server",
	})
	require.NoError(t, err)

	authURL, err := client.AuthenticationURL(nylas.AuthenticateURLOptions{
		RedirectURI: "https://x/cb",
	})
	require.NoError(t, err)
	assert.Equal(t,
		"https://server/oauth/authorize?client_id=abc&response_type=code&login_hint=&redirect_uri=https://x/cb",
		authURL,
	)
}

func TestAuthenticationURL_StateAndScopes(t *testing.T) {
	client, err := nylas.NewClient(nylas.Config{
		ClientID:  "abc",
		APIServer: "https://server",
	})
	require.NoError(t, err)

	authURL, err := client.AuthenticationURL(nylas.AuthenticateURLOptions{
		RedirectURI: "https://x/cb",
		LoginHint:   "ada@example.com",
		State:       "s1",
		Scopes:      []string{"email", "calendar"},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"https://server/oauth/authorize?client_id=abc&response_type=code"+
			"&login_hint=ada@example.com&redirect_uri=https://x/cb"+
			"&state=s1&scopes=email,calendar",
		authURL,
	)
}

func TestAuthenticationURL_Validation(t *testing.T) {
	client, err := nylas.NewClient(nylas.Config{APIServer: "https://server"})
	require.NoError(t, err)

	_, err = client.AuthenticationURL(nylas.AuthenticateURLOptions{RedirectURI: "https://x/cb"})
	assert.True(t, nylas.IsConfigurationError(err), "missing client ID: %v", err)

	client, err = nylas.NewClient(nylas.Config{ClientID: "abc", APIServer: "https://server"})
	require.NoError(t, err)

	_, err = client.AuthenticationURL(nylas.AuthenticateURLOptions{})
	assert.True(t, nylas.IsInvalidArgument(err), "missing redirect URI: %v", err)
}

func TestExchangeCodeForToken(t *testing.T) {
	client := testutil.NewClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/oauth/token", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "test-client-id", query.Get("client_id"))
		assert.Equal(t, "test-client-secret", query.Get("client_secret"))
		assert.Equal(t, "authorization_code", query.Get("grant_type"))
		assert.Equal(t, "code-123", query.Get("code"))

		_, _ = w.Write([]byte(`{"access_token": "tok-456", "account_id": "acc-1"}`))
	}))

	token, err := client.ExchangeCodeForToken(context.Background(), "code-123")
	require.NoError(t, err)
	assert.Equal(t, "tok-456", token)
}

func TestExchangeCodeForToken_NoToken(t *testing.T) {
	client := testutil.NewClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"account_id": "acc-1"}`))
	}))

	_, err := client.ExchangeCodeForToken(context.Background(), "code-123")
	require.Error(t, err)
	assert.Equal(t, "No access token in response", err.Error())
}

func TestExchangeCodeForToken_BodyMessageWins(t *testing.T) {
	client := testutil.NewClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message": "code expired"}`))
	}))

	_, err := client.ExchangeCodeForToken(context.Background(), "code-123")
	require.Error(t, err)
	assert.Equal(t, "code expired", err.Error())
}

func TestExchangeCodeForToken_Validation(t *testing.T) {
	// Missing secret fails before any network activity.
	client, err := nylas.NewClient(nylas.Config{ClientID: "abc"})
	require.NoError(t, err)
	_, err = client.ExchangeCodeForToken(context.Background(), "code-123")
	assert.True(t, nylas.IsConfigurationError(err), "missing secret: %v", err)

	// So does an empty code.
	client, err = nylas.NewClient(nylas.Config{ClientID: "abc", ClientSecret: "s"})
	require.NoError(t, err)
	_, err = client.ExchangeCodeForToken(context.Background(), "")
	assert.True(t, nylas.IsInvalidArgument(err), "empty code: %v", err)
}

func TestExchangeCodeForTokenWithCallback(t *testing.T) {
	client := testutil.NewClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token": "tok-456"}`))
	}))

	var cbToken string
	var cbErr error
	token, err := client.ExchangeCodeForTokenWithCallback(
		context.Background(), "code-123",
		func(err error, accessToken string) {
			cbErr = err
			cbToken = accessToken
		},
	)
	require.NoError(t, err)
	assert.NoError(t, cbErr)
	assert.Equal(t, token, cbToken)
}
