// Package nylas is a client for the Nylas email, calendar, and
// contacts API. A Client holds the application configuration; each
// per-account access token opens a Connection exposing the resource
// collections.
//
//	client, err := nylas.NewClient(nylas.Config{
//		ClientID:     "app-id",
//		ClientSecret: "app-secret",
//	})
//	conn := client.With(accessToken)
//	threads, err := conn.Threads.List(ctx, nil)
//
// The SDK performs no retries, caching, or request coordination: every
// operation is a single HTTP round trip against the configured API
// server.
package nylas

import "net/http"

// Client is the top-level API object. It owns the validated
// configuration and the shared transport, and derives connections and
// the application-level accounts accessor.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     Logger

	// Accounts operates on the application's accounts. Its flavor
	// depends on the configuration: management when both client
	// credentials are present, single-account otherwise.
	Accounts *AccountsCollection
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the transport used for all requests. The
// default is http.DefaultClient; timeouts, proxies, and pooling are
// the transport's business, not the SDK's.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger replaces the diagnostic logger. The default writes
// colored, timestamped lines to stderr.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient validates cfg and builds a Client. An API server without a
// scheme separator is rejected with an InvalidArgumentError; an empty
// one defaults to DefaultAPIServer.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	client := &Client{
		config:     cfg,
		httpClient: http.DefaultClient,
		logger:     NewColorLogger(nil),
	}
	for _, opt := range opts {
		opt(client)
	}

	if cfg.clientCredentials() {
		// Management requests authenticate with the client secret;
		// the underlying connection carries no access token.
		mgmtConn := newConnection(client, "")
		client.Accounts = &AccountsCollection{
			management: true,
			mgmt: newCollection[ManagementAccount](
				mgmtConn, "/a/"+cfg.ClientID+"/accounts",
			),
		}
	} else {
		client.Accounts = &AccountsCollection{}
	}

	return client, nil
}

// Config returns a copy of the client's resolved configuration.
func (c *Client) Config() Config {
	return c.config
}

// With opens a connection authenticated by the given per-account
// access token. Connections are cheap and stateless; callers may hold
// any number of them.
func (c *Client) With(accessToken string) *Connection {
	return newConnection(c, accessToken)
}
