package nylas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// Connection issues authenticated requests on behalf of one account
// and exposes the per-account resource collections. It owns no state
// besides the access token and the client plumbing; every call is an
// independent round trip with no retries, caching, or queueing.
type Connection struct {
	accessToken string
	client      *Client

	Threads   *RestfulCollection[Thread]
	Messages  *MessageCollection
	Drafts    *RestfulCollection[Draft]
	Files     *FileCollection
	Contacts  *RestfulCollection[Contact]
	Calendars *RestfulCollection[Calendar]
	Events    *RestfulCollection[Event]
	Folders   *RestfulCollection[Folder]
	Labels    *RestfulCollection[Label]
}

// RequestCallback is the legacy completion signature: it is invoked
// with (err, nil) on failure or (nil, result) on success, after the
// outcome has been determined. Its execution is best-effort.
type RequestCallback func(err error, result any)

func newConnection(client *Client, accessToken string) *Connection {
	conn := &Connection{
		accessToken: accessToken,
		client:      client,
	}
	conn.Threads = newCollection[Thread](conn, "/threads")
	conn.Messages = &MessageCollection{*newCollection[Message](conn, "/messages")}
	conn.Drafts = newCollection[Draft](conn, "/drafts")
	conn.Files = &FileCollection{*newCollection[File](conn, "/files")}
	conn.Contacts = newCollection[Contact](conn, "/contacts")
	conn.Calendars = newCollection[Calendar](conn, "/calendars")
	conn.Events = newCollection[Event](conn, "/events")
	conn.Folders = newCollection[Folder](conn, "/folders")
	conn.Labels = newCollection[Label](conn, "/labels")
	return conn
}

// AccessToken returns the token this connection authenticates with.
func (c *Connection) AccessToken() string {
	return c.accessToken
}

// Request performs one API call described by desc and returns either
// the parsed JSON body or, for download requests, a *RawResponse
// exposing headers and raw bytes.
func (c *Connection) Request(ctx context.Context, desc RequestDescriptor) (any, error) {
	resp, body, err := c.roundTrip(ctx, desc, genericFailureMessage)
	if err != nil {
		return nil, err
	}
	if desc.Download {
		return &RawResponse{
			StatusCode: resp.StatusCode,
			Headers:    resp.Header,
			Body:       body,
		}, nil
	}
	return parseResponseBody(body)
}

// RequestWithCallback behaves like Request and additionally notifies
// the legacy callback with the settled outcome.
func (c *Connection) RequestWithCallback(ctx context.Context, desc RequestDescriptor, callback RequestCallback) (any, error) {
	result, err := c.Request(ctx, desc)
	if callback != nil {
		if err != nil {
			callback(err, nil)
		} else {
			callback(nil, result)
		}
	}
	return result, err
}

// requestInto performs the call and decodes the successful JSON body
// into out. Collections use it to produce typed models.
func (c *Connection) requestInto(ctx context.Context, desc RequestDescriptor, out any) error {
	_, body, err := c.roundTrip(ctx, desc, genericFailureMessage)
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing response body: %w", err)
	}
	return nil
}

// roundTrip translates the descriptor, executes exactly one HTTP call,
// checks the reported API version, and normalizes failures. On success
// it returns the response metadata and its fully-read body. The
// fallback message is used when a failed response carries no message
// of its own.
func (c *Connection) roundTrip(ctx context.Context, desc RequestDescriptor, fallbackMessage string) (resp responseMeta, body []byte, err error) {
	opts := buildRequestOptions(c.client.config, c.accessToken, desc)

	req, err := newHTTPRequest(ctx, opts)
	if err != nil {
		return resp, nil, err
	}

	httpResp, err := c.client.httpClient.Do(req)
	if err != nil {
		// No response was received at all; the body is not
		// inspected.
		return resp, nil, &TransportError{Err: err}
	}
	defer httpResp.Body.Close()

	body, err = io.ReadAll(httpResp.Body)
	if err != nil {
		return resp, nil, &TransportError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	if warning := CheckAPIVersionCompatibility(
		SupportedAPIVersion, httpResp.Header.Get("Nylas-Api-Version"),
	); warning != "" {
		c.client.logger.Warn(warning)
	}

	if !successStatus(httpResp.StatusCode) {
		return resp, nil, normalizeError(body, httpResp.StatusCode, fallbackMessage)
	}

	return responseMeta{StatusCode: httpResp.StatusCode, Header: httpResp.Header}, body, nil
}

// Account fetches the account this connection's token belongs to.
func (c *Connection) Account(ctx context.Context) (*Account, error) {
	var account Account
	if err := c.requestInto(ctx, RequestDescriptor{Path: "/account"}, &account); err != nil {
		return nil, fmt.Errorf("fetching account: %w", err)
	}
	return &account, nil
}
