package nylas

import (
	"context"
	"fmt"
)

// RestfulCollection provides the standard list/find/create/delete
// operations for one resource type. It is a thin proxy over the
// request pipeline: all conditional logic lives in the connection.
type RestfulCollection[M any] struct {
	conn *Connection
	path string
}

func newCollection[M any](conn *Connection, path string) *RestfulCollection[M] {
	return &RestfulCollection[M]{conn: conn, path: path}
}

// List fetches models matching the query. Query keys are passed
// through unchanged, except "expanded" which selects the expanded
// view (see RequestDescriptor).
func (c *RestfulCollection[M]) List(ctx context.Context, query map[string]any) ([]M, error) {
	var models []M
	desc := RequestDescriptor{Path: c.path, Query: query}
	if err := c.conn.requestInto(ctx, desc, &models); err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.path, err)
	}
	return models, nil
}

// First fetches the first model matching the query, or nil when there
// is none.
func (c *RestfulCollection[M]) First(ctx context.Context, query map[string]any) (*M, error) {
	limited := make(map[string]any, len(query)+1)
	for key, value := range query {
		limited[key] = value
	}
	limited["limit"] = 1

	models, err := c.List(ctx, limited)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, nil
	}
	return &models[0], nil
}

// Find fetches a single model by ID.
func (c *RestfulCollection[M]) Find(ctx context.Context, id string, query map[string]any) (*M, error) {
	var model M
	desc := RequestDescriptor{Path: c.path + "/" + id, Query: query}
	if err := c.conn.requestInto(ctx, desc, &model); err != nil {
		return nil, fmt.Errorf("finding %s/%s: %w", c.path, id, err)
	}
	return &model, nil
}

// Create posts a new model and returns the server's copy of it.
func (c *RestfulCollection[M]) Create(ctx context.Context, model M) (*M, error) {
	var created M
	desc := RequestDescriptor{Path: c.path, Method: "POST", Body: model}
	if err := c.conn.requestInto(ctx, desc, &created); err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.path, err)
	}
	return &created, nil
}

// Update sends changed fields for an existing model and returns the
// server's copy.
func (c *RestfulCollection[M]) Update(ctx context.Context, id string, changes any) (*M, error) {
	var updated M
	desc := RequestDescriptor{Path: c.path + "/" + id, Method: "PUT", Body: changes}
	if err := c.conn.requestInto(ctx, desc, &updated); err != nil {
		return nil, fmt.Errorf("updating %s/%s: %w", c.path, id, err)
	}
	return &updated, nil
}

// Delete removes a model by ID.
func (c *RestfulCollection[M]) Delete(ctx context.Context, id string) error {
	desc := RequestDescriptor{Path: c.path + "/" + id, Method: "DELETE"}
	if err := c.conn.requestInto(ctx, desc, nil); err != nil {
		return fmt.Errorf("deleting %s/%s: %w", c.path, id, err)
	}
	return nil
}

// MessageCollection extends the standard message operations with raw
// MIME access.
type MessageCollection struct {
	RestfulCollection[Message]
}

// Raw downloads the original RFC 822 form of a message. The result
// carries the response headers alongside the unparsed bytes; use
// ParseRawMessage to decode it.
func (c *MessageCollection) Raw(ctx context.Context, id string) (*RawResponse, error) {
	desc := RequestDescriptor{
		Path:     c.path + "/" + id,
		Headers:  map[string]string{"Accept": "message/rfc822"},
		Download: true,
	}
	result, err := c.conn.Request(ctx, desc)
	if err != nil {
		return nil, fmt.Errorf("downloading raw message %s: %w", id, err)
	}
	return result.(*RawResponse), nil
}

// FileCollection extends the standard file operations with content
// download.
type FileCollection struct {
	RestfulCollection[File]
}

// Download fetches an attachment's content. The raw response exposes
// the Content-Type and Content-Disposition headers the caller needs
// to name and type the file.
func (c *FileCollection) Download(ctx context.Context, id string) (*RawResponse, error) {
	desc := RequestDescriptor{
		Path:     c.path + "/" + id + "/download",
		Download: true,
	}
	result, err := c.conn.Request(ctx, desc)
	if err != nil {
		return nil, fmt.Errorf("downloading file %s: %w", id, err)
	}
	return result.(*RawResponse), nil
}

// AccountsCollection is the application-level accounts accessor. Its
// concrete behavior depends on how the client was configured: with
// both client credentials it operates on the management endpoint
// /a/<client_id>/accounts; in single-account mode only the token
// holder's own account is reachable (via Connection.Account) and the
// management operations below fail with a ConfigurationError.
type AccountsCollection struct {
	management bool
	mgmt       *RestfulCollection[ManagementAccount]
}

// Management reports whether this collection operates in
// client-credentials (management) mode.
func (a *AccountsCollection) Management() bool {
	return a.management
}

func (a *AccountsCollection) requireManagement() error {
	if a.management {
		return nil
	}
	return &ConfigurationError{
		Message: "managing accounts requires both a client ID and a client secret",
	}
}

// List fetches the application's accounts.
func (a *AccountsCollection) List(ctx context.Context, query map[string]any) ([]ManagementAccount, error) {
	if err := a.requireManagement(); err != nil {
		return nil, err
	}
	return a.mgmt.List(ctx, query)
}

// Find fetches a single application account by ID.
func (a *AccountsCollection) Find(ctx context.Context, id string) (*ManagementAccount, error) {
	if err := a.requireManagement(); err != nil {
		return nil, err
	}
	return a.mgmt.Find(ctx, id, nil)
}

// Downgrade moves an account to the free plan.
func (a *AccountsCollection) Downgrade(ctx context.Context, id string) error {
	return a.billingAction(ctx, id, "downgrade")
}

// Upgrade moves an account to the paid plan.
func (a *AccountsCollection) Upgrade(ctx context.Context, id string) error {
	return a.billingAction(ctx, id, "upgrade")
}

func (a *AccountsCollection) billingAction(ctx context.Context, id, action string) error {
	if err := a.requireManagement(); err != nil {
		return err
	}
	desc := RequestDescriptor{
		Path:   a.mgmt.path + "/" + id + "/" + action,
		Method: "POST",
	}
	if err := a.mgmt.conn.requestInto(ctx, desc, nil); err != nil {
		return fmt.Errorf("%s account %s: %w", action, id, err)
	}
	return nil
}
