package adminsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// serverManagedKeys are record fields owned by the backend. They are
// stripped from create bodies so a caller passing back a fetched entity
// never transmits them.
var serverManagedKeys = []string{"id", "_id", "createdAt", "updatedAt"}

// Resource is a generic CRUD client for one admin API resource, bound to an
// immutable base endpoint path at construction. Specialized services embed a
// Resource value and delegate to it, adding hand-written endpoint calls that
// use the same envelope conventions.
//
// Every operation issues exactly one request and propagates transport
// failures unchanged; there is no retry, caching, or local error recovery.
type Resource[T any] struct {
	client *Client
	base   string
}

// NewResource binds a Resource to c under the given base endpoint path,
// e.g. "/v1/plans".
func NewResource[T any](c *Client, base string) *Resource[T] {
	return &Resource[T]{
		client: c,
		base:   strings.TrimSuffix(base, "/"),
	}
}

// Base returns the endpoint path this resource is bound to.
func (r *Resource[T]) Base() string {
	return r.base
}

// Client returns the transport client, for hand-written endpoint calls on
// composing services.
func (r *Resource[T]) Client() *Client {
	return r.client
}

// List issues GET <base>?<query> and returns the list envelope with its
// pagination block passed through verbatim. A nil or empty query hits the
// bare base endpoint.
func (r *Resource[T]) List(ctx context.Context, q *Query) (*ListEnvelope[T], error) {
	path := r.base
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var env ListEnvelope[T]
	if err := r.client.doJSON(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// Get issues GET <base>/<id>. A not-found response surfaces as an *APIError
// carrying the server's message, untouched.
func (r *Resource[T]) Get(ctx context.Context, id string) (*Envelope[T], error) {
	var env Envelope[T]
	if err := r.client.doJSON(ctx, http.MethodGet, r.base+"/"+id, nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// Create issues POST <base>. Identifier and timestamp fields are stripped
// from the transmitted body even when present on data, since they are owned
// by the server.
func (r *Resource[T]) Create(ctx context.Context, data any) (*Envelope[T], error) {
	body, err := stripServerManaged(data)
	if err != nil {
		return nil, err
	}

	var env Envelope[T]
	if err := r.client.doJSON(ctx, http.MethodPost, r.base, body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// Update issues PUT <base>/<id> with a partial entity body. Fields absent
// from data are left untouched server-side.
func (r *Resource[T]) Update(ctx context.Context, id string, data any) (*Envelope[T], error) {
	var env Envelope[T]
	if err := r.client.doJSON(ctx, http.MethodPut, r.base+"/"+id, data, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// UpdateStatus issues PATCH <base>/<id>/status. It is reserved for
// boolean/enum status toggles so that full updates and activation changes
// stay independently auditable.
func (r *Resource[T]) UpdateStatus(ctx context.Context, id string, status any) (*Envelope[T], error) {
	var env Envelope[T]
	if err := r.client.doJSON(ctx, http.MethodPatch, r.base+"/"+id+"/status", status, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// Delete issues DELETE <base>/<id>.
func (r *Resource[T]) Delete(ctx context.Context, id string) (*MessageEnvelope, error) {
	var env MessageEnvelope
	if err := r.client.doJSON(ctx, http.MethodDelete, r.base+"/"+id, nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// Upload issues a multipart request to endpoint. The method is POST when
// endpoint equals the resource base (creation with attachment) and PUT for
// any other endpoint such as <base>/<id> (update with attachment). Some
// backends require multipart bodies even on update, which is why this
// diverges from the plain-JSON Update path.
func (r *Resource[T]) Upload(ctx context.Context, endpoint string, form *Form) (*Envelope[json.RawMessage], error) {
	method := http.MethodPut
	if strings.TrimSuffix(endpoint, "/") == r.base {
		method = http.MethodPost
	}

	var env Envelope[json.RawMessage]
	if err := r.client.doMultipart(ctx, method, endpoint, form, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// Stats issues GET <base>/stats. Present on every resource for uniformity;
// not every backend resource returns meaningful data for it.
func (r *Resource[T]) Stats(ctx context.Context) (*Envelope[map[string]any], error) {
	var env Envelope[map[string]any]
	if err := r.client.doJSON(ctx, http.MethodGet, r.base+"/stats", nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// stripServerManaged re-encodes data as a JSON object with the
// server-managed keys removed.
func stripServerManaged(data any) (map[string]any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode create body: %w", err)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("create body must be a JSON object: %w", err)
	}

	for _, key := range serverManagedKeys {
		delete(body, key)
	}
	return body, nil
}
