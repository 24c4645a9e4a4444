/*
Package adminsdk provides a typed client for the Amora dating-platform admin
REST API.

# Overview

The package is organized around three layers:

  - Client: the transport layer. One configured HTTP client with base URL
    resolution, bearer-token injection from an injected CredentialStore, and
    uniform 401 handling.
  - Resource[T]: the generic entity service. A reusable CRUD contract over an
    arbitrary resource type, bound to a base endpoint path.
  - Specialized services: one per admin resource (plans, users, matches,
    transactions, lounges, date plans, date-plan templates, subscriptions,
    dashboard aggregates, email templates, auth). Each embeds a Resource
    value and adds thin convenience methods.

Create a client and use its services:

	client := adminsdk.New(adminsdk.Config{})

	// Authenticate; the token is stored for subsequent requests.
	login, err := client.Auth.Login(ctx, "admin@example.com", "secret")

	// List users matching a filter.
	users, err := client.Users.List(ctx, adminsdk.NewQuery().
		Set("page", 1).
		Set("isActive", true))

	// Dashboard aggregates.
	stats, err := client.Dashboard.Stats(ctx)

# Base URL Resolution

The base URL is resolved once, at construction: an explicit Config.BaseURL
wins, then the AMORA_API_URL environment variable, then a local-development
default. There is no late reconfiguration.

# Credentials

The bearer token lives in a CredentialStore injected at construction. The
transport reads it before every request and sets an Authorization header when
a token is present; requests without a token go out unmodified. The store is
written on login and cleared on logout and on any 401 response.

The default store is in-memory. The tokenstore package provides a
SQLite-backed store that persists the token across process restarts, which
the amorctl CLI uses.

# Error Handling

All non-2xx responses surface as *APIError carrying the HTTP status, the
server's envelope message (or a client-side default), and any field-level
validation errors the server returned. The SDK never swallows errors and
never retries; a 401 clears the credential store and invokes the optional
OnAuthFailure callback before the error is returned, so the hosting
application decides whether to navigate to a login flow.

	users, err := client.Users.List(ctx, nil)
	if err != nil {
		var apiErr *adminsdk.APIError
		if errors.As(err, &apiErr) && apiErr.IsAuthFailure() {
			// session expired; token already cleared
		}
	}

# Query Encoding

List filters are built with Query, which preserves insertion order, omits
nil and empty-string values, stringifies booleans, and encodes slices as
repeated keys (tags=a&tags=b). An empty query produces a request to the bare
base endpoint.

# Uploads

Multipart uploads are modeled explicitly with Form. Resource.Upload picks
the method from the target endpoint: POST when it equals the resource base
(creation with attachment), PUT otherwise (update with attachment).

# Concurrency

A Client is safe for concurrent use; it holds no mutable state besides the
credential store, which implementations guard themselves. Requests run to
completion or failure once issued — cancellation is the caller's business via
context.Context, and callers decide their own fan-out (the dashboard page
typically issues several Stats calls concurrently and joins them).
*/
package adminsdk
