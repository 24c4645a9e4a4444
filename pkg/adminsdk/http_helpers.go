package adminsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/amorahq/amora-admin/pkg/reqid"
)

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.baseURL + path
}

// do performs an HTTP request against the admin API. It waits on the
// client-side rate limiter when one is configured, attaches the bearer token
// when the credential store holds one, and tags the request with a ULID
// X-Request-Id for correlation with server logs.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	body io.Reader,
	contentType string,
) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", reqid.New())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	token, err := c.creds.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read credential store: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	c.logger.DebugContext(ctx, "admin api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
	)

	return resp, nil
}

// doJSON issues a request with an optional JSON body and decodes the
// response envelope into out.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}
	return c.decode(resp, out)
}

// doMultipart issues a request carrying a multipart form body and decodes
// the response envelope into out.
func (c *Client) doMultipart(ctx context.Context, method, path string, form *Form, out any) error {
	body, contentType, err := form.encode()
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}
	return c.decode(resp, out)
}

// decode consumes the response. Non-2xx statuses become a typed *APIError;
// a 401 additionally clears the credential store and fires the auth-failure
// callback before the error is returned. Errors are never swallowed here.
func (c *Client) decode(resp *http.Response, out any) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseErrorResponse(resp.StatusCode, bodyBytes)
		if apiErr.IsAuthFailure() {
			if clearErr := c.creds.Clear(); clearErr != nil {
				c.logger.Warn("failed to clear credential store after 401", "error", clearErr)
			}
			if c.onAuthFailure != nil {
				c.onAuthFailure(apiErr)
			}
		}
		return apiErr
	}

	if out == nil || len(bodyBytes) == 0 {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
