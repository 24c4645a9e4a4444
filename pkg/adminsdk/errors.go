package adminsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ============================================================================
// APIError - typed error for non-2xx responses
// ============================================================================

// FieldError is a single field-level validation failure returned by the
// server inside a 4xx envelope. Callers map these onto form fields.
type FieldError struct {
	// Field is the name of the offending request field
	Field string `json:"field"`

	// Message describes why the field was rejected
	Message string `json:"message"`
}

// APIError represents a non-2xx response from the admin API. It carries the
// server-provided envelope message when one could be parsed, otherwise a
// client-side default derived from the HTTP status.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int `json:"-"`

	// Status is the envelope status indicator (usually "error")
	Status string `json:"status"`

	// Message is the server-provided message, or a client-side default
	Message string `json:"message"`

	// Fields holds structured validation failures when the server returned
	// them; empty for all other error classes.
	Fields []FieldError `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s (%d field error(s))", e.Message, len(e.Fields))
	}
	return e.Message
}

// IsAuthFailure reports whether this error is an authorization failure (401).
func (e *APIError) IsAuthFailure() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether this error is a not-found response (404).
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// ============================================================================
// Error Parsing
// ============================================================================

// parseErrorResponse converts a non-2xx response body into an *APIError.
// It tries the standard envelope first, then the envelope-with-field-errors
// shape, and falls back to a generic message built from the status code.
func parseErrorResponse(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Status:     StatusError,
		Message:    fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode)),
	}

	var envelope struct {
		Status  string          `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Message == "" {
		return apiErr
	}

	if envelope.Status != "" {
		apiErr.Status = envelope.Status
	}
	apiErr.Message = envelope.Message

	// Validation failures carry a list of {field, message} pairs as the data
	// payload. Anything that doesn't parse as that shape is left alone.
	if len(envelope.Data) > 0 {
		var fields []FieldError
		if err := json.Unmarshal(envelope.Data, &fields); err == nil {
			for _, f := range fields {
				if f.Field != "" {
					apiErr.Fields = append(apiErr.Fields, f)
				}
			}
		}
	}

	return apiErr
}
