package adminsdk

// ============================================================================
// Response Envelope Types
// ============================================================================

// Envelope status indicators as returned by the admin API.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the wrapper every admin API response arrives in: a status
// indicator, a human-readable message and the data payload itself.
type Envelope[T any] struct {
	// Status is "success" or "error"
	Status string `json:"status"`

	// Message is a human-readable summary of the outcome
	Message string `json:"message"`

	// Data is the payload (a single entity or a free-form record)
	Data T `json:"data"`
}

// ListEnvelope wraps list responses. In addition to the data slice it may
// carry a pagination block, which is passed through verbatim from the server.
type ListEnvelope[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    []T    `json:"data"`

	// Pagination is nil when the server did not paginate the response.
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes the server-side paging state of a list response.
type Pagination struct {
	// TotalRecords is the total number of records matching the query
	TotalRecords int `json:"totalRecords"`

	// CurrentPage is the 1-based page number of this response
	CurrentPage int `json:"currentPage"`

	// TotalPages is the number of pages available at the current page size
	TotalPages int `json:"totalPages"`

	// PageSize is the number of records per page
	PageSize int `json:"pageSize"`
}

// MessageEnvelope is an envelope with no data payload of interest, returned
// by delete operations and the auth endpoints that only acknowledge.
type MessageEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
