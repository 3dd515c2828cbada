// Package types defines the wire representations served by the API
package types

// Slug classifies an error response for clients
type Slug string

// nolint:gochecknoglobals
const (
	InvalidInputSlug Slug = "invalid-input"
	NotFoundSlug     Slug = "not-found"
	ServerErrorSlug  Slug = "server-error"
)

// ErrorResponse represents an error response
// Example: {"slug":"invalid-input","error":"Course name is required","request_id":"4f0c..."}
type ErrorResponse struct {
	Slug Slug `json:"slug"`

	// Error message describing what went wrong
	Error string `json:"error"`

	// Optional additional details about the error
	Details interface{} `json:"details,omitempty"`

	// Request id echoed from the X-Request-ID header
	RequestID string `json:"request_id,omitempty"`
}

// HealthResponse is returned by the health check endpoint
type HealthResponse struct {
	Status string `json:"status"`
}

// WithDetails returns a copy of the response carrying details
func (e ErrorResponse) WithDetails(details interface{}) ErrorResponse {
	e.Details = details
	return e
}

// WithRequestID returns a copy of the response tagged with the request id
func (e ErrorResponse) WithRequestID(id string) ErrorResponse {
	e.RequestID = id
	return e
}

// ErrInvalidInput returns an ErrorResponse for malformed requests
func ErrInvalidInput(msg string) ErrorResponse {
	return ErrorResponse{
		Slug:  InvalidInputSlug,
		Error: msg,
	}
}

// ErrNotFound returns an ErrorResponse for missing resources
func ErrNotFound(msg string) ErrorResponse {
	return ErrorResponse{
		Slug:  NotFoundSlug,
		Error: msg,
	}
}

// ErrServer returns an ErrorResponse for internal failures
func ErrServer(msg string) ErrorResponse {
	return ErrorResponse{
		Slug:  ServerErrorSlug,
		Error: msg,
	}
}
