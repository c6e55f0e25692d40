package interfaces

import (
	"context"
	"io"
)

// HTTPClient abstracts outbound HTTP so collaborator clients can be mocked
// and the transport (retries, timeouts) swapped without touching the core.
type HTTPClient interface {
	// Get performs an HTTP GET request to the given URL.
	Get(ctx context.Context, url string) (Response, error)

	// Post performs an HTTP POST request with a JSON body.
	Post(ctx context.Context, url string, body io.Reader) (Response, error)
}

// Response is the minimal surface of an HTTP response the core consumes.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body. The caller closes it.
	Body() io.ReadCloser

	// Header returns the named header value, or "" when absent.
	// Header names are case-insensitive.
	Header(key string) string
}
