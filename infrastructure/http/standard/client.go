// ABOUTME: Standard HTTP client with retry logic for external collaborator calls
// ABOUTME: Retries 5xx responses with exponential backoff, never retries POST bodies

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"brochure-app-api/core/interfaces"
)

const (
	maxRetries = 3
	userAgent  = "BrochureAPI/1.0"
)

// StandardHTTPClient implements the HTTPClient interface on net/http.
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates an HTTP client with the specified timeout.
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs an HTTP GET request with retries on transport errors and
// server-side failures.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			// 100ms, 200ms, 400ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			lastErr = err
			resp = nil
			continue
		}

		// 4xx responses are the caller's problem, not transient.
		if resp.StatusCode < 500 {
			break
		}

		// Out of retries: hand the final 5xx to the caller so it can
		// report the real status code.
		if attempt == maxRetries-1 {
			break
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// Post performs an HTTP POST with a JSON body. No retries: the body reader
// is consumed by the first attempt.
func (c *StandardHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface.
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
