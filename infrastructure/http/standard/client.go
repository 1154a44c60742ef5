// ABOUTME: Standard HTTP client implementation with timeout and request logging
// ABOUTME: Performs exactly one request per call; recipe searches are never retried

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"recipe-finder-app/core/interfaces"
)

const userAgent = "RecipeFinder/1.0"

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// When logger is non-nil every outgoing request is logged at debug level
// and failures at error level.
func NewStandardHTTPClient(timeout time.Duration, logger interfaces.Logger) *StandardHTTPClient {
	var transport http.RoundTripper = http.DefaultTransport
	if logger != nil {
		transport = &loggingTransport{next: transport, logger: logger}
	}
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

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

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}

// loggingTransport logs outgoing requests and their outcome
type loggingTransport struct {
	next   http.RoundTripper
	logger interfaces.Logger
}

// RoundTrip implements http.RoundTripper
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	t.logger.Debug("Outgoing HTTP request", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
	})

	resp, err := t.next.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		t.logger.Error("Outgoing HTTP request failed", map[string]interface{}{
			"method":   req.Method,
			"url":      req.URL.String(),
			"duration": duration.String(),
			"error":    err.Error(),
		})
		return nil, err
	}

	t.logger.Debug("Outgoing HTTP response", map[string]interface{}{
		"method":   req.Method,
		"url":      req.URL.String(),
		"status":   resp.StatusCode,
		"duration": duration.String(),
	})

	return resp, nil
}
