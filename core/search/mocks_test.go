package search

import (
	"context"
	"io"
	"strings"

	"recipe-finder-app/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
	calls   int
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.calls++
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
	closed     bool
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return &trackingReadCloser{Reader: strings.NewReader(m.body), onClose: func() { m.closed = true }}
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

type trackingReadCloser struct {
	io.Reader
	onClose func()
}

func (r *trackingReadCloser) Close() error {
	r.onClose()
	return nil
}

// failingReader fails every read
type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }
func (f failingReader) Close() error             { return nil }

type failingBodyResponse struct{ err error }

func (r failingBodyResponse) StatusCode() int          { return 200 }
func (r failingBodyResponse) Body() io.ReadCloser      { return failingReader{err: r.err} }
func (r failingBodyResponse) Header(key string) string { return "" }
