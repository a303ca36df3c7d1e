package gofile

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	defaultAPIURL    = "https://api.gofile.io"
	defaultUploadURL = "https://upload.gofile.io"
	timeout          = 30 * time.Second
)

// Region identifies a regional upload host. The default upload host routes
// to the nearest region automatically; pinning a region is optional.
type Region string

const (
	RegionEuropeParis      Region = "eu-par"
	RegionNorthAmericaPhx  Region = "na-phx"
	RegionAsiaPacificSg    Region = "ap-sgp"
	RegionAsiaPacificHk    Region = "ap-hkg"
	RegionAsiaPacificTokyo Region = "ap-tyo"
	RegionSouthAmericaSao  Region = "sa-sao"
)

// UploadURL returns the upload base URL for the region
func (r Region) UploadURL() string {
	return fmt.Sprintf("https://upload-%s.gofile.io", r)
}

// Client represents a Gofile API client. It holds one HTTP client shared by
// the control-plane and upload endpoints and is safe for concurrent use.
type Client struct {
	token      string
	apiURL     string
	uploadURL  string
	httpClient *http.Client
}

var _ ClientAPI = (*Client)(nil)

// Option customizes a Client during construction.
type Option func(*Client)

// WithAPIURL overrides the control-plane base URL.
func WithAPIURL(url string) Option {
	return func(c *Client) {
		c.apiURL = url
	}
}

// WithUploadURL overrides the upload base URL.
func WithUploadURL(url string) Option {
	return func(c *Client) {
		c.uploadURL = url
	}
}

// WithRegion pins uploads to a specific regional upload host.
func WithRegion(region Region) Option {
	return func(c *Client) {
		c.uploadURL = region.UploadURL()
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Gofile client. An empty token means unauthenticated
// requests: no Authorization header is attached.
func NewClient(token string, opts ...Option) *Client {
	client := &Client{
		token:     token,
		apiURL:    defaultAPIURL,
		uploadURL: defaultUploadURL,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		client.httpClient = newHTTPClient()
	}

	return client
}

var (
	sharedOnce   sync.Once
	sharedClient *Client
)

// Shared returns a process-wide client, constructing it on first call.
// Concurrent first callers observe the same instance; arguments of later
// calls are ignored. Prefer NewClient unless a process-wide convenience
// instance is explicitly wanted.
func Shared(token string, opts ...Option) *Client {
	sharedOnce.Do(func() {
		sharedClient = NewClient(token, opts...)
	})
	return sharedClient
}

func newHTTPClient() *http.Client {
	dialer := &net.Dialer{Timeout: timeout}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext:           dialer.DialContext,
			TLSHandshakeTimeout:   timeout,
			ResponseHeaderTimeout: timeout,
		},
	}
}

// newRequest builds an HTTP request with the bearer token attached when one
// is configured. Token injection happens here and nowhere else so that both
// the control-plane and upload senders behave identically.
func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}
