// Package httpclient is a small HTTP client for probing remote endpoints.
// Response bodies are decoded to UTF-8 based on the Content-Type charset,
// so probes against legacy status pages read correctly.
package httpclient

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
)

// maxBodyBytes caps how much of a probed response body is read. Health
// endpoints return small payloads; anything larger is truncated.
const maxBodyBytes = 64 * 1024

// Options configures a Client. Zero values fall back to conservative
// defaults suitable for health probing.
type Options struct {
	// ConnectionTimeout bounds dialing the remote host.
	ConnectionTimeout time.Duration
	// ReadTimeout bounds the whole request including body read.
	ReadTimeout time.Duration
	// FollowRedirect controls whether 3xx responses are followed.
	FollowRedirect bool
	// Headers are added to every request.
	Headers map[string]string
}

// Client wraps http.Client with probe-oriented defaults.
type Client struct {
	client  *http.Client
	headers map[string]string
}

// New creates a Client with the given options.
func New(opts Options) *Client {
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 5 * time.Second
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 10 * time.Second
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
		MaxIdleConnsPerHost: 2,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}
	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{client: client, headers: opts.Headers}
}

// Response is the outcome of a probe request.
type Response struct {
	StatusCode int
	Body       string
	Latency    time.Duration
}

// Get performs a GET against url. A non-2xx status is not an error here;
// the caller decides what status codes mean for its health semantics.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := decodeBody(resp)
	latency := time.Since(start)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Latency:    latency,
	}, nil
}

func decodeBody(resp *http.Response) (string, error) {
	reader, err := charset.NewReader(io.LimitReader(resp.Body, maxBodyBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	if _, err := io.Copy(&builder, reader); err != nil {
		return "", err
	}
	return builder.String(), nil
}
