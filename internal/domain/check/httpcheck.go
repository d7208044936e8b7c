package check

import (
	"context"
	"fmt"
	"net/http"

	"go-health/internal/domain/model"
	"go-health/pkg/httpclient"
)

// HTTPCheck probes a remote endpoint with a GET request. The dependency
// counts as up for any status below 500; a 4xx means the endpoint is
// reachable and serving, which is all a dependency probe can ask.
type HTTPCheck struct {
	client *httpclient.Client
	url    string
}

// NewHTTPCheck creates a check that probes the given URL.
func NewHTTPCheck(client *httpclient.Client, url string) *HTTPCheck {
	return &HTTPCheck{client: client, url: url}
}

func (c *HTTPCheck) Check(ctx context.Context) model.CheckResult {
	resp, err := c.client.Get(ctx, c.url)
	if err != nil {
		return model.DownResult(err, map[string]any{"url": c.url})
	}

	details := map[string]any{
		"url":         c.url,
		"status_code": resp.StatusCode,
		"latency_ms":  resp.Latency.Milliseconds(),
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return model.DownResult(fmt.Errorf("endpoint returned HTTP %d", resp.StatusCode), details)
	}
	return model.UpResult(details)
}
