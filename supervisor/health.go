package supervisor

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ProbeHealth calls the server's health endpoint and returns its status field.
func ProbeHealth(ctx context.Context, url string, timeout time.Duration) (string, error) {
	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}

	resp, err := resty.New().SetTimeout(timeout).R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&body).
		SetError(&body).
		Get(url)
	if err != nil {
		return "", fmt.Errorf("health check failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("health check returned %d: %s", resp.StatusCode(), body.Message)
	}
	return body.Status, nil
}
