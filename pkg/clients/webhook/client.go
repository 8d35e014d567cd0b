package webhook

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client delivers JSON payloads to a configured alert endpoint.
type Client interface {
	Post(ctx context.Context, payload any) error
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook client for the given endpoint. An optional
// bearer token is attached to every request.
func NewClient(url, token string) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	if token != "" {
		restyClient.SetHeader("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	return &APIClient{
		httpClient: restyClient,
		url:        url,
	}
}

// Post sends the payload and fails on any non-2xx response.
func (c *APIClient) Post(ctx context.Context, payload any) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("failed to deliver webhook payload: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("webhook endpoint returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}
