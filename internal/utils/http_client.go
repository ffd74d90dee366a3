package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-sol-vault"

// HTTPClient embeds *resty.Client so callers get the full resty API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client preconfigured for JSON
// request and response bodies.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)
	return &HTTPClient{Client: client}
}

// WithRetries enables resty retries for transport failures only. JSON-RPC
// errors arrive with status 200 and are never retried.
func (c *HTTPClient) WithRetries(count int, wait time.Duration) *HTTPClient {
	c.SetRetryCount(count).
		SetRetryWaitTime(wait).
		SetRetryMaxWaitTime(wait * 4)
	return c
}
