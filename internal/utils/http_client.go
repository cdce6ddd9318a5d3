package utils

import "github.com/go-resty/resty/v2"

// HTTPClient wraps *resty.Client so callers depend on one place for the
// outbound HTTP stack.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with resty defaults.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
