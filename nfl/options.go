package nfl

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	host       string
	timezone   string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
}

func defaultOptions() *clientOptions {
	return &clientOptions{
		host:     defaultHost,
		timezone: defaultTimezone,
		timeout:  30 * time.Second,
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client. It takes precedence over
// WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithRapidAPI routes requests through the RapidAPI host instead of the
// api-sports host.
func WithRapidAPI() Option {
	return func(o *clientOptions) {
		o.host = rapidAPIHost
	}
}

// WithBaseURL overrides the request base URL. The x-rapidapi-host header is
// unaffected; this is mainly useful for pointing the client at a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithTimezone sets the default timezone applied to game requests that do
// not specify one.
func WithTimezone(tz string) Option {
	return func(o *clientOptions) {
		if tz != "" {
			o.timezone = tz
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}
