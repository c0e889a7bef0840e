package nfl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

const (
	defaultHost     = "v1.american-football.api-sports.io"
	rapidAPIHost    = "api-nfl-v1.p.rapidapi.com"
	defaultTimezone = "America/New_York"

	headerAPIKey  = "x-rapidapi-key"
	headerAPIHost = "x-rapidapi-host"
)

// Client represents an api-sports NFL API client
type Client struct {
	baseURL    string
	host       string
	apiKey     string
	timezone   string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new api-sports NFL client
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	baseURL := options.baseURL
	if baseURL == "" {
		baseURL = "https://" + options.host
	}
	baseURL = strings.TrimRight(baseURL, "/")

	client := &Client{
		baseURL:   baseURL,
		host:      options.host,
		apiKey:    apiKey,
		timezone:  options.timezone,
		userAgent: options.userAgent,
		logger:    logger,
	}

	if options.httpClient != nil {
		client.httpClient = options.httpClient
	} else {
		client.httpClient = &http.Client{Timeout: options.timeout}
	}

	return client, nil
}

// Timezone returns the default timezone applied to game requests
func (c *Client) Timezone() string {
	return c.timezone
}

// TestConnection verifies the client can reach the upstream API with its key
func (c *Client) TestConnection(ctx context.Context) error {
	if _, err := c.Status(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrNoConnection, err)
	}
	return nil
}

// envelope is the wrapper the upstream puts around every payload
type envelope struct {
	Get        string          `json:"get"`
	Parameters json.RawMessage `json:"parameters"`
	Errors     ResponseErrors  `json:"errors"`
	Results    int             `json:"results"`
	Response   json.RawMessage `json:"response"`
}

// get performs an authenticated GET against an endpoint and unmarshals the
// envelope's response field into out.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	requestURL := c.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerAPIHost, c.host)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("url", requestURL).
		Msg("Making api-sports request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Body:       string(body),
		}
		// Error payloads usually still carry the envelope.
		var env envelope
		if json.Unmarshal(body, &env) == nil {
			apiErr.Errors = env.Errors
		}
		return apiErr
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	// The upstream reports bad parameters inside a 200 response.
	if len(env.Errors) > 0 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Errors:     env.Errors,
			Body:       string(body),
		}
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("results", env.Results).
		Msg("api-sports response")

	if out == nil || len(env.Response) == 0 {
		return nil
	}

	if err := json.Unmarshal(env.Response, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}

	return nil
}
