package nfl

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Common errors
var (
	// ErrMissingAPIKey indicates the client was constructed without a key
	ErrMissingAPIKey = errors.New("api-sports API key is required")
	// ErrNoConnection indicates connection failure
	ErrNoConnection = errors.New("failed to connect to api-sports")
)

// APIError represents an api-sports API error. It covers both non-200
// status codes and 200 responses whose envelope carries an errors field.
type APIError struct {
	StatusCode int
	Endpoint   string
	Errors     ResponseErrors
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	msg := fmt.Sprintf("api-sports error: %s: status %d", e.Endpoint, e.StatusCode)
	if len(e.Errors) > 0 {
		msg += ": " + e.Errors.String()
	}
	return msg
}

// IsUnauthorized checks if the error indicates an invalid or exhausted API key
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsRateLimited checks if the error indicates the request quota was exceeded
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == 429
}

// IsServerError checks if the error indicates an upstream server failure
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// ResponseErrors holds the errors field of the upstream envelope. The API
// sends an empty array when there are no errors and an object keyed by
// parameter name otherwise, so decoding has to accept both shapes.
type ResponseErrors map[string]string

// UnmarshalJSON implements json.Unmarshaler
func (e *ResponseErrors) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*e = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		if len(list) == 0 {
			*e = nil
			return nil
		}
		out := make(ResponseErrors, len(list))
		for i, msg := range list {
			out[strconv.Itoa(i)] = msg
		}
		*e = out
		return nil
	}

	var obj map[string]string
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if len(obj) == 0 {
		*e = nil
		return nil
	}
	*e = obj
	return nil
}

// String renders the errors as a stable, readable list
func (e ResponseErrors) String() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e[k]))
	}
	return strings.Join(parts, "; ")
}
