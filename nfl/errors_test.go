package nfl

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseErrorsUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		data string
		want ResponseErrors
	}{
		{
			name: "empty array",
			data: `[]`,
			want: nil,
		},
		{
			name: "null",
			data: `null`,
			want: nil,
		},
		{
			name: "empty object",
			data: `{}`,
			want: nil,
		},
		{
			name: "object keyed by parameter",
			data: `{"league": "The League field must contain a valid league id."}`,
			want: ResponseErrors{"league": "The League field must contain a valid league id."},
		},
		{
			name: "array of messages",
			data: `["Too many requests.", "Try again later."]`,
			want: ResponseErrors{"0": "Too many requests.", "1": "Try again later."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ResponseErrors
			err := json.Unmarshal([]byte(tt.data), &got)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("malformed payload", func(t *testing.T) {
		var got ResponseErrors
		err := json.Unmarshal([]byte(`42`), &got)
		require.Error(t, err)
	})
}

func TestResponseErrorsString(t *testing.T) {
	errs := ResponseErrors{
		"season": "The Season field must be 4 digits.",
		"league": "The League field must contain a valid league id.",
	}
	assert.Equal(t,
		"league: The League field must contain a valid league id.; season: The Season field must be 4 digits.",
		errs.String())
}

func TestAPIErrorMessage(t *testing.T) {
	t.Run("status only", func(t *testing.T) {
		err := &APIError{StatusCode: 500, Endpoint: "/games"}
		assert.Equal(t, "api-sports error: /games: status 500", err.Error())
	})

	t.Run("with envelope errors", func(t *testing.T) {
		err := &APIError{
			StatusCode: 200,
			Endpoint:   "/teams",
			Errors:     ResponseErrors{"search": "must be at least 3 characters"},
		}
		assert.Equal(t, "api-sports error: /teams: status 200: search: must be at least 3 characters", err.Error())
	})
}

func TestAPIErrorClassifiers(t *testing.T) {
	tests := []struct {
		status       int
		unauthorized bool
		notFound     bool
		rateLimited  bool
		serverError  bool
	}{
		{status: 401, unauthorized: true},
		{status: 403, unauthorized: true},
		{status: 404, notFound: true},
		{status: 429, rateLimited: true},
		{status: 500, serverError: true},
		{status: 503, serverError: true},
		{status: 200},
	}

	for _, tt := range tests {
		err := &APIError{StatusCode: tt.status}
		assert.Equal(t, tt.unauthorized, err.IsUnauthorized(), "status %d", tt.status)
		assert.Equal(t, tt.notFound, err.IsNotFound(), "status %d", tt.status)
		assert.Equal(t, tt.rateLimited, err.IsRateLimited(), "status %d", tt.status)
		assert.Equal(t, tt.serverError, err.IsServerError(), "status %d", tt.status)
	}
}
