package nfl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var matchTeams = []Team{
	{ID: 7, Name: "Las Vegas Raiders", City: "Las Vegas", Code: "LV"},
	{ID: 8, Name: "Detroit Lions", City: "Detroit", Code: "DET"},
	{ID: 12, Name: "Kansas City Chiefs", City: "Kansas City", Code: "KC"},
	{ID: 19, Name: "New York Giants", City: "New York", Code: "NYG"},
	{ID: 20, Name: "New York Jets", City: "New York", Code: "NYJ"},
}

func TestBestTeamMatch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
		found bool
	}{
		{
			name:  "exact name",
			query: "Detroit Lions",
			want:  8,
			found: true,
		},
		{
			name:  "team code ignores case",
			query: "det",
			want:  8,
			found: true,
		},
		{
			name:  "city",
			query: "kansas city",
			want:  12,
			found: true,
		},
		{
			name:  "misspelled name",
			query: "detroit loins",
			want:  8,
			found: true,
		},
		{
			name:  "no team close enough",
			query: "green bay",
			found: false,
		},
		{
			name:  "empty query",
			query: "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team, ok := BestTeamMatch(matchTeams, tt.query)
			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, team.ID)
			}
		})
	}
}

func TestRankTeams(t *testing.T) {
	matches := RankTeams(matchTeams, "new york")

	require.Len(t, matches, 2)
	assert.Equal(t, "New York Giants", matches[0].Team.Name)
	assert.Equal(t, "New York Jets", matches[1].Team.Name)
	for _, m := range matches {
		assert.InDelta(t, 1.0, m.Score, 1e-9)
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		query     string
		candidate string
		want      float64
	}{
		{query: "lions", candidate: "lions", want: 1},
		{query: "Lions", candidate: "lions", want: 1},
		{query: "", candidate: "lions", want: 0},
		{query: "lions", candidate: "", want: 0},
		{query: "detroit lion", candidate: "detroit lions", want: 1 - 1.0/13},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, similarity(tt.query, tt.candidate), 1e-9,
			"similarity(%q, %q)", tt.query, tt.candidate)
	}
}
