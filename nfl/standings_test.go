package nfl

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandingsRequestValidation(t *testing.T) {
	tests := []struct {
		name   string
		req    StandingsRequest
		errMsg string
	}{
		{
			name: "league and season",
			req:  StandingsRequest{League: LeagueNFL, Season: 2023},
		},
		{
			name: "with conference and division",
			req:  StandingsRequest{League: LeagueNFL, Season: 2023, Conference: ConferenceAFC, Division: DivisionWest},
		},
		{
			name:   "missing league",
			req:    StandingsRequest{Season: 2023},
			errMsg: "league must be provided",
		},
		{
			name:   "invalid league",
			req:    StandingsRequest{League: 3, Season: 2023},
			errMsg: "valid league",
		},
		{
			name:   "missing season",
			req:    StandingsRequest{League: LeagueNFL},
			errMsg: "season must be provided",
		},
		{
			name:   "season not four digits",
			req:    StandingsRequest{League: LeagueNFL, Season: 23},
			errMsg: "four-digit year",
		},
		{
			name:   "unknown conference",
			req:    StandingsRequest{League: LeagueNFL, Season: 2023, Conference: "AFC"},
			errMsg: "conference must be one of",
		},
		{
			name:   "unknown division",
			req:    StandingsRequest{League: LeagueNFL, Season: 2023, Division: "Central"},
			errMsg: "division must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.values()
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStandings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/standings", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("league"))
		assert.Equal(t, "2023", r.URL.Query().Get("season"))
		fmt.Fprint(w, envelopeBody("standings", 1, `[{
			"league": {"id": 1, "name": "NFL", "season": "2023"},
			"conference": "American Football Conference",
			"division": "West",
			"position": 1,
			"team": {"id": 12, "name": "Kansas City Chiefs"},
			"won": 11, "lost": 6, "ties": 0,
			"points": {"for": 371, "against": 294, "difference": 77},
			"records": {"home": "6-3", "road": "5-3", "conference": "7-5", "division": "4-2"},
			"streak": "W2"
		}]`))
	})

	standings, err := client.Standings(context.Background(), StandingsRequest{League: LeagueNFL, Season: 2023})
	require.NoError(t, err)

	require.Len(t, standings, 1)
	row := standings[0]
	assert.Equal(t, "Kansas City Chiefs", row.Team.Name)
	assert.Equal(t, 1, row.Position)
	assert.Equal(t, 77, row.Points.Difference)
	assert.Equal(t, "6-3", row.Records.Home)
}

func TestStandingWinPct(t *testing.T) {
	tests := []struct {
		name     string
		standing Standing
		want     float64
	}{
		{
			name:     "no games played",
			standing: Standing{},
			want:     0,
		},
		{
			name:     "wins only",
			standing: Standing{Won: 4},
			want:     1,
		},
		{
			name:     "ties count as half a win",
			standing: Standing{Won: 8, Lost: 8, Ties: 1},
			want:     8.5 / 17,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.standing.WinPct(), 1e-9)
		})
	}
}

func TestConferencesAndDivisions(t *testing.T) {
	t.Run("conferences", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/standings/conferences", r.URL.Path)
			fmt.Fprint(w, envelopeBody("standings/conferences", 2,
				`["American Football Conference", "National Football Conference"]`))
		})

		conferences, err := client.Conferences(context.Background(), LeagueNFL, 2023)
		require.NoError(t, err)
		assert.Equal(t, []string{"American Football Conference", "National Football Conference"}, conferences)
	})

	t.Run("divisions", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/standings/divisions", r.URL.Path)
			fmt.Fprint(w, envelopeBody("standings/divisions", 4, `["North", "South", "East", "West"]`))
		})

		divisions, err := client.Divisions(context.Background(), LeagueNFL, 2023)
		require.NoError(t, err)
		assert.Len(t, divisions, 4)
	})

	t.Run("rejects missing season", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("request should not reach the server")
		})

		_, err := client.Conferences(context.Background(), LeagueNFL, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "season must be provided")
	})
}
