package nfl

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Standing is one team's row in the league table
type Standing struct {
	League     LeagueSeasonRef `json:"league"`
	Conference string          `json:"conference"`
	Division   string          `json:"division"`
	Position   int             `json:"position"`
	Team       TeamRef         `json:"team"`
	Won        int             `json:"won"`
	Lost       int             `json:"lost"`
	Ties       int             `json:"ties"`
	Points     StandingPoints  `json:"points"`
	Records    StandingRecords `json:"records"`
	Streak     string          `json:"streak"`
}

// StandingPoints holds the points for/against totals
type StandingPoints struct {
	For        int `json:"for"`
	Against    int `json:"against"`
	Difference int `json:"difference"`
}

// StandingRecords holds the win-loss records split by context
type StandingRecords struct {
	Home       string `json:"home"`
	Road       string `json:"road"`
	Conference string `json:"conference"`
	Division   string `json:"division"`
}

// WinPct returns the winning percentage, counting ties as half a win
func (s Standing) WinPct() float64 {
	games := s.Won + s.Lost + s.Ties
	if games == 0 {
		return 0
	}
	return (float64(s.Won) + 0.5*float64(s.Ties)) / float64(games)
}

// StandingsRequest filters the standings endpoint. League and Season are
// required.
type StandingsRequest struct {
	League     League
	Season     int
	Team       int
	Conference Conference
	Division   Division
}

func (r StandingsRequest) values() (url.Values, error) {
	if r.League == 0 {
		return nil, fmt.Errorf("league must be provided")
	}
	if !r.League.Valid() {
		return nil, fmt.Errorf("league must be a valid league: 1 for NFL, 2 for NCAA, got %d", int(r.League))
	}
	if r.Season == 0 {
		return nil, fmt.Errorf("season must be provided")
	}
	if err := validateSeason(r.Season); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("league", strconv.Itoa(int(r.League)))
	params.Set("season", strconv.Itoa(r.Season))

	if r.Team != 0 {
		params.Set("team", strconv.Itoa(r.Team))
	}
	if r.Conference != "" {
		if !r.Conference.Valid() {
			return nil, fmt.Errorf("conference must be one of: %s, %s", ConferenceAFC, ConferenceNFC)
		}
		params.Set("conference", string(r.Conference))
	}
	if r.Division != "" {
		if !r.Division.Valid() {
			return nil, fmt.Errorf("division must be one of: %s, %s, %s, %s",
				DivisionNorth, DivisionSouth, DivisionEast, DivisionWest)
		}
		params.Set("division", string(r.Division))
	}

	return params, nil
}

// Standings retrieves the league table for a season
func (c *Client) Standings(ctx context.Context, req StandingsRequest) ([]Standing, error) {
	params, err := req.values()
	if err != nil {
		return nil, err
	}

	var standings []Standing
	if err := c.get(ctx, "/standings", params, &standings); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(standings)).Msg("Retrieved standings")
	return standings, nil
}

func leagueSeasonParams(league League, season int) (url.Values, error) {
	if league == 0 {
		return nil, fmt.Errorf("league must be provided")
	}
	if !league.Valid() {
		return nil, fmt.Errorf("league must be a valid league: 1 for NFL, 2 for NCAA, got %d", int(league))
	}
	if season == 0 {
		return nil, fmt.Errorf("season must be provided")
	}
	if err := validateSeason(season); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("league", strconv.Itoa(int(league)))
	params.Set("season", strconv.Itoa(season))
	return params, nil
}

// Conferences retrieves the conference names for a league season
func (c *Client) Conferences(ctx context.Context, league League, season int) ([]string, error) {
	params, err := leagueSeasonParams(league, season)
	if err != nil {
		return nil, err
	}

	var conferences []string
	if err := c.get(ctx, "/standings/conferences", params, &conferences); err != nil {
		return nil, err
	}
	return conferences, nil
}

// Divisions retrieves the division names for a league season. The upstream
// does not group divisions by conference, so the list is flat.
func (c *Client) Divisions(ctx context.Context, league League, season int) ([]string, error) {
	params, err := leagueSeasonParams(league, season)
	if err != nil {
		return nil, err
	}

	var divisions []string
	if err := c.get(ctx, "/standings/divisions", params, &divisions); err != nil {
		return nil, err
	}
	return divisions, nil
}
