package nfl

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// LeagueInfo describes a competition and the seasons the API covers for it
type LeagueInfo struct {
	League  LeagueDetails `json:"league"`
	Country Country       `json:"country"`
	Seasons []SeasonInfo  `json:"seasons"`
}

// LeagueDetails holds the league identity fields
type LeagueDetails struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// SeasonInfo describes a single season's coverage window
type SeasonInfo struct {
	Year     int            `json:"year"`
	Start    string         `json:"start"`
	End      string         `json:"end"`
	Current  bool           `json:"current"`
	Coverage SeasonCoverage `json:"coverage"`
}

// SeasonCoverage flags which endpoints have data for a season
type SeasonCoverage struct {
	Games      GameCoverage `json:"games"`
	Standings  bool         `json:"standings"`
	Players    bool         `json:"players"`
	Injuries   bool         `json:"injuries"`
	Odds       bool         `json:"odds"`
	Statistics bool         `json:"statistics"`
}

// GameCoverage flags game sub-resources covered for a season
type GameCoverage struct {
	Events           bool `json:"events"`
	StatisticsTeams  bool `json:"statistics_teams"`
	StatisticsPlayer bool `json:"statistics_players"`
}

// LeaguesRequest filters the leagues endpoint. All fields are optional.
type LeaguesRequest struct {
	ID      League
	Season  int
	Current *bool
}

func (r LeaguesRequest) values() (url.Values, error) {
	params := url.Values{}

	if r.ID != 0 {
		if !r.ID.Valid() {
			return nil, fmt.Errorf("id must be a valid league: 1 for NFL, 2 for NCAA, got %d", int(r.ID))
		}
		params.Set("id", strconv.Itoa(int(r.ID)))
	}
	if r.Season != 0 {
		if err := validateSeason(r.Season); err != nil {
			return nil, err
		}
		params.Set("season", strconv.Itoa(r.Season))
	}
	if r.Current != nil {
		params.Set("current", strconv.FormatBool(*r.Current))
	}

	return params, nil
}

// Leagues retrieves the leagues the API supports, optionally filtered
func (c *Client) Leagues(ctx context.Context, req LeaguesRequest) ([]LeagueInfo, error) {
	params, err := req.values()
	if err != nil {
		return nil, err
	}

	var leagues []LeagueInfo
	if err := c.get(ctx, "/leagues", params, &leagues); err != nil {
		return nil, err
	}
	return leagues, nil
}

// Seasons retrieves the list of seasons the API has data for
func (c *Client) Seasons(ctx context.Context) ([]int, error) {
	var seasons []int
	if err := c.get(ctx, "/seasons", nil, &seasons); err != nil {
		return nil, err
	}
	return seasons, nil
}

// Timezones retrieves the timezone identifiers the games endpoint accepts
func (c *Client) Timezones(ctx context.Context) ([]string, error) {
	var timezones []string
	if err := c.get(ctx, "/timezone", nil, &timezones); err != nil {
		return nil, err
	}
	return timezones, nil
}
