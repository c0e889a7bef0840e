package nfl

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Team represents an NFL or NCAA team
type Team struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	City        string  `json:"city"`
	Coach       string  `json:"coach"`
	Owner       string  `json:"owner"`
	Stadium     string  `json:"stadium"`
	Established int     `json:"established"`
	Logo        string  `json:"logo"`
	Country     Country `json:"country"`
}

// TeamsRequest filters the teams endpoint. At least one field must be set,
// and League and Season must be provided together.
type TeamsRequest struct {
	ID     int
	League League
	Season int
	Name   string
	Code   string
	Search string
}

func (r TeamsRequest) values() (url.Values, error) {
	params := url.Values{}

	if r.ID != 0 {
		params.Set("id", strconv.Itoa(r.ID))
	}
	if r.League != 0 {
		if !r.League.Valid() {
			return nil, fmt.Errorf("league must be a valid league: 1 for NFL, 2 for NCAA, got %d", int(r.League))
		}
		if r.Season == 0 {
			return nil, fmt.Errorf("season must be provided if league is provided")
		}
		params.Set("league", strconv.Itoa(int(r.League)))
	}
	if r.Season != 0 {
		if err := validateSeason(r.Season); err != nil {
			return nil, err
		}
		if r.League == 0 {
			return nil, fmt.Errorf("league must be provided if season is provided")
		}
		params.Set("season", strconv.Itoa(r.Season))
	}
	if r.Name != "" {
		params.Set("name", r.Name)
	}
	if r.Code != "" {
		params.Set("code", r.Code)
	}
	if r.Search != "" {
		if err := validateSearch(r.Search); err != nil {
			return nil, err
		}
		params.Set("search", r.Search)
	}

	if len(params) == 0 {
		return nil, fmt.Errorf("at least one of id, league, season, name, code, search must be provided")
	}

	return params, nil
}

// Teams retrieves teams matching the request filters
func (c *Client) Teams(ctx context.Context, req TeamsRequest) ([]Team, error) {
	params, err := req.values()
	if err != nil {
		return nil, err
	}

	var teams []Team
	if err := c.get(ctx, "/teams", params, &teams); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(teams)).Msg("Retrieved teams")
	return teams, nil
}
