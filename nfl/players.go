package nfl

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Player represents a player profile
type Player struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Height     string `json:"height"`
	Weight     string `json:"weight"`
	College    string `json:"college"`
	Group      string `json:"group"`
	Position   string `json:"position"`
	Number     int    `json:"number"`
	Salary     string `json:"salary"`
	Experience int    `json:"experience"`
	Image      string `json:"image"`
}

// PlayersRequest filters the players endpoint. At least one field must be
// set, and Team and Season must be provided together.
type PlayersRequest struct {
	ID     int
	Name   string
	Team   int
	Season int
	Search string
}

func (r PlayersRequest) values() (url.Values, error) {
	params := url.Values{}

	if r.ID != 0 {
		params.Set("id", strconv.Itoa(r.ID))
	}
	if r.Name != "" {
		params.Set("name", r.Name)
	}
	if r.Team != 0 {
		if r.Season == 0 {
			return nil, fmt.Errorf("season must be provided if team is provided")
		}
		params.Set("team", strconv.Itoa(r.Team))
	}
	if r.Season != 0 {
		if err := validateSeason(r.Season); err != nil {
			return nil, err
		}
		if r.Team == 0 {
			return nil, fmt.Errorf("team must be provided if season is provided")
		}
		params.Set("season", strconv.Itoa(r.Season))
	}
	if r.Search != "" {
		if err := validateSearch(r.Search); err != nil {
			return nil, err
		}
		params.Set("search", r.Search)
	}

	if len(params) == 0 {
		return nil, fmt.Errorf("at least one of id, name, team, season, search must be provided")
	}

	return params, nil
}

// Players retrieves player profiles matching the request filters
func (c *Client) Players(ctx context.Context, req PlayersRequest) ([]Player, error) {
	params, err := req.values()
	if err != nil {
		return nil, err
	}

	var players []Player
	if err := c.get(ctx, "/players", params, &players); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(players)).Msg("Retrieved players")
	return players, nil
}

// PlayerSeasonStatistics holds a player's statistics for a season, grouped
// by category. Statistic names vary per group, so values stay as name/value
// pairs.
type PlayerSeasonStatistics struct {
	Player Player                `json:"player"`
	Teams  []PlayerTeamStatGroup `json:"teams"`
}

// PlayerTeamStatGroup holds the statistic groups a player accumulated for
// one team.
type PlayerTeamStatGroup struct {
	Team   TeamRef     `json:"team"`
	Groups []StatGroup `json:"groups"`
}

// StatGroup is one category of statistics (passing, rushing, ...)
type StatGroup struct {
	Name       string      `json:"name"`
	Statistics []Statistic `json:"statistics"`
}

// Statistic is a single named value. The upstream mixes numbers, strings
// and nulls, so Value stays loosely typed.
type Statistic struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// TeamRef is the lightweight team reference embedded in other payloads
type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// PlayerStatisticsRequest filters the players/statistics endpoint.
// Statistics are not available for every season; coverage is reported by the
// leagues endpoint.
type PlayerStatisticsRequest struct {
	ID     int
	Team   int
	Season int
}

func (r PlayerStatisticsRequest) values() (url.Values, error) {
	params := url.Values{}

	if r.ID != 0 {
		if r.Team == 0 && r.Season == 0 {
			return nil, fmt.Errorf("team or season must be provided if id is provided")
		}
		params.Set("id", strconv.Itoa(r.ID))
	}
	if r.Team != 0 {
		if r.Season == 0 {
			return nil, fmt.Errorf("season must be provided if team is provided")
		}
		params.Set("team", strconv.Itoa(r.Team))
	}
	if r.Season != 0 {
		if err := validateSeason(r.Season); err != nil {
			return nil, err
		}
		if r.ID == 0 && r.Team == 0 {
			return nil, fmt.Errorf("id or team must be provided if season is provided")
		}
		params.Set("season", strconv.Itoa(r.Season))
	}

	if len(params) == 0 {
		return nil, fmt.Errorf("at least one of id, team, season must be provided")
	}

	return params, nil
}

// PlayerStatistics retrieves season statistics for players
func (c *Client) PlayerStatistics(ctx context.Context, req PlayerStatisticsRequest) ([]PlayerSeasonStatistics, error) {
	params, err := req.values()
	if err != nil {
		return nil, err
	}

	var stats []PlayerSeasonStatistics
	if err := c.get(ctx, "/players/statistics", params, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// Injury describes a current injury report entry. The upstream only exposes
// current injuries, never history.
type Injury struct {
	Player      PlayerRef `json:"player"`
	Team        TeamRef   `json:"team"`
	Date        string    `json:"date"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
}

// PlayerRef is the lightweight player reference embedded in other payloads
type PlayerRef struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// InjuriesRequest filters the injuries endpoint. At least one field must be
// set.
type InjuriesRequest struct {
	Player int
	Team   int
}

func (r InjuriesRequest) values() (url.Values, error) {
	params := url.Values{}

	if r.Player != 0 {
		params.Set("player", strconv.Itoa(r.Player))
	}
	if r.Team != 0 {
		params.Set("team", strconv.Itoa(r.Team))
	}

	if len(params) == 0 {
		return nil, fmt.Errorf("at least one of player, team must be provided")
	}

	return params, nil
}

// Injuries retrieves current injury reports for a player or team
func (c *Client) Injuries(ctx context.Context, req InjuriesRequest) ([]Injury, error) {
	params, err := req.values()
	if err != nil {
		return nil, err
	}

	var injuries []Injury
	if err := c.get(ctx, "/injuries", params, &injuries); err != nil {
		return nil, err
	}
	return injuries, nil
}
