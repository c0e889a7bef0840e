package nfl

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Game represents a single fixture with its teams and scores
type Game struct {
	Game   GameDetails     `json:"game"`
	League LeagueSeasonRef `json:"league"`
	Teams  GameTeams       `json:"teams"`
	Scores GameScores      `json:"scores"`
}

// GameDetails holds the fixture metadata
type GameDetails struct {
	ID     int        `json:"id"`
	Stage  string     `json:"stage"`
	Week   string     `json:"week"`
	Date   GameDate   `json:"date"`
	Venue  Venue      `json:"venue"`
	Status GameStatus `json:"status"`
}

// GameDate holds the kickoff date in the requested timezone
type GameDate struct {
	Timezone  string `json:"timezone"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Timestamp int64  `json:"timestamp"`
}

// Kickoff returns the kickoff time as a time.Time
func (d GameDate) Kickoff() time.Time {
	return time.Unix(d.Timestamp, 0)
}

// Venue holds the stadium and city of a fixture
type Venue struct {
	Name string `json:"name"`
	City string `json:"city"`
}

// GameStatus holds the fixture state
type GameStatus struct {
	Short string `json:"short"`
	Long  string `json:"long"`
	Timer string `json:"timer"`
}

// Finished reports whether the fixture has ended
func (s GameStatus) Finished() bool {
	return s.Short == "FT" || s.Short == "AOT"
}

// LeagueSeasonRef is the league reference embedded in game payloads. The
// upstream sends the season as a string here.
type LeagueSeasonRef struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Season  string  `json:"season"`
	Logo    string  `json:"logo"`
	Country Country `json:"country"`
}

// GameTeams holds the two sides of a fixture
type GameTeams struct {
	Home TeamRef `json:"home"`
	Away TeamRef `json:"away"`
}

// GameScores holds both teams' scoring lines
type GameScores struct {
	Home ScoreLine `json:"home"`
	Away ScoreLine `json:"away"`
}

// ScoreLine holds per-quarter and total points. Quarters are pointers since
// the upstream sends null for quarters not yet played.
type ScoreLine struct {
	Quarter1 *int `json:"quarter_1"`
	Quarter2 *int `json:"quarter_2"`
	Quarter3 *int `json:"quarter_3"`
	Quarter4 *int `json:"quarter_4"`
	Overtime *int `json:"overtime"`
	Total    *int `json:"total"`
}

// Points returns the total, treating null as zero
func (s ScoreLine) Points() int {
	if s.Total == nil {
		return 0
	}
	return *s.Total
}

// GamesRequest filters the games endpoint. At least one of ID, Date, League,
// Season, Team, H2H or Live must be set.
type GamesRequest struct {
	ID     int
	Date   string // YYYY-MM-DD
	League League
	Season int
	Team   int
	H2H    string // two team IDs separated by a dash, e.g. "1-2"
	Live   *bool
	// Timezone overrides the client default for this request.
	Timezone string
}

func (r GamesRequest) values(defaultTimezone string) (url.Values, error) {
	params := url.Values{}

	if r.ID != 0 {
		params.Set("id", strconv.Itoa(r.ID))
	}
	if r.Date != "" {
		if _, err := time.Parse("2006-01-02", r.Date); err != nil {
			return nil, fmt.Errorf("date must be a valid date in YYYY-MM-DD format, got %q", r.Date)
		}
		params.Set("date", r.Date)
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
		if r.ID == 0 && r.League == 0 && r.Team == 0 && r.Date == "" && r.H2H == "" && r.Live == nil {
			return nil, fmt.Errorf("one of id, league, team, date, h2h, live must be provided if season is provided")
		}
		params.Set("season", strconv.Itoa(r.Season))
	}
	if r.Team != 0 {
		if r.Season == 0 {
			return nil, fmt.Errorf("season must be provided if team is provided")
		}
		params.Set("team", strconv.Itoa(r.Team))
	}
	if r.H2H != "" {
		parts := strings.Split(r.H2H, "-")
		if len(parts) != 2 {
			return nil, fmt.Errorf("h2h must be two team IDs separated by a dash (e.g. 1-2), got %q", r.H2H)
		}
		for _, part := range parts {
			if _, err := strconv.Atoi(part); err != nil {
				return nil, fmt.Errorf("h2h must be two team IDs separated by a dash (e.g. 1-2), got %q", r.H2H)
			}
		}
		params.Set("h2h", r.H2H)
	}
	// live=false means "not filtering on live", so it is simply omitted.
	if r.Live != nil && *r.Live {
		params.Set("live", "all")
	}

	if len(params) == 0 {
		return nil, fmt.Errorf("at least one of id, date, league, season, team, h2h, live must be provided")
	}

	if r.Timezone != "" {
		params.Set("timezone", r.Timezone)
	} else if defaultTimezone != "" {
		params.Set("timezone", defaultTimezone)
	}

	return params, nil
}

// Games retrieves fixtures matching the request filters
func (c *Client) Games(ctx context.Context, req GamesRequest) ([]Game, error) {
	params, err := req.values(c.timezone)
	if err != nil {
		return nil, err
	}

	var games []Game
	if err := c.get(ctx, "/games", params, &games); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(games)).Msg("Retrieved games")
	return games, nil
}

// GameEvent is a single scoring or notable play within a game
type GameEvent struct {
	Quarter string     `json:"quarter"`
	Minute  string     `json:"minute"`
	Team    TeamRef    `json:"team"`
	Player  PlayerRef  `json:"player"`
	Type    string     `json:"type"`
	Comment string     `json:"comment"`
	Score   EventScore `json:"score"`
}

// EventScore is the running score after an event
type EventScore struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// GameEvents retrieves the event timeline for a game
func (c *Client) GameEvents(ctx context.Context, gameID int) ([]GameEvent, error) {
	if gameID == 0 {
		return nil, fmt.Errorf("game id must be provided")
	}

	params := url.Values{}
	params.Set("id", strconv.Itoa(gameID))

	var events []GameEvent
	if err := c.get(ctx, "/games/events", params, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GameTeamStatistics holds one team's aggregate statistics for a game
type GameTeamStatistics struct {
	Team       TeamRef        `json:"team"`
	Statistics TeamStatistics `json:"statistics"`
}

// TeamStatistics mirrors the upstream team statistics block. Ratio-style
// values (third down efficiency, possession) arrive as strings.
type TeamStatistics struct {
	FirstDowns struct {
		Total                int    `json:"total"`
		Passing              int    `json:"passing"`
		Rushing              int    `json:"rushing"`
		FromPenalties        int    `json:"from_penalties"`
		ThirdDownEfficiency  string `json:"third_down_efficiency"`
		FourthDownEfficiency string `json:"fourth_down_efficiency"`
	} `json:"first_downs"`
	Plays struct {
		Total int `json:"total"`
	} `json:"plays"`
	Yards struct {
		Total        int    `json:"total"`
		YardsPerPlay string `json:"yards_per_play"`
		TotalDrives  string `json:"total_drives"`
	} `json:"yards"`
	Passing struct {
		Total               int    `json:"total"`
		CompAtt             string `json:"comp_att"`
		YardsPerPass        string `json:"yards_per_pass"`
		InterceptionsThrown int    `json:"interceptions_thrown"`
		SacksYardsLost      string `json:"sacks_yards_lost"`
	} `json:"passing"`
	Rushings struct {
		Total        int    `json:"total"`
		Attempts     int    `json:"attempts"`
		YardsPerRush string `json:"yards_per_rush"`
	} `json:"rushings"`
	RedZone struct {
		MadeAtt string `json:"made_att"`
	} `json:"red_zone"`
	Penalties struct {
		Total string `json:"total"`
	} `json:"penalties"`
	Turnovers struct {
		Total         int `json:"total"`
		LostFumbles   int `json:"lost_fumbles"`
		Interceptions int `json:"interceptions"`
	} `json:"turnovers"`
	Possession struct {
		Total string `json:"total"`
	} `json:"posession"` // upstream misspells the key
	Interceptions struct {
		Total int `json:"total"`
	} `json:"interceptions"`
	FumblesRecovered struct {
		Total int `json:"total"`
	} `json:"fumbles_recovered"`
	Sacks struct {
		Total int `json:"total"`
	} `json:"sacks"`
	Safeties struct {
		Total int `json:"total"`
	} `json:"safeties"`
	IntTouchdowns struct {
		Total int `json:"int_touchdowns"`
	} `json:"int_touchdowns"`
	PointsAgainst struct {
		Total int `json:"total"`
	} `json:"points_against"`
}

// GameTeamStatisticsRequest identifies the game (required) and optionally
// narrows to one team.
type GameTeamStatisticsRequest struct {
	ID   int
	Team int
}

func (r GameTeamStatisticsRequest) values() (url.Values, error) {
	if r.ID == 0 {
		return nil, fmt.Errorf("game id must be provided")
	}

	params := url.Values{}
	params.Set("id", strconv.Itoa(r.ID))
	if r.Team != 0 {
		params.Set("team", strconv.Itoa(r.Team))
	}
	return params, nil
}

// GameTeamStatistics retrieves per-team statistics for a game
func (c *Client) GameTeamStatistics(ctx context.Context, req GameTeamStatisticsRequest) ([]GameTeamStatistics, error) {
	params, err := req.values()
	if err != nil {
		return nil, err
	}

	var stats []GameTeamStatistics
	if err := c.get(ctx, "/games/statistics/teams", params, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// GamePlayerStatistics holds per-player statistics for one game
type GamePlayerStatistics struct {
	Game  GameRef               `json:"game"`
	Teams []GameTeamPlayerStats `json:"teams"`
}

// GameRef is the lightweight game reference embedded in other payloads
type GameRef struct {
	ID int `json:"id"`
}

// GameTeamPlayerStats groups one team's player statistics by category
type GameTeamPlayerStats struct {
	Team   TeamRef           `json:"team"`
	Groups []PlayerStatGroup `json:"groups"`
}

// PlayerStatGroup is one statistics category with its player rows
type PlayerStatGroup struct {
	Name    string             `json:"name"`
	Players []PlayerGroupStats `json:"players"`
}

// PlayerGroupStats is one player's values within a group
type PlayerGroupStats struct {
	Player     PlayerRef   `json:"player"`
	Statistics []Statistic `json:"statistics"`
}

// GamePlayerStatisticsRequest identifies the game (required) and optionally
// narrows by group, team or player.
type GamePlayerStatisticsRequest struct {
	ID     int
	Group  StatisticsGroup
	Team   int
	Player int
}

func (r GamePlayerStatisticsRequest) values() (url.Values, error) {
	if r.ID == 0 {
		return nil, fmt.Errorf("game id must be provided")
	}

	params := url.Values{}
	params.Set("id", strconv.Itoa(r.ID))

	if r.Group != "" {
		if !r.Group.Valid() {
			return nil, fmt.Errorf("group must be one of: %s", joinGroups())
		}
		params.Set("group", string(r.Group))
	}
	if r.Team != 0 {
		params.Set("team", strconv.Itoa(r.Team))
	}
	if r.Player != 0 {
		params.Set("player", strconv.Itoa(r.Player))
	}

	return params, nil
}

func joinGroups() string {
	names := make([]string, len(StatisticsGroups))
	for i, g := range StatisticsGroups {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}

// GamePlayerStatistics retrieves per-player statistics for a game
func (c *Client) GamePlayerStatistics(ctx context.Context, req GamePlayerStatisticsRequest) ([]GamePlayerStatistics, error) {
	params, err := req.values()
	if err != nil {
		return nil, err
	}

	var stats []GamePlayerStatistics
	if err := c.get(ctx, "/games/statistics/players", params, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
