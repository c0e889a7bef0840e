package nfl

import (
	"context"
)

// API defines the fetch surface of the client, for consumers that want to
// mock it.
type API interface {
	// TestConnection verifies the client can reach the upstream API
	TestConnection(ctx context.Context) error

	// Status retrieves the account status for the configured API key
	Status(ctx context.Context) (*AccountStatus, error)

	// Timezones retrieves the timezone identifiers the games endpoint accepts
	Timezones(ctx context.Context) ([]string, error)

	// Seasons retrieves the list of seasons the API has data for
	Seasons(ctx context.Context) ([]int, error)

	// Leagues retrieves the leagues the API supports
	Leagues(ctx context.Context, req LeaguesRequest) ([]LeagueInfo, error)

	// Teams retrieves teams matching the request filters
	Teams(ctx context.Context, req TeamsRequest) ([]Team, error)

	// Players retrieves player profiles matching the request filters
	Players(ctx context.Context, req PlayersRequest) ([]Player, error)

	// PlayerStatistics retrieves season statistics for players
	PlayerStatistics(ctx context.Context, req PlayerStatisticsRequest) ([]PlayerSeasonStatistics, error)

	// Injuries retrieves current injury reports
	Injuries(ctx context.Context, req InjuriesRequest) ([]Injury, error)

	// Games retrieves fixtures matching the request filters
	Games(ctx context.Context, req GamesRequest) ([]Game, error)

	// GameEvents retrieves the event timeline for a game
	GameEvents(ctx context.Context, gameID int) ([]GameEvent, error)

	// GameTeamStatistics retrieves per-team statistics for a game
	GameTeamStatistics(ctx context.Context, req GameTeamStatisticsRequest) ([]GameTeamStatistics, error)

	// GamePlayerStatistics retrieves per-player statistics for a game
	GamePlayerStatistics(ctx context.Context, req GamePlayerStatisticsRequest) ([]GamePlayerStatistics, error)

	// Standings retrieves the league table for a season
	Standings(ctx context.Context, req StandingsRequest) ([]Standing, error)

	// Conferences retrieves the conference names for a league season
	Conferences(ctx context.Context, league League, season int) ([]string, error)

	// Divisions retrieves the division names for a league season
	Divisions(ctx context.Context, league League, season int) ([]string, error)

	// Odds retrieves bookmaker odds for a game
	Odds(ctx context.Context, req OddsRequest) ([]GameOdds, error)

	// Bets retrieves the bet markets the odds endpoint can quote
	Bets(ctx context.Context, req SearchRequest) ([]Label, error)

	// Bookmakers retrieves the bookmakers the odds endpoint quotes
	Bookmakers(ctx context.Context, req SearchRequest) ([]Label, error)
}

var _ API = (*Client)(nil)
