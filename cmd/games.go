package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gridironapi/nflapi/filter"
	"github.com/gridironapi/nflapi/nfl"
)

var (
	gameIDs      []int
	gameDate     string
	gameTeam     int
	gameH2H      string
	gameLive     bool
	gameTimezone string
	showEvents   bool
)

// gamesCmd represents the games command
var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List games for a league, date or team",
	Long: `List games matching the given filters. --id can be repeated; multiple
games are fetched concurrently. Examples:

  nflapi games --league NFL --season 2023 --team 5
  nflapi games --date 2023-09-10
  nflapi games --id 1985 --id 1986 --events
  nflapi games --live`,
	RunE: runGames,
}

func init() {
	gamesCmd.Flags().IntSliceVar(&gameIDs, "id", nil, "game ID (repeatable)")
	gamesCmd.Flags().StringVar(&gameDate, "date", "", "game date (YYYY-MM-DD)")
	gamesCmd.Flags().StringVarP(&leagueFlag, "league", "l", "", "league (NFL or NCAA)")
	gamesCmd.Flags().IntVarP(&seasonFlag, "season", "s", 0, "season year, e.g. 2023")
	gamesCmd.Flags().IntVar(&gameTeam, "team", 0, "team ID")
	gamesCmd.Flags().StringVar(&gameH2H, "h2h", "", "head to head, two team IDs (e.g. 1-2)")
	gamesCmd.Flags().BoolVar(&gameLive, "live", false, "only live games")
	gamesCmd.Flags().StringVar(&gameTimezone, "timezone", "", "timezone for kickoff times")
	gamesCmd.Flags().BoolVar(&showEvents, "events", false, "include the scoring timeline per game")
	gamesCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")

	rootCmd.AddCommand(gamesCmd)
}

func runGames(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	games, err := fetchGames(ctx)
	if err != nil {
		return err
	}

	if filterExpr != "" {
		f, err := filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		games, err = f.Games(games)
		if err != nil {
			return err
		}
	}

	if len(games) == 0 {
		fmt.Println("No games found.")
		return nil
	}

	var events map[int][]nfl.GameEvent
	if showEvents {
		ids := make([]int, len(games))
		for i, game := range games {
			ids[i] = game.Game.ID
		}
		var failed []nfl.FetchError
		events, failed, err = client.EventsByGameIDs(ctx, ids)
		if err != nil {
			return err
		}
		for _, f := range failed {
			logger.Warn().Err(f.Err).Int("game_id", f.GameID).Msg("Skipping events for game")
		}
	}

	fmt.Printf("\nFound %d games:\n", len(games))
	fmt.Println(strings.Repeat("-", 80))
	for _, game := range games {
		printGame(game)
		if showEvents {
			printEvents(events[game.Game.ID])
		}
	}

	return nil
}

func fetchGames(ctx context.Context) ([]nfl.Game, error) {
	// Multiple IDs go through the concurrent batch path.
	if len(gameIDs) > 1 {
		result, err := client.GamesByIDs(ctx, gameIDs)
		if err != nil {
			return nil, err
		}
		for _, f := range result.Failed {
			logger.Warn().Err(f.Err).Int("game_id", f.GameID).Msg("Skipping game")
		}
		return result.Games, nil
	}

	req := nfl.GamesRequest{
		Date:     gameDate,
		Team:     gameTeam,
		H2H:      gameH2H,
		Timezone: gameTimezone,
	}
	if len(gameIDs) == 1 {
		req.ID = gameIDs[0]
	}
	if gameLive {
		req.Live = &gameLive
	}

	// League and season only make sense for list-style queries.
	if req.ID == 0 && req.Date == "" && req.H2H == "" && !gameLive {
		league, err := resolveLeague()
		if err != nil {
			return nil, err
		}
		season, err := resolveSeason()
		if err != nil {
			return nil, err
		}
		req.League = league
		req.Season = season
	} else if req.Team != 0 {
		season, err := resolveSeason()
		if err != nil {
			return nil, err
		}
		req.Season = season
	}

	return client.Games(ctx, req)
}

func printGame(game nfl.Game) {
	fmt.Printf("• [%d] %s vs %s", game.Game.ID, game.Teams.Home.Name, game.Teams.Away.Name)
	if game.Scores.Home.Total != nil && game.Scores.Away.Total != nil {
		fmt.Printf("  %d-%d", *game.Scores.Home.Total, *game.Scores.Away.Total)
	}
	fmt.Println()

	fmt.Printf("  %s", game.Game.Status.Long)
	if game.Game.Stage != "" {
		fmt.Printf(" | %s", game.Game.Stage)
	}
	if game.Game.Week != "" {
		fmt.Printf(" %s", game.Game.Week)
	}
	fmt.Println()

	if game.Game.Date.Date != "" {
		fmt.Printf("  Kickoff: %s %s (%s)\n",
			game.Game.Date.Date, game.Game.Date.Time, game.Game.Date.Timezone)
	}
	if game.Game.Venue.Name != "" {
		fmt.Printf("  Venue: %s, %s\n", game.Game.Venue.Name, game.Game.Venue.City)
	}
}

func printEvents(events []nfl.GameEvent) {
	if len(events) == 0 {
		fmt.Println("  (no events)")
		return
	}
	for _, ev := range events {
		fmt.Printf("  %s %s  %s", ev.Quarter, ev.Minute, ev.Type)
		if ev.Player.Name != "" {
			fmt.Printf(" by %s", ev.Player.Name)
		}
		fmt.Printf(" (%d-%d)\n", ev.Score.Home, ev.Score.Away)
	}
}
