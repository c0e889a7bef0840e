package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gridironapi/nflapi/nfl"
)

var (
	playerID     int
	playerName   string
	playerTeam   int
	playerSearch string
	showInjuries bool
)

// playersCmd represents the players command
var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Look up player profiles",
	Long: `Look up player profiles by ID, name, search term, or team roster.
Examples:

  nflapi players --search mahomes
  nflapi players --team 5 --season 2023
  nflapi players --id 126 --injuries`,
	RunE: runPlayers,
}

func init() {
	playersCmd.Flags().IntVar(&playerID, "id", 0, "player ID")
	playersCmd.Flags().StringVar(&playerName, "name", "", "exact player name")
	playersCmd.Flags().IntVar(&playerTeam, "team", 0, "team ID (requires --season)")
	playersCmd.Flags().IntVarP(&seasonFlag, "season", "s", 0, "season year, e.g. 2023")
	playersCmd.Flags().StringVar(&playerSearch, "search", "", "search term (min 3 characters)")
	playersCmd.Flags().BoolVar(&showInjuries, "injuries", false, "include current injury reports")

	rootCmd.AddCommand(playersCmd)
}

func runPlayers(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	req := nfl.PlayersRequest{
		ID:     playerID,
		Name:   playerName,
		Team:   playerTeam,
		Search: playerSearch,
	}
	if req.Team != 0 {
		season, err := resolveSeason()
		if err != nil {
			return err
		}
		req.Season = season
	}

	players, err := client.Players(ctx, req)
	if err != nil {
		return err
	}

	if len(players) == 0 {
		fmt.Println("No players found.")
		return nil
	}

	fmt.Printf("\nFound %d players:\n", len(players))
	fmt.Println(strings.Repeat("-", 80))
	for _, player := range players {
		fmt.Printf("• %s", player.Name)
		if player.Position != "" {
			fmt.Printf(" (%s)", player.Position)
		}
		if player.Number != 0 {
			fmt.Printf(" #%d", player.Number)
		}
		fmt.Println()
		if player.College != "" {
			fmt.Printf("  College: %s\n", player.College)
		}
		if player.Height != "" || player.Weight != "" {
			fmt.Printf("  Size: %s, %s\n", player.Height, player.Weight)
		}
		if player.Experience != 0 {
			fmt.Printf("  Experience: %d years\n", player.Experience)
		}

		if showInjuries {
			injuries, err := client.Injuries(ctx, nfl.InjuriesRequest{Player: player.ID})
			if err != nil {
				logger.Warn().Err(err).Str("player", player.Name).Msg("Failed to fetch injuries")
				continue
			}
			for _, injury := range injuries {
				fmt.Printf("  Injury: %s - %s\n", injury.Status, injury.Description)
			}
		}
	}

	return nil
}
