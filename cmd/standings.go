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
	standingsTeam       int
	standingsConference string
	standingsDivision   string
)

// standingsCmd represents the standings command
var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the league table for a season",
	Long: `Show standings for a league season, optionally narrowed to a team,
conference (AFC/NFC) or division (North/South/East/West). Examples:

  nflapi standings --season 2023
  nflapi standings --season 2023 --conference AFC --division West
  nflapi standings --season 2023 --filter 'Standing.Won >= 12'`,
	RunE: runStandings,
}

func init() {
	standingsCmd.Flags().StringVarP(&leagueFlag, "league", "l", "", "league (NFL or NCAA)")
	standingsCmd.Flags().IntVarP(&seasonFlag, "season", "s", 0, "season year, e.g. 2023")
	standingsCmd.Flags().IntVar(&standingsTeam, "team", 0, "team ID")
	standingsCmd.Flags().StringVar(&standingsConference, "conference", "", "conference (AFC or NFC)")
	standingsCmd.Flags().StringVar(&standingsDivision, "division", "", "division (North, South, East, West)")
	standingsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")

	rootCmd.AddCommand(standingsCmd)
}

// parseConference maps the CLI-friendly abbreviations onto the full names
// the upstream expects.
func parseConference(s string) (nfl.Conference, error) {
	switch strings.ToUpper(s) {
	case "":
		return "", nil
	case "AFC":
		return nfl.ConferenceAFC, nil
	case "NFC":
		return nfl.ConferenceNFC, nil
	default:
		return "", fmt.Errorf("unknown conference %q (valid: AFC, NFC)", s)
	}
}

func runStandings(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	league, err := resolveLeague()
	if err != nil {
		return err
	}
	season, err := resolveSeason()
	if err != nil {
		return err
	}
	conference, err := parseConference(standingsConference)
	if err != nil {
		return err
	}

	req := nfl.StandingsRequest{
		League:     league,
		Season:     season,
		Team:       standingsTeam,
		Conference: conference,
	}
	if standingsDivision != "" {
		d := strings.ToLower(standingsDivision)
		req.Division = nfl.Division(strings.ToUpper(d[:1]) + d[1:])
	}

	standings, err := client.Standings(ctx, req)
	if err != nil {
		return err
	}

	if filterExpr != "" {
		f, err := filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		standings, err = f.Standings(standings)
		if err != nil {
			return err
		}
	}

	if len(standings) == 0 {
		fmt.Println("No standings found.")
		return nil
	}

	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("%-4s %-28s %-22s %3s %3s %3s %7s\n", "#", "TEAM", "DIVISION", "W", "L", "T", "PCT")
	fmt.Println(strings.Repeat("-", 80))
	for _, s := range standings {
		fmt.Printf("%-4d %-28s %-22s %3d %3d %3d   %.3f\n",
			s.Position, s.Team.Name, s.Division, s.Won, s.Lost, s.Ties, s.WinPct())
	}

	return nil
}
