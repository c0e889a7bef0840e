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
	teamID     int
	teamName   string
	teamCode   string
	teamSearch string
	teamFuzzy  string
)

// teamsCmd represents the teams command
var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List teams for a league and season",
	Long: `List teams matching the given filters. Without --id, --name, --code or
--search, all teams for the league and season are listed.

Use --fuzzy to find a team by approximate name ("raders", "la vegas"), and
--filter to narrow results with an expression, e.g.

  nflapi teams --season 2023 --filter 'Team.Established < 1930'`,
	RunE: runTeams,
}

func init() {
	teamsCmd.Flags().StringVarP(&leagueFlag, "league", "l", "", "league (NFL or NCAA)")
	teamsCmd.Flags().IntVarP(&seasonFlag, "season", "s", 0, "season year, e.g. 2023")
	teamsCmd.Flags().IntVar(&teamID, "id", 0, "team ID")
	teamsCmd.Flags().StringVar(&teamName, "name", "", "exact team name")
	teamsCmd.Flags().StringVar(&teamCode, "code", "", "team code, e.g. LV")
	teamsCmd.Flags().StringVar(&teamSearch, "search", "", "search term (min 3 characters)")
	teamsCmd.Flags().StringVar(&teamFuzzy, "fuzzy", "", "fuzzy-match a single team by name")
	teamsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")

	rootCmd.AddCommand(teamsCmd)
}

func runTeams(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	req := nfl.TeamsRequest{
		ID:     teamID,
		Name:   teamName,
		Code:   teamCode,
		Search: teamSearch,
	}

	// Fall back to league+season when no direct selector is given. Fuzzy
	// matching always needs the full list.
	if req.ID == 0 && req.Name == "" && req.Code == "" && req.Search == "" || teamFuzzy != "" {
		league, err := resolveLeague()
		if err != nil {
			return err
		}
		season, err := resolveSeason()
		if err != nil {
			return err
		}
		req = nfl.TeamsRequest{League: league, Season: season}
	}

	teams, err := client.Teams(ctx, req)
	if err != nil {
		return err
	}

	if teamFuzzy != "" {
		match, ok := nfl.BestTeamMatch(teams, teamFuzzy)
		if !ok {
			return fmt.Errorf("no team resembling %q found", teamFuzzy)
		}
		teams = []nfl.Team{match}
	}

	if filterExpr != "" {
		f, err := filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		teams, err = f.Teams(teams)
		if err != nil {
			return err
		}
	}

	if len(teams) == 0 {
		fmt.Println("No teams found.")
		return nil
	}

	fmt.Printf("\nFound %d teams:\n", len(teams))
	fmt.Println(strings.Repeat("-", 80))
	for _, team := range teams {
		fmt.Printf("• %s", team.Name)
		if team.Code != "" {
			fmt.Printf(" [%s]", team.Code)
		}
		fmt.Println()
		if team.City != "" {
			fmt.Printf("  City: %s\n", team.City)
		}
		if team.Stadium != "" {
			fmt.Printf("  Stadium: %s\n", team.Stadium)
		}
		if team.Coach != "" {
			fmt.Printf("  Coach: %s\n", team.Coach)
		}
		if team.Established != 0 {
			fmt.Printf("  Established: %d\n", team.Established)
		}
	}

	return nil
}
