package nfl

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// matchThreshold is the minimum normalized similarity for a fuzzy match
const matchThreshold = 0.6

// TeamMatch pairs a team with its similarity score for a query
type TeamMatch struct {
	Team  Team
	Score float64
}

// similarity normalizes Levenshtein distance into [0, 1]
func similarity(query, candidate string) float64 {
	query = strings.ToLower(query)
	candidate = strings.ToLower(candidate)
	if query == "" || candidate == "" {
		return 0
	}

	distance := fuzzy.LevenshteinDistance(query, candidate)
	maxLen := len(query)
	if len(candidate) > maxLen {
		maxLen = len(candidate)
	}
	return 1 - float64(distance)/float64(maxLen)
}

// teamScore returns the best similarity across a team's name, city and
// city-qualified name. Exact code matches ("LV", "DET") short-circuit.
func teamScore(team Team, query string) float64 {
	if team.Code != "" && strings.EqualFold(team.Code, query) {
		return 1
	}

	score := similarity(query, team.Name)
	if s := similarity(query, team.City); s > score {
		score = s
	}
	if team.City != "" {
		if s := similarity(query, team.City+" "+team.Name); s > score {
			score = s
		}
	}
	return score
}

// RankTeams orders teams by similarity to the query, best first, dropping
// anything below the match threshold.
func RankTeams(teams []Team, query string) []TeamMatch {
	var matches []TeamMatch
	for _, team := range teams {
		if score := teamScore(team, query); score > matchThreshold {
			matches = append(matches, TeamMatch{Team: team, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// BestTeamMatch returns the team closest to the query, or false when no
// team clears the match threshold.
func BestTeamMatch(teams []Team, query string) (Team, bool) {
	matches := RankTeams(teams, query)
	if len(matches) == 0 {
		return Team{}, false
	}
	return matches[0].Team, true
}
