// Package filter evaluates expr-lang expressions against rows fetched from
// the api-sports API, so CLI users can narrow results client-side, e.g.
//
//	Team.City == "Detroit"
//	Game.Scores.Home.Total > 30 and contains(Game.Game.Stage, "regular")
//	Standing.Won >= 12
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/gridironapi/nflapi/nfl"
)

// Filter represents a compiled expr filter
type Filter struct {
	program *vm.Program
	source  string
}

// Compile compiles a filter expression
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, ErrEmptyExpression
	}

	program, err := expr.Compile(expression,
		expr.Env(baseEnv()),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{
		program: program,
		source:  expression,
	}, nil
}

// String returns the source expression
func (f *Filter) String() string {
	return f.source
}

// baseEnv returns the helper functions available inside expressions
func baseEnv() map[string]interface{} {
	return map[string]interface{}{
		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		// Date helpers
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse("2006-01-02", dateStr)
			return t
		},
		"now": time.Now,
	}
}

// run evaluates the program and requires a boolean result
func (f *Filter) run(env map[string]interface{}) (bool, error) {
	for k, v := range baseEnv() {
		env[k] = v
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("%w: expression %q returned %T", ErrNotBoolean, f.source, result)
	}
	return matched, nil
}

// MatchTeam evaluates the filter against a team, bound as Team
func (f *Filter) MatchTeam(team nfl.Team) (bool, error) {
	return f.run(map[string]interface{}{"Team": team})
}

// MatchGame evaluates the filter against a game, bound as Game
func (f *Filter) MatchGame(game nfl.Game) (bool, error) {
	return f.run(map[string]interface{}{"Game": game})
}

// MatchStanding evaluates the filter against a standings row, bound as
// Standing
func (f *Filter) MatchStanding(standing nfl.Standing) (bool, error) {
	return f.run(map[string]interface{}{"Standing": standing})
}

// Teams returns the teams matching the filter
func (f *Filter) Teams(teams []nfl.Team) ([]nfl.Team, error) {
	var out []nfl.Team
	for _, team := range teams {
		matched, err := f.MatchTeam(team)
		if err != nil {
			return nil, err
		}
		if matched {
			out = append(out, team)
		}
	}
	return out, nil
}

// Games returns the games matching the filter
func (f *Filter) Games(games []nfl.Game) ([]nfl.Game, error) {
	var out []nfl.Game
	for _, game := range games {
		matched, err := f.MatchGame(game)
		if err != nil {
			return nil, err
		}
		if matched {
			out = append(out, game)
		}
	}
	return out, nil
}

// Standings returns the standings rows matching the filter
func (f *Filter) Standings(standings []nfl.Standing) ([]nfl.Standing, error) {
	var out []nfl.Standing
	for _, standing := range standings {
		matched, err := f.MatchStanding(standing)
		if err != nil {
			return nil, err
		}
		if matched {
			out = append(out, standing)
		}
	}
	return out, nil
}
