package nfl

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency limits how many requests a batch fetch has in flight
const DefaultConcurrency = 5

// FetchError records a single failed fetch within a batch
type FetchError struct {
	GameID int
	Err    error
}

// Error implements the error interface
func (e FetchError) Error() string {
	return fmt.Sprintf("failed to fetch game %d: %v", e.GameID, e.Err)
}

// BatchResult aggregates the outcome of a batch fetch. Individual failures
// do not abort the batch.
type BatchResult struct {
	Games  []Game
	Failed []FetchError
}

// GamesByIDs fetches several games concurrently. Games come back sorted by
// ID; per-game failures are collected in the result rather than aborting the
// whole batch.
func (c *Client) GamesByIDs(ctx context.Context, ids []int) (*BatchResult, error) {
	result := &BatchResult{}
	if len(ids) == 0 {
		return result, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultConcurrency)

	var mu sync.Mutex

	for _, id := range ids {
		g.Go(func() error {
			games, err := c.Games(ctx, GamesRequest{ID: id})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				c.logger.Warn().Err(err).Int("game_id", id).Msg("Failed to fetch game")
				result.Failed = append(result.Failed, FetchError{GameID: id, Err: err})
				return nil
			}
			result.Games = append(result.Games, games...)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(result.Games, func(i, j int) bool {
		return result.Games[i].Game.ID < result.Games[j].Game.ID
	})
	sort.Slice(result.Failed, func(i, j int) bool {
		return result.Failed[i].GameID < result.Failed[j].GameID
	})

	return result, nil
}

// EventsByGameIDs fetches event timelines for several games concurrently,
// keyed by game ID. Per-game failures are returned alongside the successes.
func (c *Client) EventsByGameIDs(ctx context.Context, ids []int) (map[int][]GameEvent, []FetchError, error) {
	events := make(map[int][]GameEvent, len(ids))
	var failed []FetchError

	if len(ids) == 0 {
		return events, nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultConcurrency)

	var mu sync.Mutex

	for _, id := range ids {
		g.Go(func() error {
			timeline, err := c.GameEvents(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				c.logger.Warn().Err(err).Int("game_id", id).Msg("Failed to fetch game events")
				failed = append(failed, FetchError{GameID: id, Err: err})
				return nil
			}
			events[id] = timeline
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	sort.Slice(failed, func(i, j int) bool { return failed[i].GameID < failed[j].GameID })

	return events, failed, nil
}
