package nfl

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOdds(t *testing.T) {
	t.Run("requires a game", func(t *testing.T) {
		_, err := OddsRequest{Bookmaker: 4}.values()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "game must be provided")
	})

	t.Run("decodes bookmaker odds", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/odds", r.URL.Path)
			assert.Equal(t, "7944", r.URL.Query().Get("game"))
			fmt.Fprint(w, envelopeBody("odds", 1, `[{
				"league": {"id": 1, "name": "NFL", "season": "2023"},
				"game": {"id": 7944},
				"update": "2023-11-20T14:00:00+00:00",
				"bookmakers": [{
					"id": 4, "name": "Bet365",
					"bets": [{
						"id": 1, "name": "Match Winner",
						"values": [
							{"value": "Home", "odd": "1.57"},
							{"value": "Away", "odd": "2.45"}
						]
					}]
				}]
			}]`))
		})

		odds, err := client.Odds(context.Background(), OddsRequest{Game: 7944})
		require.NoError(t, err)

		require.Len(t, odds, 1)
		require.Len(t, odds[0].Bookmakers, 1)
		bookmaker := odds[0].Bookmakers[0]
		assert.Equal(t, "Bet365", bookmaker.Name)
		require.Len(t, bookmaker.Bets, 1)
		assert.Equal(t, "Match Winner", bookmaker.Bets[0].Name)
		assert.Equal(t, "1.57", bookmaker.Bets[0].Values[0].Odd)
	})
}

func TestSearchRequestValues(t *testing.T) {
	t.Run("no filters is allowed", func(t *testing.T) {
		params, err := SearchRequest{}.values()
		require.NoError(t, err)
		assert.Empty(t, params)
	})

	t.Run("short search rejected", func(t *testing.T) {
		_, err := SearchRequest{Search: "be"}.values()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 3 characters")
	})
}

func TestBetsAndBookmakers(t *testing.T) {
	t.Run("bets", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/odds/bets", r.URL.Path)
			fmt.Fprint(w, envelopeBody("odds/bets", 2,
				`[{"id": 1, "name": "Match Winner"}, {"id": 3, "name": "Over/Under"}]`))
		})

		bets, err := client.Bets(context.Background(), SearchRequest{})
		require.NoError(t, err)
		require.Len(t, bets, 2)
		assert.Equal(t, "Over/Under", bets[1].Name)
	})

	t.Run("bookmakers by search", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/odds/bookmakers", r.URL.Path)
			assert.Equal(t, "bet365", r.URL.Query().Get("search"))
			fmt.Fprint(w, envelopeBody("odds/bookmakers", 1, `[{"id": 4, "name": "Bet365"}]`))
		})

		bookmakers, err := client.Bookmakers(context.Background(), SearchRequest{Search: "bet365"})
		require.NoError(t, err)
		require.Len(t, bookmakers, 1)
		assert.Equal(t, 4, bookmakers[0].ID)
	})
}
