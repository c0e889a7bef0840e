package nfl

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GameOdds holds the bookmaker odds for one game. The upstream retains odds
// for about a week after the game closes.
type GameOdds struct {
	League     LeagueSeasonRef `json:"league"`
	Game       GameRef         `json:"game"`
	Update     string          `json:"update"`
	Bookmakers []BookmakerOdds `json:"bookmakers"`
}

// BookmakerOdds holds one bookmaker's bets for a game
type BookmakerOdds struct {
	ID   int       `json:"id"`
	Name string    `json:"name"`
	Bets []BetOdds `json:"bets"`
}

// BetOdds is one bet market with its quoted values
type BetOdds struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Values []OddValue `json:"values"`
}

// OddValue is a single outcome and its odd
type OddValue struct {
	Value string `json:"value"`
	Odd   string `json:"odd"`
}

// OddsRequest filters the odds endpoint. Game is required.
type OddsRequest struct {
	Game      int
	Bookmaker int
	Bet       int
}

func (r OddsRequest) values() (url.Values, error) {
	if r.Game == 0 {
		return nil, fmt.Errorf("game must be provided")
	}

	params := url.Values{}
	params.Set("game", strconv.Itoa(r.Game))
	if r.Bookmaker != 0 {
		params.Set("bookmaker", strconv.Itoa(r.Bookmaker))
	}
	if r.Bet != 0 {
		params.Set("bet", strconv.Itoa(r.Bet))
	}
	return params, nil
}

// Odds retrieves bookmaker odds for a game
func (c *Client) Odds(ctx context.Context, req OddsRequest) ([]GameOdds, error) {
	params, err := req.values()
	if err != nil {
		return nil, err
	}

	var odds []GameOdds
	if err := c.get(ctx, "/odds", params, &odds); err != nil {
		return nil, err
	}
	return odds, nil
}

// Label is an id/name pair used by the bets and bookmakers endpoints
type Label struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SearchRequest filters the bets and bookmakers endpoints. Both fields are
// optional.
type SearchRequest struct {
	ID     int
	Search string
}

func (r SearchRequest) values() (url.Values, error) {
	params := url.Values{}

	if r.ID != 0 {
		params.Set("id", strconv.Itoa(r.ID))
	}
	if r.Search != "" {
		if err := validateSearch(r.Search); err != nil {
			return nil, err
		}
		params.Set("search", r.Search)
	}
	return params, nil
}

// Bets retrieves the bet markets the odds endpoint can quote
func (c *Client) Bets(ctx context.Context, req SearchRequest) ([]Label, error) {
	params, err := req.values()
	if err != nil {
		return nil, err
	}

	var bets []Label
	if err := c.get(ctx, "/odds/bets", params, &bets); err != nil {
		return nil, err
	}
	return bets, nil
}

// Bookmakers retrieves the bookmakers the odds endpoint quotes
func (c *Client) Bookmakers(ctx context.Context, req SearchRequest) ([]Label, error) {
	params, err := req.values()
	if err != nil {
		return nil, err
	}

	var bookmakers []Label
	if err := c.get(ctx, "/odds/bookmakers", params, &bookmakers); err != nil {
		return nil, err
	}
	return bookmakers, nil
}
