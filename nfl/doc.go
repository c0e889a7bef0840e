// Package nfl provides a client for the api-sports.io American Football API.
//
// The upstream service exposes NFL and NCAA data (teams, players, games,
// standings, odds) behind a keyed REST API. This package implements a clean,
// idiomatic Go client over it: one method per upstream resource, typed
// request structs that enforce the upstream's parameter rules before any
// network I/O, and typed responses decoded out of the upstream envelope.
//
// # Usage
//
// Create a client with your API key:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := nfl.NewClient("your-api-key", logger,
//		nfl.WithTimeout(15*time.Second),
//		nfl.WithTimezone("America/Chicago"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	teams, err := client.Teams(ctx, nfl.TeamsRequest{
//		League: nfl.LeagueNFL,
//		Season: 2023,
//	})
//
// Accounts provisioned through RapidAPI instead of api-sports can pass
// nfl.WithRapidAPI().
//
// # Errors
//
// Parameter rule violations are returned before any request is made. Errors
// from the upstream surface as *APIError, which classifies the usual cases:
//
//	var apiErr *nfl.APIError
//	if errors.As(err, &apiErr) {
//		switch {
//		case apiErr.IsUnauthorized():
//			// bad key
//		case apiErr.IsRateLimited():
//			// daily quota exhausted
//		}
//	}
//
// The upstream reports parameter errors inside HTTP 200 responses; those are
// surfaced as *APIError too.
//
// There is no retry, caching or pagination layer: the upstream paginates
// nothing, and every call maps to exactly one GET.
package nfl
