package nfl

import "fmt"

// League identifies a competition supported by the upstream API
type League int

const (
	// LeagueNFL is the National Football League
	LeagueNFL League = 1
	// LeagueNCAA is college football
	LeagueNCAA League = 2
)

// Valid checks if the league is one the upstream API supports
func (l League) Valid() bool {
	return l == LeagueNFL || l == LeagueNCAA
}

// String returns the string representation of a League
func (l League) String() string {
	switch l {
	case LeagueNFL:
		return "NFL"
	case LeagueNCAA:
		return "NCAA"
	default:
		return fmt.Sprintf("League(%d)", int(l))
	}
}

// ParseLeague converts a league name or numeric ID into a League
func ParseLeague(s string) (League, error) {
	switch s {
	case "NFL", "nfl", "1":
		return LeagueNFL, nil
	case "NCAA", "ncaa", "2":
		return LeagueNCAA, nil
	default:
		return 0, fmt.Errorf("unknown league %q (valid: NFL, NCAA)", s)
	}
}

// StatisticsGroup identifies a player statistics category
type StatisticsGroup string

const (
	GroupDefensive     StatisticsGroup = "defensive"
	GroupFumbles       StatisticsGroup = "fumbles"
	GroupInterceptions StatisticsGroup = "interceptions"
	GroupKickReturns   StatisticsGroup = "kick_returns"
	GroupKicking       StatisticsGroup = "kicking"
	GroupPassing       StatisticsGroup = "passing"
	GroupPuntReturns   StatisticsGroup = "punt_returns"
	GroupPunting       StatisticsGroup = "punting"
	GroupReceiving     StatisticsGroup = "receiving"
	GroupRushing       StatisticsGroup = "rushing"
)

// StatisticsGroups lists every group the upstream API accepts
var StatisticsGroups = []StatisticsGroup{
	GroupDefensive,
	GroupFumbles,
	GroupInterceptions,
	GroupKickReturns,
	GroupKicking,
	GroupPassing,
	GroupPuntReturns,
	GroupPunting,
	GroupReceiving,
	GroupRushing,
}

// Valid checks if the group is one the upstream API accepts
func (g StatisticsGroup) Valid() bool {
	for _, known := range StatisticsGroups {
		if g == known {
			return true
		}
	}
	return false
}

// Conference identifies an NFL conference. The upstream API filters by the
// full conference name, not the abbreviation.
type Conference string

const (
	ConferenceAFC Conference = "American Football Conference"
	ConferenceNFC Conference = "National Football Conference"
)

// Valid checks if the conference is one the upstream API accepts
func (c Conference) Valid() bool {
	return c == ConferenceAFC || c == ConferenceNFC
}

// Division identifies a division within a conference
type Division string

const (
	DivisionNorth Division = "North"
	DivisionSouth Division = "South"
	DivisionEast  Division = "East"
	DivisionWest  Division = "West"
)

// Valid checks if the division is one the upstream API accepts
func (d Division) Valid() bool {
	switch d {
	case DivisionNorth, DivisionSouth, DivisionEast, DivisionWest:
		return true
	}
	return false
}

// Country describes the country a league or team belongs to
type Country struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Flag string `json:"flag"`
}

// validateSeason checks that a season is a four-digit year, matching the
// upstream requirement.
func validateSeason(season int) error {
	if season < 1000 || season > 9999 {
		return fmt.Errorf("season must be a four-digit year, got %d", season)
	}
	return nil
}

// validateSearch checks the minimum length the upstream enforces on search
// terms.
func validateSearch(search string) error {
	if len(search) < 3 {
		return fmt.Errorf("search must be at least 3 characters, got %q", search)
	}
	return nil
}
