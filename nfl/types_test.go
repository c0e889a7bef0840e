package nfl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLeague(t *testing.T) {
	tests := []struct {
		input   string
		want    League
		wantErr bool
	}{
		{input: "NFL", want: LeagueNFL},
		{input: "nfl", want: LeagueNFL},
		{input: "1", want: LeagueNFL},
		{input: "NCAA", want: LeagueNCAA},
		{input: "ncaa", want: LeagueNCAA},
		{input: "2", want: LeagueNCAA},
		{input: "xfl", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLeague(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLeagueString(t *testing.T) {
	assert.Equal(t, "NFL", LeagueNFL.String())
	assert.Equal(t, "NCAA", LeagueNCAA.String())
	assert.Equal(t, "League(9)", League(9).String())
}

func TestStatisticsGroupValid(t *testing.T) {
	for _, group := range StatisticsGroups {
		assert.True(t, group.Valid(), "group %s", group)
	}
	assert.False(t, StatisticsGroup("special_teams").Valid())
	assert.False(t, StatisticsGroup("").Valid())
}

func TestConferenceAndDivisionValid(t *testing.T) {
	assert.True(t, ConferenceAFC.Valid())
	assert.True(t, ConferenceNFC.Valid())
	assert.False(t, Conference("AFC").Valid())

	assert.True(t, DivisionWest.Valid())
	assert.False(t, Division("Central").Valid())
}
