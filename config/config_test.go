package config

import (
	"testing"
)

func validConfig() *Config {
	return &Config{
		API: APIConfig{
			Key:      "valid-api-key",
			Timezone: "America/New_York",
		},
		Defaults: DefaultsConfig{
			League: "NFL",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidateAPIKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{
			name:    "Valid key",
			key:     "abc123",
			wantErr: false,
		},
		{
			name:    "Empty key",
			key:     "",
			wantErr: true,
		},
		{
			name:    "Placeholder key",
			key:     "your-api-key-here",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.API.Key = tt.key

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaultsLeague(t *testing.T) {
	tests := []struct {
		name    string
		league  string
		wantErr bool
	}{
		{
			name:    "NFL",
			league:  "NFL",
			wantErr: false,
		},
		{
			name:    "NCAA lowercase",
			league:  "ncaa",
			wantErr: false,
		},
		{
			name:    "Numeric league id",
			league:  "1",
			wantErr: false,
		},
		{
			name:    "Empty league (uses default)",
			league:  "",
			wantErr: false,
		},
		{
			name:    "Unknown league",
			league:  "XFL",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Defaults.League = tt.league

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaultsSeason(t *testing.T) {
	tests := []struct {
		name    string
		season  int
		wantErr bool
	}{
		{name: "Unset", season: 0, wantErr: false},
		{name: "Valid year", season: 2023, wantErr: false},
		{name: "Too short", season: 23, wantErr: true},
		{name: "Too long", season: 20233, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Defaults.Season = tt.season

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLogging(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "Valid console", level: "info", format: "console", wantErr: false},
		{name: "Valid json debug", level: "debug", format: "json", wantErr: false},
		{name: "Bad level", level: "verbose", format: "console", wantErr: true},
		{name: "Bad format", level: "info", format: "logfmt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.Format = tt.format

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
