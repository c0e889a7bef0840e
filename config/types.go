package config

// Config represents the complete configuration structure
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// APIConfig holds the api-sports connection details
type APIConfig struct {
	Key      string `mapstructure:"key"`
	RapidAPI bool   `mapstructure:"rapid_api"`
	Timezone string `mapstructure:"timezone"`
}

// DefaultsConfig holds the league and season applied when a command does
// not specify them
type DefaultsConfig struct {
	League string `mapstructure:"league"`
	Season int    `mapstructure:"season"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
