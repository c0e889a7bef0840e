package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gridironapi/nflapi/config"
	"github.com/gridironapi/nflapi/nfl"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *nfl.Client

	version   = "dev"
	buildTime = "unknown"

	// Command flags shared by the query commands
	leagueFlag string
	seasonFlag int
	filterExpr string
)

// SetVersion records the build metadata injected by the linker
func SetVersion(v, t string) {
	version = v
	buildTime = t
	rootCmd.Version = v
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nflapi",
	Short: "Query the api-sports.io American Football API",
	Long: `nflapi is a CLI for the api-sports.io American Football API. It can look
up teams, games, standings and players for the NFL and NCAA, and filter the
results with expressions.

An API key from api-sports.io (or RapidAPI) is required; set it in
config.yaml or via the NFLAPI_API_KEY environment variable.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// A .env file can carry NFLAPI_API_KEY; ignore it when absent.
	_ = godotenv.Load()

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create API client
	opts := []nfl.Option{
		nfl.WithTimezone(cfg.API.Timezone),
		nfl.WithUserAgent("nflapi/" + version),
	}
	if cfg.API.RapidAPI {
		opts = append(opts, nfl.WithRapidAPI())
	}

	client, err = nfl.NewClient(cfg.API.Key, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when writing to a terminal
	color := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// resolveLeague resolves the league flag, falling back to the configured
// default.
func resolveLeague() (nfl.League, error) {
	name := leagueFlag
	if name == "" {
		name = cfg.Defaults.League
	}
	if name == "" {
		return 0, fmt.Errorf("no league specified: pass --league or set defaults.league")
	}
	return nfl.ParseLeague(name)
}

// resolveSeason resolves the season flag, falling back to the configured
// default.
func resolveSeason() (int, error) {
	season := seasonFlag
	if season == 0 {
		season = cfg.Defaults.Season
	}
	if season == 0 {
		return 0, fmt.Errorf("no season specified: pass --season or set defaults.season")
	}
	return season, nil
}
