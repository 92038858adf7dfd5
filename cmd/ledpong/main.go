// ledpong runs a two-player Pong game drawn on an addressable LED matrix.
//
// Usage:
//
//	ledpong play              - Preview the LED matrix in the terminal
//	ledpong sim               - Run bot matches headless
//	ledpong serve             - Serve the preview over SSH and stream to spectators
//	ledpong matches           - Show recorded match history
//	ledpong bots              - List available bot opponents
//	ledpong config            - Print or check configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.ledpong/config.yaml)
//	--db <path>         - Match database (default: ~/.ledpong/matches.db)
//	--log-level <level> - debug, info, warn, error
//	--seed <value>      - Bot RNG seed (0 = from config)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import bots to register them
	_ "github.com/vovakirdan/ledpong/internal/bots"
	"github.com/vovakirdan/ledpong/internal/config"
	"github.com/vovakirdan/ledpong/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagSeed     int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ledpong",
	Short: "ledpong - Pong on an LED matrix",
	Long: `ledpong simulates two-player Pong on an addressable LED matrix with
tilt-sensor paddles and per-player score strips.

Available commands:
  play     - Preview the matrix in the terminal
  sim      - Run bot matches without a display
  serve    - SSH preview plus websocket spectator stream
  matches  - Show match history
  bots     - List bot opponents
  config   - Print or check configuration

Examples:
  ledpong play
  ledpong sim --matches 10
  ledpong serve --ssh :23234 --ws :8080
  ledpong matches`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to match database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Bot RNG seed (0 = use config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(botsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the process logger from --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig loads the config and applies global overrides and an
// optional difficulty preset.
func loadConfig(difficulty string) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSeed != 0 {
		cfg.Bots.Seed = flagSeed
	}
	if difficulty != "" {
		preset, err := config.ParsePreset(difficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// exitf prints an error and exits.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
