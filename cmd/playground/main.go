// playground is a terminal rover simulator: drive a vehicle over procedural
// planet terrain, alone or over SSH.
//
// Usage:
//
//	playground list                 - List available worlds
//	playground play <planet>        - Drive on a planet
//	playground menu                 - Pick worlds interactively
//	playground serve                - Start SSH server for remote driving
//	playground runs [planet]        - Show best runs
//	playground terrain <planet>     - Print a relief map of a planet
//	playground simulate <planet>    - Run a scripted drive headless
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: 60)
//	--db <path>         - Set database path (default: ~/.rover/runs.db)
//	--config <path>     - Physics tuning YAML
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file instead of discarding them
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rover-playground/internal/config"
	// Import missions to register them
	_ "github.com/vovakirdan/rover-playground/internal/missions"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "playground",
	Short: "Rover Playground - drive across procedural planets in your terminal",
	Long: `Rover Playground simulates a wheeled vehicle on Earth, Moon and Mars
terrain, plus a flat gait lab. Reach the target and finish the mission
objectives as fast as you can.

Available commands:
  list      - Show all worlds
  play      - Drive on a specific world
  menu      - Interactive world picker
  serve     - Start SSH server for remote driving
  runs      - View best runs
  terrain   - Print a relief map
  simulate  - Run a scripted drive without a terminal UI

Examples:
  playground list
  playground play mars
  playground menu --fps 30
  playground serve --ssh :2222
  playground simulate moon --script "F:3s,FL:1s,F:2s"`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rover/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom physics YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(terrainCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the process logger. Full-screen commands pass a nil
// fallback so that, without --log-file, logs do not tear the display.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out, closeFn = f, func() { f.Close() }
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadPhysics resolves the tuning table or exits.
func loadPhysics() config.PhysicsConfig {
	cfg, err := config.LoadPhysics(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// mustLogger is newLogger for Run funcs.
func mustLogger(fallback io.Writer, prefix string) (*log.Logger, func()) {
	logger, closeFn, err := newLogger(fallback, prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closeFn
}
