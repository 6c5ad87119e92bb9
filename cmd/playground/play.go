package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rover-playground/internal/core"
	"github.com/vovakirdan/rover-playground/internal/platform/tui"
	"github.com/vovakirdan/rover-playground/internal/registry"
	"github.com/vovakirdan/rover-playground/internal/sim"
	"github.com/vovakirdan/rover-playground/internal/storage"
)

var flagDriver string

var playCmd = &cobra.Command{
	Use:   "play <planet>",
	Short: "Drive on a planet",
	Long: `Start driving on the specified world.

Controls:
  W/Up       - Throttle
  S/Down     - Reverse
  A/D        - Steer
  Space      - Release all controls
  P          - Pause
  R          - Restart the mission
  Esc/B      - Leave
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Examples:
  playground play earth
  playground play mars --fps 30
  playground play moon --config ./physics.yaml --log-file rover.log`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDriver, "driver", os.Getenv("USER"), "Driver name recorded with runs")
}

func runPlay(cmd *cobra.Command, args []string) {
	d, err := registry.Get(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'playground list' to see available worlds.")
		os.Exit(1)
	}

	physics := loadPhysics()
	logger, closeLog := mustLogger(nil, "rover")

	cfg := terminalConfig()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - driving still works
		store = nil
	}

	_, runErr := tui.Run(d, store, cfg,
		tui.WithDriver(flagDriver),
		tui.WithLogger(logger),
		tui.WithSimOptions(sim.WithPhysics(physics)),
	)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}
