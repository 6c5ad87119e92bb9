package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rover-playground/internal/platform/tui"
	"github.com/vovakirdan/rover-playground/internal/registry"
	"github.com/vovakirdan/rover-playground/internal/sim"
	"github.com/vovakirdan/rover-playground/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the playground with a world picker",
	Long: `Start the playground in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start driving.
Leaving a drive with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select world
  Tab          - Best runs
  Q            - Quit

Examples:
  playground menu
  playground menu --fps 30
  playground menu --db ./runs.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDriver, "driver", os.Getenv("USER"), "Driver name recorded with runs")
}

func runMenu(_ *cobra.Command, _ []string) {
	physics := loadPhysics()
	logger, closeLog := mustLogger(nil, "rover")
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Pick up any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsRuns {
			goBack, runsErr := tui.RunRunsBoard(store, cfg.ScreenW, cfg.ScreenH)
			if runsErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", runsErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.PlanetID == "" {
			break
		}

		d, err := registry.Get(menuResult.PlanetID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		result, err := tui.Run(d, store, cfg,
			tui.WithDriver(flagDriver),
			tui.WithLogger(logger),
			tui.WithSimOptions(sim.WithPhysics(physics)),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		}
		cfg = result.Config
		if !result.BackToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
