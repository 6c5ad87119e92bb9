package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rover-playground/internal/registry"
	"github.com/vovakirdan/rover-playground/internal/sim"
	"github.com/vovakirdan/rover-playground/internal/storage"
)

var (
	flagScript       string
	flagReportEvery  int
	flagStopComplete bool
	flagSaveRun      bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <planet>",
	Short: "Run a scripted drive without a terminal UI",
	Long: `Drive a world from a script with a fixed time step and print the
telemetry. The same script and frame rate always produce the same output.

Script format: comma separated KEYS:DURATION segments. KEYS is any mix of
F (forward), B (backward), L (left) and R (right), or N for no input.

Examples:
  playground simulate earth --script "F:5s"
  playground simulate mars --script "F:2s,FL:1.5s,F:4s,N:1s" --every 10
  playground simulate moon --fps 120 --script "F:30s" --save`,
	Args: cobra.ExactArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagScript, "script", "F:5s", "Drive script")
	simulateCmd.Flags().IntVar(&flagReportEvery, "every", 30, "Print telemetry every N frames")
	simulateCmd.Flags().BoolVar(&flagStopComplete, "stop-on-complete", true, "Stop when the mission completes")
	simulateCmd.Flags().BoolVar(&flagSaveRun, "save", false, "Record a completed mission in the runs database")
}

func runSimulate(cmd *cobra.Command, args []string) {
	d, err := registry.Get(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	segments, err := parseScript(flagScript)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid script: %v\n", err)
		os.Exit(1)
	}
	if flagFPS <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --fps must be positive")
		os.Exit(1)
	}

	physics := loadPhysics()
	logger, closeLog := mustLogger(os.Stderr, "rover")
	defer closeLog()

	session := sim.NewSession(d, sim.WithPhysics(physics), sim.WithLogger(logger))
	defer session.Close()

	dt := time.Second / time.Duration(flagFPS)
	every := max(flagReportEvery, 1)

	fmt.Printf("%s  dt=%s  %d segments\n\n", d.Name, dt, len(segments))
	fmt.Printf("%6s  %7s  %-4s  %8s  %8s  %7s  %7s  %8s  %s\n",
		"tick", "time", "keys", "x", "z", "y", "km/h", "target", "flags")

	var tel sim.Telemetry
run:
	for _, seg := range segments {
		session.SetInput(sim.SourceScript, seg.Input)
		for range seg.frames(dt) {
			tel = session.Advance(dt)
			if tel.Tick%uint64(every) == 0 {
				printTelemetry(session, tel, seg.keys())
			}
			if flagStopComplete && session.Complete() {
				break run
			}
		}
	}
	printTelemetry(session, tel, "end")

	done, total := session.Progress()
	fmt.Println()
	fmt.Printf("odometer %.1f m, objectives %d/%d\n", tel.Odometer, done, total)
	for _, o := range session.Objectives() {
		mark := " "
		if o.Done {
			mark = "x"
		}
		fmt.Printf("  [%s] %s\n", mark, o.Task)
	}

	at, finished := session.Finished()
	if !finished {
		fmt.Println("mission incomplete")
		return
	}
	fmt.Printf("mission complete in %s\n", clock(at))

	if !flagSaveRun {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()
	id, err := store.SaveRun(storage.Run{
		Planet:     d.ID,
		Driver:     "script",
		Duration:   at,
		Distance:   tel.Odometer,
		Objectives: done,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("saved run #%d\n", id)
}

func printTelemetry(s *sim.Session, tel sim.Telemetry, keys string) {
	flags := ""
	if !tel.Grounded {
		flags += "air "
	}
	if tel.InHazard {
		flags += "hazard "
	} else if tel.HazardWarning {
		flags += "steep "
	}
	if tel.TargetReached {
		flags += "target "
	}
	fmt.Printf("%6d  %7s  %-4s  %8.2f  %8.2f  %7.2f  %7.1f  %8.1f  %s\n",
		tel.Tick, clock(s.Elapsed()), keys, tel.Position.X, tel.Position.Z, tel.Position.Y,
		tel.Speed, tel.DistanceToTarget, flags)
}
