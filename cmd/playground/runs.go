package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rover-playground/internal/registry"
	"github.com/vovakirdan/rover-playground/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [planet]",
	Short: "Show best runs",
	Long: `Display the fastest completed missions for a world, or a summary
of every world when no planet is given.

Examples:
  playground runs
  playground runs mars
  playground runs moon --limit 3
  playground runs earth --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the recorded runs of the planet")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagRunsClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a planet")
			return
		}
		printSummary(store)
		return
	}

	d, err := registry.Get(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'playground list' to see available worlds.")
		return
	}

	if flagRunsClear {
		if err := store.ClearRuns(d.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared runs for %s.\n", d.Name)
		return
	}

	runs, err := store.BestRuns(d.ID, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %s\n", d.Name)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Drive 'playground play %s' to set the first time!\n", d.ID)
		return
	}

	fmt.Printf("  %-4s  %-9s  %-12s  %-8s  %s\n", "Rank", "Time", "Driver", "Distance", "Date")
	fmt.Printf("  %-4s  %-9s  %-12s  %-8s  %s\n", "----", "----", "------", "--------", "----")

	for i, r := range runs {
		driver := r.Driver
		if driver == "" {
			driver = "-"
		}
		fmt.Printf("  %-4d  %-9s  %-12s  %-8s  %s\n",
			i+1, clock(r.Duration), driver, fmt.Sprintf("%.0f m", r.Distance),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printSummary(store *storage.Store) {
	stats, err := store.AllPlanetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}

	fmt.Println("Runs by world")
	fmt.Println()
	fmt.Printf("  %-10s  %4s  %-9s  %-9s  %s\n", "World", "Runs", "Best", "Average", "Driven")
	fmt.Printf("  %-10s  %4s  %-9s  %-9s  %s\n", "-----", "----", "----", "-------", "------")

	for _, info := range registry.List() {
		ps, ok := stats[info.ID]
		if !ok {
			fmt.Printf("  %-10s  %4d  %-9s  %-9s  %s\n", info.ID, 0, "-", "-", "-")
			continue
		}
		fmt.Printf("  %-10s  %4d  %-9s  %-9s  %.1f km\n",
			info.ID, ps.Runs, clock(ps.Best), clock(ps.Average), ps.TotalDistance/1000)
	}
}

// clock formats a duration as mm:ss.t.
func clock(d time.Duration) string {
	tenths := d.Milliseconds() / 100
	return fmt.Sprintf("%02d:%02d.%d", tenths/600, tenths/10%60, tenths%10)
}
