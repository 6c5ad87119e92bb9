package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rover-playground/internal/platform/tui"
	"github.com/vovakirdan/rover-playground/internal/registry"
	"github.com/vovakirdan/rover-playground/internal/terrain"
)

var (
	flagTerrainSize     float64
	flagTerrainSegments int
	flagTerrainCols     int
	flagTerrainRows     int
	flagTerrainPlain    bool
)

var terrainCmd = &cobra.Command{
	Use:   "terrain <planet>",
	Short: "Print a relief map of a planet",
	Long: `Sample the height field of a planet and print it as a shaded relief
map with elevation statistics.

Examples:
  playground terrain mars
  playground terrain moon --cols 120 --rows 40
  playground terrain earth --size 100 --plain`,
	Args: cobra.ExactArgs(1),
	Run:  runTerrain,
}

func init() {
	terrainCmd.Flags().Float64Var(&flagTerrainSize, "size", terrain.DefaultMeshSize, "Side of the sampled square in metres")
	terrainCmd.Flags().IntVar(&flagTerrainSegments, "segments", terrain.DefaultMeshSegments, "Grid segments per side")
	terrainCmd.Flags().IntVar(&flagTerrainCols, "cols", 80, "Map width in characters")
	terrainCmd.Flags().IntVar(&flagTerrainRows, "rows", 32, "Map height in characters")
	terrainCmd.Flags().BoolVar(&flagTerrainPlain, "plain", false, "Print without colors")
}

func runTerrain(cmd *cobra.Command, args []string) {
	d, err := registry.Get(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !d.Terrain {
		fmt.Printf("%s drives on flat ground; there is no relief to print.\n", d.Name)
		return
	}
	if flagTerrainSize <= 0 || flagTerrainCols <= 0 || flagTerrainRows <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --size, --cols and --rows must be positive")
		os.Exit(1)
	}

	grid := terrain.Sample(d.ID, flagTerrainSize, flagTerrainSegments)
	screen := tui.Relief(grid, flagTerrainCols, flagTerrainRows)

	if flagTerrainPlain {
		fmt.Print(screen.String())
	} else {
		fmt.Println(tui.RenderScreen(screen))
	}

	lo, hi := grid.MinMax()
	fmt.Println()
	fmt.Printf("%s  %.0f m square, %d segments\n", d.Name, grid.Size, grid.Segments)
	fmt.Printf("  min %.2f m  max %.2f m  mean %.2f m\n", lo, hi, grid.Mean())
	fmt.Printf("  start height %.2f m  target height %.2f m\n",
		grid.HeightAt(d.Start.X, d.Start.Z), grid.HeightAt(d.Target.X, d.Target.Z))
}
