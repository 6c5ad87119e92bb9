package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rover-playground/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available worlds",
	Long:  `Shows every world registered in the playground with its difficulty.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	worlds := registry.List()

	if len(worlds) == 0 {
		fmt.Println("No worlds available.")
		return
	}

	fmt.Println("Available worlds:")
	fmt.Println()

	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, w := range worlds {
		maxIDLen = max(maxIDLen, len(w.ID))
		maxNameLen = max(maxNameLen, len(w.Name))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Difficulty")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxNameLen, "----", "----------")

	for _, w := range worlds {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, w.ID, maxNameLen, w.Name, w.Difficulty)
	}

	fmt.Println()
	fmt.Println("Run 'playground play <id>' to start driving.")
}
