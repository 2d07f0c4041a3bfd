package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neatza-runners/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all runners",
	Long:  `Shows every character that can be played, with its trait and special.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	chars := registry.List()

	if len(chars) == 0 {
		fmt.Println("No runners available.")
		return
	}

	fmt.Println("Runners:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, ch := range chars {
		maxIDLen = max(maxIDLen, len(ch.ID))
		maxNameLen = max(maxNameLen, len(ch.FullName))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %-12s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Trait", "Special")
	fmt.Printf("  %-*s  %-*s  %-12s  %s\n", maxIDLen, "--", maxNameLen, "----", "-----", "-------")

	for _, ch := range chars {
		fmt.Printf("  %-*s  %-*s  %-12s  %s - %s\n", maxIDLen, ch.ID, maxNameLen, ch.FullName, ch.Trait, ch.Special, ch.SpecialDesc)
	}

	fmt.Println()
	fmt.Println("Run 'neatza play <id>' to start with a runner.")
}
