package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/queenchase/internal/games/chase"
	"github.com/vovakirdan/queenchase/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game variants",
	Long:  `Shows every registered Queen Chase variant.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	chase.SetConfigPath(flagConfig)
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	maxTitleLen := 5 // "Title" header
	for _, g := range games {
		if len(g.Title) > maxTitleLen {
			maxTitleLen = len(g.Title)
		}
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Rules")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, g.Blurb)
	}

	fmt.Println()
	fmt.Println("Run 'queenchase play <id>' to play.")
}
