package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configured variants",
	Long:  `Shows the variants from the loaded configuration with their board size and input policy.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	reg, err := loadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	games := reg.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
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

	fmt.Printf("  %-*s  %-7s  %-9s  %s\n", maxIDLen, "ID", "Board", "Input", "Title")
	fmt.Printf("  %-*s  %-7s  %-9s  %s\n", maxIDLen, "--", "-----", "-----", "-----")

	for _, g := range games {
		mark := ""
		if g.ID == reg.Default() {
			mark = " (default)"
		}
		fmt.Printf("  %-*s  %-7s  %-9s  %s%s\n", maxIDLen, g.ID,
			fmt.Sprintf("%dx%d", g.Width, g.Height), g.Policy, g.Title, mark)
	}

	fmt.Println()
	fmt.Println("Run 'snake play <id>' to play a variant.")
}
