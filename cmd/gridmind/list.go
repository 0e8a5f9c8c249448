package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridmind/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available strategies",
	Long:  `Shows a list of all strategies registered in gridmind.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	strategies := registry.List()

	if len(strategies) == 0 {
		fmt.Println("No strategies available.")
		return
	}

	fmt.Println(header("Available strategies:"))
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range strategies {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range strategies {
		marker := ""
		if s.ID == cfg.Strategy {
			marker = dim(" (default)")
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, s.ID, s.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'gridmind run <board> --strategy <id>' to try one.")
}
