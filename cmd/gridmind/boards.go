package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridmind/internal/levels"
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List all available boards",
	Long: `Shows the boards found in the board directory followed by the built-in boards.
A board in the directory shadows a built-in board with the same ID.

Examples:
  gridmind boards
  gridmind boards --boards ./my-boards`,
	Run: runBoards,
}

type boardRow struct {
	level   levels.Level
	source  string
	size    string
	enemies int
	err     error
}

func runBoards(cmd *cobra.Command, args []string) {
	var rows []boardRow
	seen := make(map[string]bool)

	sources := []struct {
		name   string
		loader *levels.Loader
	}{
		{cfg.Boards.Dir, levels.NewLoader(cfg.Boards.Dir)},
		{"built-in", levels.Builtin()},
	}
	for _, src := range sources {
		lvls, err := src.loader.LoadAll()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Debug("board directory not found", "dir", src.name)
				continue
			}
			fmt.Fprintf(os.Stderr, "Error loading boards from %s: %v\n", src.name, err)
			os.Exit(1)
		}
		for _, lvl := range lvls {
			if seen[lvl.ID] {
				continue
			}
			seen[lvl.ID] = true

			row := boardRow{level: lvl, source: src.name}
			if b, err := lvl.ToBoard(); err != nil {
				row.err = err
			} else {
				row.size = fmt.Sprintf("%dx%d", b.W, b.H)
				row.enemies = len(b.Enemies())
			}
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println(header("Available boards:"))
	fmt.Println()

	maxIDLen := 2
	for _, r := range rows {
		if len(r.level.ID) > maxIDLen {
			maxIDLen = len(r.level.ID)
		}
	}

	fmt.Printf("  %-*s  %-7s  %-7s  %-10s  %s\n", maxIDLen, "ID", "Size", "Enemies", "Source", "Name")
	fmt.Printf("  %-*s  %-7s  %-7s  %-10s  %s\n", maxIDLen, "--", "----", "-------", "------", "----")

	for _, r := range rows {
		size := r.size
		if r.err != nil {
			size = "invalid"
		}
		fmt.Printf("  %-*s  %-7s  %-7d  %-10s  %s\n",
			maxIDLen, r.level.ID, size, r.enemies, r.source, r.level.Name)
		if r.err != nil {
			fmt.Printf("  %s\n", dim(r.err.Error()))
		}
	}

	fmt.Println()
	fmt.Println("Run 'gridmind run <id>' to run a strategy on a board.")
}
