package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridmind/internal/config"
	"github.com/vovakirdan/gridmind/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [board]",
	Short: "Show recorded runs",
	Long: `Display the most recent runs, optionally for a single board.
With a board, also shows per-strategy statistics and best runs.

Examples:
  gridmind runs
  gridmind runs maze
  gridmind runs maze --limit 5
  gridmind runs maze --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs of the board")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(config.ExpandPath(cfg.Storage.DBPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a board")
			os.Exit(1)
		}
		runs, err := store.RecentRuns(flagLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(header("Recent runs"))
		fmt.Println()
		printRuns(runs)
		return
	}

	boardID := args[0]
	if flagClear {
		if err := store.ClearRuns(boardID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared runs for %s.\n", boardID)
		return
	}

	runs, err := store.RunsForBoard(boardID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(header("Runs - " + boardID))
	fmt.Println()
	printRuns(runs)
	if len(runs) == 0 {
		return
	}

	stats, err := store.BoardStats(boardID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(header("By strategy"))
	fmt.Println()
	fmt.Printf("  %-10s  %-5s  %-8s  %-5s  %-7s  %s\n", "Strategy", "Runs", "Arrived", "Best", "Avg", "Best run")
	fmt.Printf("  %-10s  %-5s  %-8s  %-5s  %-7s  %s\n", "--------", "----", "-------", "----", "---", "--------")
	for _, st := range stats {
		best, avg, bestID := "-", "-", "-"
		if st.Arrivals > 0 {
			best = fmt.Sprintf("%d", st.BestSteps)
			avg = fmt.Sprintf("%.1f", st.AvgSteps)
			if run, err := store.BestRun(boardID, st.Strategy); err == nil && run != nil {
				bestID = run.RunID
			}
		}
		fmt.Printf("  %-10s  %-5d  %-8d  %-5s  %-7s  %s\n", st.Strategy, st.Runs, st.Arrivals, best, avg, dim(bestID))
	}
}

func printRuns(runs []storage.RunEntry) {
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'gridmind run <board>' to record one.")
		return
	}

	fmt.Printf("  %-16s  %-10s  %-10s  %-9s  %-5s  %s\n", "Date", "Board", "Strategy", "Outcome", "Steps", "Expanded")
	fmt.Printf("  %-16s  %-10s  %-10s  %-9s  %-5s  %s\n", "----", "-----", "--------", "-------", "-----", "--------")
	for _, r := range runs {
		// Pad before styling so escape codes do not break the columns
		status := outcome(fmt.Sprintf("%-9s", r.Outcome))
		fmt.Printf("  %-16s  %-10s  %-10s  %s  %-5d  %d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.BoardID, r.Strategy, status, r.Steps, r.Expanded)
	}
}
