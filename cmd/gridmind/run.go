package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridmind/internal/config"
	"github.com/vovakirdan/gridmind/internal/levels"
	"github.com/vovakirdan/gridmind/internal/registry"
	"github.com/vovakirdan/gridmind/internal/search"
	"github.com/vovakirdan/gridmind/internal/sim"
	"github.com/vovakirdan/gridmind/internal/storage"
)

var (
	flagStrategy string
	flagDepth    int
	flagPreset   string
	flagMaxTicks int
	flagTrace    bool
	flagNearest  bool
	flagNoSave   bool
)

var runCmd = &cobra.Command{
	Use:   "run <board-id|file>",
	Short: "Run a strategy on a board",
	Long: `Move the agent from the board's start with the chosen strategy until it
reaches the exit (or an enemy), gives up, or runs out of ticks.

Strategies:
  astar    - Plans once with A* toward the exit
  bfs      - Plans once with breadth-first search toward the exit
  horizon  - Re-plans every tick with a depth-limited search,
             chasing the first enemy (or the nearest with --nearest)

Depth presets (horizon only):
  shallow - 2 hops
  normal  - 4 hops
  deep    - 8 hops

Examples:
  gridmind run maze
  gridmind run maze --strategy bfs
  gridmind run hunt --strategy horizon --depth 5 --nearest
  gridmind run field --strategy horizon --preset shallow --trace
  gridmind run ./boards/custom.yaml --max-ticks 100`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVarP(&flagStrategy, "strategy", "s", "", "Strategy ID (overrides config)")
	runCmd.Flags().IntVar(&flagDepth, "depth", 0, "Horizon depth in hops (overrides config)")
	runCmd.Flags().StringVar(&flagPreset, "preset", "", "Horizon depth preset: shallow, normal, deep")
	runCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 0, "Tick limit (overrides config)")
	runCmd.Flags().BoolVar(&flagTrace, "trace", false, "Log every opened, closed and chosen cell")
	runCmd.Flags().BoolVar(&flagNearest, "nearest", false, "Horizon chases the nearest enemy instead of the first")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
}

func runRun(cmd *cobra.Command, args []string) {
	ref := args[0]

	// Apply run flags on top of the loaded config
	if flagStrategy != "" {
		cfg.Strategy = flagStrategy
	}
	if flagDepth != 0 {
		cfg.Horizon.Depth = flagDepth
	}
	if flagPreset != "" {
		cfg.Horizon.Preset = config.DepthPreset(flagPreset)
	}
	if flagMaxTicks != 0 {
		cfg.Sim.MaxTicks = flagMaxTicks
	}
	if flagNearest {
		cfg.Horizon.NearestTarget = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !registry.Exists(cfg.Strategy) {
		fmt.Fprintf(os.Stderr, "Error: unknown strategy %q\n", cfg.Strategy)
		fmt.Fprintln(os.Stderr, "Run 'gridmind list' to see available strategies.")
		os.Exit(1)
	}

	lvl, err := levels.Resolve(ref, levels.NewLoader(cfg.Boards.Dir), levels.Builtin())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'gridmind boards' to see available boards.")
		os.Exit(1)
	}

	b, err := lvl.ToBoard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building board: %v\n", err)
		os.Exit(1)
	}

	var observer search.Observer
	if flagTrace {
		traceLogger := logger.WithPrefix("search")
		traceLogger.SetLevel(log.DebugLevel)
		observer = search.NewLogObserver(traceLogger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := sim.NewRunner(sim.WithLogger(logger))
	report, err := runner.Run(ctx, sim.Job{
		BoardID:  lvl.ID,
		Board:    b,
		Strategy: cfg.Strategy,
		Config:   cfg.Runtime(),
		Observer: observer,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printReport(lvl, report)

	if flagNoSave {
		return
	}
	if err := saveReport(report); err != nil {
		logger.Warn("could not record run", "err", err)
	}
}

func printReport(lvl levels.Level, report sim.Report) {
	fmt.Printf("%s %s on %s\n", header("Run"), report.Strategy, lvl.Name)
	fmt.Println(dim("  id: " + report.RunID))
	fmt.Println()
	fmt.Printf("  %-9s %s\n", "Outcome", outcome(string(report.Outcome)))
	fmt.Printf("  %-9s %d\n", "Steps", report.Steps)
	fmt.Printf("  %-9s %d\n", "Expanded", report.Expanded)
	fmt.Printf("  %-9s %s\n", "Final", report.Final)
	if report.Err != nil {
		fmt.Printf("  %-9s %v\n", "Reason", report.Err)
	}
	if len(report.Moves) > 0 {
		moves := make([]string, len(report.Moves))
		for i, m := range report.Moves {
			moves[i] = m.String()
		}
		fmt.Printf("  %-9s %s\n", "Moves", strings.Join(moves, " "))
	}
}

func saveReport(report sim.Report) error {
	store, err := storage.Open(config.ExpandPath(cfg.Storage.DBPath))
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.SaveRun(storage.RunEntry{
		RunID:    report.RunID,
		BoardID:  report.BoardID,
		Strategy: report.Strategy,
		Outcome:  string(report.Outcome),
		Steps:    report.Steps,
		Expanded: report.Expanded,
	})
	return err
}
