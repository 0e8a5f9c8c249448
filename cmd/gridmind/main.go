// gridmind runs grid pathfinding strategies on board files and keeps a history of the runs.
//
// Usage:
//
//	gridmind list                 - List available strategies
//	gridmind boards               - List available boards
//	gridmind run <board>          - Run a strategy on a board
//	gridmind runs [board]         - Show recorded runs
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.gridmind, ./configs, built-in)
//	--db <path>         - Run history database (default: ~/.gridmind/runs.db)
//	--boards <dir>      - Board directory (default: ./boards)
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridmind/internal/config"

	// Import minds to register them
	_ "github.com/vovakirdan/gridmind/internal/mind"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagBoards   string
	flagLogLevel string

	// Loaded in PersistentPreRunE
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridmind",
	Short: "gridmind - Grid pathfinding strategies for autonomous agents",
	Long: `gridmind moves an agent across a grid board with one of several search
strategies (A*, breadth-first, depth-limited horizon search) and records
how each run ended.

Available commands:
  list     - Show all available strategies
  boards   - Show all available boards
  run      - Run a strategy on a board
  runs     - View recorded runs

Examples:
  gridmind list
  gridmind run maze --strategy bfs
  gridmind run hunt --strategy horizon --depth 4 --trace
  gridmind runs maze`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagBoards, "boards", "", "Board directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(boardsCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(runsCmd)
}

// setup loads the configuration, applies global flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagBoards != "" {
		cfg.Boards.Dir = flagBoards
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridmind",
		Level:           level,
	})
	return nil
}
