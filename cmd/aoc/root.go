package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	aoc2022 "github.com/mattcl/aoc2022"
	"github.com/mattcl/aoc2022/plumbing"
)

var (
	verbose    bool
	asJSON     bool
	configPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Run Advent of Code 2022 solutions",
	Long: `Run Advent of Code 2022 solutions.

Each implemented day is a subcommand named after its puzzle title, and
"run" dispatches by day number. Inputs are plain puzzle-input files; the
path may be passed directly or resolved from the inputs directory in an
optional .aoc.yml.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg = zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// runCmd dispatches by day number instead of puzzle title.
var runCmd = &cobra.Command{
	Use:   "run <day> [input]",
	Short: "Run the solution for a day number",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid day %q: %w", args[0], err)
		}
		p, err := aoc2022.Lookup(day)
		if err != nil {
			return err
		}
		return solveDay(cmd, p, args[1:])
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&asJSON, "json", "j", false, "print answers as JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".aoc.yml", "path to the optional config file")

	rootCmd.AddCommand(runCmd)
	for _, p := range aoc2022.Days() {
		rootCmd.AddCommand(dayCommand(p))
	}
}

// dayCommand builds the per-puzzle subcommand, e.g. "aoc blizzard-basin".
func dayCommand(p aoc2022.Puzzle) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s [input]", slug(p.Title)),
		Short: fmt.Sprintf("Day %d: %s", p.Day, p.Title),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return solveDay(cmd, p, args)
		},
	}
}

func slug(title string) string {
	return strings.ReplaceAll(title, " ", "-")
}

// solveDay loads the day's input, runs the solver, and prints the answers.
func solveDay(cmd *cobra.Command, p aoc2022.Puzzle, args []string) error {
	path, err := resolveInput(p.Day, args)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	start := time.Now()
	sol, err := p.Solve(string(raw))
	if err != nil {
		return fmt.Errorf("day %d (%s): %w", p.Day, p.Title, err)
	}
	logger.Debug("solved",
		zap.Int("day", p.Day),
		zap.String("title", p.Title),
		zap.Duration("elapsed", time.Since(start)),
	)

	return printSolution(cmd, sol)
}

func printSolution(cmd *cobra.Command, sol plumbing.Solution) error {
	if asJSON {
		raw, err := json.Marshal(sol)
		if err != nil {
			return fmt.Errorf("encoding solution: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), sol)
	return nil
}
