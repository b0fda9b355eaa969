package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/config"
	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/gridio"
	"github.com/katalvlaran/pathgrid/search"
	"github.com/katalvlaran/pathgrid/tour"
	"github.com/katalvlaran/pathgrid/viz"
)

var (
	solveAlgorithm string
	solveDelayMS   int
	solveAllGoals  bool
	solveConfig    string
	solvePlain     bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [grid-file]",
		Short: "Animate a search over a board",
		Long: `Solve reads a board in the pathgrid text format and animates the
chosen algorithm's exploration. With --all-goals the search chains one
leg per goal, carrying the board state between legs.

Examples:
  pathgrid solve boards/maze.grid
  pathgrid solve boards/maze.grid --algorithm astar --delay 15
  pathgrid solve --config run.hcl
  pathgrid gen --rows 20 --cols 30 | pathgrid solve - --algorithm dfs`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}
	solveCmd.Flags().StringVarP(&solveAlgorithm, "algorithm", "a", "",
		"search algorithm (dfs, bfs, greedy, astar, open, straight-line)")
	solveCmd.Flags().IntVarP(&solveDelayMS, "delay", "d", -1,
		"inter-step delay in ms (0, 15, 50 or 100)")
	solveCmd.Flags().BoolVar(&solveAllGoals, "all-goals", false,
		"visit every goal on the board, in discovery order")
	solveCmd.Flags().StringVarP(&solveConfig, "config", "c", "",
		"HCL run file; explicit flags win over its values")
	solveCmd.Flags().BoolVar(&solvePlain, "plain", false,
		"disable colors and cursor control")
	rootCmd.AddCommand(solveCmd)
}

// solveSettings merges config-file values with flag overrides.
func solveSettings(cmd *cobra.Command, args []string) (*config.Run, error) {
	run := &config.Run{
		Algorithm: search.BreadthFirst,
		Delay:     viz.Delay50,
	}
	if solveConfig != "" {
		loaded, err := config.Load(solveConfig)
		if err != nil {
			return nil, err
		}
		run = loaded
	}
	if len(args) == 1 {
		run.GridPath = args[0]
	}
	if run.GridPath == "" {
		return nil, errors.New("no grid file: pass one as argument or via --config")
	}
	if cmd.Flags().Changed("algorithm") {
		algo, err := search.ParseAlgorithm(solveAlgorithm)
		if err != nil {
			return nil, err
		}
		run.Algorithm = algo
	}
	if cmd.Flags().Changed("delay") {
		delay, err := viz.ParseDelay(solveDelayMS)
		if err != nil {
			return nil, err
		}
		run.Delay = delay
	}
	if cmd.Flags().Changed("all-goals") {
		run.AllGoals = solveAllGoals
	}

	return run, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	run, err := solveSettings(cmd, args)
	if err != nil {
		return err
	}

	in := os.Stdin
	if run.GridPath != "-" {
		f, err := os.Open(run.GridPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	board, err := gridio.Parse(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", run.GridPath, err)
	}
	slog.Debug("board loaded",
		"path", run.GridPath,
		"rows", board.Rows(),
		"cols", board.Cols(),
		"algorithm", run.Algorithm.String())

	var src search.Source
	if run.AllGoals {
		src, err = tour.New(board, run.Algorithm)
	} else {
		src, err = search.New(board, run.Algorithm)
	}
	if errors.Is(err, grid.ErrMissingStart) || errors.Is(err, grid.ErrMissingGoal) {
		return fmt.Errorf("invalid grid: %w", err)
	}
	if err != nil {
		return err
	}

	opts := []viz.Option{viz.WithDelay(run.Delay)}
	if solvePlain {
		opts = append(opts, viz.WithPlain())
	}
	ren, err := viz.NewRenderer(board, os.Stdout, opts...)
	if err != nil {
		return err
	}

	switch err := ren.Play(cmd.Context(), src); {
	case errors.Is(err, search.ErrNoPath):
		// Expected outcome, reported as a notice rather than a failure.
		fmt.Fprintln(os.Stdout, "no reachable goal from here — explored everything it could")
		return nil
	default:
		return err
	}
}
