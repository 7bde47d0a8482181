package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/stepper"
)

const clearScreen = "\x1b[H\x1b[2J"

type runFlags struct {
	algorithm string
	delay     time.Duration
	compare   bool
	watch     bool
	plain     bool
	animate   bool
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "Search a scenario and print the result",
		Long: `Search a scenario and print the board with settled cells (o) and the
route (*). Without a scenario an empty 20x20 board is searched corner to
corner.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			if f.watch && path == "" {
				return errors.New("--watch needs a scenario file")
			}

			once := func() error {
				return a.runScenario(cmd.Context(), cmd, path, f)
			}
			if err := once(); err != nil && !f.watch {
				return err
			} else if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
			}
			if !f.watch {
				return nil
			}

			return watchFile(cmd.Context(), path, a.log, func() {
				if err := once(); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
				}
			})
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.algorithm, "algorithm", "a", "", "astar or dijkstra (overrides the scenario)")
	fl.DurationVar(&f.delay, "delay", 0, "delay between animation frames (overrides the scenario)")
	fl.BoolVar(&f.compare, "compare", false, "run both algorithms and compare them")
	fl.BoolVarP(&f.watch, "watch", "w", false, "re-run whenever the scenario file changes")
	fl.BoolVar(&f.plain, "plain", false, "never colour the output")
	fl.BoolVar(&f.animate, "animate", false, "redraw the board after every step")

	return cmd
}

// loadScenario reads path, or returns the default scenario when path is
// empty, with missing endpoints put in the corners.
func loadScenario(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	cfg.EnsureEndpoints()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (a *app) runScenario(ctx context.Context, cmd *cobra.Command, path string, f runFlags) error {
	cfg, err := loadScenario(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("algorithm") {
		alg, err := search.ParseAlgorithm(f.algorithm)
		if err != nil {
			return err
		}
		cfg.Algorithm = alg.String()
	}
	if cmd.Flags().Changed("delay") {
		cfg.Delay = f.delay
	}

	g, err := cfg.Grid()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	draw := drawer(out, f.plain)

	if f.compare {
		cmp, err := search.Compare(ctx, g, search.WithEndpointsFromRoles(), search.WithLogger(a.log))
		if err != nil {
			return err
		}
		printCompare(out, cmp)
		return nil
	}

	var b *board.Board
	opts := []board.Option{board.WithLogger(a.log)}
	if f.animate && isTerminal(out) {
		opts = append(opts,
			board.WithPacer(stepper.Fixed(cfg.Delay)),
			board.WithOnChange(func() { fmt.Fprint(out, clearScreen, draw(b.View())) }),
		)
	}
	b = board.FromGrid(g, opts...)

	res, err := b.Run(ctx, cfg.SearchAlgorithm())
	if err != nil {
		return err
	}
	fmt.Fprint(out, draw(b.View()))
	printResult(out, res)
	if res.Outcome == search.OutcomeExhausted {
		printFewestWalls(out, g, res)
	}

	return nil
}
