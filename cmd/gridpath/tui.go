package main

import (
	"errors"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/stepper"
	"github.com/katalvlaran/gridpath/tui"
)

func newTUICmd(a *app) *cobra.Command {
	var (
		delay   time.Duration
		refresh time.Duration
	)

	cmd := &cobra.Command{
		Use:   "tui [scenario.yaml]",
		Short: "Edit a board and watch searches step by step",
		Long: `Open an interactive board. Move with the arrow keys or hjkl, press
space to place the start, then the end, then to toggle walls. Press a for
A*, d for Dijkstra, r to clear the search and q to quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				return errors.New("tui needs an interactive terminal; use run instead")
			}

			cfg := config.Default()
			if len(args) == 1 {
				var err error
				if cfg, err = config.Load(args[0]); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("delay") {
				cfg.Delay = delay
			}
			g, err := cfg.Grid()
			if err != nil {
				return err
			}

			b := board.FromGrid(g,
				board.WithPacer(stepper.Fixed(cfg.Delay)),
				board.WithLogger(a.log),
			)
			s := board.NewSession(cmd.Context(), b)
			a.log.Debug("tui started", "rows", b.Rows(), "cols", b.Cols(), "algorithm", cfg.SearchAlgorithm().String())

			return tui.Run(s, render.DefaultTheme(), refresh,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", 0, "delay between search steps (overrides the scenario)")
	cmd.Flags().DurationVar(&refresh, "refresh", tui.DefaultRefresh, "screen refresh interval")

	return cmd
}
