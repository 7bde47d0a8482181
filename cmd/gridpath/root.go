package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/render"
)

// app carries what every subcommand shares.
type app struct {
	verbose     bool
	metricsAddr string

	log     *slog.Logger
	metrics *http.Server
}

func newRootCmd() *cobra.Command {
	a := &app{log: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:          "gridpath",
		Short:        "Visualise A* and Dijkstra on a grid",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.setup(cmd.ErrOrStderr())
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.shutdown(cmd.Context())
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log search progress to stderr")
	root.PersistentFlags().StringVar(&a.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")

	root.AddCommand(newRunCmd(a), newTUICmd(a), newNewCmd(a))

	return root
}

func (a *app) setup(stderr io.Writer) {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if a.metricsAddr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	a.metrics = &http.Server{Addr: a.metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := a.metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics server failed", "addr", a.metricsAddr, "err", err)
		}
	}()
	a.log.Info("serving metrics", "addr", a.metricsAddr)
}

func (a *app) shutdown(ctx context.Context) error {
	if a.metrics == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	return a.metrics.Shutdown(ctx)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// drawer picks plain or styled output for w.
func drawer(w io.Writer, plain bool) func(board.View) string {
	if plain || !isTerminal(w) {
		return render.Plain
	}
	theme := render.DefaultTheme()

	return func(v board.View) string { return render.Styled(v, theme) }
}
