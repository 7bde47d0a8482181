package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/config"
)

func newNewCmd(a *app) *cobra.Command {
	var (
		rows, cols int
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "new <scenario.yaml>",
		Short: "Write a starter scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists; pass --force to overwrite", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			cfg := config.Default()
			cfg.Rows, cfg.Cols = rows, cols
			cfg.EnsureEndpoints()
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.Write(path); err != nil {
				return err
			}
			a.log.Info("scenario written", "path", path)
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)

			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 20, "board rows")
	cmd.Flags().IntVar(&cols, "cols", 20, "board columns")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}
