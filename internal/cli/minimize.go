package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geange/minimizer"
	"github.com/geange/minimizer/internal/machinefile"
	"github.com/geange/minimizer/internal/render"
)

func newMinimizeCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "minimize FILE",
		Short: "Minimize a machine and print the result",
		Long: `Loads the machine described in FILE, validates it and prints the removed
inaccessible states, the partition history and the minimized transition table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Format
			}

			t, err := loadValid(a, args[0])
			if err != nil {
				return err
			}

			res := minimizer.Minimize(t, minimizer.WithLogger(a.log))
			a.log.Info("minimized",
				zap.String("file", args[0]),
				zap.Int("states", len(t.States)),
				zap.Int("minimized", res.Machine.Len()))

			return render.Write(cmd.OutOrStdout(), format, res)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (text, yaml, json)")
	return cmd
}

// loadValid reads path and rejects tables Minimize must not be given.
func loadValid(a *app, path string) (minimizer.Table, error) {
	t, err := machinefile.Load(path)
	if err != nil {
		return t, err
	}
	if err := minimizer.Validate(t); err != nil {
		a.log.Debug("validation failed", zap.String("file", path), zap.Error(err))
		return t, fmt.Errorf("%s: invalid machine: %w", path, err)
	}
	return t, nil
}
