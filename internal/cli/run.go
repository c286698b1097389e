package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geange/minimizer"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		input     string
		minimized bool
	)

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Feed an input sequence to a machine",
		Long: `Runs the comma separated --input symbols through the machine in FILE, starting at
its initial state, and prints one output per symbol. With --minimized the
minimized machine is run instead; both produce the same outputs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadValid(a, args[0])
			if err != nil {
				return err
			}

			m := minimizer.BuildMachine(t)
			if minimized {
				m = minimizer.MinimizeMachine(m, minimizer.WithLogger(a.log)).Machine
			}

			inputs := minimizer.ParseLabels(input)
			outputs, err := minimizer.Run(m, inputs)
			if err != nil {
				return err
			}
			a.log.Debug("ran machine", zap.Strings("inputs", inputs), zap.Strings("outputs", outputs))

			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(outputs, ","))
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "comma separated input symbols")
	cmd.Flags().BoolVar(&minimized, "minimized", false, "run the minimized machine")
	return cmd
}
