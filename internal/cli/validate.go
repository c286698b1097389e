package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/geange/minimizer"
	"github.com/geange/minimizer/internal/machinefile"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a machine description",
		Long:  `Reports every problem that would keep FILE from being minimized: bad labels, duplicates, empty cells and transitions to undeclared states.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := machinefile.Load(args[0])
			if err != nil {
				return err
			}

			errs := multierr.Errors(minimizer.Validate(t))
			if len(errs) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s, %d states, %d input symbols)\n",
					args[0], t.Variant, len(t.States), len(t.Alphabet))
				return nil
			}

			for _, e := range errs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", args[0], e)
			}
			return fmt.Errorf("%s: %d problem(s) found", args[0], len(errs))
		},
	}
}
