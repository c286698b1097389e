// Package cli implements the fsmin command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geange/minimizer/internal/config"
	"github.com/geange/minimizer/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

// app carries what PersistentPreRunE prepares for the subcommands.
type app struct {
	configPath string
	logLevel   string

	cfg config.Config
	log *zap.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "fsmin",
		Short: "Minimize Moore and Mealy machines",
		Long: `fsmin reads a Moore or Mealy machine from a YAML file, removes the states that
cannot be reached from the initial state and merges equivalent states, printing
every partition computed on the way.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.Version = Version
	root.SetVersionTemplate("fsmin version {{.Version}}\n")

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newMinimizeCmd(a),
		newValidateCmd(a),
		newRunCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	a.cfg = cfg
	a.log, _ = logging.New(cmd.ErrOrStderr(), level, zap.AddCaller())
	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
