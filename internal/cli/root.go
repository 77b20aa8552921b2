// Package cli wires the lagoon command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lagoon/digplan"
	"github.com/katalvlaran/lagoon/internal/config"
	"github.com/katalvlaran/lagoon/internal/logger"
)

// Execute runs the root command and exits 1 on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	debug      bool
	logFile    string
}

// NewRootCmd builds the lagoon command tree.
func NewRootCmd() *cobra.Command {
	var rf rootFlags

	cmd := &cobra.Command{
		Use:          "lagoon",
		Short:        "Measure the lagoon dug along a rectilinear trench plan",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&rf.configPath, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().BoolVar(&rf.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&rf.logFile, "log-file", "", "append JSON logs to this file instead of stderr")

	cmd.AddCommand(areaCmd(&rf), renderCmd(&rf))
	return cmd
}

// loadConfig resolves the configuration file and the persistent flag
// overrides.
func loadConfig(cmd *cobra.Command, rf *rootFlags) (config.Config, error) {
	cfg := config.Default()
	if rf.configPath != "" {
		var err error
		if cfg, err = config.Load(rf.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if cmd.Flags().Changed("debug") {
		cfg.Log.Debug = rf.debug
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.Path = rf.logFile
	}
	return cfg, nil
}

// withLogger installs the global logger for the duration of fn.
func withLogger(cmd *cobra.Command, cfg config.Config, fn func() error) error {
	cleanup, err := logger.Setup(logger.Config{
		Path:   cfg.Log.Path,
		Debug:  cfg.Log.Debug,
		Stderr: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = cleanup() }()

	err = fn()
	if err != nil {
		logger.L().Error("run.failed", "command", cmd.Name(), "err", err)
	}
	return err
}

// readPlan parses the plan from the file named by args, or from stdin when
// no file (or "-") is given. An empty plan is returned as is and rejected
// by the painter as an unclosed loop.
func readPlan(cmd *cobra.Command, args []string) (digplan.Plan, error) {
	var r io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return digplan.Plan{}, err
		}
		defer f.Close()
		r, name = f, args[0]
	}

	plan, err := digplan.Parse(r)
	if err != nil {
		return digplan.Plan{}, fmt.Errorf("%s: %w", name, err)
	}
	logger.L().Debug("plan.loaded", "source", name, "edges", plan.Len())
	return plan, nil
}
