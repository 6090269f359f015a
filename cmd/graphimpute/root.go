package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphimpute/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}
	root := &cobra.Command{
		Use:   "graphimpute",
		Short: "Impute missing node attributes from graph structure",
		Long: `graphimpute reads a node attribute file and an edge list, fills the
missing attribute values (written as #) and writes the completed table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&gf.configPath, "config", "", "YAML run configuration")
	pf.StringVar(&gf.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&gf.logFormat, "log-format", "", "log format: text, json")

	root.AddCommand(newRunCmd(gf), newInspectCmd(gf), newGenerateCmd(gf))
	return root
}

// load reads the configuration file and applies the global flag overrides.
func (gf *globalFlags) load(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(gf.configPath)
	if err != nil {
		return cfg, nil, err
	}
	if gf.logLevel != "" {
		cfg.Log.Level = gf.logLevel
	}
	if gf.logFormat != "" {
		cfg.Log.Format = gf.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}
	return cfg, config.NewLogger(cfg.Log, cmd.ErrOrStderr()), nil
}
