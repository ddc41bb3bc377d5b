// Package cmd holds the emlgen commands.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zostay/go-eml/internal/config"
)

type rootOptions struct {
	configFile string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd returns the emlgen command with all its subcommands.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "emlgen",
		Short:        "Build RFC 5322 email messages",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.configFile, "config", "f", "", "YAML file defining the message")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newBuildCmd(opts),
		newInspectCmd(opts),
		newMessageIDCmd(opts),
	)

	return rootCmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	if o.configFile != "" {
		cfg, err := config.LoadFromFile(o.configFile)
		if err != nil {
			return err
		}
		o.cfg = cfg
	} else {
		o.cfg = config.Load()
	}

	if o.logLevel != "" {
		o.cfg.Logging.Level = o.logLevel
	}

	lvl, err := o.cfg.SlogLevel()
	if err != nil {
		return err
	}

	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: lvl,
	}))
	o.logger.Debug("configuration loaded", "file", o.configFile, "level", lvl)

	return nil
}

// Execute runs emlgen with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}
