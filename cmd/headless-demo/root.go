package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/comalice/headless/internal/config"
	"github.com/comalice/headless/internal/logger"
)

type rootFlags struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "headless-demo",
		Short:         "Drive headless widget state machines from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file (default "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override the configured log level")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newDotCmd())
	cmd.AddCommand(newSnapshotCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func loadConfig(flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
		if err := config.Validate(cfg); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

// openLogger writes to path when given, otherwise to w. The returned
// function closes the log file.
func openLogger(cfg config.Config, path string, w io.Writer) (*logger.Logger, func(), error) {
	noop := func() {}
	opts := logger.Options{Level: cfg.Log.Level, HumanReadable: cfg.Log.HumanReadable, Writer: w}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("open log file: %w", err)
		}
		opts.Writer = f
		opts.HumanReadable = false
		log, err := logger.New(opts)
		if err != nil {
			f.Close()
			return nil, noop, err
		}
		return log, func() { f.Close() }, nil
	}
	log, err := logger.New(opts)
	if err != nil {
		return nil, noop, err
	}
	return log, noop, nil
}
