package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/comalice/headless/internal/production"
	"github.com/comalice/headless/internal/tui"
)

func newSnapshotCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Inspect stored widget snapshots",
	}
	cmd.AddCommand(newSnapshotInitCmd(flags))
	cmd.AddCommand(newSnapshotShowCmd(flags))
	return cmd
}

func newSnapshotInitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Store snapshots of the demo widgets in their initial state",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			log, closeLog, err := openLogger(cfg, "", cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			p, err := production.NewPersister(cfg.Snapshot.Format, cfg.Snapshot.Dir)
			if err != nil {
				return err
			}
			w, err := tui.NewWidgets(cfg, log.Component("widgets").Zerolog())
			if err != nil {
				return err
			}
			if err := w.Save(cmd.Context(), p); err != nil {
				return err
			}
			log.WithFields(map[string]any{"dir": cfg.Snapshot.Dir, "format": cfg.Snapshot.Format}).Info("snapshots written")
			for _, s := range w.Snapshotters() {
				fmt.Fprintln(cmd.OutOrStdout(), s.ID())
			}
			return nil
		},
	}
}

func newSnapshotShowCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <context-id>",
		Short: "Print a stored snapshot as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			p, err := production.NewPersister(cfg.Snapshot.Format, cfg.Snapshot.Dir)
			if err != nil {
				return err
			}
			snap, err := p.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), snap)
		},
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
