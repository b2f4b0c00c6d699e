package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/comalice/headless/internal/production"
	"github.com/comalice/headless/internal/tui"
)

type runOptions struct {
	save    bool
	restore bool
	logFile string
}

func newRunCmd(flags *rootFlags) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Launch the interactive widget demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.save, "save", false, "Save widget snapshots on exit")
	cmd.Flags().BoolVar(&opts.restore, "restore", false, "Restore widget snapshots on start")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write transition logs to this file")

	return cmd
}

func runDemo(ctx context.Context, flags *rootFlags, opts *runOptions) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	// The terminal belongs to the TUI; logs only go to a file.
	log, closeLog, err := openLogger(cfg, opts.logFile, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	widgetLog := log.Component("widgets").Zerolog()
	w, err := tui.NewWidgets(cfg, widgetLog)
	if err != nil {
		return fmt.Errorf("build widgets: %w", err)
	}

	var persister production.Persister
	if opts.save || opts.restore {
		if persister, err = production.NewPersister(cfg.Snapshot.Format, cfg.Snapshot.Dir); err != nil {
			return err
		}
	}
	if persister != nil {
		log.WithFields(map[string]any{"format": cfg.Snapshot.Format, "dir": cfg.Snapshot.Dir}).Debug("snapshot store ready")
	}
	if opts.restore {
		n, err := w.Restore(ctx, persister)
		if err != nil {
			// A bad snapshot should not keep the demo from starting.
			log.Warn(err, "snapshot restore failed, starting fresh")
			if w, err = tui.NewWidgets(cfg, widgetLog); err != nil {
				return fmt.Errorf("build widgets: %w", err)
			}
		} else {
			log.WithFields(map[string]any{"restored": n, "dir": cfg.Snapshot.Dir}).Info("snapshots restored")
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	changes := make(chan production.ChangeRecord, 64)
	publisher := production.NewChannelPublisher(changes)
	defer publisher.Close()
	for _, watched := range w.Watched() {
		detach := publisher.Attach(ctx, watched)
		defer detach()
	}

	final, err := tea.NewProgram(tui.NewModel(w, changes), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		log.Error(err, "demo failed")
		return fmt.Errorf("run demo: %w", err)
	}
	if m, ok := final.(tui.Model); ok {
		log.WithFields(map[string]any{"modes": m.Modes()}).Info("demo closed")
	}

	if opts.save {
		if err := w.Save(ctx, persister); err != nil {
			return fmt.Errorf("save snapshots: %w", err)
		}
		log.WithFields(map[string]any{"dir": cfg.Snapshot.Dir}).Info("snapshots saved")
	}
	return nil
}
