// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jeranaias/chatwidget/internal/config"
	"github.com/jeranaias/chatwidget/internal/logging"
	"github.com/jeranaias/chatwidget/internal/ui/chat"
)

// =============================================================================
// WIDGET
// =============================================================================

// runWidget starts the chat widget and blocks until the user quits.
func runWidget(cmd *cobra.Command, opts *Options) error {
	if !IsInteractive() {
		return ErrNotTerminal
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return configError("chatwidget", "load config", err)
	}

	logger, level, err := logging.New(cfg.Log)
	if err != nil {
		return configError("chatwidget", "start logging", err)
	}
	defer func() { _ = logger.Sync() }()

	width, height := GetTerminalSize()
	logger.Info("starting",
		zap.String("version", Version),
		zap.String("base_url", cfg.Assistant.BaseURL),
		zap.Int("cols", width),
		zap.Int("rows", height))

	m := chat.New(chat.Options{
		Config:    cfg,
		Logger:    logger,
		UserAgent: "chatwidget/" + Version,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if path, err := opts.watchPath(); err != nil {
		logger.Warn("config watch disabled", zap.Error(err))
	} else {
		onChange := newReloader(opts, level, p.Send, logger)
		g.Go(func() error {
			if err := config.Watch(gctx, path, onChange, logger); err != nil {
				logger.Warn("config watch disabled", zap.String("path", path), zap.Error(err))
			}
			return nil
		})
	}

	_, runErr := p.Run()
	cancel()
	_ = g.Wait()

	if runErr != nil {
		logger.Error("widget exited", zap.Error(runErr))
		return fmt.Errorf("chat widget: %w", runErr)
	}
	logger.Info("stopped")
	return nil
}

// newReloader returns the callback for config file changes. Flags keep
// precedence over the file, the log level changes in place, and the rest is
// handed to the widget through send. A changed log path
// only takes effect on restart.
func newReloader(opts *Options, level zap.AtomicLevel, send func(tea.Msg), logger *zap.Logger) func(*config.Config) {
	return func(cfg *config.Config) {
		opts.apply(cfg)
		if err := cfg.Validate(); err != nil {
			logger.Warn("reloaded config rejected", zap.Error(err))
			return
		}

		if lvl, err := logging.ParseLevel(cfg.Log.Level); err == nil {
			level.SetLevel(lvl)
		}

		send(chat.ConfigReloadedMsg{Config: cfg})
	}
}
