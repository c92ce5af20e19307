// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/chatwidget/internal/config"
	"github.com/jeranaias/chatwidget/internal/export"
)

// =============================================================================
// TRANSCRIPT EXPORT
// =============================================================================

// Export writes a snapshot of the transcript in the background. The outcome
// arrives as an ExportDoneMsg and is shown in the footer.
func (m Model) Export() (Model, tea.Cmd) {
	conv := export.NewConversation(m.header.Title, m.transcript.Messages())
	return m, exportCmd(conv, m.cfg.Export)
}

func exportCmd(conv *export.Conversation, cfg config.ExportConfig) tea.Cmd {
	return func() tea.Msg {
		exporter, err := export.ForFormat(cfg.Format)
		if err != nil {
			return ExportDoneMsg{Err: err}
		}
		path, err := export.ExportToFile(conv, exporter, &export.Options{OutputDir: cfg.Dir})
		return ExportDoneMsg{Path: path, Err: err}
	}
}

// handleExportDone shows the export result until the next key or click.
func (m Model) handleExportDone(msg ExportDoneMsg) Model {
	if msg.Err != nil {
		m.logger.Error("export failed", zap.Error(msg.Err))
		m.notice = notice{text: "Export failed: " + msg.Err.Error(), isError: true}
		return m
	}
	m.logger.Info("transcript exported", zap.String("path", msg.Path))
	m.notice = notice{text: "Saved to " + msg.Path}
	return m
}

// notice is a one-line message that temporarily replaces the footer hints.
type notice struct {
	text    string
	isError bool
}
