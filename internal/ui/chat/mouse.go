// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// =============================================================================
// MOUSE HANDLING
// =============================================================================

// handleMouse routes pointer events. While a resize drag is active every
// motion resizes the panel and the release ends the drag, wherever the
// pointer is.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.resizer.Dragging() {
		switch msg.Action {
		case tea.MouseActionMotion:
			if w, ok := m.resizer.Move(m.toPx(msg.X)); ok {
				m.panelWidthPx = w
				m.relayout()
			}
		case tea.MouseActionRelease:
			m.resizer.End()
			m.applyPanelScale()
			m.relayout()
			m.logger.Debug("resize finished", zap.Int("width_px", m.panelWidthPx))
		}
		return m, nil
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	m.notice = notice{}

	g := m.layout()
	open := m.panel == PanelOpen

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if open && g.viewport.Contains(msg.X, msg.Y) {
			m.scroll.active = false
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.MouseButtonLeft:
		return m.handleClick(msg.X, msg.Y, g)
	}

	return m, nil
}

// handleClick dispatches a left press at (x, y).
func (m Model) handleClick(x, y int, g geometry) (tea.Model, tea.Cmd) {
	if g.launcher.Contains(x, y) {
		return m.Toggle(), nil
	}
	if m.panel != PanelOpen {
		return m, nil
	}

	switch {
	case g.handle.Contains(x, y):
		if err := m.resizer.Begin(PanelID, m.toPx(x), m.panelWidthPx); err != nil {
			m.logger.Debug("resize not started", zap.Error(err))
			return m, nil
		}
		m.logger.Debug("resize started", zap.Int("width_px", m.panelWidthPx))
		return m, nil

	case g.header.Contains(x, y):
		if m.header.HitClose(x - g.header.X) {
			return m.Toggle(), nil
		}
		return m, nil

	case g.send.Contains(x, y):
		return m.Send(m.input.Value())

	case g.input.Contains(x, y):
		return m, m.applyFocus()
	}

	return m, nil
}
