// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatwidget/internal/util"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// View renders the widget: the launcher pinned bottom-right and, when open,
// the panel hanging above it against the right edge.
// Layout: top area (panel or hint) + launcher row + one blank margin row.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	g := m.layout()
	open := m.panel == PanelOpen

	var top string
	if open {
		top = lipgloss.Place(m.width, g.launcher.Y, lipgloss.Right, lipgloss.Top, m.renderPanel(g))
	} else {
		hint := m.theme.Muted.Render(m.help.ShortHelpView(m.keyMap.ClosedHelp()))
		top = lipgloss.Place(m.width, g.launcher.Y, lipgloss.Left, lipgloss.Bottom, " "+hint)
	}

	launcher := lipgloss.PlaceHorizontal(m.width, lipgloss.Right,
		m.launcher.View(open)+strings.Repeat(" ", launcherMargin))

	return lipgloss.JoinVertical(lipgloss.Left, top, launcher, "")
}

// =============================================================================
// PANEL
// =============================================================================

// renderPanel renders the resize handle beside the panel body.
func (m Model) renderPanel(g geometry) string {
	if g.panel.W <= 0 || g.panel.H <= 0 {
		return ""
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		m.viewport.View(),
		m.renderInputRow(g),
		m.renderFooter(g),
	)
	body = m.theme.Panel.
		Width(g.header.W).
		MaxWidth(g.header.W).
		Height(g.panel.H).
		MaxHeight(g.panel.H).
		Render(body)

	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderHandle(g), body)
}

// renderHandle draws the drag handle as a full-height column.
func (m Model) renderHandle(g geometry) string {
	if g.handle.W == 0 {
		return ""
	}
	style := m.theme.ResizeHandle
	if m.resizer.Dragging() {
		style = m.theme.ResizeHandleActive
	}
	glyph := style.Render(m.theme.Icons.Handle)
	lines := make([]string, g.handle.H)
	for i := range lines {
		lines[i] = glyph
	}
	return strings.Join(lines, "\n")
}

// renderInputRow draws the input box with the send control to its right.
func (m Model) renderInputRow(g geometry) string {
	box := m.theme.InputBox
	if m.input.Focused() {
		box = m.theme.InputBoxFocused
	}
	input := box.
		Width(max(1, g.input.W-box.GetHorizontalBorderSize())).
		Render(m.input.View())

	send := lipgloss.Place(g.send.W, g.send.H, lipgloss.Center, lipgloss.Center, m.sendButton().View())

	return lipgloss.JoinHorizontal(lipgloss.Top, input, " ", send)
}

// renderFooter draws the key hints under the input, or the current notice.
func (m Model) renderFooter(g geometry) string {
	style := m.theme.Status.Width(g.footer.W).MaxWidth(g.footer.W)

	if m.notice.text != "" {
		room := max(0, g.footer.W-style.GetHorizontalPadding())
		text := util.TruncateWidth(m.notice.text, room)
		if m.notice.isError {
			text = m.theme.Error.Render(text)
		}
		return style.Render(text)
	}
	return style.Render(m.help.ShortHelpView(m.keyMap.ShortHelp()))
}
