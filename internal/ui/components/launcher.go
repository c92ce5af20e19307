// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatwidget/internal/ui/styles"
)

// =============================================================================
// LAUNCHER BUTTON
// =============================================================================

// Launcher is the floating button that opens and closes the panel.
type Launcher struct {
	theme *styles.Theme
}

// NewLauncher creates a launcher button.
func NewLauncher(theme *styles.Theme) Launcher {
	return Launcher{theme: theme}
}

// View renders the button. An open panel shows the close glyph instead.
func (l Launcher) View(open bool) string {
	if open {
		return l.theme.Launcher.Render(l.theme.Icons.Close)
	}
	return l.theme.Launcher.Render(l.theme.Icons.Launcher)
}

// Size returns the rendered width and height.
func (l Launcher) Size(open bool) (width, height int) {
	v := l.View(open)
	return lipgloss.Width(v), lipgloss.Height(v)
}

// Bounds returns the launcher rectangle when pinned to the bottom-right
// corner of a screen of the given size, leaving margin cells around it.
func (l Launcher) Bounds(open bool, screenW, screenH, margin int) Rect {
	w, h := l.Size(open)
	return Rect{
		X: max(0, screenW-w-margin),
		Y: max(0, screenH-h-margin),
		W: w,
		H: h,
	}
}

// =============================================================================
// SEND BUTTON
// =============================================================================

// SendButton renders the send control. It is disabled while the input is
// blank or a send is in flight.
type SendButton struct {
	theme   *styles.Theme
	Enabled bool
	// Busy replaces the label while a send is in flight, usually a spinner frame.
	Busy string
}

// NewSendButton creates a disabled send button.
func NewSendButton(theme *styles.Theme) SendButton {
	return SendButton{theme: theme}
}

// View renders the button in its enabled or disabled style.
func (b SendButton) View() string {
	label := b.theme.Icons.Send
	if b.Busy != "" {
		// Keep the button width stable while the spinner runs.
		label = lipgloss.PlaceHorizontal(lipgloss.Width(label), lipgloss.Center, b.Busy)
	}
	if b.Enabled {
		return b.theme.SendButton.Render(label)
	}
	return b.theme.SendButtonDisabled.Render(label)
}

// Width returns the rendered width.
func (b SendButton) Width() int {
	return lipgloss.Width(b.View())
}

// =============================================================================
// GEOMETRY
// =============================================================================

// Rect is a screen rectangle in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
