// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the chat widget.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatwidget/internal/ui/styles"
	"github.com/jeranaias/chatwidget/internal/util"
)

// =============================================================================
// HEADER COMPONENT - Panel title bar with close control
// =============================================================================

// HeaderHeight is the number of rows the header occupies.
const HeaderHeight = 1

// Header represents the panel title bar.
type Header struct {
	Title string // Panel title
	Width int    // Available width in columns
	theme *styles.Theme
}

// NewHeader creates a new Header component.
func NewHeader(theme *styles.Theme, title string) *Header {
	return &Header{
		Title: title,
		Width: 40,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetTitle updates the header title.
func (h *Header) SetTitle(title string) {
	h.Title = title
}

// CloseBounds returns the half-open column range [start, end) of the close
// control, relative to the header's left edge.
func (h *Header) CloseBounds() (start, end int) {
	closeWidth := lipgloss.Width(h.theme.Icons.Close)
	pad := h.theme.Header.GetPaddingRight()
	end = h.Width - pad
	start = end - closeWidth
	return max(0, start), max(0, end)
}

// HitClose reports whether column x (relative to the header) lands on the close control.
func (h *Header) HitClose(x int) bool {
	start, end := h.CloseBounds()
	return x >= start && x < end
}

// View renders the header: title on the left, close control on the right.
func (h *Header) View() string {
	if h.Width <= 0 {
		return ""
	}

	padL := h.theme.Header.GetPaddingLeft()
	padR := h.theme.Header.GetPaddingRight()
	closeIcon := h.theme.Icons.Close
	closeWidth := lipgloss.Width(closeIcon)

	// One column gap between title and close control.
	titleRoom := h.Width - padL - padR - closeWidth - 1
	title := util.TruncateWidth(h.Title, titleRoom)

	gap := h.Width - padL - padR - lipgloss.Width(title) - closeWidth
	if gap < 0 {
		gap = 0
	}

	row := h.theme.HeaderTitle.Render(title) +
		h.theme.HeaderTitle.Render(strings.Repeat(" ", gap)) +
		h.theme.HeaderClose.Render(closeIcon)

	return h.theme.Header.
		MaxWidth(h.Width).
		Render(row)
}
