// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/jeranaias/chatwidget/internal/ui/components"
	"github.com/jeranaias/chatwidget/internal/util"
)

// =============================================================================
// LAYOUT
// =============================================================================

// launcherMargin is the gap in cells between the launcher and the screen edge.
const launcherMargin = 1

// geometry holds the screen rectangles of every interactive region. Panel
// rectangles are computed even while the panel is closed so the components
// keep a usable size; hit tests check the panel state first.
type geometry struct {
	launcher components.Rect
	panel    components.Rect
	handle   components.Rect
	header   components.Rect
	viewport components.Rect
	input    components.Rect
	send     components.Rect
	footer   components.Rect
}

// inputRows is the input box height including its border.
func (m Model) inputRows() int {
	return inputHeight + m.theme.InputBox.GetVerticalFrameSize()
}

// sendButton returns the send control for the current state.
func (m Model) sendButton() components.SendButton {
	b := components.NewSendButton(m.theme)
	b.Enabled = m.SendEnabled()
	b.Busy = m.typing.Frame()
	return b
}

// layout computes the geometry for the current screen size and panel width.
// The panel hangs from the top-right corner above the launcher. Its pixel
// width is converted to cells and clipped to the screen.
func (m Model) layout() geometry {
	var g geometry

	open := m.panel == PanelOpen
	g.launcher = m.launcher.Bounds(open, m.width, m.height, launcherMargin)

	cols := min(util.PixelsToCells(m.panelWidthPx, m.cellWidthPx), m.width)
	rows := max(0, g.launcher.Y-1)
	g.panel = components.Rect{X: max(0, m.width-cols), Y: 0, W: cols, H: rows}

	// One column resize handle on the left edge.
	g.handle = components.Rect{X: g.panel.X, Y: 0, W: min(1, cols), H: rows}

	cx := g.panel.X + g.handle.W
	cw := max(0, cols-g.handle.W)

	inputRows := m.inputRows()
	vpRows := max(1, rows-components.HeaderHeight-inputRows-1)

	y := 0
	g.header = components.Rect{X: cx, Y: y, W: cw, H: components.HeaderHeight}
	y += components.HeaderHeight

	g.viewport = components.Rect{X: cx, Y: y, W: cw, H: vpRows}
	y += vpRows

	sendW := m.sendButton().Width()
	inputW := max(1, cw-sendW-1)
	g.input = components.Rect{X: cx, Y: y, W: inputW, H: inputRows}
	g.send = components.Rect{X: cx + inputW + 1, Y: y, W: sendW, H: inputRows}
	y += inputRows

	g.footer = components.Rect{X: cx, Y: y, W: cw, H: 1}
	return g
}

// toPx converts a cell column to pixels for the resize controller.
func (m Model) toPx(x int) int {
	return util.CellsToPixels(x, m.cellWidthPx)
}
