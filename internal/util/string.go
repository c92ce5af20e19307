// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across chatwidget packages.
package util

import "github.com/mattn/go-runewidth"

// Ellipsis is appended to text cut by TruncateWidth.
const Ellipsis = "…"

// TruncateWidth truncates s to at most maxWidth terminal columns, appending
// an ellipsis when anything was cut. Wide runes (CJK, emoji) count as 2.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// StringWidth returns the display width of s in terminal columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PixelsToCells converts a pixel width to whole terminal columns, rounding down
// and never returning less than 1 for a positive input.
func PixelsToCells(px, cellWidthPx int) int {
	if px <= 0 {
		return 0
	}
	if cellWidthPx <= 0 {
		cellWidthPx = 1
	}
	return max(1, px/cellWidthPx)
}

// CellsToPixels converts a column count back to pixels.
func CellsToPixels(cells, cellWidthPx int) int {
	if cellWidthPx <= 0 {
		cellWidthPx = 1
	}
	return cells * cellWidthPx
}
