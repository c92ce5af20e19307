// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the chat widget.
package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/jeranaias/chatwidget/internal/model"
	"github.com/jeranaias/chatwidget/internal/ui/styles"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// BubbleWidthRatio is the widest a bubble may be, as a fraction of the message area.
const BubbleWidthRatio = 0.8

// minBubbleContent keeps very narrow panels readable.
const minBubbleContent = 8

// BubbleRenderer turns transcript messages into aligned bubbles.
// User bubbles sit on the right, bot bubbles on the left.
type BubbleRenderer struct {
	theme    *styles.Theme
	markdown bool

	// glamour renderers are width-specific
	mdWidth    int
	mdRenderer *glamour.TermRenderer
}

// NewBubbleRenderer creates a renderer. With markdown set, bot replies are
// rendered through glamour; user text is always shown verbatim.
func NewBubbleRenderer(theme *styles.Theme, markdown bool) *BubbleRenderer {
	return &BubbleRenderer{
		theme:    theme,
		markdown: markdown,
	}
}

// SetMarkdown toggles markdown rendering for bot replies.
func (b *BubbleRenderer) SetMarkdown(enabled bool) {
	b.markdown = enabled
}

// ContentWidth returns the text width available inside a bubble for an
// area of the given width.
func (b *BubbleRenderer) ContentWidth(areaWidth int) int {
	style := b.theme.BotBubble
	frame := style.GetHorizontalFrameSize()
	inner := int(float64(areaWidth)*BubbleWidthRatio) - frame
	return max(minBubbleContent, inner)
}

// Render renders one message aligned inside an area of the given width.
func (b *BubbleRenderer) Render(msg model.Message, areaWidth int) string {
	inner := b.ContentWidth(areaWidth)

	var style lipgloss.Style
	var body string
	pos := lipgloss.Left

	if msg.IsBot() {
		style = b.theme.BotBubble
		body = b.renderBot(msg, inner)
	} else {
		style = b.theme.UserBubble
		body = WrapLines(msg.Lines(), inner)
		pos = lipgloss.Right
	}

	bubble := style.Render(body)
	return lipgloss.PlaceHorizontal(areaWidth, pos, bubble)
}

// RenderAll renders every message separated by a blank line.
func (b *BubbleRenderer) RenderAll(msgs []model.Message, areaWidth int) string {
	parts := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		parts = append(parts, b.Render(msg, areaWidth))
	}
	return strings.Join(parts, "\n\n")
}

func (b *BubbleRenderer) renderBot(msg model.Message, inner int) string {
	if !b.markdown {
		return WrapLines(msg.Lines(), inner)
	}

	r := b.markdownRenderer(inner)
	if r == nil {
		return WrapLines(msg.Lines(), inner)
	}
	out, err := r.Render(msg.Text)
	if err != nil {
		return WrapLines(msg.Lines(), inner)
	}
	return strings.Trim(out, "\n")
}

func (b *BubbleRenderer) markdownRenderer(width int) *glamour.TermRenderer {
	if b.mdRenderer != nil && b.mdWidth == width {
		return b.mdRenderer
	}

	style := "light"
	if b.theme.IsDark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
		// every reply line starts a new visual line, as in plain mode
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		return nil
	}
	b.mdRenderer = r
	b.mdWidth = width
	return r
}

// WrapLines word-wraps each line to width and hard-wraps words that are still
// too long. Every input line starts a new visual line, blank lines included.
func WrapLines(lines []string, width int) string {
	if width <= 0 {
		return strings.Join(lines, "\n")
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		wrapped := wrap.String(wordwrap.String(line, width), width)
		out = append(out, wrapped)
	}
	return strings.Join(out, "\n")
}
