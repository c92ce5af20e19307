// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the chat widget.
package styles

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme modes accepted by NewTheme.
const (
	ModeAuto  = "auto"
	ModeDark  = "dark"
	ModeLight = "light"
)

// Theme holds all the styled components for the widget.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile
	Mode         string

	// Icons drawn by the launcher, header and input row
	Icons IconSet

	renderer *lipgloss.Renderer

	// ==========================================================================
	// LAUNCHER STYLES
	// ==========================================================================

	Launcher lipgloss.Style

	// ==========================================================================
	// PANEL STYLES
	// ==========================================================================

	Panel              lipgloss.Style
	Header             lipgloss.Style
	HeaderTitle        lipgloss.Style
	HeaderClose        lipgloss.Style
	ResizeHandle       lipgloss.Style
	ResizeHandleActive lipgloss.Style

	// ==========================================================================
	// MESSAGE STYLES
	// ==========================================================================

	Messages     lipgloss.Style
	UserBubble   lipgloss.Style
	BotBubble    lipgloss.Style
	TypingBubble lipgloss.Style

	// ==========================================================================
	// INPUT STYLES
	// ==========================================================================

	InputBox           lipgloss.Style
	InputBoxFocused    lipgloss.Style
	SendButton         lipgloss.Style
	SendButtonDisabled lipgloss.Style

	// ==========================================================================
	// STATUS STYLES
	// ==========================================================================

	Status lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
}

// NewTheme creates a theme for stdout in the given mode ("auto", "dark" or "light").
func NewTheme(mode string, asciiIcons bool) *Theme {
	return NewThemeFor(os.Stdout, mode, asciiIcons)
}

// NewThemeFor creates a theme that renders for w. Tests pass io.Discard.
func NewThemeFor(w io.Writer, mode string, asciiIcons bool) *Theme {
	r := lipgloss.NewRenderer(w)

	mode = strings.ToLower(strings.TrimSpace(mode))
	switch mode {
	case ModeDark:
		r.SetHasDarkBackground(true)
	case ModeLight:
		r.SetHasDarkBackground(false)
	default:
		mode = ModeAuto
	}

	t := &Theme{
		IsDark:       r.HasDarkBackground(),
		ColorProfile: r.ColorProfile(),
		Mode:         mode,
		Icons:        Icons(asciiIcons),
		renderer:     r,
	}

	t.initStyles()
	return t
}

// Renderer returns the renderer the styles were built with.
func (t *Theme) Renderer() *lipgloss.Renderer {
	return t.renderer
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	r := t.renderer

	// Launcher
	t.Launcher = r.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Brand).
		Padding(0, 1)

	// Panel
	t.Panel = r.NewStyle().
		Background(Surface).
		Foreground(TextPrimary)

	t.Header = r.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Brand).
		Padding(0, 1)

	t.HeaderTitle = r.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Brand)

	t.HeaderClose = r.NewStyle().
		Foreground(TextInverse).
		Background(Brand)

	t.ResizeHandle = r.NewStyle().
		Foreground(OverlayDim)

	t.ResizeHandleActive = r.NewStyle().
		Bold(true).
		Foreground(Cyan)

	// Messages
	t.Messages = r.NewStyle().
		Padding(0, 1)

	t.UserBubble = r.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 1)

	t.BotBubble = r.NewStyle().
		Foreground(BotBubbleFg).
		Background(BotBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(BotBubbleBorder).
		Padding(0, 1)

	t.TypingBubble = r.NewStyle().
		Foreground(TextMuted).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(BotBubbleBorder).
		Padding(0, 1).
		Italic(true)

	// Input
	t.InputBox = r.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay)

	t.InputBoxFocused = t.InputBox.
		BorderForeground(Brand)

	t.SendButton = r.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Brand).
		Padding(0, 1)

	t.SendButtonDisabled = r.NewStyle().
		Foreground(TextMuted).
		Background(Overlay).
		Padding(0, 1)

	// Status
	t.Status = r.NewStyle().
		Foreground(TextMuted).
		Padding(0, 1)

	t.Muted = r.NewStyle().
		Foreground(TextMuted)

	t.Error = r.NewStyle().
		Foreground(Rose)
}
