// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the chat widget.
package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatwidget/internal/ui/styles"
)

// =============================================================================
// TYPING INDICATOR
// =============================================================================

// TypingDots is the animation shown while a reply is pending.
var TypingDots = spinner.Spinner{
	Frames: []string{"●∙∙", "∙●∙", "∙∙●", "∙∙∙"},
	FPS:    time.Second / 4,
}

// TypingDotsASCII is TypingDots for terminals without those glyphs.
var TypingDotsASCII = spinner.Spinner{
	Frames: []string{".  ", ".. ", "...", "   "},
	FPS:    time.Second / 4,
}

// TypingIndicator is the bot-side bubble shown while a send is in flight.
// It never becomes part of the transcript.
type TypingIndicator struct {
	spinner  spinner.Model
	theme    *styles.Theme
	isActive bool
}

// NewTypingIndicator creates a stopped indicator.
func NewTypingIndicator(theme *styles.Theme) TypingIndicator {
	s := spinner.New()
	s.Spinner = TypingDots
	if theme.Icons == styles.ASCIIIcons {
		s.Spinner = TypingDotsASCII
	}
	return TypingIndicator{
		spinner: s,
		theme:   theme,
	}
}

// Start activates the indicator and returns the first tick.
func (t *TypingIndicator) Start() tea.Cmd {
	t.isActive = true
	return t.spinner.Tick
}

// Stop deactivates the indicator. Pending ticks are dropped by Update.
func (t *TypingIndicator) Stop() {
	t.isActive = false
}

// IsActive returns whether the indicator is showing.
func (t *TypingIndicator) IsActive() bool {
	return t.isActive
}

// Update advances the animation. Ticks that arrive after Stop end the loop.
func (t TypingIndicator) Update(msg tea.Msg) (TypingIndicator, tea.Cmd) {
	if !t.isActive {
		return t, nil
	}

	var cmd tea.Cmd
	t.spinner, cmd = t.spinner.Update(msg)
	return t, cmd
}

// Frame returns the current animation frame, or "" when stopped.
func (t TypingIndicator) Frame() string {
	if !t.isActive {
		return ""
	}
	return t.spinner.View()
}

// View renders the indicator as a left-aligned bubble, or "" when stopped.
func (t TypingIndicator) View(areaWidth int) string {
	if !t.isActive {
		return ""
	}
	bubble := t.theme.TypingBubble.Render(t.spinner.View())
	return lipgloss.PlaceHorizontal(areaWidth, lipgloss.Left, bubble)
}
