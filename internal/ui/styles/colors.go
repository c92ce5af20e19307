// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the chat widget.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// BRAND COLORS
// =============================================================================

// Brand - Launcher button, header bar, send button
var Brand = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"}

// BrandDeep - Hover and pressed states
var BrandDeep = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#1E40AF"}

// Cyan - Resize handle while dragging
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Rose - Logged failures surfaced in the status line
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Panel background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Message area background
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// Overlay - Borders and separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// OverlayDim - Idle resize handle
var OverlayDim = lipgloss.AdaptiveColor{Light: "#D4D4D4", Dark: "#45475A"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextMuted - Placeholder, typing indicator, disabled button
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// TextInverse - Text on brand backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}

// =============================================================================
// MESSAGE BUBBLE COLORS
// =============================================================================

// User message bubble - Brand blue, right aligned
var UserBubbleBg = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#1D4ED8"}
var UserBubbleFg = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#E0F2FE"}
var UserBubbleBorder = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#3B82F6"}

// Bot message bubble - Neutral grey, left aligned
var BotBubbleBg = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#313244"}
var BotBubbleFg = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}
var BotBubbleBorder = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#45475A"}

// =============================================================================
// ICONS
// =============================================================================

// IconSet holds the glyphs the widget draws.
type IconSet struct {
	Launcher string // Floating launcher button
	Close    string // Header close control
	Send     string // Send button label
	Handle   string // Resize handle cell
}

// EmojiIcons match the browser widget's glyphs.
var EmojiIcons = IconSet{
	Launcher: "💬",
	Close:    "✕",
	Send:     "Send",
	Handle:   "┃",
}

// ASCIIIcons are for terminals without emoji or box-drawing fonts.
var ASCIIIcons = IconSet{
	Launcher: "[?]",
	Close:    "[x]",
	Send:     "Send",
	Handle:   "|",
}

// Icons returns the icon set for the ascii_icons setting.
func Icons(ascii bool) IconSet {
	if ascii {
		return ASCIIIcons
	}
	return EmojiIcons
}
