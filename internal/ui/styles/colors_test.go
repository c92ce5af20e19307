// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// COLOR TESTS
// =============================================================================

func TestAdaptiveColorsDefined(t *testing.T) {
	colors := map[string]lipgloss.AdaptiveColor{
		"Brand":            Brand,
		"BrandDeep":        BrandDeep,
		"Cyan":             Cyan,
		"Rose":             Rose,
		"Surface":          Surface,
		"SurfaceDim":       SurfaceDim,
		"Overlay":          Overlay,
		"OverlayDim":       OverlayDim,
		"TextPrimary":      TextPrimary,
		"TextMuted":        TextMuted,
		"TextInverse":      TextInverse,
		"UserBubbleBg":     UserBubbleBg,
		"UserBubbleFg":     UserBubbleFg,
		"UserBubbleBorder": UserBubbleBorder,
		"BotBubbleBg":      BotBubbleBg,
		"BotBubbleFg":      BotBubbleFg,
		"BotBubbleBorder":  BotBubbleBorder,
	}

	for name, c := range colors {
		if !strings.HasPrefix(c.Light, "#") || len(c.Light) != 7 {
			t.Errorf("%s.Light = %q, want #RRGGBB", name, c.Light)
		}
		if !strings.HasPrefix(c.Dark, "#") || len(c.Dark) != 7 {
			t.Errorf("%s.Dark = %q, want #RRGGBB", name, c.Dark)
		}
	}
}

// =============================================================================
// ICON TESTS
// =============================================================================

func TestIcons(t *testing.T) {
	if Icons(true) != ASCIIIcons {
		t.Error("Icons(true) should return ASCII icons")
	}
	if Icons(false) != EmojiIcons {
		t.Error("Icons(false) should return emoji icons")
	}

	for _, r := range ASCIIIcons.Launcher + ASCIIIcons.Close + ASCIIIcons.Send + ASCIIIcons.Handle {
		if r > 127 {
			t.Errorf("ASCII icon set contains non-ASCII rune %q", r)
		}
	}
}

func TestIconsNonEmpty(t *testing.T) {
	for name, set := range map[string]IconSet{"emoji": EmojiIcons, "ascii": ASCIIIcons} {
		if set.Launcher == "" || set.Close == "" || set.Send == "" || set.Handle == "" {
			t.Errorf("%s icon set has empty glyphs: %+v", name, set)
		}
	}
}
