// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the chat widget.
//
// All colors are Lip Gloss AdaptiveColor values so the widget reads well on
// both dark and light terminals. The ui.theme setting can pin one variant.
//
// # Key Types
//
//   - Theme: Every style the widget renders with, built from one renderer
//   - IconSet: Launcher, close, send and resize handle glyphs
//
// # Usage
//
//	theme := styles.NewTheme(cfg.UI.Theme, cfg.UI.ASCIIIcons)
//	bubble := theme.UserBubble.Render("Hi")
package styles
