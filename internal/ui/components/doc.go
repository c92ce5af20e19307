// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the reusable pieces the chat widget draws.

Each component is styled through a *styles.Theme and is either a plain
renderer or a small Bubble Tea sub-model.

# Components

Launcher (launcher.go) - Floating button pinned to the bottom-right corner.
Header (header.go) - Panel title bar with a close control and its hitbox.
BubbleRenderer (bubble.go) - Right-aligned user bubbles, left-aligned bot bubbles.
TypingIndicator (typing.go) - Animated bubble shown while a reply is pending.
SendButton (launcher.go) - Send control with enabled and disabled styles.

# Usage

	theme := styles.NewTheme(cfg.UI.Theme, cfg.UI.ASCIIIcons)
	bubbles := components.NewBubbleRenderer(theme, cfg.UI.Markdown)
	content := bubbles.RenderAll(transcript.Messages(), width)
*/
package components
