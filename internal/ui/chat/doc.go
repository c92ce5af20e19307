// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the floating chat widget for the chatwidget TUI.

The widget is a launcher button pinned to the bottom-right of the terminal
that opens a resizable panel. The panel holds a header with a close control,
the scrolling transcript, an input box with a send button, and a key hint
footer.

# Key Components

## Model (model.go)

The Model struct is the Bubble Tea model that owns all widget state:
  - Panel visibility (open or closed)
  - The send pipeline status (idle or sending)
  - The append-only transcript, seeded with a bot greeting
  - Panel width in pixels and the resize controller

## Send Pipeline (pipeline.go)

A send appends the user message, clears and disables the input, and issues
two requests to the assistant backend: a fire-and-forget query log and the
chat request. The chat outcome always appends exactly one bot message,
either the reply text or a fixed fallback when the call failed.

## Mouse (mouse.go) and Layout (layout.go)

Mouse cell motion drives the launcher, the close control, the send button
and the drag handle on the panel's left edge. Dragging left widens the
panel; the width never drops below the configured floor.

## Scroll (scroll.go)

After every transcript change the view springs to the newest message.

# Usage

	m := chat.New(chat.Options{Config: cfg, Logger: logger})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
*/
package chat
