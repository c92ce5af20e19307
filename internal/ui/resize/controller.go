// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package resize tracks the pointer-drag gesture that changes the chat panel
// width.
//
// The handle sits on the panel's left edge, so dragging toward smaller X grows
// the panel:
//
//	width = max(MinWidth, startWidth + (startX - x))
//
// The controller is a small state machine, idle or dragging. A drag session
// exists only between Begin and End and is dropped unconditionally on End.
// Coordinates and widths are in pixels; callers working in terminal cells
// convert with a cell width before calling in.
package resize

import "errors"

// MinWidth is the narrowest the panel can be dragged to, in pixels.
const MinWidth = 280

// ErrAlreadyDragging is returned by Begin while a session is active.
var ErrAlreadyDragging = errors.New("resize: drag already in progress")

// Session is the ephemeral record of one drag gesture.
type Session struct {
	PanelID    string // panel the handle belongs to
	StartX     int    // pointer X at press
	StartWidth int    // panel width at press
}

// Controller is the resize state machine. The zero value is idle and uses
// MinWidth as its floor.
type Controller struct {
	minWidth int
	session  *Session
}

// NewController creates a controller with a custom width floor. A floor of
// zero or less falls back to MinWidth.
func NewController(minWidth int) Controller {
	if minWidth <= 0 {
		minWidth = MinWidth
	}
	return Controller{minWidth: minWidth}
}

// MinWidth returns the width floor in effect.
func (c *Controller) MinWidth() int {
	if c.minWidth <= 0 {
		return MinWidth
	}
	return c.minWidth
}

// Begin starts a drag on panelID with the pointer at x and the panel at width.
func (c *Controller) Begin(panelID string, x, width int) error {
	if c.session != nil {
		return ErrAlreadyDragging
	}
	c.session = &Session{
		PanelID:    panelID,
		StartX:     x,
		StartWidth: width,
	}
	return nil
}

// Move computes the panel width for a pointer at x. ok is false when no drag
// is active, in which case the caller must leave the width alone.
func (c *Controller) Move(x int) (width int, ok bool) {
	if c.session == nil {
		return 0, false
	}
	return Width(c.session.StartWidth, c.session.StartX, x, c.MinWidth()), true
}

// End finishes the drag and discards the session. Calling End while idle is a
// no-op.
func (c *Controller) End() {
	c.session = nil
}

// Dragging reports whether a session is active.
func (c *Controller) Dragging() bool {
	return c.session != nil
}

// Session returns a copy of the active session.
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Width applies the resize rule. There is no upper bound.
func Width(startWidth, startX, x, minWidth int) int {
	return max(minWidth, startWidth+(startX-x))
}
