// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package resize

import (
	"errors"
	"testing"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		name       string
		startWidth int
		startX     int
		x          int
		want       int
	}{
		{name: "no movement", startWidth: 380, startX: 500, x: 500, want: 380},
		{name: "drag left grows", startWidth: 380, startX: 500, x: 400, want: 480},
		{name: "drag right shrinks", startWidth: 380, startX: 500, x: 560, want: 320},
		{name: "clamped at floor", startWidth: 380, startX: 500, x: 700, want: 280},
		{name: "exactly at floor", startWidth: 380, startX: 500, x: 600, want: 280},
		{name: "no upper bound", startWidth: 380, startX: 5000, x: 0, want: 5380},
		{name: "start below floor still floors", startWidth: 100, startX: 10, x: 10, want: 280},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Width(tc.startWidth, tc.startX, tc.x, MinWidth); got != tc.want {
				t.Errorf("Width(%d, %d, %d) = %d, want %d", tc.startWidth, tc.startX, tc.x, got, tc.want)
			}
		})
	}
}

func TestController_DragLifecycle(t *testing.T) {
	var c Controller

	if c.Dragging() {
		t.Fatal("zero controller should be idle")
	}
	if _, ok := c.Move(10); ok {
		t.Fatal("Move while idle must report ok=false")
	}

	if err := c.Begin("panel", 800, 400); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	s, ok := c.Session()
	if !ok || s.PanelID != "panel" || s.StartX != 800 || s.StartWidth != 400 {
		t.Fatalf("Session() = %+v, %v", s, ok)
	}

	for _, step := range []struct{ x, want int }{
		{760, 440},
		{700, 500},
		{900, 300},
		{1000, 280},
	} {
		got, ok := c.Move(step.x)
		if !ok || got != step.want {
			t.Errorf("Move(%d) = %d, %v; want %d", step.x, got, ok, step.want)
		}
	}

	c.End()
	if c.Dragging() {
		t.Fatal("controller should be idle after End")
	}
	if _, ok := c.Move(0); ok {
		t.Error("Move after End must not change width")
	}
	if _, ok := c.Session(); ok {
		t.Error("session should be discarded after End")
	}
}

func TestController_BeginTwice(t *testing.T) {
	var c Controller
	if err := c.Begin("panel", 1, 300); err != nil {
		t.Fatal(err)
	}
	if err := c.Begin("panel", 2, 400); !errors.Is(err, ErrAlreadyDragging) {
		t.Fatalf("second Begin error = %v, want ErrAlreadyDragging", err)
	}
	if s, _ := c.Session(); s.StartX != 1 {
		t.Errorf("second Begin replaced the session: %+v", s)
	}
}

func TestController_EndWhileIdle(t *testing.T) {
	var c Controller
	c.End()
	if c.Dragging() {
		t.Error("End while idle should stay idle")
	}
}

func TestNewController_CustomFloor(t *testing.T) {
	c := NewController(320)
	if c.MinWidth() != 320 {
		t.Fatalf("MinWidth() = %d", c.MinWidth())
	}
	_ = c.Begin("panel", 100, 400)
	if got, _ := c.Move(300); got != 320 {
		t.Errorf("Move clamped to %d, want 320", got)
	}

	fallback := NewController(0)
	if fallback.MinWidth() != MinWidth {
		t.Error("non-positive floor should fall back to MinWidth")
	}
}
