// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

// =============================================================================
// SCROLL TO LATEST
// =============================================================================

const (
	scrollFPS       = 60
	scrollFrequency = 8.0
	scrollDamping   = 1.0
	// maxScrollFrames bounds one animation to three seconds.
	maxScrollFrames = 3 * scrollFPS
)

// scroller animates the transcript view toward its last line with a
// critically damped spring. Each start supersedes the previous animation.
type scroller struct {
	spring harmonica.Spring
	id     int
	pos    float64
	vel    float64
	frames int
	active bool
}

func newScroller() scroller {
	return scroller{
		spring: harmonica.NewSpring(harmonica.FPS(scrollFPS), scrollFrequency, scrollDamping),
	}
}

func (s scroller) frameCmd() tea.Cmd {
	id := s.id
	return tea.Tick(time.Second/scrollFPS, func(time.Time) tea.Msg {
		return scrollFrameMsg{id: id}
	})
}

// startScroll begins a smooth scroll to the newest message.
func (m *Model) startScroll() tea.Cmd {
	m.scroll.id++
	m.scroll.pos = float64(m.viewport.YOffset)
	m.scroll.vel = 0
	m.scroll.frames = 0
	m.scroll.active = true
	return m.scroll.frameCmd()
}

// bottomOffset is the offset at which the last line sits at the bottom.
func (m Model) bottomOffset() int {
	return max(0, m.viewport.TotalLineCount()-m.viewport.Height)
}

// handleScrollFrame advances the active animation by one frame.
func (m Model) handleScrollFrame(msg scrollFrameMsg) (tea.Model, tea.Cmd) {
	if !m.scroll.active || msg.id != m.scroll.id {
		return m, nil
	}

	target := float64(m.bottomOffset())
	m.scroll.pos, m.scroll.vel = m.scroll.spring.Update(m.scroll.pos, m.scroll.vel, target)
	m.scroll.frames++

	settled := math.Abs(target-m.scroll.pos) < 0.5 && math.Abs(m.scroll.vel) < 0.5
	if settled || m.scroll.frames >= maxScrollFrames {
		m.viewport.SetYOffset(int(target))
		m.scroll.active = false
		return m, nil
	}

	m.viewport.SetYOffset(int(math.Round(m.scroll.pos)))
	return m, m.scroll.frameCmd()
}
