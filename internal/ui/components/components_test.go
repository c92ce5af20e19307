// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/chatwidget/internal/model"
	"github.com/jeranaias/chatwidget/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewThemeFor(io.Discard, "dark", true)
}

// =============================================================================
// HEADER TESTS
// =============================================================================

func TestHeader_ViewFitsWidth(t *testing.T) {
	h := NewHeader(testTheme(), "Pragyaan AI Assistant")
	for _, width := range []int{12, 20, 35, 47, 80} {
		h.SetWidth(width)
		view := h.View()
		assert.Equal(t, width, lipgloss.Width(view), "width %d", width)
		assert.Contains(t, view, styles.ASCIIIcons.Close)
	}
}

func TestHeader_TruncatesTitle(t *testing.T) {
	h := NewHeader(testTheme(), "A very long assistant title that cannot fit")
	h.SetWidth(20)
	assert.Contains(t, ansi.Strip(h.View()), "…")
}

func TestHeader_CloseBounds(t *testing.T) {
	h := NewHeader(testTheme(), "Help")
	h.SetWidth(40)

	start, end := h.CloseBounds()
	assert.Equal(t, lipgloss.Width(styles.ASCIIIcons.Close), end-start)

	plain := ansi.Strip(h.View())
	assert.Equal(t, styles.ASCIIIcons.Close, plain[start:end])

	assert.True(t, h.HitClose(start))
	assert.True(t, h.HitClose(end-1))
	assert.False(t, h.HitClose(end))
	assert.False(t, h.HitClose(0))
}

// =============================================================================
// BUBBLE TESTS
// =============================================================================

func TestBubble_UserRightBotLeft(t *testing.T) {
	r := NewBubbleRenderer(testTheme(), false)
	const width = 40

	user, err := model.NewUserMessage("Hi")
	require.NoError(t, err)
	userView := r.Render(user, width)
	botView := r.Render(model.NewBotMessage("Hello"), width)

	for _, line := range strings.Split(userView, "\n") {
		plain := ansi.Strip(line)
		assert.Equal(t, width, lipgloss.Width(line))
		assert.True(t, strings.HasPrefix(plain, " "), "user bubble should be right aligned: %q", plain)
		assert.False(t, strings.HasSuffix(plain, " "), "user bubble should touch the right edge: %q", plain)
	}
	for _, line := range strings.Split(botView, "\n") {
		plain := ansi.Strip(line)
		assert.False(t, strings.HasPrefix(plain, " "), "bot bubble should be left aligned: %q", plain)
	}
}

func TestBubble_PreservesLineBreaks(t *testing.T) {
	r := NewBubbleRenderer(testTheme(), false)

	single := r.Render(model.NewBotMessage("one"), 40)
	multi := r.Render(model.NewBotMessage("one\ntwo\n\nfour"), 40)

	// Border rows plus one row per text line, blank line included.
	assert.Equal(t, 3, lipgloss.Height(single))
	assert.Equal(t, 6, lipgloss.Height(multi))
	assert.Contains(t, ansi.Strip(multi), "four")
}

func TestBubble_WrapsToAreaWidth(t *testing.T) {
	r := NewBubbleRenderer(testTheme(), false)
	text := strings.Repeat("word ", 30) + strings.Repeat("x", 60)

	view := r.Render(model.NewBotMessage(text), 40)
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 40)
	}
}

func TestBubble_EmptyBotReply(t *testing.T) {
	r := NewBubbleRenderer(testTheme(), false)
	view := r.Render(model.NewBotMessage(""), 30)
	assert.Equal(t, 3, lipgloss.Height(view))
}

func TestBubble_RenderAllKeepsOrder(t *testing.T) {
	r := NewBubbleRenderer(testTheme(), false)
	hi, _ := model.NewUserMessage("first question")
	msgs := []model.Message{model.NewBotMessage("greeting"), hi, model.NewBotMessage("answer")}

	plain := ansi.Strip(r.RenderAll(msgs, 50))
	g := strings.Index(plain, "greeting")
	q := strings.Index(plain, "first question")
	a := strings.Index(plain, "answer")
	assert.True(t, g < q && q < a, "order lost: %d %d %d", g, q, a)
}

func TestBubble_MarkdownOnlyForBot(t *testing.T) {
	r := NewBubbleRenderer(testTheme(), true)

	user, _ := model.NewUserMessage("**bold**")
	assert.Contains(t, ansi.Strip(r.Render(user, 60)), "**bold**")

	bot := ansi.Strip(r.Render(model.NewBotMessage("**bold**"), 60))
	assert.Contains(t, bot, "bold")
	assert.NotContains(t, bot, "**bold**")
}

func TestBubble_MarkdownKeepsLineBreaks(t *testing.T) {
	r := NewBubbleRenderer(testTheme(), true)

	view := ansi.Strip(r.Render(model.NewBotMessage("first line\nsecond line\nthird line"), 80))

	rows := map[string]int{}
	for i, line := range strings.Split(view, "\n") {
		for _, want := range []string{"first line", "second line", "third line"} {
			if strings.Contains(line, want) {
				rows[want] = i
			}
		}
	}
	require.Len(t, rows, 3, "missing lines in:\n%s", view)
	assert.Less(t, rows["first line"], rows["second line"])
	assert.Less(t, rows["second line"], rows["third line"])
}

func TestWrapLines(t *testing.T) {
	got := WrapLines([]string{"aaaa bbbb", "", "cccccccccc"}, 4)
	lines := strings.Split(got, "\n")
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 4, "line %q", line)
	}
	assert.Contains(t, lines, "")
}

// =============================================================================
// TYPING INDICATOR TESTS
// =============================================================================

func TestTypingIndicator_Lifecycle(t *testing.T) {
	ti := NewTypingIndicator(testTheme())
	assert.False(t, ti.IsActive())
	assert.Empty(t, ti.View(40))

	cmd := ti.Start()
	require.NotNil(t, cmd)
	assert.True(t, ti.IsActive())
	assert.NotEmpty(t, ti.View(40))

	ti.Stop()
	assert.Empty(t, ti.View(40))

	// Ticks arriving after Stop do not reschedule.
	_, next := ti.Update(spinner.TickMsg{})
	assert.Nil(t, next)
}

func TestTypingIndicator_ASCIIFrames(t *testing.T) {
	ti := NewTypingIndicator(testTheme())
	ti.Start()
	for _, r := range ansi.Strip(ti.View(40)) {
		if r > 127 && r != '╭' && r != '╮' && r != '╰' && r != '╯' && r != '─' && r != '│' {
			t.Fatalf("unexpected glyph %q in ASCII indicator", r)
		}
	}
}

// =============================================================================
// LAUNCHER AND SEND BUTTON TESTS
// =============================================================================

func TestLauncher_BoundsBottomRight(t *testing.T) {
	l := NewLauncher(testTheme())
	w, h := l.Size(false)

	b := l.Bounds(false, 80, 24, 1)
	assert.Equal(t, Rect{X: 80 - w - 1, Y: 24 - h - 1, W: w, H: h}, b)
	assert.True(t, b.Contains(b.X, b.Y))
	assert.True(t, b.Contains(b.X+w-1, b.Y+h-1))
	assert.False(t, b.Contains(b.X+w, b.Y))
	assert.False(t, b.Contains(b.X-1, b.Y))
}

func TestLauncher_ShowsCloseWhenOpen(t *testing.T) {
	l := NewLauncher(testTheme())
	assert.Contains(t, ansi.Strip(l.View(false)), styles.ASCIIIcons.Launcher)
	assert.Contains(t, ansi.Strip(l.View(true)), styles.ASCIIIcons.Close)
}

func TestSendButton_States(t *testing.T) {
	b := NewSendButton(testTheme())
	assert.False(t, b.Enabled)
	assert.Contains(t, ansi.Strip(b.View()), styles.ASCIIIcons.Send)

	b.Enabled = true
	assert.Contains(t, ansi.Strip(b.View()), styles.ASCIIIcons.Send)
	assert.Equal(t, lipgloss.Width(b.View()), b.Width())

	idle := b.Width()
	b.Enabled = false
	b.Busy = "..."
	assert.NotContains(t, ansi.Strip(b.View()), styles.ASCIIIcons.Send)
	assert.Equal(t, idle, b.Width(), "busy button should keep its width")
}
