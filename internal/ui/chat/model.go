// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// model.go - Bubble Tea model for the floating chat widget.
//
// The Model owns every piece of widget state: panel visibility, the send
// pipeline status, the transcript, the drag controller and the scroll spring.
// Update fans messages out to the key, mouse, reply and reload handlers;
// layout() is recomputed per event so hit-testing and View agree.
package chat

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jeranaias/chatwidget/internal/assistant"
	"github.com/jeranaias/chatwidget/internal/config"
	"github.com/jeranaias/chatwidget/internal/logging"
	"github.com/jeranaias/chatwidget/internal/model"
	"github.com/jeranaias/chatwidget/internal/ui/components"
	"github.com/jeranaias/chatwidget/internal/ui/resize"
	"github.com/jeranaias/chatwidget/internal/ui/styles"
)

// =============================================================================
// PIPELINE AND PANEL STATE
// =============================================================================

// Status is the state of the send pipeline.
type Status int

const (
	StatusIdle    Status = iota // Ready for a send
	StatusSending               // One assistant call in flight
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSending:
		return "sending"
	default:
		return "unknown"
	}
}

// PanelState is whether the chat panel or only the launcher is shown.
type PanelState int

const (
	PanelClosed PanelState = iota // Launcher only
	PanelOpen                     // Launcher plus panel
)

// String returns the panel state name.
func (p PanelState) String() string {
	if p == PanelOpen {
		return "open"
	}
	return "closed"
}

const (
	// PanelID names the panel a resize session is attached to.
	PanelID = "chat-panel"

	// FallbackReply is appended in place of a reply whenever the assistant call fails.
	FallbackReply = "Sorry, I'm having trouble connecting to the assistant."

	// Placeholder is shown in the empty input.
	Placeholder = "Type your question..."

	// inputHeight is the number of text rows in the input box.
	inputHeight = 2
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Options configures a new Model. Every field is optional.
type Options struct {
	// Config supplies endpoints, panel geometry and presentation settings.
	Config *config.Config
	// Client overrides the assistant client built from Config.
	Client *assistant.Client
	// Logger receives diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger
	// Theme overrides the theme built from Config.
	Theme *styles.Theme
	// UserAgent is sent with every assistant request, including from clients
	// rebuilt on config reload. Empty keeps the client default.
	UserAgent string
}

// Model is the Bubble Tea model for the chat widget.
type Model struct {
	// State
	status    Status
	panel     PanelState
	pendingID string // request ID of the in-flight send
	notice    notice // replaces the footer hints until the next input

	// Configuration
	cfg          *config.Config
	cellWidthPx  int
	panelWidthPx int

	// Collaborators
	client    *assistant.Client
	logger    *zap.Logger
	userAgent string

	// Conversation
	transcript *model.Transcript

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// UI Components
	viewport viewport.Model
	input    textarea.Model
	typing   components.TypingIndicator
	header   *components.Header
	launcher components.Launcher
	bubbles  *components.BubbleRenderer
	help     help.Model
	keyMap   KeyMap

	// Controllers
	resizer resize.Controller
	scroll  scroller
}

// New creates a new chat model.
func New(opts Options) Model {
	cfg := config.Default()
	if opts.Config != nil {
		cfg = opts.Config.Clone()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	client := opts.Client
	if client == nil {
		client = assistant.FromConfig(cfg.Assistant, logger).WithUserAgent(opts.UserAgent)
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme(cfg.UI.Theme, cfg.UI.ASCIIIcons)
	}

	keyMap := DefaultKeyMap()

	// Input box
	ta := textarea.New()
	ta.Placeholder = Placeholder
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(inputHeight)
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys(keyMap.Newline.Keys()...))
	ta.Focus()

	// Transcript view
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true

	h := help.New()
	h.ShortSeparator = "  "

	panel := PanelClosed
	if cfg.Panel.StartOpen {
		panel = PanelOpen
	}

	return Model{
		status:       StatusIdle,
		panel:        panel,
		cfg:          cfg,
		cellWidthPx:  cfg.Panel.CellWidthPx,
		panelWidthPx: cfg.Panel.InitialWidthPx,
		client:       client,
		logger:       logger,
		userAgent:    opts.UserAgent,
		transcript:   model.NewTranscript(cfg.Panel.Greeting),
		theme:        theme,
		viewport:     vp,
		input:        ta,
		typing:       components.NewTypingIndicator(theme),
		header:       components.NewHeader(theme, cfg.Panel.Title),
		launcher:     components.NewLauncher(theme),
		bubbles:      components.NewBubbleRenderer(theme, cfg.UI.Markdown),
		help:         h,
		keyMap:       keyMap,
		resizer:      resize.NewController(cfg.Panel.MinWidthPx),
		scroll:       newScroller(),
	}
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case ChatReplyMsg:
		return m.handleChatReply(msg)

	case SaveQueryDoneMsg:
		return m.handleSaveQueryDone(msg), nil

	case ExportDoneMsg:
		return m.handleExportDone(msg), nil

	case scrollFrameMsg:
		return m.handleScrollFrame(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.typing, cmd = m.typing.Update(msg)
		if m.typing.IsActive() {
			m.refreshContent()
		}
		return m, cmd
	}

	// Cursor blink and other textarea-internal messages.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleResize adapts the layout to a new terminal size. The dragged panel
// width is kept; the panel is only clipped to the screen when drawn.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.relayout()
	return m, nil
}

// handleKey routes key presses. The input row is disabled while sending, so
// text keys are dropped until the reply arrives.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = notice{}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keyMap.Toggle):
		return m.Toggle(), nil
	}

	if m.panel != PanelOpen {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Export):
		return m.Export()
	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.ViewUp()
		return m, nil
	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.ViewDown()
		return m, nil
	case key.Matches(msg, m.keyMap.Submit):
		return m.Send(m.input.Value())
	}

	if m.status == StatusSending {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleConfigReloaded applies a configuration that changed on disk. The
// transcript and any in-flight send are left alone.
func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Config == nil {
		return m, nil
	}
	cfg := msg.Config.Clone()

	m.cfg = cfg
	m.client = assistant.FromConfig(cfg.Assistant, m.logger).WithUserAgent(m.userAgent)
	m.header.SetTitle(cfg.Panel.Title)
	m.bubbles.SetMarkdown(cfg.UI.Markdown)
	// A running drag keeps its pixel scale and floor until release.
	if !m.resizer.Dragging() {
		m.applyPanelScale()
	}
	m.relayout()

	m.logger.Info("config applied",
		zap.String("base_url", m.client.BaseURL()),
		zap.String("title", cfg.Panel.Title))
	return m, nil
}

// =============================================================================
// PANEL VISIBILITY
// =============================================================================

// Toggle flips the panel between open and closed. Nothing else is reset;
// closing mid-drag ends the drag.
func (m Model) Toggle() Model {
	if m.panel == PanelOpen {
		m.panel = PanelClosed
		if m.resizer.Dragging() {
			m.resizer.End()
			m.applyPanelScale()
		}
	} else {
		m.panel = PanelOpen
	}
	m.relayout()
	m.logger.Debug("panel toggled", zap.Stringer("panel", m.panel))
	return m
}

// =============================================================================
// LOADING AND FOCUS
// =============================================================================

// setStatus moves the pipeline between idle and sending and derives the
// disabled state of the input row from it.
func (m *Model) setStatus(s Status) tea.Cmd {
	m.status = s
	if s == StatusSending {
		m.input.Blur()
		return m.typing.Start()
	}
	m.typing.Stop()
	return nil
}

// applyFocus returns focus to the input once it is enabled again. Callers
// invoke it after setStatus(StatusIdle).
func (m *Model) applyFocus() tea.Cmd {
	if m.status != StatusIdle {
		return nil
	}
	return m.input.Focus()
}

// =============================================================================
// CONTENT
// =============================================================================

// applyPanelScale takes the cell width and resize floor from the current
// config. It must not run during a drag: StartX was measured in the old scale.
func (m *Model) applyPanelScale() {
	m.cellWidthPx = m.cfg.Panel.CellWidthPx
	m.resizer = resize.NewController(m.cfg.Panel.MinWidthPx)
}

// relayout pushes the current geometry into the sized components.
func (m *Model) relayout() {
	g := m.layout()

	m.header.SetWidth(g.header.W)
	m.viewport.Width = g.viewport.W
	m.viewport.Height = g.viewport.H
	m.input.SetWidth(max(1, g.input.W-m.theme.InputBox.GetHorizontalFrameSize()))
	m.help.Width = max(0, g.footer.W-m.theme.Status.GetHorizontalFrameSize())

	m.refreshContent()
}

// refreshContent re-renders the transcript, plus the typing indicator while
// a send is pending, into the viewport. It never moves the scroll position.
func (m *Model) refreshContent() {
	if m.viewport.Width <= 0 {
		return
	}
	area := max(1, m.viewport.Width-m.theme.Messages.GetHorizontalFrameSize())

	content := m.bubbles.RenderAll(m.transcript.Messages(), area)
	if typing := m.typing.View(area); typing != "" {
		content += "\n\n" + typing
	}
	m.viewport.SetContent(m.theme.Messages.Render(content))
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Status returns the pipeline status.
func (m Model) Status() Status {
	return m.status
}

// Panel returns whether the panel is open.
func (m Model) Panel() PanelState {
	return m.panel
}

// Messages returns a copy of the transcript.
func (m Model) Messages() []model.Message {
	return m.transcript.Messages()
}

// Notice returns the footer notice, or "" when the key hints are shown.
func (m Model) Notice() string {
	return m.notice.text
}

// InputValue returns the text in the input box.
func (m Model) InputValue() string {
	return m.input.Value()
}

// SetInput replaces the text in the input box.
func (m *Model) SetInput(s string) {
	m.input.SetValue(s)
}

// InputFocused reports whether the input box has focus.
func (m Model) InputFocused() bool {
	return m.input.Focused()
}

// SendEnabled reports whether the send action is available: the pipeline is
// idle and the input holds more than whitespace.
func (m Model) SendEnabled() bool {
	return m.status == StatusIdle && !isBlank(m.input.Value())
}

// PanelWidthPx returns the panel width in pixels.
func (m Model) PanelWidthPx() int {
	return m.panelWidthPx
}

// Resizing reports whether a resize drag is in progress.
func (m Model) Resizing() bool {
	return m.resizer.Dragging()
}

// ScrollOffset returns the transcript view's vertical offset.
func (m Model) ScrollOffset() int {
	return m.viewport.YOffset
}
