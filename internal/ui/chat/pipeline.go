// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jeranaias/chatwidget/internal/assistant"
	"github.com/jeranaias/chatwidget/internal/model"
)

// =============================================================================
// SEND PIPELINE
// =============================================================================

// Send submits raw as a user message. It does nothing while a send is in
// flight or when raw is only whitespace. Otherwise the message is appended,
// the input is cleared and disabled, and two calls go out: the query log,
// whose outcome is ignored, and the chat request, which ends in exactly one
// ChatReplyMsg.
func (m Model) Send(raw string) (Model, tea.Cmd) {
	if m.status != StatusIdle {
		return m, nil
	}
	msg, err := model.NewUserMessage(raw)
	if err != nil {
		return m, nil
	}

	id := uuid.NewString()

	// History is taken before the new message joins the transcript.
	history := m.transcript.UserHistory()
	m.transcript.Append(msg)

	m.input.Reset()
	m.pendingID = id
	typingCmd := m.setStatus(StatusSending)
	m.refreshContent()

	m.logger.Info("query sent",
		zap.String("request_id", id),
		zap.Int("chars", len(msg.Text)),
		zap.Int("history", len(history)),
		zap.Int("messages", m.transcript.Len()))

	cmds := []tea.Cmd{
		saveQueryCmd(m.client, id, msg.Text),
		chatCmd(m.client, id, msg.Text, history),
		typingCmd,
		m.startScroll(),
	}
	return m, tea.Batch(cmds...)
}

// saveQueryCmd logs the query with the backend.
func saveQueryCmd(client *assistant.Client, id, text string) tea.Cmd {
	return func() tea.Msg {
		ctx := assistant.WithRequestID(context.Background(), id)
		return SaveQueryDoneMsg{RequestID: id, Err: client.SaveQuery(ctx, text)}
	}
}

// chatCmd asks the assistant for a reply.
func chatCmd(client *assistant.Client, id, text string, history []string) tea.Cmd {
	return func() tea.Msg {
		ctx := assistant.WithRequestID(context.Background(), id)
		reply, err := client.Chat(ctx, text, history)
		return ChatReplyMsg{RequestID: id, Reply: reply, Err: err}
	}
}

// handleChatReply appends the bot reply, or the fallback text when the call
// failed, and re-enables the input.
func (m Model) handleChatReply(msg ChatReplyMsg) (tea.Model, tea.Cmd) {
	if m.status != StatusSending || msg.RequestID != m.pendingID {
		m.logger.Debug("stale reply dropped", zap.String("request_id", msg.RequestID))
		return m, nil
	}

	text := msg.Reply
	if msg.Err != nil {
		m.logger.Error("assistant call failed",
			zap.String("request_id", msg.RequestID),
			zap.String("kind", assistant.Kind(msg.Err)),
			zap.Error(msg.Err))
		text = FallbackReply
	} else {
		m.logger.Info("reply received",
			zap.String("request_id", msg.RequestID),
			zap.Int("chars", len(text)))
	}

	m.transcript.Append(model.NewBotMessage(text))
	m.pendingID = ""
	m.setStatus(StatusIdle)
	focusCmd := m.applyFocus()
	m.refreshContent()
	scrollCmd := m.startScroll()

	return m, tea.Batch(focusCmd, scrollCmd)
}

// handleSaveQueryDone records the outcome of the query log call.
func (m Model) handleSaveQueryDone(msg SaveQueryDoneMsg) Model {
	if msg.Err != nil {
		m.logger.Warn("save query failed",
			zap.String("request_id", msg.RequestID),
			zap.String("kind", assistant.Kind(msg.Err)),
			zap.Error(msg.Err))
		return m
	}
	m.logger.Debug("query saved", zap.String("request_id", msg.RequestID))
	return m
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
