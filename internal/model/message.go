// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
package model

import (
	"errors"
	"strings"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderBot:
		return "Assistant"
	default:
		return string(s)
	}
}

// Valid reports whether s is a known sender.
func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderBot
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// ErrEmptyMessage is returned when a user message has no visible text.
var ErrEmptyMessage = errors.New("message text is empty")

// Message is a single transcript entry. Values are never mutated after
// construction; the transcript stores copies.
type Message struct {
	Text   string `json:"text"`
	Sender Sender `json:"sender"`
}

// NewUserMessage creates a user message. The raw text is kept verbatim but it
// must contain something other than whitespace.
func NewUserMessage(text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyMessage
	}
	return Message{Text: text, Sender: SenderUser}, nil
}

// NewBotMessage creates a bot message. Bot text is whatever the assistant
// returned, including the empty string.
func NewBotMessage(text string) Message {
	return Message{Text: text, Sender: SenderBot}
}

// IsUser returns true if the message was sent by the user.
func (m Message) IsUser() bool {
	return m.Sender == SenderUser
}

// IsBot returns true if the message was sent by the bot.
func (m Message) IsBot() bool {
	return m.Sender == SenderBot
}

// Lines splits the text on newline characters. Every line, including empty
// ones, is rendered on its own visual line inside the message bubble.
func (m Message) Lines() []string {
	return strings.Split(m.Text, "\n")
}
