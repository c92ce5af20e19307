// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// DefaultGreeting is the bot message every transcript starts with.
const DefaultGreeting = "Hi! How can I help you today?"

// Transcript is the append-only ordered list of messages shown in the chat
// panel. Insertion order is display order. There is no way to remove or edit
// an entry once appended.
//
// A Transcript is owned by the Bubble Tea update loop and is not safe for
// concurrent use.
type Transcript struct {
	messages []Message
}

// NewTranscript creates a transcript seeded with a single bot greeting.
// An empty greeting falls back to DefaultGreeting.
func NewTranscript(greeting string) *Transcript {
	if greeting == "" {
		greeting = DefaultGreeting
	}
	return &Transcript{
		messages: []Message{NewBotMessage(greeting)},
	}
}

// Append adds msg to the end of the transcript.
func (t *Transcript) Append(msg Message) {
	t.messages = append(t.messages, msg)
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Messages returns a copy of all messages in display order.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// At returns the message at index i.
func (t *Transcript) At(i int) (Message, bool) {
	if i < 0 || i >= len(t.messages) {
		return Message{}, false
	}
	return t.messages[i], true
}

// UserHistory returns the text of every message not sent by the bot, oldest
// first. This is the chat_history payload sent to the assistant.
func (t *Transcript) UserHistory() []string {
	history := make([]string, 0, len(t.messages))
	for _, m := range t.messages {
		if m.Sender != SenderBot {
			history = append(history, m.Text)
		}
	}
	return history
}
