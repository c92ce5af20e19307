// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
//
// # Key Types
//
//   - Message: Immutable record of one chat line with its sender
//   - Sender: Message sender enumeration (user, bot)
//   - Transcript: Append-only ordered list of messages driving the chat view
//
// # Usage
//
// Create a transcript seeded with the greeting and append to it:
//
//	t := model.NewTranscript(model.DefaultGreeting)
//	msg, err := model.NewUserMessage("Hi")
//	if err != nil {
//	    return err
//	}
//	t.Append(msg)
//	history := t.UserHistory() // ["Hi"]
package model
