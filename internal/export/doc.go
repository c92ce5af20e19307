// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes the chat transcript to a file on request.
//
// # Key Types
//
//   - Conversation: the transcript snapshot being exported
//   - Exporter: converts a Conversation to bytes in one format
//   - Options: output directory
//
// # Supported Formats
//
//   - Markdown: human-readable, one section per message
//   - JSON: machine-readable, the messages as stored in the transcript
//
// # Usage
//
//	conv := export.NewConversation("Support chat", transcript.Messages())
//	exporter, err := export.ForFormat("markdown")
//	path, err := export.ExportToFile(conv, exporter, &export.Options{OutputDir: dir})
package export
