// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat widget model for the TUI.
//
// This file defines the Bubble Tea message types used by the widget:
//   - Pipeline: assistant replies and query-log outcomes
//   - Scroll: animation frames for the scroll-to-latest spring
//   - Export: transcript export outcomes
//   - Config: live configuration reloads
package chat

import (
	"github.com/jeranaias/chatwidget/internal/config"
)

// =============================================================================
// PIPELINE MESSAGES
// =============================================================================

// ChatReplyMsg carries the outcome of one assistant call.
// Exactly one is produced per accepted send.
type ChatReplyMsg struct {
	RequestID string
	Reply     string
	Err       error
}

// SaveQueryDoneMsg reports the fire-and-forget query log call.
// It only ever affects diagnostics.
type SaveQueryDoneMsg struct {
	RequestID string
	Err       error
}

// =============================================================================
// SCROLL MESSAGES
// =============================================================================

// scrollFrameMsg advances the scroll animation identified by id.
// Frames from a superseded animation are ignored.
type scrollFrameMsg struct {
	id int
}

// =============================================================================
// EXPORT MESSAGES
// =============================================================================

// ExportDoneMsg reports a transcript export. Path is set on success.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigReloadedMsg delivers a configuration that changed on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}
