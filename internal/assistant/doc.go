// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package assistant provides the HTTP client for the remote chat assistant.
//
// Two endpoints are used, both relative to a configurable base origin:
//
//   - POST /api/chat        {"text", "chat_history"} -> {"response"}
//   - POST /api/save-query  {"text"}                 -> ignored
//
// # Key Types
//
//   - Client: HTTP client for both endpoints
//   - ChatRequest / ChatResponse: wire shapes, validated at the boundary
//   - StatusError: non-2xx reply from the assistant
//
// # Usage
//
//	client := assistant.NewClient("http://localhost:8000").
//	    WithLogger(logger)
//	reply, err := client.Chat(ctx, "Hi", nil)
//	if err != nil {
//	    // transport failure, StatusError or ErrMalformedResponse
//	}
//
// The client never retries. Callers decide what a failure means to the user.
package assistant
