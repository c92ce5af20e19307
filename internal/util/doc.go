// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across chatwidget packages.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth: Column-aware truncation with ellipsis
//   - StringWidth: Display width helper
//
// Geometry:
//   - PixelsToCells, CellsToPixels: Convert panel widths between pixels and columns
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	// Fit a header title into the panel
//	title := util.TruncateWidth(cfg.Panel.Title, cols-4)
//
//	// Persist the config without exposing partial writes
//	err := util.AtomicWriteFile(path, data, 0600)
package util
