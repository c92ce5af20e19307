// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the chatwidget command line.
//
// Running chatwidget with no subcommand starts the widget in the alternate
// screen with mouse reporting enabled. The configuration file is watched
// while the widget runs, and changes are applied without a restart.
//
// # Commands
//
//   - chatwidget: start the widget
//   - chatwidget version: print build information
//   - chatwidget config show: print the effective configuration as TOML
//   - chatwidget config path: print the configuration file path
//   - chatwidget config init: write a default configuration file
//
// Global flags override the configuration file and CHATWIDGET_* environment
// variables. Errors map to exit codes through ExitCode.
package cli
