// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/chatwidget/internal/config"
	"github.com/jeranaias/chatwidget/internal/logging"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Options holds the global flags. Flags the user did not set leave the
// loaded configuration untouched.
type Options struct {
	ConfigPath string
	BaseURL    string
	Open       bool
	Theme      string
	ASCII      bool
	Markdown   bool
	LogLevel   string
	LogPath    string

	flags interface{ Changed(string) bool }
}

// changed reports whether the named flag was given on the command line.
func (o *Options) changed(name string) bool {
	return o.flags != nil && o.flags.Changed(name)
}

// apply copies every explicitly set flag onto cfg.
func (o *Options) apply(cfg *config.Config) {
	if o.changed("base-url") {
		cfg.Assistant.BaseURL = o.BaseURL
	}
	if o.changed("open") {
		cfg.Panel.StartOpen = o.Open
	}
	if o.changed("theme") {
		cfg.UI.Theme = o.Theme
	}
	if o.changed("ascii") {
		cfg.UI.ASCIIIcons = o.ASCII
	}
	if o.changed("markdown") {
		cfg.UI.Markdown = o.Markdown
	}
	if o.changed("log-level") {
		cfg.Log.Level = o.LogLevel
	}
	if o.changed("log-path") {
		cfg.Log.Path = o.LogPath
	}
}

// loadConfig reads the configuration file (or defaults), then applies the
// environment and the command-line flags, in that order.
func (o *Options) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.ConfigPath != "" {
		cfg, err = config.LoadFromPath(o.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	o.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return nil, err
	}
	return cfg, nil
}

// watchPath is the file watched for live reloads.
func (o *Options) watchPath() (string, error) {
	if o.ConfigPath != "" {
		return o.ConfigPath, nil
	}
	if path := config.ResolvePath(); path != "" {
		return path, nil
	}
	return config.ConfigPathTOML()
}

// =============================================================================
// ROOT COMMAND
// =============================================================================

// NewRootCommand builds the chatwidget command tree.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	root := &cobra.Command{
		Use:   "chatwidget",
		Short: "Floating assistant chat widget for the terminal",
		Long: `chatwidget shows a launcher button in the bottom-right corner of the
terminal. Click it (or press ctrl+o) to open a chat panel that talks to an
assistant backend over HTTP. Drag the panel's left edge to resize it.

Configuration is read from ~/.chatwidget/config.toml and reloaded when the
file changes. Environment variables (CHATWIDGET_*) and flags override it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWidget(cmd, opts)
		},
	}
	opts.flags = root.PersistentFlags()

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Config file (default: ~/.chatwidget/config.toml)")
	flags.StringVar(&opts.BaseURL, "base-url", "", "Assistant backend origin, e.g. http://localhost:8000")
	flags.BoolVar(&opts.Open, "open", false, "Start with the panel open")
	flags.StringVar(&opts.Theme, "theme", "", "Color theme: auto, dark or light")
	flags.BoolVar(&opts.ASCII, "ascii", false, "Use ASCII icons instead of emoji")
	flags.BoolVar(&opts.Markdown, "markdown", false, "Render assistant replies as markdown")
	flags.StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&opts.LogPath, "log-path", "", "Log file (default: ~/.chatwidget/chatwidget.log)")

	root.AddCommand(newVersionCommand())
	root.AddCommand(newConfigCommand(opts))
	return root
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return ExitCode(err)
}

// =============================================================================
// VERSION COMMAND
// =============================================================================

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), versionString())
		},
	}
}

func versionString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "chatwidget %s\n", Version)
	fmt.Fprintf(&b, "  commit: %s\n", GitCommit)
	fmt.Fprintf(&b, "  built:  %s\n", BuildDate)
	fmt.Fprintf(&b, "  go:     %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return b.String()
}
