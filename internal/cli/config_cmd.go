// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jeranaias/chatwidget/internal/config"
)

// =============================================================================
// CONFIG COMMAND
// =============================================================================

func newConfigCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}
	cmd.AddCommand(newConfigShowCommand(opts))
	cmd.AddCommand(newConfigPathCommand(opts))
	cmd.AddCommand(newConfigInitCommand(opts))
	return cmd
}

// config show prints the effective configuration as TOML.
func newConfigShowCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return configError("config", "load", err)
			}
			data, err := config.EncodeTOML(cfg)
			if err != nil {
				return configError("config", "encode", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// config path prints the file the widget reads and watches.
func newConfigPathCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.watchPath()
			if err != nil {
				return configError("config", "path", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

// config init writes a default configuration file.
func newConfigInitCommand(opts *Options) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.ConfigPath
			if path == "" {
				var err error
				if path, err = config.ConfigPathTOML(); err != nil {
					return configError("config", "init", err)
				}
			}

			if filepath.Ext(path) == ".json" {
				return configError("config", "init", fmt.Errorf("%s: init only writes TOML", path))
			}
			if _, err := os.Stat(path); err == nil && !force {
				return configError("config", "init", fmt.Errorf("%s already exists (use --force to overwrite)", path))
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return configError("config", "init", err)
			}

			cfg := config.Default()
			opts.apply(cfg)
			if err := cfg.Validate(); err != nil {
				return configError("config", "init", err)
			}
			save := func() error { return config.SaveTOML(cfg, path) }
			if opts.ConfigPath == "" {
				save = func() error { return config.Save(cfg) }
			}
			if err := save(); err != nil {
				return configError("config", "init", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
