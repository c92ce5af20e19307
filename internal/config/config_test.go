// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every CHATWIDGET_* override for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CHATWIDGET_BASE_URL",
		"CHATWIDGET_TIMEOUT_SECS",
		"CHATWIDGET_START_OPEN",
		"CHATWIDGET_THEME",
		"CHATWIDGET_LOG_PATH",
		"CHATWIDGET_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

// =============================================================================
// DEFAULT TESTS
// =============================================================================

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "http://localhost:8000", cfg.Assistant.BaseURL)
	assert.Equal(t, "/api/chat", cfg.Assistant.ChatPath)
	assert.Equal(t, "/api/save-query", cfg.Assistant.SaveQueryPath)
	assert.Zero(t, cfg.Assistant.RequestTimeout())

	assert.Equal(t, "Pragyaan AI Assistant", cfg.Panel.Title)
	assert.Equal(t, "Hi! How can I help you today?", cfg.Panel.Greeting)
	assert.Equal(t, 380, cfg.Panel.InitialWidthPx)
	assert.Equal(t, 280, cfg.Panel.MinWidthPx)
	assert.Equal(t, 8, cfg.Panel.CellWidthPx)
	assert.False(t, cfg.Panel.StartOpen)

	assert.Equal(t, "markdown", cfg.Export.Format)
	assert.Empty(t, cfg.Export.Dir)

	assert.NoError(t, cfg.Validate())
}

// =============================================================================
// LOAD TESTS
// =============================================================================

func TestLoadFromPath_TOML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[assistant]
base_url = "https://assistant.example.com"
request_timeout_secs = 30

[panel]
title = "Help"
initial_width_px = 500
start_open = true

[ui]
theme = "light"

[export]
dir = "/tmp/chats"
format = "json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "https://assistant.example.com", cfg.Assistant.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Assistant.RequestTimeout())
	assert.Equal(t, "Help", cfg.Panel.Title)
	assert.Equal(t, 500, cfg.Panel.InitialWidthPx)
	assert.True(t, cfg.Panel.StartOpen)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "/tmp/chats", cfg.Export.Dir)
	assert.Equal(t, "json", cfg.Export.Format)

	// Unset fields fall back to defaults.
	assert.Equal(t, "/api/chat", cfg.Assistant.ChatPath)
	assert.Equal(t, 280, cfg.Panel.MinWidthPx)
	assert.Equal(t, "Hi! How can I help you today?", cfg.Panel.Greeting)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromPath_JSON(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"assistant": {"base_url": "http://10.0.0.5:9000"}, "panel": {"cell_width_px": 10}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:9000", cfg.Assistant.BaseURL)
	assert.Equal(t, 10, cfg.Panel.CellWidthPx)
	assert.Equal(t, 380, cfg.Panel.InitialWidthPx)
}

func TestLoadFromPath_InvalidTOML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[panel\ntitle = "), 0600))

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_Missing(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadFromPath_RejectsInvalidValues(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[panel]
initial_width_px = 100
min_width_px = 280
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	_, err := LoadFromPath(path)
	require.Error(t, err)

	var verrs ValidateErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "panel.initial_width_px", verrs[0].Field)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", os.Getenv("HOME"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().Assistant, cfg.Assistant)
}

// =============================================================================
// SAVE TESTS
// =============================================================================

func TestSaveTOML_RoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Panel.Title = "Support"
	cfg.UI.ASCIIIcons = true
	require.NoError(t, SaveTOML(cfg, path))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestSave_DefaultPath(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	cfg := Default()
	cfg.Panel.Title = "Saved"
	require.NoError(t, Save(cfg))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Saved", loaded.Panel.Title)
	assert.FileExists(t, filepath.Join(home, ".chatwidget", "config.toml"))
}

func TestString_ContainsSections(t *testing.T) {
	out := Default().String()
	for _, section := range []string{"[assistant]", "[panel]", "[ui]", "[log]"} {
		assert.Contains(t, out, section)
	}
}

// =============================================================================
// VALIDATION TESTS
// =============================================================================

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"relative base url", func(c *Config) { c.Assistant.BaseURL = "localhost:8000" }, "assistant.base_url"},
		{"ftp base url", func(c *Config) { c.Assistant.BaseURL = "ftp://host" }, "assistant.base_url"},
		{"chat path without slash", func(c *Config) { c.Assistant.ChatPath = "api/chat" }, "assistant.chat_path"},
		{"negative timeout", func(c *Config) { c.Assistant.RequestTimeoutSecs = -1 }, "assistant.request_timeout_secs"},
		{"zero min width", func(c *Config) { c.Panel.MinWidthPx = 0; c.Panel.InitialWidthPx = 10 }, "panel.min_width_px"},
		{"zero cell width", func(c *Config) { c.Panel.CellWidthPx = 0 }, "panel.cell_width_px"},
		{"unknown theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"unknown export format", func(c *Config) { c.Export.Format = "pdf" }, "export.format"},
		{"unknown log level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var verrs ValidateErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, tc.field, verrs[0].Field)
		})
	}
}

func TestValidateErrors_Error(t *testing.T) {
	errs := ValidateErrors{
		{Field: "a", Message: "bad"},
		{Field: "b", Message: "worse"},
	}
	assert.Equal(t, "a: bad; b: worse", errs.Error())
	assert.Equal(t, "no validation errors", ValidateErrors{}.Error())
}

// =============================================================================
// ENVIRONMENT TESTS
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHATWIDGET_BASE_URL", "http://assistant.internal:8080")
	t.Setenv("CHATWIDGET_TIMEOUT_SECS", "15")
	t.Setenv("CHATWIDGET_START_OPEN", "true")
	t.Setenv("CHATWIDGET_THEME", "dark")
	t.Setenv("CHATWIDGET_LOG_PATH", "/tmp/cw.log")
	t.Setenv("CHATWIDGET_LOG_LEVEL", "debug")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "http://assistant.internal:8080", cfg.Assistant.BaseURL)
	assert.Equal(t, 15, cfg.Assistant.RequestTimeoutSecs)
	assert.True(t, cfg.Panel.StartOpen)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "/tmp/cw.log", cfg.Log.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestApplyEnvOverrides_IgnoresBadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHATWIDGET_TIMEOUT_SECS", "soon")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	assert.Zero(t, cfg.Assistant.RequestTimeoutSecs)
}

func TestClone_IsIndependent(t *testing.T) {
	cfg := Default()
	clone := cfg.Clone()
	clone.Panel.Title = "changed"
	assert.Equal(t, "Pragyaan AI Assistant", cfg.Panel.Title)
}
