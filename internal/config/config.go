// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Configuration structure, defaults, load/save and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.chatwidget/config.toml
//   - ~/.chatwidget/config.json
//   - Built-in defaults
//
// Environment overrides (CHATWIDGET_*) are applied after the file.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/chatwidget/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete chatwidget configuration.
type Config struct {
	// Assistant endpoint configuration
	Assistant AssistantConfig `toml:"assistant" json:"assistant"`

	// Chat panel configuration
	Panel PanelConfig `toml:"panel" json:"panel"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Transcript export configuration
	Export ExportConfig `toml:"export" json:"export"`

	// Diagnostics log configuration
	Log LogConfig `toml:"log" json:"log"`
}

// AssistantConfig describes where the assistant and query-logging endpoints live.
type AssistantConfig struct {
	// BaseURL is the origin both endpoints are resolved against.
	BaseURL string `toml:"base_url" json:"base_url"`
	// ChatPath is the path of the chat endpoint.
	ChatPath string `toml:"chat_path" json:"chat_path"`
	// SaveQueryPath is the path of the query-logging endpoint.
	SaveQueryPath string `toml:"save_query_path" json:"save_query_path"`
	// RequestTimeoutSecs bounds each request. 0 leaves requests unbounded.
	RequestTimeoutSecs int `toml:"request_timeout_secs" json:"request_timeout_secs"`
}

// PanelConfig contains chat panel settings. Widths are in pixels; the terminal
// renderer divides by CellWidthPx to get columns.
type PanelConfig struct {
	// Title is shown in the panel header.
	Title string `toml:"title" json:"title"`
	// Greeting is the seeded bot message.
	Greeting string `toml:"greeting" json:"greeting"`
	// InitialWidthPx is the panel width before any drag.
	InitialWidthPx int `toml:"initial_width_px" json:"initial_width_px"`
	// MinWidthPx is the resize floor.
	MinWidthPx int `toml:"min_width_px" json:"min_width_px"`
	// CellWidthPx is the assumed pixel width of one terminal column.
	CellWidthPx int `toml:"cell_width_px" json:"cell_width_px"`
	// StartOpen opens the panel on launch instead of showing only the launcher.
	StartOpen bool `toml:"start_open" json:"start_open"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	// Theme is "dark", "light" or "auto".
	Theme string `toml:"theme" json:"theme"`
	// ASCIIIcons replaces emoji glyphs with plain ASCII.
	ASCIIIcons bool `toml:"ascii_icons" json:"ascii_icons"`
	// Markdown renders assistant replies as markdown instead of plain text.
	Markdown bool `toml:"markdown" json:"markdown"`
}

// ExportConfig controls where ctrl+s writes the transcript.
type ExportConfig struct {
	// Dir is the output directory. Empty means the working directory.
	Dir string `toml:"dir" json:"dir"`
	// Format is "markdown" or "json".
	Format string `toml:"format" json:"format"`
}

// LogConfig configures the diagnostics log file.
type LogConfig struct {
	// Path is the log file. Empty means ~/.chatwidget/chatwidget.log.
	Path string `toml:"path" json:"path"`
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" json:"level"`
}

// RequestTimeout returns the configured request timeout.
func (a AssistantConfig) RequestTimeout() time.Duration {
	return time.Duration(a.RequestTimeoutSecs) * time.Second
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Assistant: AssistantConfig{
			BaseURL:            "http://localhost:8000",
			ChatPath:           "/api/chat",
			SaveQueryPath:      "/api/save-query",
			RequestTimeoutSecs: 0,
		},
		Panel: PanelConfig{
			Title:          "Pragyaan AI Assistant",
			Greeting:       "Hi! How can I help you today?",
			InitialWidthPx: 380,
			MinWidthPx:     280,
			CellWidthPx:    8,
			StartOpen:      false,
		},
		UI: UIConfig{
			Theme:      "auto",
			ASCIIIcons: false,
			Markdown:   false,
		},
		Export: ExportConfig{
			Dir:    "",
			Format: "markdown",
		},
		Log: LogConfig{
			Path:  "",
			Level: "info",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the chatwidget configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".chatwidget"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DefaultLogPath returns the log file used when Log.Path is empty.
func DefaultLogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "chatwidget.log"), nil
}

// ResolvePath returns the config file Load would read, or "" when none exists.
func ResolvePath() string {
	for _, fn := range []func() (string, error){ConfigPathTOML, ConfigPathJSON} {
		path, err := fn()
		if err != nil {
			continue
		}
		if _, statErr := os.Stat(path); statErr == nil {
			return path
		}
	}
	return ""
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	if path := ResolvePath(); path != "" {
		return LoadFromPath(path)
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file on top of cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// LoadJSON loads configuration from a JSON file on top of cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) {
	defaults := Default()

	// Assistant
	if cfg.Assistant.BaseURL == "" {
		cfg.Assistant.BaseURL = defaults.Assistant.BaseURL
	}
	if cfg.Assistant.ChatPath == "" {
		cfg.Assistant.ChatPath = defaults.Assistant.ChatPath
	}
	if cfg.Assistant.SaveQueryPath == "" {
		cfg.Assistant.SaveQueryPath = defaults.Assistant.SaveQueryPath
	}

	// Panel
	if cfg.Panel.Title == "" {
		cfg.Panel.Title = defaults.Panel.Title
	}
	if cfg.Panel.Greeting == "" {
		cfg.Panel.Greeting = defaults.Panel.Greeting
	}
	if cfg.Panel.InitialWidthPx == 0 {
		cfg.Panel.InitialWidthPx = defaults.Panel.InitialWidthPx
	}
	if cfg.Panel.MinWidthPx == 0 {
		cfg.Panel.MinWidthPx = defaults.Panel.MinWidthPx
	}
	if cfg.Panel.CellWidthPx == 0 {
		cfg.Panel.CellWidthPx = defaults.Panel.CellWidthPx
	}

	// UI
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}

	// Export
	if cfg.Export.Format == "" {
		cfg.Export.Format = defaults.Export.Format
	}

	// Log
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	data, err := EncodeTOML(cfg)
	if err != nil {
		return err
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EncodeTOML renders cfg as a commented TOML document.
func EncodeTOML(cfg *Config) ([]byte, error) {
	var b strings.Builder
	b.WriteString("# chatwidget configuration file\n")
	b.WriteString("# Widths are in pixels; cell_width_px converts them to terminal columns.\n\n")

	if err := toml.NewEncoder(&b).Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(b.String()), nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// Assistant
	if u, err := url.Parse(c.Assistant.BaseURL); err != nil || u.Host == "" ||
		(u.Scheme != "http" && u.Scheme != "https") {
		errs = append(errs, ValidationError{
			Field:   "assistant.base_url",
			Message: fmt.Sprintf("invalid URL '%s', must be an absolute http(s) origin", c.Assistant.BaseURL),
		})
	}
	if !strings.HasPrefix(c.Assistant.ChatPath, "/") {
		errs = append(errs, ValidationError{
			Field:   "assistant.chat_path",
			Message: "must start with '/'",
		})
	}
	if !strings.HasPrefix(c.Assistant.SaveQueryPath, "/") {
		errs = append(errs, ValidationError{
			Field:   "assistant.save_query_path",
			Message: "must start with '/'",
		})
	}
	if c.Assistant.RequestTimeoutSecs < 0 {
		errs = append(errs, ValidationError{
			Field:   "assistant.request_timeout_secs",
			Message: "must be 0 (no timeout) or positive",
		})
	}

	// Panel
	if c.Panel.MinWidthPx <= 0 {
		errs = append(errs, ValidationError{
			Field:   "panel.min_width_px",
			Message: "must be positive",
		})
	}
	if c.Panel.InitialWidthPx < c.Panel.MinWidthPx {
		errs = append(errs, ValidationError{
			Field:   "panel.initial_width_px",
			Message: fmt.Sprintf("must be at least min_width_px (%d)", c.Panel.MinWidthPx),
		})
	}
	if c.Panel.CellWidthPx <= 0 || c.Panel.CellWidthPx > 64 {
		errs = append(errs, ValidationError{
			Field:   "panel.cell_width_px",
			Message: "must be between 1 and 64",
		})
	}

	// UI
	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	// Export
	validFormats := map[string]bool{"markdown": true, "md": true, "json": true}
	if !validFormats[strings.ToLower(c.Export.Format)] {
		errs = append(errs, ValidationError{
			Field:   "export.format",
			Message: fmt.Sprintf("invalid format '%s', must be one of: markdown, json", c.Export.Format),
		})
	}

	// Log
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - CHATWIDGET_BASE_URL: overrides assistant.base_url
//   - CHATWIDGET_TIMEOUT_SECS: overrides assistant.request_timeout_secs
//   - CHATWIDGET_START_OPEN: set to "1" or "true" to open the panel on launch
//   - CHATWIDGET_THEME: overrides ui.theme
//   - CHATWIDGET_LOG_PATH: overrides log.path
//   - CHATWIDGET_LOG_LEVEL: overrides log.level
func (c *Config) ApplyEnvOverrides() {
	if baseURL := os.Getenv("CHATWIDGET_BASE_URL"); baseURL != "" {
		c.Assistant.BaseURL = baseURL
	}

	if timeout := os.Getenv("CHATWIDGET_TIMEOUT_SECS"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil {
			c.Assistant.RequestTimeoutSecs = secs
		}
	}

	if open := os.Getenv("CHATWIDGET_START_OPEN"); open != "" {
		c.Panel.StartOpen = open == "1" || strings.ToLower(open) == "true"
	}

	if theme := os.Getenv("CHATWIDGET_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if path := os.Getenv("CHATWIDGET_LOG_PATH"); path != "" {
		c.Log.Path = path
	}

	if level := os.Getenv("CHATWIDGET_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns the configuration as TOML, for display.
func (c *Config) String() string {
	data, err := EncodeTOML(c)
	if err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return string(data)
}
