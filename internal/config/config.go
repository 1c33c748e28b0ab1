// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for termfolio.
//
// Configuration file location: ~/.termfolio/config.toml, or the path given
// with --config. Built-in defaults apply when no file exists.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete termfolio configuration.
type Config struct {
	// Prompt is prepended to every echoed command
	Prompt string `toml:"prompt"`

	// MaxInputLength caps the input line, in runes
	MaxInputLength int `toml:"max_input_length"`

	// CommandsFile replaces the built-in command table (JSON) when set
	CommandsFile string `toml:"commands_file"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Log configuration
	Log LogConfig `toml:"log"`

	// Profile is the portfolio content
	Profile ProfileConfig `toml:"profile"`
}

// UIConfig contains display settings.
type UIConfig struct {
	// Theme is "dark", "light", or "auto" (detect from the terminal background)
	Theme string `toml:"theme"`
	// AccentColor is the default accent; restart returns to it
	AccentColor string `toml:"accent_color"`
	// AltScreen runs the TUI in the alternate screen buffer
	AltScreen bool `toml:"alt_screen"`
	// Plain forces the line-mode REPL even on a terminal
	Plain bool `toml:"plain"`
	// AskName shows the login prompt before the terminal
	AskName bool `toml:"ask_name"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string `toml:"level"`
	// File receives log output; empty discards logs
	File string `toml:"file"`
}

// ProfileConfig contains the text the terminal shows.
type ProfileConfig struct {
	// Welcome lines shown at start and after restart
	Welcome []string `toml:"welcome"`
	// Goodbye replaces the scrollback after quit
	Goodbye string `toml:"goodbye"`
	// Responses adds to or overrides the built-in canned responses
	Responses map[string]string `toml:"responses"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

const (
	// DefaultPrompt is the echo prefix.
	DefaultPrompt = "visitor@udoka.dev:~$ "

	// DefaultAccent is the initial accent color.
	DefaultAccent = "#22c55e"

	// DefaultMaxInputLength caps the input line.
	DefaultMaxInputLength = 256

	// maxInputLengthLimit is the largest accepted max_input_length.
	maxInputLengthLimit = 4096
)

// Banner is the ASCII art welcome line.
const Banner = `   __  ______  ____  __ __ ___         ___    __  ___
  / / / / __ \/ __ \/ //_//   |       /   |  /  |/  /
 / / / / / / / / / / ,<  / /| |      / /| | / /|_/ /
/ /_/ / /_/ / /_/ / /| |/ ___ |     / ___ |/ /  / /
\____/_____/\____/_/ |_/_/  |_|____/_/  |_/_/  /_/
                             /_____/`

// DefaultWelcome returns the built-in welcome lines.
func DefaultWelcome() []string {
	return []string{
		"Welcome to Udoka's Portfolio Terminal!",
		Banner,
		"Type 'help' to see all available commands.",
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Prompt:         DefaultPrompt,
		MaxInputLength: DefaultMaxInputLength,

		UI: UIConfig{
			Theme:       "dark",
			AccentColor: DefaultAccent,
			AltScreen:   true,
			Plain:       false,
			AskName:     true,
		},

		Log: LogConfig{
			Level: "info",
		},

		Profile: ProfileConfig{
			Welcome: DefaultWelcome(),
			Goodbye: commands.DefaultGoodbye,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the termfolio configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".termfolio"), nil
}

// ConfigPathTOML returns the path to the default config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from path, or from the default location when path
// is empty. A missing default file is not an error; a missing explicit file is.
// Environment overrides are applied after the file and before validation.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := ConfigPathTOML()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if err := LoadTOML(cfg, path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	fillDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg. Keys missing from the file keep
// their current values.
func LoadTOML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return DecodeTOML(cfg, data)
}

// DecodeTOML decodes TOML text over cfg and rejects unknown keys.
func DecodeTOML(cfg *Config, data []byte) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// fillDefaults fills in values that were explicitly emptied.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Prompt == "" {
		cfg.Prompt = defaults.Prompt
	}
	if cfg.MaxInputLength == 0 {
		cfg.MaxInputLength = defaults.MaxInputLength
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.UI.AccentColor == "" {
		cfg.UI.AccentColor = defaults.UI.AccentColor
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Profile.Goodbye == "" {
		cfg.Profile.Goodbye = defaults.Profile.Goodbye
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML writes the configuration to path, replacing any existing file.
func SaveTOML(cfg *Config, path string) error {
	return writeTOML(cfg, path, false)
}

// CreateTOML writes the configuration to path. It fails with an error
// matching fs.ErrExist when the file is already there.
func CreateTOML(cfg *Config, path string) error {
	return writeTOML(cfg, path, true)
}

func writeTOML(cfg *Config, path string, exclusive bool) error {
	data, err := cfg.EncodeTOML()
	if err != nil {
		return err
	}

	if err := util.WriteFileAtomic(path, data, util.WriteOptions{Exclusive: exclusive}); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EncodeTOML renders the configuration as a commented TOML document.
func (c *Config) EncodeTOML() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# termfolio configuration file")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
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

// validLogLevels are the accepted log.level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if strings.ContainsAny(c.Prompt, "\r\n") {
		errs = append(errs, ValidationError{
			Field:   "prompt",
			Message: "must be a single line",
		})
	}

	if c.MaxInputLength < 1 || c.MaxInputLength > maxInputLengthLimit {
		errs = append(errs, ValidationError{
			Field:   "max_input_length",
			Message: fmt.Sprintf("must be between 1 and %d, got %d", maxInputLengthLimit, c.MaxInputLength),
		})
	}

	switch strings.ToLower(c.UI.Theme) {
	case "dark", "light", "auto":
	default:
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("must be dark, light or auto, got %q", c.UI.Theme),
		})
	}

	if strings.TrimSpace(c.UI.AccentColor) == "" {
		errs = append(errs, ValidationError{
			Field:   "ui.accent_color",
			Message: "must not be blank",
		})
	}

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("must be debug, info, warn or error, got %q", c.Log.Level),
		})
	}

	for name := range c.Profile.Responses {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, ValidationError{
				Field:   "profile.responses",
				Message: "command name must not be blank",
			})
			break
		}
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
//   - TERMFOLIO_THEME: overrides ui.theme
//   - TERMFOLIO_ACCENT: overrides ui.accent_color
//   - TERMFOLIO_PROMPT: overrides prompt
//   - TERMFOLIO_COMMANDS: overrides commands_file
//   - TERMFOLIO_LOG_FILE: overrides log.file
//   - TERMFOLIO_LOG_LEVEL: overrides log.level
//   - TERMFOLIO_PLAIN: set to "1" or "true" to force line mode
func (c *Config) ApplyEnvOverrides() {
	if theme := os.Getenv("TERMFOLIO_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if accent := os.Getenv("TERMFOLIO_ACCENT"); accent != "" {
		c.UI.AccentColor = accent
	}

	if prompt := os.Getenv("TERMFOLIO_PROMPT"); prompt != "" {
		c.Prompt = prompt
	}

	if file := os.Getenv("TERMFOLIO_COMMANDS"); file != "" {
		c.CommandsFile = file
	}

	if file := os.Getenv("TERMFOLIO_LOG_FILE"); file != "" {
		c.Log.File = file
	}

	if level := os.Getenv("TERMFOLIO_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}

	if plain := os.Getenv("TERMFOLIO_PLAIN"); plain != "" {
		if v, err := strconv.ParseBool(plain); err == nil {
			c.UI.Plain = v
		}
	}
}

// =============================================================================
// HELPERS
// =============================================================================

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c

	if c.Profile.Welcome != nil {
		clone.Profile.Welcome = append([]string(nil), c.Profile.Welcome...)
	}
	if c.Profile.Responses != nil {
		clone.Profile.Responses = make(map[string]string, len(c.Profile.Responses))
		for k, v := range c.Profile.Responses {
			clone.Profile.Responses[k] = v
		}
	}

	return &clone
}

// String returns the configuration as TOML.
func (c *Config) String() string {
	data, err := c.EncodeTOML()
	if err != nil {
		return err.Error()
	}
	return string(data)
}
