// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for termfolio.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - UIConfig: Theme, accent color and display mode
//   - LogConfig: Log level and destination
//   - ProfileConfig: Welcome lines, goodbye line and canned responses
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Command-line flags (applied by the caller)
//   - Environment variables (TERMFOLIO_*)
//   - ~/.termfolio/config.toml, or the --config path
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	prompt := cfg.Prompt
//	accent := cfg.UI.AccentColor
package config
