// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command-line parsing for termfolio.
package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/jeranaias/termfolio/internal/config"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdRun Command = iota
	CmdConfig
	CmdConfigInit
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// ConfigPath replaces the default config file location
	ConfigPath string

	// Plain forces the line-mode REPL
	Plain bool

	// Overrides applied on top of the config file and environment
	Theme    string
	Color    string
	LogFile  string
	LogLevel string
}

// Flag names.
const (
	flagConfig   = "config"
	flagPlain    = "plain"
	flagTheme    = "theme"
	flagColor    = "color"
	flagLogFile  = "log-file"
	flagLogLevel = "log-level"
	flagHelp     = "help"
	flagHelpS    = "h"
	flagVersion  = "version"
	flagVersionS = "v"
)

var (
	valueFlags = []string{flagConfig, flagTheme, flagColor, flagLogFile, flagLogLevel}
	boolFlags  = []string{flagPlain, flagHelp, flagHelpS, flagVersion, flagVersionS}
)

const usageText = `termfolio - a portfolio you explore from the terminal

Usage:
  termfolio [flags]            Start the terminal (default)
  termfolio config             Print the effective configuration as TOML
  termfolio config init        Write a starter config file
  termfolio version            Show version information
  termfolio help               Show this help

Flags:
  --config PATH       Config file (default ~/.termfolio/config.toml)
  --plain             Line mode instead of the full-screen terminal
  --theme T           dark, light or auto
  --color C           Accent color (hex, CSS name, rgb() or hsl())
  --log-file PATH     Write logs to PATH
  --log-level L       debug, info, warn or error
  -h, --help          Show this help
  -v, --version       Show version information

Inside the terminal, type 'help' to list the commands.

Environment:
  TERMFOLIO_THEME, TERMFOLIO_ACCENT, TERMFOLIO_PROMPT, TERMFOLIO_COMMANDS,
  TERMFOLIO_LOG_FILE, TERMFOLIO_LOG_LEVEL, TERMFOLIO_PLAIN
`

// PrintUsage writes the usage text.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

// PrintVersion writes version information.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "termfolio %s\n", Version)
	fmt.Fprintf(w, "  Commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Built:  %s\n", BuildDate)
	fmt.Fprintf(w, "  Go:     %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Parse parses command-line arguments (without the program name).
func Parse(argv []string) (Command, Args, error) {
	p := NewArgParser(argv, boolFlags...)

	known := make(map[string]bool, len(valueFlags)+len(boolFlags))
	for _, name := range valueFlags {
		known[name] = true
	}
	for _, name := range boolFlags {
		known[name] = true
	}
	for _, name := range p.FlagNames() {
		if !known[name] {
			return CmdRun, Args{}, &UsageError{Arg: "--" + name, Reason: "unknown flag"}
		}
	}

	for _, name := range valueFlags {
		if p.IsBoolOnly(name) {
			return CmdRun, Args{}, &UsageError{Arg: "--" + name, Reason: "flag needs a value"}
		}
	}
	if bad := p.Flag(flagPlain); bad != "" {
		return CmdRun, Args{}, &UsageError{Arg: bad, Reason: "invalid value for --plain"}
	}

	args := Args{
		ConfigPath: p.Flag(flagConfig),
		Plain:      p.BoolFlag(flagPlain),
		Theme:      p.Flag(flagTheme),
		Color:      p.Flag(flagColor),
		LogFile:    p.Flag(flagLogFile),
		LogLevel:   p.Flag(flagLogLevel),
	}

	if p.BoolFlag(flagHelp) || p.BoolFlag(flagHelpS) {
		return CmdHelp, args, nil
	}
	if p.BoolFlag(flagVersion) || p.BoolFlag(flagVersionS) {
		return CmdVersion, args, nil
	}

	if p.Subcommand() == "config" && p.Positional(1) == "init" && p.PositionalCount() == 2 {
		return CmdConfigInit, args, nil
	}
	if p.PositionalCount() > 1 {
		return CmdRun, Args{}, &UsageError{Arg: p.Positional(1), Reason: "unexpected argument"}
	}

	switch p.Subcommand() {
	case "":
		return CmdRun, args, nil
	case "config":
		return CmdConfig, args, nil
	case "version":
		return CmdVersion, args, nil
	case "help":
		return CmdHelp, args, nil
	default:
		return CmdRun, Args{}, &UsageError{Arg: p.Subcommand(), Reason: "unknown command"}
	}
}

// Apply writes the flag overrides into cfg. Flags win over the config file
// and the environment; the caller validates the result.
func (a Args) Apply(cfg *config.Config) {
	if a.Theme != "" {
		cfg.UI.Theme = a.Theme
	}
	if a.Color != "" {
		cfg.UI.AccentColor = a.Color
	}
	if a.LogFile != "" {
		cfg.Log.File = a.LogFile
	}
	if a.LogLevel != "" {
		cfg.Log.Level = a.LogLevel
	}
	if a.Plain {
		cfg.UI.Plain = true
	}
}
