// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/config"
)

// =============================================================================
// ARG PARSER TESTS (args.go)
// =============================================================================

func TestArgParser_BasicParsing(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantSub  string
		validate func(*testing.T, *ArgParser)
	}{
		{
			name:    "simple subcommand",
			args:    []string{"version"},
			wantSub: "version",
		},
		{
			name:    "flag with value",
			args:    []string{"--theme", "light"},
			wantSub: "",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("theme") != "light" {
					t.Errorf("Flag(theme) = %q, want %q", p.Flag("theme"), "light")
				}
			},
		},
		{
			name:    "flag with equals",
			args:    []string{"--color=#ff8800", "config"},
			wantSub: "config",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("color") != "#ff8800" {
					t.Errorf("Flag(color) = %q, want %q", p.Flag("color"), "#ff8800")
				}
			},
		},
		{
			name:    "declared boolean does not eat the subcommand",
			args:    []string{"--plain", "version"},
			wantSub: "version",
			validate: func(t *testing.T, p *ArgParser) {
				if !p.BoolFlag("plain") {
					t.Error("BoolFlag(plain) should be true")
				}
			},
		},
		{
			name:    "explicit false",
			args:    []string{"--plain=false"},
			wantSub: "",
			validate: func(t *testing.T, p *ArgParser) {
				if p.BoolFlag("plain") {
					t.Error("BoolFlag(plain) should be false")
				}
				if !p.HasFlag("plain") {
					t.Error("HasFlag(plain) should be true")
				}
			},
		},
		{
			name:    "double dash ends flags",
			args:    []string{"--", "--theme"},
			wantSub: "--theme",
			validate: func(t *testing.T, p *ArgParser) {
				if p.HasFlag("theme") {
					t.Error("--theme after -- should be positional")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewArgParser(tt.args, "plain")
			if p.Subcommand() != tt.wantSub {
				t.Errorf("Subcommand() = %q, want %q", p.Subcommand(), tt.wantSub)
			}
			if tt.validate != nil {
				tt.validate(t, p)
			}
		})
	}
}

func TestArgParser_FlagNames(t *testing.T) {
	p := NewArgParser([]string{"--theme", "dark", "--plain", "--zeta=1"}, "plain")
	assert.Equal(t, []string{"plain", "theme", "zeta"}, p.FlagNames())
}

func TestArgParser_IsBoolOnly(t *testing.T) {
	p := NewArgParser([]string{"--theme", "--color", "red"})
	assert.True(t, p.IsBoolOnly("theme"))
	assert.False(t, p.IsBoolOnly("color"))
	assert.False(t, p.IsBoolOnly("missing"))
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"true", "YES", "y", "1", "on"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"false", "No", "n", "0", "off"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("maybe")
	assert.True(t, IsUsageError(err))
}

// =============================================================================
// PARSE TESTS (cli.go)
// =============================================================================

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		wantCmd Command
		want    Args
	}{
		{name: "no args", argv: nil, wantCmd: CmdRun},
		{name: "version subcommand", argv: []string{"version"}, wantCmd: CmdVersion},
		{name: "version flag", argv: []string{"-v"}, wantCmd: CmdVersion},
		{name: "help subcommand", argv: []string{"help"}, wantCmd: CmdHelp},
		{name: "help flag wins", argv: []string{"config", "--help"}, wantCmd: CmdHelp},
		{name: "config", argv: []string{"config", "--config", "/tmp/t.toml"}, wantCmd: CmdConfig,
			want: Args{ConfigPath: "/tmp/t.toml"}},
		{name: "config init", argv: []string{"config", "init", "--theme", "light"}, wantCmd: CmdConfigInit,
			want: Args{Theme: "light"}},
		{
			name: "all overrides",
			argv: []string{
				"--plain", "--theme", "light", "--color=hotpink",
				"--log-file", "/tmp/t.log", "--log-level", "debug",
			},
			wantCmd: CmdRun,
			want: Args{
				Plain:    true,
				Theme:    "light",
				Color:    "hotpink",
				LogFile:  "/tmp/t.log",
				LogLevel: "debug",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, err := Parse(tt.argv)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.want, args)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		wantMsg string
	}{
		{name: "unknown flag", argv: []string{"--verbose"}, wantMsg: "unknown flag: --verbose"},
		{name: "missing value", argv: []string{"--theme"}, wantMsg: "flag needs a value: --theme"},
		{name: "bad plain value", argv: []string{"--plain=sometimes"}, wantMsg: "invalid value for --plain: sometimes"},
		{name: "unknown command", argv: []string{"serve"}, wantMsg: "unknown command: serve"},
		{name: "extra argument", argv: []string{"config", "show"}, wantMsg: "unexpected argument: show"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.argv)
			require.Error(t, err)
			assert.True(t, IsUsageError(err))
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, ExitUsageError, ExitCode(err))
		})
	}
}

func TestArgsApply(t *testing.T) {
	cfg := config.Default()
	Args{Theme: "light", Color: "red", LogFile: "/tmp/x.log", LogLevel: "warn", Plain: true}.Apply(cfg)

	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "red", cfg.UI.AccentColor)
	assert.Equal(t, "/tmp/x.log", cfg.Log.File)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.UI.Plain)
	assert.NoError(t, cfg.Validate())
}

func TestArgsApplyKeepsUnsetValues(t *testing.T) {
	cfg := config.Default()
	before := cfg.Clone()

	Args{}.Apply(cfg)

	assert.Equal(t, before, cfg)
}

func TestPrintUsageAndVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintUsage(&buf)
	assert.Contains(t, buf.String(), "--plain")
	assert.Contains(t, buf.String(), "termfolio config")

	buf.Reset()
	PrintVersion(&buf)
	assert.True(t, strings.HasPrefix(buf.String(), "termfolio "+Version))
}

// =============================================================================
// ERROR TESTS (errors.go)
// =============================================================================

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "usage", err: &UsageError{Arg: "x", Reason: "bad"}, want: ExitUsageError},
		{name: "validation", err: fmt.Errorf("invalid config: %w",
			config.ValidateErrors{{Field: "ui.theme", Message: "bad"}}), want: ExitConfigError},
		{name: "table", err: &commands.TableError{Index: 2, Name: "help", Reason: "duplicate name"}, want: ExitConfigError},
		{name: "missing file", err: fmt.Errorf("load: %w", fs.ErrNotExist), want: ExitConfigError},
		{name: "other", err: errors.New("boom"), want: ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestDisplayError(t *testing.T) {
	var buf bytes.Buffer
	DisplayError(&buf, &UsageError{Arg: "--x", Reason: "unknown flag"})
	assert.Equal(t, "Error: unknown flag: --x\nRun 'termfolio help' for usage.\n", buf.String())

	buf.Reset()
	DisplayError(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())

	buf.Reset()
	DisplayError(&buf, nil)
	assert.Empty(t, buf.String())
}
