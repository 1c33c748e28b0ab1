// termfolio - a portfolio you explore from the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jeranaias/termfolio/internal/cli"
	"github.com/jeranaias/termfolio/internal/commands"
	"github.com/jeranaias/termfolio/internal/config"
	"github.com/jeranaias/termfolio/internal/logging"
	"github.com/jeranaias/termfolio/internal/session"
	"github.com/jeranaias/termfolio/internal/ui/styles"
	"github.com/jeranaias/termfolio/internal/ui/terminal"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the exit code.
func run(argv []string, stdout, stderr io.Writer) int {
	cmd, args, err := cli.Parse(argv)
	if err != nil {
		cli.DisplayError(stderr, err)
		return cli.ExitCode(err)
	}

	switch cmd {
	case cli.CmdHelp:
		cli.PrintUsage(stdout)
		return cli.ExitSuccess
	case cli.CmdVersion:
		cli.PrintVersion(stdout)
		return cli.ExitSuccess
	case cli.CmdConfigInit:
		if err := initConfig(args, stdout); err != nil {
			cli.DisplayError(stderr, err)
			return cli.ExitCode(err)
		}
		return cli.ExitSuccess
	}

	cfg, err := loadConfig(args)
	if err != nil {
		cli.DisplayError(stderr, err)
		return cli.ExitCode(err)
	}

	if cmd == cli.CmdConfig {
		fmt.Fprint(stdout, cfg.String())
		return cli.ExitSuccess
	}

	logger, closer, err := logging.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		cli.DisplayError(stderr, err)
		return cli.ExitCode(err)
	}
	defer closer.Close()

	sess, err := newSession(cfg, logger)
	if err != nil {
		cli.DisplayError(stderr, err)
		return cli.ExitCode(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cli.UsePlain(cfg.UI.Plain) {
		logger.Info("starting", "version", Version, "mode", "line")
		err = runLineMode(ctx, sess, cfg, logger)
	} else {
		logger.Info("starting", "version", Version, "mode", "tui")
		err = runTUI(ctx, sess, cfg)
	}
	if err != nil {
		logger.Error("terminal stopped", "error", err)
		cli.DisplayError(stderr, err)
		return cli.ExitCode(err)
	}

	logger.Info("stopped", "session", sess.ID(), "uptime", time.Since(sess.StartedAt()).Round(time.Second))
	return cli.ExitSuccess
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig(args cli.Args) (*config.Config, error) {
	cfg, err := config.Load(args.ConfigPath)
	if err != nil {
		return nil, err
	}

	args.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// initConfig writes the defaults, with flag overrides, to the config path.
// An existing file is never overwritten.
func initConfig(args cli.Args, stdout io.Writer) error {
	path := args.ConfigPath
	if path == "" {
		p, err := config.ConfigPathTOML()
		if err != nil {
			return err
		}
		path = p
	}

	cfg := config.Default()
	args.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	if err := config.CreateTOML(cfg, path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("config file already exists: %s", path)
		}
		return err
	}

	fmt.Fprintf(stdout, "Wrote %s\n", path)
	return nil
}

// newSession builds the command table, interpreter and session from cfg.
func newSession(cfg *config.Config, logger *slog.Logger) (*session.Session, error) {
	registry := commands.DefaultRegistry()
	if cfg.CommandsFile != "" {
		r, err := commands.LoadRegistryFile(cfg.CommandsFile)
		if err != nil {
			return nil, err
		}
		registry = r
	}

	responses := commands.DefaultResponses()
	maps.Copy(responses, cfg.Profile.Responses)

	interp, err := commands.NewInterpreter(registry, responses, cfg.Profile.Goodbye)
	if err != nil {
		return nil, err
	}

	theme := session.ThemeDark
	if !styles.DetectDark(cfg.UI.Theme) {
		theme = session.ThemeLight
	}

	return session.New(session.Options{
		Prompt:        cfg.Prompt,
		Welcome:       cfg.Profile.Welcome,
		DefaultAccent: cfg.UI.AccentColor,
		Theme:         theme,
		AskName:       cfg.UI.AskName,
	}, interp, logger), nil
}

// runTUI runs the full-screen terminal.
func runTUI(ctx context.Context, sess *session.Session, cfg *config.Config) error {
	accent, _ := styles.ParseAccent(sess.Appearance().AccentColor)
	theme := styles.NewTheme(sess.Appearance().Theme == session.ThemeDark, accent)

	m := terminal.New(sess, theme, terminal.Options{
		MaxInputLength: cfg.MaxInputLength,
	})
	return terminal.Run(ctx, m, terminal.RunOptions{AltScreen: cfg.UI.AltScreen})
}

// runLineMode runs the liner REPL on stdin/stdout.
func runLineMode(ctx context.Context, sess *session.Session, cfg *config.Config, logger *slog.Logger) error {
	reader := cli.NewLineReader()
	defer reader.Close()

	repl := cli.NewREPL(sess, reader, cli.NewOutput(os.Stdout), cli.REPLOptions{
		MaxInputLength: cfg.MaxInputLength,
		Logger:         logger,
	})
	return repl.Run(ctx)
}
