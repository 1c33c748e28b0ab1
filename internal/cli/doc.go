// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the line-mode terminal for
// termfolio.
//
// # Key Types
//
//   - Command: the subcommand to execute (run, config, config init,
//     version, help)
//   - Args: parsed flags that override the config file
//   - ArgParser: flag and positional splitting
//   - REPL: line-mode loop over a session, used when no TTY is attached
//     or --plain is given
//
// # Usage
//
//	cmd, args, err := cli.Parse(os.Args[1:])
//	if err != nil {
//	    cli.DisplayError(os.Stderr, err)
//	    os.Exit(cli.ExitCode(err))
//	}
//
// Line mode:
//
//	reader := cli.NewLineReader()
//	defer reader.Close()
//	repl := cli.NewREPL(sess, reader, cli.NewOutput(os.Stdout), cli.REPLOptions{Logger: logger})
//	err := repl.Run(ctx)
package cli
