// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the command table and interpreter for termfolio.
//
// The interpreter is a pure function over a read-only command table: it
// never touches session state. Callers apply the returned Result.
//
// # Key Types
//
//   - Spec: one entry of the command table (name, description, category)
//   - Registry: the ordered, read-only command table
//   - Interpreter: maps an input line to a Result
//   - Result / Patch: output lines plus the state change to apply
//   - Completer: substring autocomplete over table names
//
// # Built-in Verbs
//
//   - help: list every table entry
//   - color <value>: change the accent color
//   - clear, cls: wipe the scrollback
//   - restart: reset scrollback and accent color
//   - quit: replace the scrollback with a goodbye line
//   - theme: toggle light/dark
//
// Every other table entry is answered with a canned response.
//
// # Usage
//
//	reg := commands.DefaultRegistry()
//	interp, err := commands.NewInterpreter(reg, commands.DefaultResponses(), goodbye)
//	result := interp.Execute("about")
//
// Get completions:
//
//	completions := commands.NewCompleter(reg).Complete("pro")
//	// Returns [projects]
package commands
