// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the command table and interpreter for termfolio.
package commands

import "strconv"

// =============================================================================
// TABLE ERROR
// =============================================================================

// TableError reports a problem with the command table or canned responses
// detected at load time.
type TableError struct {
	Index  int // position in the table, -1 when not applicable
	Name   string
	Reason string
}

func (e *TableError) Error() string {
	msg := "command table"
	if e.Index >= 0 {
		msg += " entry " + strconv.Itoa(e.Index)
	}
	if e.Name != "" {
		msg += " (" + e.Name + ")"
	}
	return msg + ": " + e.Reason
}
