// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across termfolio.
//
// # Key Functions
//
// Display width (backed by go-runewidth):
//   - StringWidth: cells a string occupies in the terminal
//   - TruncateWidth: width-aware truncation with ellipsis
//   - PadWidth: truncate-then-pad to a fixed column
//
// Input:
//   - TruncateRunes: character-count limit for the input line
//
// File Operations:
//   - WriteFileAtomic: crash-safe file writing with fsync, optionally
//     refusing to replace an existing file
//
// # Usage
//
//	name := util.PadWidth(entry.Name, 12)
//	err := util.WriteFileAtomic(path, data, util.WriteOptions{Exclusive: true})
package util
