// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the state of one visitor's terminal session.
//
// A Session owns the scrollback, the recall buffer, the autocomplete
// suggestions and the appearance (accent color and theme). It is driven
// synchronously by a single UI loop and needs no locking.
//
// # Key Types
//
//   - Session: scrollback, input mirror, appearance and login state
//   - Recall: previously submitted commands with up/down navigation
//   - Suggestions: the visible autocomplete list and its selection
//
// # Usage
//
//	s := session.New(opts, interp, logger)
//	s.Login("visitor")
//	s.Edit("pro")          // suggestions now contain "projects"
//	s.Submit("projects")   // echo + canned response appended
//	s.RecallPrev()         // input is "projects" again
package session
