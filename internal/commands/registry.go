// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the command table and interpreter for termfolio.
package commands

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
)

//go:embed commands.json
var defaultTable []byte

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Spec describes one entry of the command table.
type Spec struct {
	// Name is what the visitor types (e.g., "projects")
	Name string `json:"name"`

	// Description is shown in help and completion
	Description string `json:"description"`

	// Category groups commands in the completion popup
	Category string `json:"category"`
}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry is the ordered, read-only command table.
// It is built once at startup and never mutated afterwards.
type Registry struct {
	specs []Spec
	index map[string]int // folded name -> position in specs
}

// NewRegistry builds a registry from the given specs, preserving their order.
// Names must be non-blank, contain no whitespace and be unique ignoring case.
func NewRegistry(specs []Spec) (*Registry, error) {
	r := &Registry{
		specs: make([]Spec, 0, len(specs)),
		index: make(map[string]int, len(specs)),
	}

	for i, spec := range specs {
		spec.Name = strings.TrimSpace(spec.Name)
		if spec.Name == "" {
			return nil, &TableError{Index: i, Reason: "name is empty"}
		}
		if strings.ContainsAny(spec.Name, " \t\r\n") {
			return nil, &TableError{Index: i, Name: spec.Name, Reason: "name contains whitespace"}
		}

		key := Fold(spec.Name)
		if _, dup := r.index[key]; dup {
			return nil, &TableError{Index: i, Name: spec.Name, Reason: "duplicate name"}
		}

		r.index[key] = len(r.specs)
		r.specs = append(r.specs, spec)
	}

	return r, nil
}

// LoadRegistry decodes a JSON array of specs.
func LoadRegistry(data []byte) (*Registry, error) {
	var specs []Spec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("failed to decode command table: %w", err)
	}
	return NewRegistry(specs)
}

// LoadRegistryFile reads a JSON command table from disk.
func LoadRegistryFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read command table: %w", err)
	}

	r, err := LoadRegistry(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// DefaultRegistry returns the command table embedded in the binary.
func DefaultRegistry() *Registry {
	r, err := LoadRegistry(defaultTable)
	if err != nil {
		// The embedded table is part of the build
		panic("commands: embedded command table is invalid: " + err.Error())
	}
	return r
}

// Get retrieves a spec by name, ignoring case.
func (r *Registry) Get(name string) (Spec, bool) {
	i, ok := r.index[Fold(name)]
	if !ok {
		return Spec{}, false
	}
	return r.specs[i], true
}

// All returns a copy of the table in its original order.
func (r *Registry) All() []Spec {
	out := make([]Spec, len(r.specs))
	copy(out, r.specs)
	return out
}

// Len returns the number of entries in the table.
func (r *Registry) Len() int {
	return len(r.specs)
}

// =============================================================================
// HELPERS
// =============================================================================

// Fold returns the case-folded form of s used for all name comparisons.
func Fold(s string) string {
	// Casers keep internal state, so one per call.
	return cases.Fold().String(s)
}
