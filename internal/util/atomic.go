// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across termfolio.
package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// WriteOptions controls WriteFileAtomic.
type WriteOptions struct {
	FilePerm os.FileMode // 0644 when zero
	DirPerm  os.FileMode // 0755 when zero

	// Exclusive fails with fs.ErrExist instead of replacing an existing file.
	Exclusive bool
}

// WriteFileAtomic stages data in a temp file next to path and then publishes
// it in one step. Readers see either the old file or the complete new one.
// Missing parent directories are created.
func WriteFileAtomic(path string, data []byte, opts WriteOptions) error {
	if opts.FilePerm == 0 {
		opts.FilePerm = 0644
	}
	if opts.DirPerm == 0 {
		opts.DirPerm = 0755
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(target), opts.DirPerm); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	staged, err := stage(target, data, opts.FilePerm)
	if err != nil {
		return fmt.Errorf("stage %s: %w", path, err)
	}
	defer os.Remove(staged)

	if opts.Exclusive {
		// Link refuses to replace an existing target
		if err := os.Link(staged, target); err != nil {
			if errors.Is(err, fs.ErrExist) {
				return fmt.Errorf("%s: %w", path, fs.ErrExist)
			}
			return fmt.Errorf("publish %s: %w", path, err)
		}
		return nil
	}

	if err := os.Rename(staged, target); err != nil {
		return fmt.Errorf("publish %s: %w", path, err)
	}
	return nil
}

// stage writes data to a synced, closed temp file beside target and returns
// its name. The file is removed again on failure.
func stage(target string, data []byte, perm os.FileMode) (name string, err error) {
	f, err := os.CreateTemp(filepath.Dir(target), ".termfolio-*")
	if err != nil {
		return "", err
	}
	name = f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(name)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return "", err
	}
	if err = f.Sync(); err != nil {
		return "", err
	}
	if err = f.Close(); err != nil {
		return "", err
	}
	if err = os.Chmod(name, perm); err != nil {
		return "", err
	}
	return name, nil
}
