//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test groups test targets.
type Test mg.Namespace

// All runs every test verbosely.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Unit runs the tests quietly with a short timeout.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "-timeout", "2m", "./...")
}

// Race runs the tests with the race detector. The store and the HTTP
// server share state across goroutines.
func (Test) Race() error {
	return sh.RunV(binGo, "test", "-race", "./internal/...")
}

// Cover writes a coverage profile to bin/cover.out.
func (Test) Cover() error {
	mg.Deps(mkBinDir)
	return sh.RunV(binGo, "test", "-coverprofile", filepath.Join(binaryDir, "cover.out"), "./...")
}

func mkBinDir() error {
	return os.MkdirAll(binaryDir, 0o755)
}
