// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "some-file")
	if FileExists(filePath) {
		t.Errorf("Expected %s to not exist", filePath)
	}
	if err := os.WriteFile(filePath, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(filePath) {
		t.Errorf("Expected %s to exist", filePath)
	}
	// a directory is not a file
	if FileExists(dir) {
		t.Errorf("Expected FileExists to be false for directory %s", dir)
	}
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	if !DirectoryExists(dir) {
		t.Errorf("Expected %s to be a directory", dir)
	}
	if DirectoryExists(filepath.Join(dir, "missing")) {
		t.Errorf("Expected missing directory to not exist")
	}
	filePath := filepath.Join(dir, "some-file")
	if err := os.WriteFile(filePath, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	if DirectoryExists(filePath) {
		t.Errorf("Expected DirectoryExists to be false for file %s", filePath)
	}
}

func TestNonEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	nonEmpty, err := NonEmptyDirectory(dir)
	if err != nil {
		t.Fatal(err)
	}
	if nonEmpty {
		t.Errorf("Expected fresh temp dir to be empty")
	}
	if err := os.WriteFile(filepath.Join(dir, "some-file"), []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	nonEmpty, err = NonEmptyDirectory(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !nonEmpty {
		t.Errorf("Expected dir with one file to be non empty")
	}
	if _, err := NonEmptyDirectory(filepath.Join(dir, "missing")); err == nil {
		t.Errorf("Expected error for missing directory")
	}
}
