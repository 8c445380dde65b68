// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package gensink_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ashgti/diskapigen/internal/gensink"
)

func TestSinkWritesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	if err := os.WriteFile(path, []byte("generation one"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	s, err := gensink.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	// Before Close, the previous generation must be untouched.
	if got, err := os.ReadFile(path); err != nil || string(got) != "generation one" {
		t.Fatalf("previous generation was disturbed before Close: %q, %v", got, err)
	}
	if _, err := os.Stat(path + ".new"); err != nil {
		t.Fatalf("expected %s.new to exist while open: %v", path, err)
	}

	if _, err := s.Write([]byte("generation two")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile after Close: %v", err)
	}
	if string(got) != "generation two" {
		t.Fatalf("got %q, want %q", got, "generation two")
	}
	if _, err := os.Stat(path + ".new"); !os.IsNotExist(err) {
		t.Fatalf("expected %s.new to be gone after Close, stat err = %v", path, err)
	}
}
