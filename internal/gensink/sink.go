// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package gensink implements the generator's output abstraction: open a
// path for writing, direct every emission primitive at the returned
// handle, and on close atomically rename the temporary file onto the
// final path. A concurrent reader of the final path therefore either sees
// the previous generation in full, or the new generation in full, never a
// torn file.
package gensink

import (
	"bufio"
	"fmt"
	"os"

	"k8s.io/klog/v2"
)

// Sink is a single redirectable output destination. The zero value is not
// usable; construct one with Open. A Sink is not safe for concurrent use by
// more than one goroutine.
type Sink struct {
	path string
	tmp  *os.File
	w    *bufio.Writer
}

// Open begins a new generation of the file at path. All writes until
// Close land in path+".new".
func Open(path string) (*Sink, error) {
	tmp, err := os.Create(path + ".new")
	if err != nil {
		return nil, fmt.Errorf("gensink: open %s: %w", path, err)
	}
	return &Sink{
		path: path,
		tmp:  tmp,
		w:    bufio.NewWriter(tmp),
	}, nil
}

// Write implements io.Writer, so a Sink can be handed directly to
// fmt.Fprint and friends.
func (s *Sink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// Close flushes and closes the temporary file, atomically renames it onto
// the final path, and reports a one-line "written" status. It must be
// called exactly once per Open.
func (s *Sink) Close() error {
	if err := s.w.Flush(); err != nil {
		_ = s.tmp.Close()
		return fmt.Errorf("gensink: flush %s: %w", s.path, err)
	}
	if err := s.tmp.Close(); err != nil {
		return fmt.Errorf("gensink: close %s: %w", s.path, err)
	}
	if err := os.Rename(s.tmp.Name(), s.path); err != nil {
		return fmt.Errorf("gensink: rename %s: %w", s.path, err)
	}
	klog.InfoS("written", "path", s.path)
	return nil
}
