// Package fileutil writes output files so that readers never observe a
// partially written file.
package fileutil

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// Staged is a fully written temp file waiting to be renamed onto its target.
type Staged struct {
	tmp  string
	path string
}

// Path returns the target path.
func (s *Staged) Path() string { return s.path }

// Stage streams fill into a temp file next to path. Nothing at path changes
// until Commit. On error the temp file is already removed.
func Stage(path string, perm os.FileMode, fill func(w io.Writer) error) (_ *Staged, err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return nil, err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = fill(bw); err != nil {
		return nil, err
	}
	if err = bw.Flush(); err != nil {
		return nil, err
	}
	if err = tmp.Chmod(perm); err != nil {
		return nil, err
	}
	_ = tmp.Sync() // best-effort durability
	if err = tmp.Close(); err != nil {
		return nil, err
	}

	return &Staged{tmp: tmpName, path: path}, nil
}

// Commit renames the temp file onto its target.
func (s *Staged) Commit() error {
	if err := os.Rename(s.tmp, s.path); err != nil {
		_ = os.Remove(s.tmp)
		return err
	}

	return nil
}

// Discard removes the temp file. Safe to call after Commit.
func (s *Staged) Discard() {
	_ = os.Remove(s.tmp)
}

// CommitAll commits files in order. If any rename fails, targets already
// committed by this call are removed and the remaining temp files are
// discarded, so either every target is replaced or none is left behind.
func CommitAll(files ...*Staged) error {
	for i, s := range files {
		if err := s.Commit(); err != nil {
			var errs []error
			for _, done := range files[:i] {
				if rmErr := os.Remove(done.path); rmErr != nil {
					errs = append(errs, rmErr)
				}
			}
			for _, rest := range files[i+1:] {
				rest.Discard()
			}
			return errors.Join(append([]error{err}, errs...)...)
		}
	}

	return nil
}

// WriteAtomic streams fill into a temp file next to path and renames it
// into place. On any error the temp file is removed and path is untouched.
func WriteAtomic(path string, perm os.FileMode, fill func(w io.Writer) error) error {
	s, err := Stage(path, perm, fill)
	if err != nil {
		return err
	}

	return s.Commit()
}
