package fileutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	err := WriteAtomic(path, 0o644, func(w io.Writer) error {
		_, err := io.WriteString(w, "hello\n")
		return err
	})
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(got))
}

func TestWriteAtomic_FailureKeepsOld(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	boom := errors.New("boom")
	err := WriteAtomic(path, 0o644, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must be cleaned up")
}

func TestWriteAtomic_MissingDir(t *testing.T) {
	err := WriteAtomic(filepath.Join(t.TempDir(), "no", "such", "out.txt"), 0o644, func(io.Writer) error { return nil })
	assert.Error(t, err)
}

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestStage_NothingVisibleBeforeCommit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	s, err := Stage(path, 0o644, writeString("staged"))
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())
	assert.NoFileExists(t, path)

	require.NoError(t, s.Commit())
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "staged", string(got))
}

func TestCommitAll(t *testing.T) {
	dir := t.TempDir()
	a, err := Stage(filepath.Join(dir, "a.txt"), 0o644, writeString("a"))
	require.NoError(t, err)
	b, err := Stage(filepath.Join(dir, "b.txt"), 0o644, writeString("b"))
	require.NoError(t, err)

	require.NoError(t, CommitAll(a, b))
	assert.FileExists(t, a.Path())
	assert.FileExists(t, b.Path())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

// TestCommitAll_RollsBack removes earlier targets when a later rename fails.
func TestCommitAll_RollsBack(t *testing.T) {
	dir := t.TempDir()
	a, err := Stage(filepath.Join(dir, "a.txt"), 0o644, writeString("a"))
	require.NoError(t, err)
	blocked := filepath.Join(dir, "b")
	b, err := Stage(blocked, 0o644, writeString("b"))
	require.NoError(t, err)
	c, err := Stage(filepath.Join(dir, "c.txt"), 0o644, writeString("c"))
	require.NoError(t, err)

	// A non-empty directory at the target makes the rename fail.
	require.NoError(t, os.MkdirAll(filepath.Join(blocked, "sub"), 0o755))

	assert.Error(t, CommitAll(a, b, c))
	assert.NoFileExists(t, a.Path())
	assert.NoFileExists(t, c.Path())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "only the blocking directory remains")
	assert.Equal(t, "b", entries[0].Name())
}
