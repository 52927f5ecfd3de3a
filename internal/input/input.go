// Package input reads named sequences from "key=value" files.
//
// Each line holds one sequence. Key and value are trimmed and must both be
// non-empty and alphanumeric. Malformed lines are skipped with a warning;
// a repeated key aborts the read; fewer than two valid entries is an error.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"
)

var (
	// ErrInputNotFound indicates the input path is missing or not a regular file.
	ErrInputNotFound = errors.New("input: file not found")

	// ErrMalformedLine marks a skipped line. It is only reported through the
	// logger; Parse never returns it.
	ErrMalformedLine = errors.New("input: malformed line")

	// ErrDuplicateKey indicates a key was defined twice.
	ErrDuplicateKey = errors.New("input: duplicate key")

	// ErrInsufficientData indicates fewer than MinEntries valid sequences.
	ErrInsufficientData = errors.New("input: at least two valid strings are required")
)

// MinEntries is the smallest number of sequences worth comparing.
const MinEntries = 2

// Reasons attached to ErrMalformedLine warnings.
const (
	reasonNoSeparator = "Line must contain a key and a value separated by '='."
	reasonNoKey       = "Key part is missing."
	reasonNoValue     = "Value part is missing."
	reasonNotAlnum    = "Both key and value must be alphanumeric."
)

// LineError describes why a line was skipped. It matches ErrMalformedLine
// under errors.Is.
type LineError struct {
	Reason string
}

func (e *LineError) Error() string { return ErrMalformedLine.Error() + ": " + e.Reason }

// Is reports whether target is ErrMalformedLine.
func (e *LineError) Is(target error) bool { return target == ErrMalformedLine }

// Entry is one named sequence.
type Entry struct {
	Key   string
	Value string
}

// Sequences is the validated input in file order.
type Sequences []Entry

// Get returns the value stored under key.
func (s Sequences) Get(key string) (string, bool) {
	for _, e := range s {
		if e.Key == key {
			return e.Value, true
		}
	}

	return "", false
}

// Keys returns the keys in file order.
func (s Sequences) Keys() []string {
	keys := make([]string, len(s))
	for i, e := range s {
		keys[i] = e.Key
	}

	return keys
}

// ValidateLine checks one raw line and returns the trimmed key and value.
// On failure the error is a *LineError.
func ValidateLine(line string) (key, value string, err error) {
	k, v, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", &LineError{Reason: reasonNoSeparator}
	}
	k, v = strings.TrimSpace(k), strings.TrimSpace(v)
	switch {
	case k == "":
		return "", "", &LineError{Reason: reasonNoKey}
	case v == "":
		return "", "", &LineError{Reason: reasonNoValue}
	case !isAlnum(k) || !isAlnum(v):
		return "", "", &LineError{Reason: reasonNotAlnum}
	}

	return k, v, nil
}

// isAlnum reports whether s is non-empty and every rune is a letter or number.
func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}

	return true
}

// Parse reads sequences from r. Warnings for skipped lines go to logger,
// which may be nil.
func Parse(r io.Reader, logger *slog.Logger) (Sequences, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var out Sequences
	seen := make(map[string]int)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		key, value, err := ValidateLine(sc.Text())
		var lineErr *LineError
		if errors.As(err, &lineErr) {
			logger.Warn("Skipping invalid line", "line", lineNo, "reason", lineErr.Reason)
			continue
		}
		if first, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %q at line %d (first defined at line %d)", ErrDuplicateKey, key, lineNo, first)
		}
		seen[key] = lineNo
		out = append(out, Entry{Key: key, Value: value})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read line %d: %w", lineNo+1, err)
	}

	if len(out) < MinEntries {
		return nil, fmt.Errorf("%w: found %d", ErrInsufficientData, len(out))
	}

	return out, nil
}

// Load opens path and parses it with Parse.
func Load(path string, logger *slog.Logger) (Sequences, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("input: stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrInputNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: open %s: %w", path, err)
	}
	defer f.Close()

	seqs, err := Parse(f, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return seqs, nil
}
