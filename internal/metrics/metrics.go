// Package metrics defines the per-pair metrics record and its CSV table.
package metrics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/fileutil"
)

// Column names of the metrics table, in file order.
const (
	ColPairID    = "pair_id"
	ColStr1Len   = "str1_len"
	ColStr2Len   = "str2_len"
	ColLCSLen    = "lcs_len"
	ColTotalOps  = "tot_ops"
	ColCharComps = "char_comps"
	ColRuntime   = "runtime"
)

// Header is the metrics table header row.
var Header = []string{ColPairID, ColStr1Len, ColStr2Len, ColLCSLen, ColTotalOps, ColCharComps, ColRuntime}

var (
	// ErrMalformedRow indicates a row that does not match Header.
	ErrMalformedRow = errors.New("metrics: malformed row")

	// ErrMissingColumn indicates the header lacks a required column.
	ErrMissingColumn = errors.New("metrics: missing column")
)

// Record is one row of per-pair statistics. Records are appended once per
// processed ordered pair and never mutated afterwards.
type Record struct {
	PairID    string
	Len1      int
	Len2      int
	LCSLen    int
	TotalOps  int
	CharComps int
	Runtime   float64 // seconds
}

// PairID returns the ordered pair identifier "{name1}-{name2}".
func PairID(name1, name2 string) string {
	return name1 + "-" + name2
}

// FormatRuntime renders seconds as the shortest decimal that round-trips.
func FormatRuntime(seconds float64) string {
	return strconv.FormatFloat(seconds, 'g', -1, 64)
}

// Fields returns r in Header order.
func (r Record) Fields() []string {
	return []string{
		r.PairID,
		strconv.Itoa(r.Len1),
		strconv.Itoa(r.Len2),
		strconv.Itoa(r.LCSLen),
		strconv.Itoa(r.TotalOps),
		strconv.Itoa(r.CharComps),
		FormatRuntime(r.Runtime),
	}
}

// Write emits Header followed by one row per record.
func Write(w io.Writer, recs []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range recs {
		if err := cw.Write(r.Fields()); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteFile writes recs to path atomically.
func WriteFile(path string, recs []Record) error {
	err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Write(w, recs)
	})
	if err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}

// Read parses a metrics table. Columns are located by header name, so extra
// columns are ignored. An empty input yields no records.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("metrics: read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range Header {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	var out []Record
	line := 1
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
		}
		rec, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
		}
		out = append(out, rec)
	}

	return out, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("metrics: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// parseRow converts one CSV row into a Record using the header index.
func parseRow(row []string, idx map[string]int) (Record, error) {
	var (
		rec Record
		err error
	)
	ints := []struct {
		col string
		dst *int
	}{
		{ColStr1Len, &rec.Len1},
		{ColStr2Len, &rec.Len2},
		{ColLCSLen, &rec.LCSLen},
		{ColTotalOps, &rec.TotalOps},
		{ColCharComps, &rec.CharComps},
	}
	for _, f := range ints {
		if *f.dst, err = strconv.Atoi(row[idx[f.col]]); err != nil {
			return Record{}, fmt.Errorf("%s: %w", f.col, err)
		}
	}
	if rec.Runtime, err = strconv.ParseFloat(row[idx[ColRuntime]], 64); err != nil {
		return Record{}, fmt.Errorf("%s: %w", ColRuntime, err)
	}
	rec.PairID = row[idx[ColPairID]]

	return rec, nil
}
