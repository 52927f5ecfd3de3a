package report_test

import (
	"bytes"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/KavyaBanerj/LCS-dynamic-programming/internal/input"
)

// tick is the fixed step of fakeClock.
const tick = 250 * time.Microsecond

// fakeClock returns a clock that advances by tick on every call, so each
// measured span of two readings is exactly tick.
func fakeClock() func() time.Time {
	var calls atomic.Int64
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		return base.Add(time.Duration(calls.Add(1)) * tick)
	}
}

// bufferLogger returns a logger capturing text output into buf.
func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// sampleSequences is the three-sequence input shared by the tests.
func sampleSequences() input.Sequences {
	return input.Sequences{
		{Key: "S1", Value: "ABCBDAB"},
		{Key: "S2", Value: "BDCABA"},
		{Key: "S3", Value: "AYZ"},
	}
}
