package stream

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/rotblauer/pintour/types/location"
)

// maxLineSize bounds a single NDJSON line.
const maxLineSize = 4 * 1024 * 1024

// RecordsStats summarizes one ScanRecords run.
type RecordsStats struct {
	Read     int64
	Rejected int64
}

// ScanRecords decodes newline-delimited pins from r.
// Lines that do not decode are skipped and counted as rejected.
// If meterInterval > 0, progress is logged at that interval.
// The error channel yields at most one error (a read failure) and is closed with the record channel.
func ScanRecords(ctx context.Context, r io.Reader, meterInterval time.Duration) (<-chan location.Record, <-chan error, func() RecordsStats) {
	out := make(chan location.Record)
	errs := make(chan error, 1)
	meter := newTickMeter("pins", meterInterval)

	stats := func() RecordsStats {
		return RecordsStats{
			Read:     meter.count.Snapshot().Count(),
			Rejected: meter.rejected.Snapshot().Count(),
		}
	}

	go func() {
		defer close(out)
		defer close(errs)
		defer meter.stop()

		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for sc.Scan() {
			line := bytes.TrimSpace(sc.Bytes())
			if len(line) == 0 {
				continue
			}
			rec, err := location.DecodeRecord(line)
			if err != nil {
				meter.reject()
				slog.Debug("Skipping undecodable pin", "error", err, "line", string(line))
				continue
			}
			meter.mark(rec.Timestamp, line)
			select {
			case <-ctx.Done():
				return
			case out <- rec:
			}
		}
		if err := sc.Err(); err != nil {
			errs <- err
		}
	}()
	return out, errs, stats
}
