package stream

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ethereum/go-ethereum/metrics"
	"github.com/rotblauer/pintour/common"
)

// tickMeter logs read progress every interval.
type tickMeter struct {
	what      string
	label     atomic.Int64 // unix nanos of any value, eg. the last pin's time
	interval  time.Duration
	started   time.Time
	ticker    *time.Ticker
	done      chan struct{}
	reg       metrics.Registry
	count     metrics.Counter
	rejected  metrics.Counter
	lineMeter metrics.Meter
	sizeMeter metrics.Meter
}

func newTickMeter(what string, interval time.Duration) *tickMeter {
	// Won't work without this global setting.
	metrics.Enabled = true

	reg := metrics.NewRegistry()
	tm := &tickMeter{
		what:      what,
		reg:       reg,
		interval:  interval,
		started:   time.Now(),
		done:      make(chan struct{}),
		count:     metrics.NewCounter(),
		rejected:  metrics.NewCounter(),
		lineMeter: metrics.NewMeter(),
		sizeMeter: metrics.NewMeter(),
	}
	for name, m := range map[string]any{
		"line.count":     tm.count,
		"rejected.count": tm.rejected,
		"line.meter":     tm.lineMeter,
		"size.meter":     tm.sizeMeter,
	} {
		if err := reg.Register(name, m); err != nil {
			panic(err)
		}
	}
	if interval > 0 {
		tm.ticker = time.NewTicker(interval)
		go tm.run()
	}
	return tm
}

func (tm *tickMeter) mark(label time.Time, data []byte) {
	tm.label.Store(label.UnixNano())
	tm.count.Inc(1)
	tm.lineMeter.Mark(1)
	tm.sizeMeter.Mark(int64(len(data)))
}

func (tm *tickMeter) reject() {
	tm.rejected.Inc(1)
}

func (tm *tickMeter) run() {
	for {
		select {
		case <-tm.done:
			return
		case <-tm.ticker.C:
			tm.log()
		}
	}
}

func (tm *tickMeter) log() {
	lines := tm.lineMeter.Snapshot()
	size := tm.sizeMeter.Snapshot()
	slog.Info("Read "+tm.what, "n", humanize.Comma(tm.count.Snapshot().Count()),
		"rejected", tm.rejected.Snapshot().Count(),
		"read.last", time.Unix(0, tm.label.Load()).UTC().Format(time.DateTime),
		"lps", common.DecimalToFixed(lines.Rate1(), 0),
		"bps", humanize.Bytes(uint64(size.Rate1())),
		"total.bytes", humanize.Bytes(uint64(size.Count())),
		"running", time.Since(tm.started).Round(time.Second))
}

func (tm *tickMeter) stop() {
	if tm == nil {
		return
	}
	if tm.ticker != nil {
		tm.ticker.Stop()
		close(tm.done)
	}
	tm.lineMeter.Stop()
	tm.sizeMeter.Stop()
}
