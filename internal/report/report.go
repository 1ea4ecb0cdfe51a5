// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report measures a conversion run and prints CPU, memory, and
// elapsed time when it completes. The numbers are informational only.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const bytesPerMB = 1024 * 1024

// Stats is the measurement of one run.
type Stats struct {
	CPUPercent float64
	RSSBytes   uint64
	Elapsed    time.Duration
}

// MemoryMB returns RSSBytes in mebibytes.
func (s Stats) MemoryMB() float64 {
	return float64(s.RSSBytes) / bytesPerMB
}

// Write prints the three report lines.
func (s Stats) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "CPU usage: %s%%\nMemory usage: %.2f MB\nExecution time: %.2f seconds\n",
		formatPercent(s.CPUPercent), s.MemoryMB(), s.Elapsed.Seconds())
	return err
}

// formatPercent prints the shortest representation of v that round-trips,
// always with a fractional part ("0.0", "12.5").
func formatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Reporter wraps a run: Start before the work, Finish after it.
type Reporter struct {
	meter Meter
	now   func() time.Time
	log   zerolog.Logger
	start time.Time
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithClock replaces time.Now. Tests use it for deterministic durations.
func WithClock(now func() time.Time) Option {
	return func(r *Reporter) { r.now = now }
}

// WithLogger sets the logger used for measurement errors.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Reporter) { r.log = log }
}

// New creates a Reporter reading from m. A nil m behaves like NopMeter.
func New(m Meter, opts ...Option) *Reporter {
	if m == nil {
		m = NopMeter{}
	}
	r := &Reporter{meter: m, now: time.Now, log: zerolog.Nop()}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Start records the start time and primes the CPU baseline.
func (r *Reporter) Start() {
	r.start = r.now()
	if _, err := r.meter.CPUPercent(); err != nil {
		r.log.Debug().Err(err).Msg("cpu baseline")
	}
}

// Finish takes the end measurements. Measurement errors read as zero.
func (r *Reporter) Finish() Stats {
	end := r.now()
	cpu, err := r.meter.CPUPercent()
	if err != nil {
		r.log.Debug().Err(err).Msg("cpu percent")
		cpu = 0
	}
	rss, err := r.meter.RSS()
	if err != nil {
		r.log.Debug().Err(err).Msg("resident memory")
		rss = 0
	}
	return Stats{CPUPercent: cpu, RSSBytes: rss, Elapsed: end.Sub(r.start)}
}
