package main

import (
	"fmt"
	"io"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/you-not-fish/smc/internal/translate"
)

// tracer prints per-phase timing lines for one compiler run. Every line
// carries the run's ULID so that interleaved runs in watch mode can be
// told apart. A nil or disabled tracer prints nothing.
type tracer struct {
	w     io.Writer
	id    ulid.ULID
	start time.Time
	last  time.Time
}

func newTracer(w io.Writer, on bool) *tracer {
	if !on {
		return nil
	}
	now := time.Now()
	return &tracer{w: w, id: ulid.Make(), start: now, last: now}
}

// phase reports the time spent since the previous phase.
func (t *tracer) phase(name, format string, args ...interface{}) {
	if t == nil {
		return
	}
	now := time.Now()
	fmt.Fprintf(t.w, "trace %s %-8s %10s  %s\n", t.id, name, now.Sub(t.last).Round(time.Microsecond), fmt.Sprintf(format, args...))
	t.last = now
}

// done reports the total time of the run.
func (t *tracer) done() {
	if t == nil {
		return
	}
	fmt.Fprintf(t.w, "trace %s %-8s %10s\n", t.id, "total", time.Since(t.start).Round(time.Microsecond))
}

// config returns a translate.Config that reports each compiler phase, or
// nil when t is disabled. out names the output file in the write line.
func (t *tracer) config(out string) *translate.Config {
	if t == nil {
		return nil
	}
	return &translate.Config{Phase: func(name string, res *translate.Result) {
		switch name {
		case "compile":
			t.phase(name, "%d instructions, %d symbols, %d labels, depth %d",
				res.Program.Len(), res.Symbols.Len(), res.Labels, res.MaxDepth)
		case "write":
			t.phase(name, "%s", out)
		default:
			t.phase(name, "ok")
		}
	}}
}
