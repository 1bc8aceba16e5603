package logger

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"go.trai.ch/wl/internal/core/ports"
)

var _ ports.EventLog = (*EventLog)(nil)

// EventLog writes process lifecycle lines. In text mode the lines follow the stable
// formats consumed by scripts; in JSON mode each event is a slog record.
type EventLog struct {
	mu   sync.Mutex
	out  io.Writer
	json *slog.Logger
}

// NewEventLog creates an EventLog writing text lines to w. Nil means stdout.
func NewEventLog(w io.Writer) *EventLog {
	if w == nil {
		w = os.Stdout
	}
	return &EventLog{out: w}
}

// SetJSON switches between text lines and JSON records.
func (e *EventLog) SetJSON(enable bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if enable {
		e.json = slog.New(slog.NewJSONHandler(e.out, &slog.HandlerOptions{Level: slog.LevelInfo}))
		return
	}
	e.json = nil
}

// ProcessStarted emits `start pid=<n> ts=<unix_ms> <label> cmd="<text>"`.
func (e *EventLog) ProcessStarted(ev ports.ProcessStart) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.json != nil {
		e.json.Info("start",
			"pid", ev.PID,
			"ts", ev.Time.UnixMilli(),
			"label", ev.Label,
			"cmd", ev.Command,
		)
		return
	}

	var b strings.Builder
	b.WriteString("start pid=")
	b.WriteString(strconv.Itoa(ev.PID))
	b.WriteString(" ts=")
	b.WriteString(strconv.FormatInt(ev.Time.UnixMilli(), 10))
	b.WriteString(" ")
	b.WriteString(ev.Label)
	b.WriteString(` cmd="`)
	b.WriteString(ev.Command)
	b.WriteString("\"\n")
	e.write(b.String())
}

// ProcessExited emits `end pid=<n> ts=<unix_ms> <label> duration_ms=<n> exit=<code|signal>`.
func (e *EventLog) ProcessExited(ev ports.ProcessEnd) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.json != nil {
		e.json.Info("end",
			"pid", ev.PID,
			"ts", ev.Time.UnixMilli(),
			"label", ev.Label,
			"duration_ms", ev.Duration.Milliseconds(),
			"exit", ev.Status.String(),
		)
		return
	}

	var b strings.Builder
	b.WriteString("end pid=")
	b.WriteString(strconv.Itoa(ev.PID))
	b.WriteString(" ts=")
	b.WriteString(strconv.FormatInt(ev.Time.UnixMilli(), 10))
	b.WriteString(" ")
	b.WriteString(ev.Label)
	b.WriteString(" duration_ms=")
	b.WriteString(strconv.FormatInt(ev.Duration.Milliseconds(), 10))
	b.WriteString(" exit=")
	b.WriteString(ev.Status.String())
	b.WriteString("\n")
	e.write(b.String())
}

// ProcessOutput emits `[pid=<n> <label>] <line>`.
func (e *EventLog) ProcessOutput(pid int, label, line string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.json != nil {
		e.json.Info("output", "pid", pid, "label", label, "line", line)
		return
	}
	e.write("[pid=" + strconv.Itoa(pid) + " " + label + "] " + line + "\n")
}

// StepSummary emits a progress line as-is.
func (e *EventLog) StepSummary(line string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.json != nil {
		e.json.Info("step", "summary", line)
		return
	}
	e.write(line + "\n")
}

// write sends one complete line. The caller must hold e.mu.
func (e *EventLog) write(s string) {
	_, _ = io.WriteString(e.out, s)
}
