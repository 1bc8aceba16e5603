package ports

import (
	"time"

	"go.trai.ch/wl/internal/core/domain"
)

// ProcessStart describes a freshly spawned replica.
type ProcessStart struct {
	PID     int
	Time    time.Time
	Label   string
	Command string
}

// ProcessEnd describes a replica that has been reaped.
type ProcessEnd struct {
	PID      int
	Time     time.Time
	Label    string
	Duration time.Duration
	Status   domain.ExitStatus
}

// EventLog records the machine-parseable process lifecycle lines.
//
//go:generate mockgen -source=event_log.go -destination=mocks/mock_event_log.go -package=mocks
type EventLog interface {
	// ProcessStarted emits the start line of a replica.
	ProcessStarted(ev ProcessStart)
	// ProcessExited emits the end line of a replica.
	ProcessExited(ev ProcessEnd)
	// ProcessOutput emits one captured stdout line of a replica.
	ProcessOutput(pid int, label, line string)
	// StepSummary emits a free-form per-step progress line.
	StepSummary(line string)
}
