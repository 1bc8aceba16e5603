package ports

import (
	"context"

	"go.trai.ch/wl/internal/core/domain"
)

// SpawnOptions controls how a replica is observed.
type SpawnOptions struct {
	// Label is the "step=<id> runtime=<kind>" log label.
	Label string
	// Capture streams the child's stdout line by line into the EventLog.
	Capture bool
	// PTY attaches the child to a pseudo-terminal. Implies Capture.
	PTY bool
}

// Process is a handle on one spawned replica. It is owned by the worker that spawned it.
type Process interface {
	// PID returns the operating-system process id.
	PID() int
	// Wait blocks until the child exits and every captured line has been emitted.
	Wait() (domain.ExitStatus, error)
	// Kill force-terminates the child. Errors are swallowed.
	Kill()
}

// ProcessRunner spawns replicas and logs their lifecycle.
//
//go:generate mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks
type ProcessRunner interface {
	// Spawn starts the command and emits its start line.
	Spawn(ctx context.Context, spec domain.CommandSpec, opts SpawnOptions) (Process, error)
}
