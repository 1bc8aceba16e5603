// Package process implements the process lifecycle adapter on top of os/exec.
package process

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"
	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/wl/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxLineSize bounds a single captured output line.
const maxLineSize = 1024 * 1024

var _ ports.ProcessRunner = (*Runner)(nil)

// Runner implements ports.ProcessRunner. Children inherit the orchestrator's stdout and
// stderr unless capture is requested.
type Runner struct {
	events ports.EventLog
	now    func() time.Time
}

// NewRunner creates a new Runner emitting lifecycle lines to events.
func NewRunner(events ports.EventLog) *Runner {
	return &Runner{events: events, now: time.Now}
}

// Spawn starts one replica. The child is not tied to ctx: cancelling a run leaves
// running children to finish or be killed by their enforced duration.
func (r *Runner) Spawn(_ context.Context, spec domain.CommandSpec, opts ports.SpawnOptions) (ports.Process, error) {
	if len(spec.Argv) == 0 || spec.Argv[0] == "" {
		return nil, zerr.Wrap(domain.ErrSpawnFailed, "empty command")
	}

	name := spec.Argv[0]
	cmd := exec.Command(name, spec.Argv[1:]...) //nolint:gosec // user provided command

	// Resolve bare names against the child's PATH rather than ours.
	if spec.Env != nil && !strings.ContainsRune(name, os.PathSeparator) {
		if lp, err := LookPath(name, spec.Env); err == nil {
			cmd.Path = lp
			cmd.Err = nil
		}
	}

	cmd.Env = spec.Env
	cmd.Dir = spec.Dir

	p := &process{
		runner: r,
		cmd:    cmd,
		label:  opts.Label,
		ioDone: make(chan struct{}),
	}

	var out io.ReadCloser
	switch {
	case opts.PTY:
		// The terminal carries stdout and stderr merged.
		ptmx, err := pty.Start(cmd)
		if err != nil {
			return nil, spawnError(err, spec)
		}
		out = ptmx
		p.ptmx = ptmx
	case opts.Capture:
		ownGroup(cmd)
		cmd.Stderr = os.Stderr
		pipe, err := cmd.StdoutPipe()
		if err != nil {
			return nil, spawnError(err, spec)
		}
		if err := cmd.Start(); err != nil {
			return nil, spawnError(err, spec)
		}
		out = pipe
	default:
		ownGroup(cmd)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Start(); err != nil {
			return nil, spawnError(err, spec)
		}
		close(p.ioDone)
	}

	p.pid = cmd.Process.Pid
	p.startedAt = r.now()
	r.events.ProcessStarted(ports.ProcessStart{
		PID:     p.pid,
		Time:    p.startedAt,
		Label:   opts.Label,
		Command: spec.DisplayOrArgv(),
	})

	if out != nil {
		go p.stream(out)
	}

	return p, nil
}

func spawnError(err error, spec domain.CommandSpec) error {
	return zerr.With(
		zerr.With(zerr.Wrap(domain.ErrSpawnFailed, err.Error()), "program", spec.Argv[0]),
		"cmd", spec.DisplayOrArgv(),
	)
}

// stream emits each stdout line of the child until EOF. A pseudo-terminal reports EIO
// once the child side closes, which ends the loop the same way.
func (p *process) stream(out io.Reader) {
	defer close(p.ioDone)

	scanner := bufio.NewScanner(out)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		p.runner.events.ProcessOutput(p.pid, p.label, line)
	}

	// Drain whatever the scanner refused so the child never blocks on a full pipe.
	_, _ = io.Copy(io.Discard, out)
}
