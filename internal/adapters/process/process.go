package process

import (
	"errors"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/wl/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Process = (*process)(nil)

type process struct {
	runner    *Runner
	cmd       *exec.Cmd
	ptmx      *os.File
	pid       int
	label     string
	startedAt time.Time
	ioDone    chan struct{}
	// reaped is set once Wait has collected the child; its pid may be reused after that.
	reaped atomic.Bool

	once   sync.Once
	status domain.ExitStatus
	err    error
}

func (p *process) PID() int {
	return p.pid
}

// Wait reaps the child, joins the output reader and emits the end line. It is safe to
// call more than once.
func (p *process) Wait() (domain.ExitStatus, error) {
	p.once.Do(func() {
		p.status, p.err = p.wait()
	})
	return p.status, p.err
}

func (p *process) wait() (domain.ExitStatus, error) {
	var waitErr error
	if p.ptmx != nil {
		// The pty master stays readable until the child exits.
		waitErr = p.cmd.Wait()
		p.reaped.Store(true)
		<-p.ioDone
		_ = p.ptmx.Close()
	} else {
		// StdoutPipe must be drained before Wait closes it.
		<-p.ioDone
		waitErr = p.cmd.Wait()
		p.reaped.Store(true)
	}

	ended := p.runner.now()

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return domain.ExitStatus{}, zerr.With(zerr.Wrap(waitErr, "failed to wait for process"), "pid", p.pid)
	}

	status := exitStatus(p.cmd.ProcessState)
	p.runner.events.ProcessExited(ports.ProcessEnd{
		PID:      p.pid,
		Time:     ended,
		Label:    p.label,
		Duration: ended.Sub(p.startedAt),
		Status:   status,
	})
	return status, nil
}

// Kill force-terminates the child and everything still in its process group, so
// forked grandchildren release the output pipe too. A child that already exited is
// not an error.
func (p *process) Kill() {
	if p.cmd.Process == nil || p.reaped.Load() {
		return
	}
	if err := killGroup(p.pid); err != nil {
		_ = p.cmd.Process.Kill()
	}
}

func exitStatus(state *os.ProcessState) domain.ExitStatus {
	if state == nil {
		return domain.ExitStatus{Signaled: true}
	}
	// ExitCode reports -1 for a child terminated by a signal.
	code := state.ExitCode()
	if code < 0 {
		return domain.ExitStatus{Signaled: true}
	}
	return domain.ExitStatus{Code: code}
}
