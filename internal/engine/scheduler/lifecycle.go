package scheduler

import (
	"context"
	"strconv"
	"time"

	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/wl/internal/core/ports"
	"go.trai.ch/zerr"
)

type replica struct {
	proc ports.Process
	span ports.Span
}

// spawnAll starts one process per command. If a spawn fails, the replicas that
// already started are killed and reaped before the error is returned.
func (r *planRun) spawnAll(ctx context.Context, step *domain.Step, cmds []domain.CommandSpec) ([]replica, error) {
	opts := ports.SpawnOptions{
		Label:   domain.Label(step),
		Capture: step.Stdout || step.PTY,
		PTY:     step.PTY,
	}

	replicas := make([]replica, 0, len(cmds))
	for i, cmd := range cmds {
		_, span := r.s.tracer.Start(ctx, "replica "+strconv.Itoa(i),
			ports.WithAttribute("cmd", cmd.DisplayOrArgv()),
		)
		proc, err := r.s.runner.Spawn(ctx, cmd, opts)
		if err != nil {
			span.RecordError(err)
			span.End()
			for _, rep := range replicas {
				rep.proc.Kill()
			}
			_, _ = r.waitAll(replicas)
			return nil, zerr.With(zerr.Wrap(err, "failed to start replica"), "replica", i)
		}
		span.SetAttribute("pid", proc.PID())
		replicas = append(replicas, replica{proc: proc, span: span})
	}
	return replicas, nil
}

// enforceDuration sleeps for the step duration and then kills every replica.
// Replicas that already exited ignore the kill. An interrupted ctx ends the sleep early.
func (r *planRun) enforceDuration(ctx context.Context, replicas []replica, durationMS int64) {
	timer := time.NewTimer(time.Duration(durationMS) * time.Millisecond)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}

	for _, rep := range replicas {
		rep.proc.Kill()
	}
}

// waitAll reaps every replica in spawn order, even after an error, and returns
// one exit code per replica. Signal terminations use the plan's signal code.
func (r *planRun) waitAll(replicas []replica) ([]int, error) {
	codes := make([]int, len(replicas))
	var firstErr error
	for i, rep := range replicas {
		status, err := rep.proc.Wait()
		if err != nil {
			rep.span.RecordError(err)
			rep.span.End()
			if firstErr == nil {
				firstErr = zerr.With(zerr.Wrap(err, "failed to reap replica"), "pid", rep.proc.PID())
			}
			continue
		}
		codes[i] = status.ExitCode(r.plan.SignalExitCode)
		rep.span.SetAttribute("exit", status.String())
		rep.span.End()
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return codes, nil
}
