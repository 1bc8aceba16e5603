package scheduler

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/wl/internal/core/ports"
	"go.trai.ch/wl/internal/engine/placeholder"
	"go.trai.ch/zerr"
)

// runStep is the worker of one step: wait, template, build, spawn, publish.
func (r *planRun) runStep(ctx context.Context, step *domain.Step) (err error) {
	defer func() {
		if err != nil && step.ID != "" {
			r.state.PublishFailed(step.ID, err)
		}
	}()
	defer zerr.Defer(func(p error) {
		err = zerr.With(zerr.Wrap(domain.ErrWorkerPanic, p.Error()), "step", step.DisplayID())
	})

	ctx, span := r.s.tracer.Start(ctx, "step "+step.DisplayID(),
		ports.WithAttribute("step", step.DisplayID()),
		ports.WithAttribute("runtime", step.Runtime),
		ports.WithAttribute("processes", step.Processes()),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	if err := r.state.AwaitDependencies(ctx, step.DependsOn); err != nil {
		return err
	}

	// Snapshot after the wait so the step sees every pid its dependencies published.
	templated, err := placeholder.Expand(step, r.state.SnapshotPIDs())
	if err != nil {
		return err
	}

	rt, err := domain.ParseRuntime(templated.Runtime)
	if err != nil {
		return err
	}
	adapter, err := r.s.registry.Adapter(rt)
	if err != nil {
		return err
	}

	req := ports.BuildRequest{Step: &templated, Runtime: rt, Cache: r.cache}
	if rt.NeedsSource() {
		src, err := r.s.resolver.Resolve(ctx, &templated, rt, r.cache)
		if err != nil {
			return err
		}
		req.Source = src
		span.SetAttribute("source", src)
	}

	cmds, err := adapter.BuildCommands(ctx, req)
	if err != nil {
		return err
	}
	r.s.events.StepSummary(adapter.Summary(req))

	replicas, err := r.spawnAll(ctx, &templated, cmds)
	if err != nil {
		return err
	}

	pids := make([]int, len(replicas))
	for i, rep := range replicas {
		pids[i] = rep.proc.PID()
	}
	span.SetAttribute("pids", pids)
	if step.ID != "" {
		r.state.PublishStarted(step.ID, pids)
	}

	if templated.DurationMS != nil {
		r.enforceDuration(ctx, replicas, *templated.DurationMS)
	}

	codes, err := r.waitAll(replicas)
	if err != nil {
		return err
	}
	span.SetAttribute("exit_codes", codes)
	if step.ID != "" {
		r.state.PublishFinished(step.ID, codes)
	}

	r.s.events.StepSummary("pids=" + joinInts(pids))
	r.s.events.StepSummary(rt.String() + ": done")

	return checkAccepted(step.AcceptExitCodes, pids, codes)
}

// checkAccepted fails the step when an allow-list is set and a replica exited outside it.
func checkAccepted(accept []int, pids, codes []int) error {
	if accept == nil {
		return nil
	}
	for i, code := range codes {
		if !slices.Contains(accept, code) {
			failure := zerr.With(zerr.Wrap(domain.ErrProcessFailed, "unaccepted exit code"), "pid", pids[i])
			failure = zerr.With(failure, "exit_code", code)
			return zerr.With(failure, "accept_exit_codes", accept)
		}
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
