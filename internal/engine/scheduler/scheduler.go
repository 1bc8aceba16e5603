// Package scheduler drives a plan: one worker per step, joined before the first error is reported.
package scheduler

import (
	"context"

	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/wl/internal/core/ports"
	"go.trai.ch/wl/internal/engine/runstate"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Scheduler runs every step of a plan concurrently, gated by their dependencies.
type Scheduler struct {
	registry ports.RuntimeRegistry
	resolver ports.SourceResolver
	runner   ports.ProcessRunner
	events   ports.EventLog
	tracer   ports.Tracer
}

// NewScheduler creates a new Scheduler.
func NewScheduler(
	registry ports.RuntimeRegistry,
	resolver ports.SourceResolver,
	runner ports.ProcessRunner,
	events ports.EventLog,
	tracer ports.Tracer,
) *Scheduler {
	return &Scheduler{
		registry: registry,
		resolver: resolver,
		runner:   runner,
		events:   events,
		tracer:   tracer,
	}
}

// Run starts one worker per step and waits for all of them.
// Workers are never cancelled because a sibling failed; the first error observed
// is returned once every worker has returned. Cancelling ctx only releases
// workers still blocked on a dependency.
func (s *Scheduler) Run(ctx context.Context, plan *domain.Plan, cache domain.CacheLayout) error {
	return s.run(ctx, plan, cache, runstate.New())
}

func (s *Scheduler) run(ctx context.Context, plan *domain.Plan, cache domain.CacheLayout, state *runstate.State) error {
	ctx, span := s.tracer.Start(ctx, "generate",
		ports.WithAttribute("steps", len(plan.Steps)),
		ports.WithAttribute("plan.digest", plan.Digest),
	)
	defer span.End()

	names := make([]string, len(plan.Steps))
	for i := range plan.Steps {
		names[i] = plan.Steps[i].DisplayID()
	}
	s.tracer.EmitPlan(ctx, names)

	run := &planRun{
		s:     s,
		plan:  plan,
		cache: cache,
		state: state,
	}

	var g errgroup.Group
	for i := range plan.Steps {
		step := &plan.Steps[i]
		g.Go(func() error {
			if err := run.runStep(ctx, step); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrStepFailed.Error()), "step", step.DisplayID())
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// planRun is the state shared by the workers of one Run.
type planRun struct {
	s     *Scheduler
	plan  *domain.Plan
	cache domain.CacheLayout
	state *runstate.State
}
