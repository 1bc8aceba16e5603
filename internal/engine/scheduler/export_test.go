package scheduler

import (
	"context"

	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/wl/internal/engine/runstate"
)

// RunWithState runs plan publishing facts into state, so tests can inspect them.
func (s *Scheduler) RunWithState(ctx context.Context, plan *domain.Plan, cache domain.CacheLayout, state *runstate.State) error {
	return s.run(ctx, plan, cache, state)
}
