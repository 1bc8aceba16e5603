// Package runstate holds the run-scoped facts that step workers publish and wait on.
package runstate

import (
	"context"
	"maps"
	"slices"
	"sync"

	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/zerr"
)

// State is the shared table of step facts for one run.
// Every read and write goes through its lock; waiters sleep on the condition variable
// and re-check their predicate on every wake.
type State struct {
	mu    sync.Mutex
	cond  *sync.Cond
	facts map[string]*domain.Facts
}

// New creates an empty State.
func New() *State {
	s := &State{facts: make(map[string]*domain.Facts)}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// record returns the facts for id, creating a zero record on first write.
// The caller must hold s.mu.
func (s *State) record(id string) *domain.Facts {
	rec, ok := s.facts[id]
	if !ok {
		rec = &domain.Facts{}
		s.facts[id] = rec
	}
	return rec
}

// PublishStarted marks id as started with the pids of all its replicas.
func (s *State) PublishStarted(id string, pids []int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(id)
	rec.Started = true
	rec.PIDs = slices.Clone(pids)
	s.cond.Broadcast()
}

// PublishFinished marks id as finished with one exit code per replica, in pid order.
func (s *State) PublishFinished(id string, exitCodes []int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(id)
	rec.Finished = true
	rec.ExitCodes = slices.Clone(exitCodes)
	s.cond.Broadcast()
}

// PublishFailed records that id failed. Dependents that are not yet satisfied
// stop waiting with ErrDependencyFailed.
func (s *State) PublishFailed(id string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(id)
	rec.Err = err
	s.cond.Broadcast()
}

// SnapshotPIDs returns a copy of the pids of every started step.
func (s *State) SnapshotPIDs() map[string][]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string][]int, len(s.facts))
	for id, rec := range s.facts {
		if rec.Started {
			out[id] = slices.Clone(rec.PIDs)
		}
	}
	return out
}

// Facts returns a copy of the record for id.
func (s *State) Facts(id string) (domain.Facts, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.facts[id]
	if !ok {
		return domain.Facts{}, false
	}
	return rec.Clone(), true
}

// IDs returns the ids that have a record, sorted.
func (s *State) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Sorted(maps.Keys(s.facts))
}

// BlockUntilSatisfied waits until dep is satisfied by the published facts.
// There is no timeout: only a failed target or a cancelled ctx ends the wait early.
func (s *State) BlockUntilSatisfied(ctx context.Context, dep domain.Dependency) error {
	stop := context.AfterFunc(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.cond.Broadcast()
	})
	defer stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		rec := s.facts[dep.ID]
		if dep.SatisfiedBy(rec) {
			return nil
		}
		if rec != nil && rec.Err != nil {
			return zerr.With(zerr.Wrap(domain.ErrDependencyFailed, rec.Err.Error()), "dependency", dep.ID)
		}
		if err := ctx.Err(); err != nil {
			return zerr.With(zerr.Wrap(err, "dependency wait interrupted"), "dependency", dep.ID)
		}
		s.cond.Wait()
	}
}
