package runstate

import (
	"context"

	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/zerr"
)

// AwaitDependencies blocks until every dependency is satisfied, in declaration order.
// The first synchronization error is returned.
func (s *State) AwaitDependencies(ctx context.Context, deps []domain.Dependency) error {
	for _, dep := range deps {
		if err := s.BlockUntilSatisfied(ctx, dep); err != nil {
			return zerr.With(zerr.Wrap(err, "waiting for dependency"), "when", string(dep.When))
		}
	}
	return nil
}
