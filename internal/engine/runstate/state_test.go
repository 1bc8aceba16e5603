package runstate_test

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/wl/internal/engine/runstate"
)

func started(id string) domain.Dependency {
	return domain.Dependency{ID: id, When: domain.ConditionStarted}
}

func exited(id string, codes ...int) domain.Dependency {
	return domain.Dependency{ID: id, When: domain.ConditionExited, ExitCodes: codes}
}

// assertBlocked fails if done already delivered a result.
func assertBlocked(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		t.Fatalf("waiter returned early: %v", err)
	default:
	}
}

func TestState_PublishAndSnapshot(t *testing.T) {
	s := runstate.New()

	pids := []int{111, 112}
	s.PublishStarted("a", pids)
	pids[0] = 999

	snap := s.SnapshotPIDs()
	assert.Equal(t, map[string][]int{"a": {111, 112}}, snap)

	snap["a"][0] = 1
	assert.Equal(t, []int{111, 112}, s.SnapshotPIDs()["a"])

	s.PublishFinished("a", []int{0, 3})
	facts, ok := s.Facts("a")
	require.True(t, ok)
	assert.True(t, facts.Started)
	assert.True(t, facts.Finished)
	assert.Equal(t, []int{0, 3}, facts.ExitCodes)
	assert.Len(t, facts.ExitCodes, len(facts.PIDs))
}

func TestState_SnapshotSkipsUnstarted(t *testing.T) {
	s := runstate.New()
	s.PublishFailed("broken", errors.New("boom"))

	assert.Empty(t, s.SnapshotPIDs())
	assert.Equal(t, []string{"broken"}, s.IDs())
}

func TestState_FinishedWithoutStartCreatesRecord(t *testing.T) {
	s := runstate.New()
	s.PublishFinished("a", []int{0})

	facts, ok := s.Facts("a")
	require.True(t, ok)
	assert.False(t, facts.Started)
	assert.True(t, facts.Finished)

	_, ok = s.Facts("missing")
	assert.False(t, ok)
}

func TestState_BlockUntilStarted(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := runstate.New()
		done := make(chan error, 1)

		go func() { done <- s.BlockUntilSatisfied(t.Context(), started("a")) }()

		synctest.Wait()
		assertBlocked(t, done)

		s.PublishStarted("a", []int{42})
		synctest.Wait()
		require.NoError(t, <-done)
	})
}

func TestState_AlreadySatisfiedReturnsImmediately(t *testing.T) {
	s := runstate.New()
	s.PublishStarted("a", []int{1})
	s.PublishFinished("a", []int{0})

	require.NoError(t, s.BlockUntilSatisfied(context.Background(), started("a")))
	require.NoError(t, s.BlockUntilSatisfied(context.Background(), exited("a", 0)))
	require.NoError(t, s.BlockUntilSatisfied(context.Background(), exited("a")))
}

func TestState_ExitedWaitsForFinish(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := runstate.New()
		done := make(chan error, 1)

		go func() { done <- s.BlockUntilSatisfied(t.Context(), exited("a", 3)) }()

		s.PublishStarted("a", []int{7})
		synctest.Wait()
		assertBlocked(t, done)

		s.PublishFinished("a", []int{3})
		synctest.Wait()
		require.NoError(t, <-done)
	})
}

func TestState_ExitedRejectedCodesBlockUntilCancelled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := runstate.New()
		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan error, 1)

		go func() { done <- s.BlockUntilSatisfied(ctx, exited("a", 0)) }()

		s.PublishStarted("a", []int{7, 8})
		s.PublishFinished("a", []int{0, 1})
		synctest.Wait()
		assertBlocked(t, done)

		cancel()
		synctest.Wait()
		err := <-done
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestState_FailedTargetReleasesWaiters(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := runstate.New()
		done := make(chan error, 2)

		go func() { done <- s.BlockUntilSatisfied(t.Context(), started("a")) }()
		go func() { done <- s.BlockUntilSatisfied(t.Context(), exited("a")) }()

		synctest.Wait()
		s.PublishFailed("a", errors.New("spawn failed"))
		synctest.Wait()

		require.ErrorIs(t, <-done, domain.ErrDependencyFailed)
		require.ErrorIs(t, <-done, domain.ErrDependencyFailed)
	})
}

func TestState_AwaitDependencies(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := runstate.New()
		done := make(chan error, 1)

		go func() {
			done <- s.AwaitDependencies(t.Context(), []domain.Dependency{started("a"), exited("b", 0)})
		}()

		s.PublishStarted("a", []int{1})
		synctest.Wait()
		assertBlocked(t, done)

		s.PublishStarted("b", []int{2})
		s.PublishFinished("b", []int{0})
		synctest.Wait()
		require.NoError(t, <-done)
	})
}

func TestState_ManyWaitersAllWake(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := runstate.New()
		const waiters = 16
		done := make(chan error, waiters)

		for range waiters {
			go func() { done <- s.BlockUntilSatisfied(t.Context(), started("a")) }()
		}

		synctest.Wait()
		s.PublishStarted("a", []int{5})

		for range waiters {
			require.NoError(t, <-done)
		}
	})
}
