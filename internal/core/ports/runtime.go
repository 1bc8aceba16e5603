package ports

import (
	"context"

	"go.trai.ch/wl/internal/core/domain"
)

// BuildRequest carries everything a runtime adapter needs to build commands for a step.
type BuildRequest struct {
	// Step is the templated copy of the step about to run.
	Step    *domain.Step
	Runtime domain.Runtime
	// Source is the resolved source path. Empty for bin and shell runtimes.
	Source string
	Cache  domain.CacheLayout
}

// RuntimeAdapter turns a step into concrete process invocations.
//
//go:generate mockgen -source=runtime.go -destination=mocks/mock_runtime.go -package=mocks
type RuntimeAdapter interface {
	// BuildCommands returns one command per replica.
	BuildCommands(ctx context.Context, req BuildRequest) ([]domain.CommandSpec, error)
	// Summary returns the progress line printed before the replicas are spawned.
	Summary(req BuildRequest) string
}

// RuntimeRegistry maps runtime variants to their adapters.
type RuntimeRegistry interface {
	// Adapter returns the adapter for rt.
	Adapter(rt domain.Runtime) (RuntimeAdapter, error)
}

// RuntimeInfo describes a runtime known to the prober.
type RuntimeInfo struct {
	Name      string
	DetectCmd string
	Features  []string
	Available bool
}

// RuntimeProber checks toolchain availability on the host.
type RuntimeProber interface {
	// Probe returns an error if the runtime named in a plan cannot run on this host.
	Probe(runtime string) error
	// List reports every known runtime and whether it was detected.
	List() []RuntimeInfo
}

// EnvironmentFactory builds the process environment of a step.
type EnvironmentFactory interface {
	// StepEnvironment returns KEY=VALUE entries: inherited variables overlaid with the step's env.
	StepEnvironment(step *domain.Step) []string
}
