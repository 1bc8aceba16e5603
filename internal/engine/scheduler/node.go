package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wl/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wl/internal/adapters/process"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wl/internal/adapters/runtimes"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wl/internal/adapters/source"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wl/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wl/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			runtimes.RegistryNodeID,
			source.NodeID,
			process.NodeID,
			logger.EventLogNodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			registry, err := graft.Dep[ports.RuntimeRegistry](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.SourceResolver](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}

			events, err := graft.Dep[ports.EventLog](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(registry, resolver, runner, events, tracer), nil
		},
	})
}
