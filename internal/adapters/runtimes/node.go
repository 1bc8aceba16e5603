package runtimes

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wl/internal/adapters/cas"
	"go.trai.ch/wl/internal/adapters/fs"
	"go.trai.ch/wl/internal/adapters/logger"
	"go.trai.ch/wl/internal/core/ports"
)

const (
	// EnvironmentNodeID is the unique identifier for the step environment Graft node.
	EnvironmentNodeID graft.ID = "adapter.runtimes.environment"
	// RegistryNodeID is the unique identifier for the runtime registry Graft node.
	RegistryNodeID graft.ID = "adapter.runtimes.registry"
	// ProberNodeID is the unique identifier for the runtime prober Graft node.
	ProberNodeID graft.ID = "adapter.runtimes.prober"
)

func init() {
	graft.Register(graft.Node[ports.EnvironmentFactory]{
		ID:        EnvironmentNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EnvironmentFactory, error) {
			return NewEnvironment(), nil
		},
	})

	graft.Register(graft.Node[ports.RuntimeRegistry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{EnvironmentNodeID, cas.NodeID, fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.RuntimeRegistry, error) {
			env, err := graft.Dep[ports.EnvironmentFactory](ctx)
			if err != nil {
				return nil, err
			}
			artifacts, err := graft.Dep[ports.ArtifactStore](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(env, NewGolangAdapter(env, artifacts, hasher, log)), nil
		},
	})

	graft.Register(graft.Node[ports.RuntimeProber]{
		ID:        ProberNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RuntimeProber, error) {
			return NewProber(), nil
		},
	})
}
