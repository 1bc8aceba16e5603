package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wl/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/wl/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/wl/internal/adapters/runtimes" //nolint:depguard // Wired in app layer
	"go.trai.ch/wl/internal/adapters/samples"  //nolint:depguard // Wired in app layer
	"go.trai.ch/wl/internal/core/ports"
	"go.trai.ch/wl/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components is what the entry point needs: the use-cases and a logger for the terminal error.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			runtimes.ProberNodeID,
			scheduler.NodeID,
			samples.NodeID,
			logger.NodeID,
			logger.EventLogNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			prober, err := graft.Dep[ports.RuntimeProber](ctx)
			if err != nil {
				return nil, err
			}

			sched, err := graft.Dep[*scheduler.Scheduler](ctx)
			if err != nil {
				return nil, err
			}

			writer, err := graft.Dep[ports.SampleWriter](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			events, err := graft.Dep[ports.EventLog](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, prober, sched, writer, log, events), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}
