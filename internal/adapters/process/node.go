package process

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wl/internal/adapters/logger"
	"go.trai.ch/wl/internal/core/ports"
)

// NodeID is the unique identifier for the process runner Graft node.
const NodeID graft.ID = "adapter.process_runner"

func init() {
	graft.Register(graft.Node[ports.ProcessRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.EventLogNodeID},
		Run: func(ctx context.Context) (ports.ProcessRunner, error) {
			events, err := graft.Dep[ports.EventLog](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(events), nil
		},
	})
}
