package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wl/internal/adapters/detector"
	"go.trai.ch/wl/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the logger Graft node.
	NodeID graft.ID = "adapter.logger"
	// EventLogNodeID is the unique identifier for the process event log Graft node.
	EventLogNodeID graft.ID = "adapter.event_log"
)

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{detector.NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			terminal, err := graft.Dep[ports.TerminalDetector](ctx)
			if err != nil {
				return nil, err
			}
			return New(terminal), nil
		},
	})

	graft.Register(graft.Node[ports.EventLog]{
		ID:        EventLogNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EventLog, error) {
			return NewEventLog(nil), nil
		},
	})
}
