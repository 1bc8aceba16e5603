package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wl/internal/core/ports"
)

// NodeID is the unique identifier for the terminal detector Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[ports.TerminalDetector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TerminalDetector, error) {
			return New(), nil
		},
	})
}
