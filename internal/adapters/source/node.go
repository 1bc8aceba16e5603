package source

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wl/internal/core/ports"
)

// NodeID is the unique identifier for the source resolver Graft node.
const NodeID graft.ID = "adapter.source_resolver"

func init() {
	graft.Register(graft.Node[ports.SourceResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceResolver, error) {
			return NewResolver(), nil
		},
	})
}
