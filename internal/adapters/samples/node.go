package samples

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wl/internal/core/ports"
)

// NodeID is the unique identifier for the sample writer Graft node.
const NodeID graft.ID = "adapter.samples"

func init() {
	graft.Register(graft.Node[ports.SampleWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SampleWriter, error) {
			return NewWriter(), nil
		},
	})
}
