package properties

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/objcbuild/internal/core/ports"
)

// NodeID is the unique identifier for the properties loader Graft node.
const NodeID graft.ID = "adapter.properties"

func init() {
	graft.Register(graft.Node[ports.PropertiesLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PropertiesLoader, error) {
			return NewLoader(), nil
		},
	})
}
