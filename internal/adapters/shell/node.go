package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/objcbuild/internal/core/ports"
)

// NodeID is the unique identifier for the process runner Graft node.
const NodeID graft.ID = "adapter.process_runner"

func init() {
	graft.Register(graft.Node[ports.ProcessRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.ProcessRunner, error) {
			return NewRunner(), nil
		},
	})
}
