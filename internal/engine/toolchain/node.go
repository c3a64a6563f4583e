package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/objcbuild/internal/adapters/properties"
	"go.trai.ch/objcbuild/internal/core/ports"
	"go.trai.ch/objcbuild/internal/engine/process"
)

// NodeID is the unique identifier for the toolchain resolver Graft node.
const NodeID graft.ID = "engine.toolchain"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{properties.NodeID, process.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			props, err := graft.Dep[ports.PropertiesLoader](ctx)
			if err != nil {
				return nil, err
			}

			exec, err := graft.Dep[*process.Executor](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(props, exec), nil
		},
	})
}
