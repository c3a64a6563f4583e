package prefix

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/objcbuild/internal/adapters/properties"
	"go.trai.ch/objcbuild/internal/core/ports"
)

// NodeID is the unique identifier for the prefix parser Graft node.
const NodeID graft.ID = "engine.prefix"

func init() {
	graft.Register(graft.Node[*Parser]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{properties.NodeID},
		Run: func(ctx context.Context) (*Parser, error) {
			props, err := graft.Dep[ports.PropertiesLoader](ctx)
			if err != nil {
				return nil, err
			}
			return NewParser(props), nil
		},
	})
}
