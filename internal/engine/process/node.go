package process

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/objcbuild/internal/adapters/logger"
	"go.trai.ch/objcbuild/internal/adapters/shell"
	"go.trai.ch/objcbuild/internal/core/ports"
)

// NodeID is the unique identifier for the process executor Graft node.
const NodeID graft.ID = "engine.process"

func init() {
	graft.Register(graft.Node[*Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Executor, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewExecutor(runner, log), nil
		},
	})
}
