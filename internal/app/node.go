package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/objcbuild/internal/adapters/config"
	"go.trai.ch/objcbuild/internal/adapters/fs"
	"go.trai.ch/objcbuild/internal/adapters/logger"
	"go.trai.ch/objcbuild/internal/core/ports"
	"go.trai.ch/objcbuild/internal/engine/prefix"
	"go.trai.ch/objcbuild/internal/engine/process"
	"go.trai.ch/objcbuild/internal/engine/toolchain"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the Components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			toolchain.NodeID,
			process.NodeID,
			prefix.NodeID,
			fs.CopierNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ProjectLoader](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[*toolchain.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[*process.Executor](ctx)
			if err != nil {
				return nil, err
			}

			prefixes, err := graft.Dep[*prefix.Parser](ctx)
			if err != nil {
				return nil, err
			}

			copier, err := graft.Dep[ports.Copier](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, resolver, executor, prefixes, copier, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}
