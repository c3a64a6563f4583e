package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/objcbuild/internal/core/ports"
)

// CopierNodeID is the unique identifier for the copier Graft node.
const CopierNodeID graft.ID = "adapter.fs.copier"

func init() {
	graft.Register(graft.Node[ports.Copier]{
		ID:        CopierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Copier, error) {
			return NewCopier(), nil
		},
	})
}
