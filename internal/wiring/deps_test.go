package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/objcbuild/internal/app"
	_ "go.trai.ch/objcbuild/internal/wiring"
)

// TestGraftDependencies checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	graft.AssertDepsValid(t, "../../internal")
}

func TestComponentsResolve(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
