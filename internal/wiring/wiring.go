// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/objcbuild/internal/adapters/config"
	_ "go.trai.ch/objcbuild/internal/adapters/fs"
	_ "go.trai.ch/objcbuild/internal/adapters/logger"
	_ "go.trai.ch/objcbuild/internal/adapters/properties"
	_ "go.trai.ch/objcbuild/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/objcbuild/internal/app"
	_ "go.trai.ch/objcbuild/internal/engine/prefix"
	_ "go.trai.ch/objcbuild/internal/engine/process"
	_ "go.trai.ch/objcbuild/internal/engine/toolchain"
)
