// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/objcbuild/internal/core/domain"
)

// ProcessRunner defines the interface for running external processes.
//
//go:generate mockgen -source=process_runner.go -destination=mocks/mock_process_runner.go -package=mocks
type ProcessRunner interface {
	// Run starts the process described by spec and blocks until it exits.
	//
	// Standard output and standard error are streamed into the given writers.
	// A non-zero exit status is returned as an error unless spec.IgnoreExitValue is set.
	Run(ctx context.Context, spec domain.CommandSpec, stdout, stderr io.Writer) (domain.ExecResult, error)
}
