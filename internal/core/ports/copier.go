package ports

import "go.trai.ch/objcbuild/internal/core/domain"

// Copier defines the interface for the host copy mechanism.
//
//go:generate mockgen -source=copier.go -destination=mocks/mock_copier.go -package=mocks
type Copier interface {
	// Copy performs the copy described by spec.
	Copy(spec domain.CopySpec) (domain.CopyResult, error)
}
