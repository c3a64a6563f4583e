package ports

import "go.trai.ch/objcbuild/internal/core/domain"

// SourceProject is the part of the host project model the source set accessor needs.
//
//go:generate mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks
type SourceProject interface {
	// HasPlugin reports whether the plugin with the given id is applied.
	HasPlugin(id string) bool

	// DirectorySet returns the configured directories for a source set and file kind.
	DirectorySet(name domain.SourceSetName, kind domain.FileKind) domain.DirectorySet

	// DescriptorName returns the file name of the project descriptor.
	DescriptorName() string
}

// ProjectLoader defines the interface for loading the host project model.
type ProjectLoader interface {
	// Load reads the project descriptor found in root.
	Load(root string) (*domain.Project, error)
}
