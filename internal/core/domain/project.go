package domain

import (
	"path/filepath"
	"slices"
)

// Project is the host project model read from the project descriptor.
type Project struct {
	// Root is the absolute project directory.
	Root string
	// Descriptor is the path of the descriptor the project was read from.
	Descriptor string
	// Plugins lists the applied plugin ids.
	Plugins []string
	// SourceSets maps each declared source set to its directories per file kind.
	// Directories are absolute.
	SourceSets map[SourceSetName]map[FileKind][]string
	// J2ObjC holds the translator settings.
	J2ObjC J2ObjCConfig
}

// J2ObjCConfig holds the translator settings of a project.
type J2ObjCConfig struct {
	// DestDir is the absolute output directory for translated sources.
	DestDir string
	// TranslateArgs are passed to j2objc after the generated flags.
	TranslateArgs []string
	// FilenameCollisionCheck fails translation when two sources share a base name.
	FilenameCollisionCheck bool
	// CycleFinderArgs are passed to cycle_finder after the generated flags.
	CycleFinderArgs []string
	// CycleFinderExpectedCycles is the number of cycles cycle_finder may report.
	CycleFinderExpectedCycles int
	// MinVersion is the lowest accepted translator version. Empty disables the check.
	MinVersion string
}

// HasPlugin reports whether the plugin with the given id is applied.
func (p *Project) HasPlugin(id string) bool {
	return slices.Contains(p.Plugins, id)
}

// DescriptorName returns the file name of the project descriptor,
// or objcbuild.yaml when the project was not read from a file.
func (p *Project) DescriptorName() string {
	if p.Descriptor == "" {
		return ProjectFileName
	}
	return filepath.Base(p.Descriptor)
}

// DirectorySet returns the configured directories for a source set and file kind.
// An undeclared pair yields an empty set.
func (p *Project) DirectorySet(name SourceSetName, kind FileKind) DirectorySet {
	kinds, ok := p.SourceSets[name]
	if !ok {
		return DirectorySet{}
	}
	return DirectorySet{SrcDirs: slices.Clone(kinds[kind])}
}
