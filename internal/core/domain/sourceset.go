package domain

// SourceSetName identifies a source set declared by the java plugin.
type SourceSetName string

// Recognized source sets.
const (
	SourceSetMain SourceSetName = "main"
	SourceSetTest SourceSetName = "test"
)

// FileKind selects the directory set of a source set.
type FileKind string

// Recognized file kinds.
const (
	FileKindJava      FileKind = "java"
	FileKindResources FileKind = "resources"
)

// JavaPlugin is the plugin id every source set lookup requires.
const JavaPlugin = "java"

// SourceSetNames returns the recognized source sets in declaration order.
func SourceSetNames() []SourceSetName {
	return []SourceSetName{SourceSetMain, SourceSetTest}
}

// FileKinds returns the recognized file kinds in declaration order.
func FileKinds() []FileKind {
	return []FileKind{FileKindJava, FileKindResources}
}

// ValidSourceSet reports whether name and kind form one of the four supported pairs.
func ValidSourceSet(name SourceSetName, kind FileKind) bool {
	switch name {
	case SourceSetMain, SourceSetTest:
	default:
		return false
	}
	switch kind {
	case FileKindJava, FileKindResources:
		return true
	default:
		return false
	}
}

// DirectorySet is the list of directories configured for one source set and file kind.
type DirectorySet struct {
	SrcDirs []string
}

// Empty reports whether the set has no directories.
func (d DirectorySet) Empty() bool {
	return len(d.SrcDirs) == 0
}
