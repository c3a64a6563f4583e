package domain

import "path/filepath"

const (
	// LocalPropertiesFileName is the per-checkout override file at the project root.
	LocalPropertiesFileName = "local.properties"

	// LocalPropertyPrefix namespaces every key this tool reads from local.properties.
	LocalPropertyPrefix = "j2objc."

	// HomeProperty is the local.properties key (without prefix) naming the toolchain home.
	HomeProperty = "home"

	// HomeEnvVar is the environment variable naming the toolchain home.
	HomeEnvVar = "J2OBJC_HOME"

	// ProjectFileName is the YAML project descriptor.
	ProjectFileName = "objcbuild.yaml"

	// ProjectTOMLFileName is the TOML project descriptor, used when no YAML descriptor exists.
	ProjectTOMLFileName = "objcbuild.toml"

	// TranslatorBinary is the translator executable inside the toolchain home.
	TranslatorBinary = "j2objc"

	// CycleFinderBinary is the cycle finder executable inside the toolchain home.
	CycleFinderBinary = "cycle_finder"

	// DefaultDestDir is where translated sources are written, relative to the project root.
	DefaultDestDir = "build/j2objcOutputs"

	// CollisionCheckFlag is the descriptor key that disables the filename collision check.
	CollisionCheckFlag = "filenameCollisionCheck"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// LocalPropertiesPath returns the local.properties path for a project root.
func LocalPropertiesPath(root string) string {
	return filepath.Join(root, LocalPropertiesFileName)
}

// PluginsHint shows how the descriptor file applies the java plugin.
func PluginsHint(file string) string {
	if isTOML(file) {
		return `plugins = ["java"]`
	}
	return "plugins: [java]"
}

// J2ObjCSettingHint shows how the descriptor file sets key in the j2objc section.
func J2ObjCSettingHint(file, key, value string) string {
	if isTOML(file) {
		return "[j2objc]\n" + key + " = " + value
	}
	return "j2objc:\n  " + key + ": " + value
}

func isTOML(file string) bool {
	return filepath.Ext(file) == ".toml"
}

// DefaultSourceDir returns the conventional directory of a source set and file kind.
// It joins src, the set name and the kind.
func DefaultSourceDir(name SourceSetName, kind FileKind) string {
	return filepath.Join("src", string(name), string(kind))
}
