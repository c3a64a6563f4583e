// Package sourceset gives typed access to the source sets of a host project.
package sourceset

import (
	"go.trai.ch/objcbuild/internal/core/domain"
	"go.trai.ch/objcbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Dirs returns the directories the project configures for the given source set and file kind.
// The project must apply the java plugin, and only main/test with java/resources are accepted.
func Dirs(project ports.SourceProject, name domain.SourceSetName, kind domain.FileKind) (domain.DirectorySet, error) {
	if !project.HasPlugin(domain.JavaPlugin) {
		file := project.DescriptorName()
		msg := "the java plugin must be applied to this project.\n" +
			"Add it to " + file + ":\n" +
			"  " + domain.PluginsHint(file)
		return domain.DirectorySet{}, zerr.Wrap(domain.ErrJavaPluginMissing, msg)
	}

	if !domain.ValidSourceSet(name, kind) {
		err := zerr.With(
			zerr.Wrap(domain.ErrInvalidSourceSet, "expected main or test with java or resources"),
			"source_set", string(name),
		)
		return domain.DirectorySet{}, zerr.With(err, "file_kind", string(kind))
	}

	return project.DirectorySet(name, kind), nil
}
