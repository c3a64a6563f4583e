// Package config loads the objcbuild project descriptor.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/objcbuild/internal/core/domain"
	"go.trai.ch/objcbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ProjectLoader = (*Loader)(nil)

// Loader implements ports.ProjectLoader.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads objcbuild.yaml, or objcbuild.toml when no YAML descriptor exists, from root.
func (l *Loader) Load(root string) (*domain.Project, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project directory"), "dir", root)
	}

	path, err := findDescriptor(absRoot)
	if err != nil {
		return nil, err
	}

	var pf Projectfile
	if err := readAndDecode(path, &pf); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	p := l.toProject(absRoot, &pf)
	p.Descriptor = path
	return p, nil
}

func findDescriptor(root string) (string, error) {
	for _, name := range []string{domain.ProjectFileName, domain.ProjectTOMLFileName} {
		path := filepath.Join(root, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(domain.Failure(domain.ErrProjectReadFailed, err), "unable to inspect "+name), "path", path)
		}
	}
	return "", zerr.With(zerr.Wrap(domain.ErrProjectNotFound, "no project descriptor"), "dir", root)
}

// readAndDecode decodes the descriptor strictly; unknown keys are errors.
func readAndDecode(path string, target *Projectfile) error {
	// #nosec G304 -- path is found by findDescriptor
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.Wrap(domain.Failure(domain.ErrProjectReadFailed, err), "unable to read "+filepath.Base(path))
	}

	if filepath.Ext(path) == ".toml" {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(target); err != nil {
			return zerr.Wrap(domain.Failure(domain.ErrProjectParseFailed, err), "invalid "+filepath.Base(path))
		}
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(domain.Failure(domain.ErrProjectParseFailed, err), "invalid "+filepath.Base(path))
	}
	return nil
}

func (l *Loader) toProject(root string, pf *Projectfile) *domain.Project {
	p := &domain.Project{
		Root:       root,
		Plugins:    slices.Clone(pf.Plugins),
		SourceSets: make(map[domain.SourceSetName]map[domain.FileKind][]string),
		J2ObjC: domain.J2ObjCConfig{
			DestDir:                   resolvePath(root, pf.J2ObjC.DestDir, domain.DefaultDestDir),
			TranslateArgs:             slices.Clone(pf.J2ObjC.TranslateArgs),
			FilenameCollisionCheck:    pf.J2ObjC.FilenameCollisionCheck == nil || *pf.J2ObjC.FilenameCollisionCheck,
			CycleFinderArgs:           slices.Clone(pf.J2ObjC.CycleFinderArgs),
			CycleFinderExpectedCycles: pf.J2ObjC.CycleFinderExpectedCycles,
			MinVersion:                pf.J2ObjC.MinVersion,
		},
	}

	for name := range pf.SourceSets {
		if !domain.ValidSourceSet(domain.SourceSetName(name), domain.FileKindJava) {
			l.logger.Warn("ignoring unknown source set " + name)
		}
	}

	for _, name := range domain.SourceSetNames() {
		dto, declared := pf.SourceSets[string(name)]
		if !declared && !p.HasPlugin(domain.JavaPlugin) {
			continue
		}

		kinds := map[domain.FileKind][]string{
			domain.FileKindJava:      resolveDirs(root, dto.Java, domain.DefaultSourceDir(name, domain.FileKindJava)),
			domain.FileKindResources: resolveDirs(root, dto.Resources, domain.DefaultSourceDir(name, domain.FileKindResources)),
		}
		p.SourceSets[name] = kinds
	}

	return p
}

// resolveDirs makes dirs absolute against root. No dirs yields the conventional default.
func resolveDirs(root string, dirs []string, def string) []string {
	if len(dirs) == 0 {
		return []string{filepath.Join(root, def)}
	}
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, resolvePath(root, d, def))
	}
	return out
}

func resolvePath(root, path, def string) string {
	if path == "" {
		path = def
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}
