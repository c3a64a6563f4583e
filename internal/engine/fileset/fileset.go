// Package fileset builds file collections and checks them before translation.
package fileset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/objcbuild/internal/core/domain"
	"go.trai.ch/objcbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Join joins path segments into a single cleaned path.
func Join(elem ...string) string {
	return filepath.Join(elem...)
}

// Absolute resolves each path against root. Absolute paths are only cleaned.
func Absolute(root string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if filepath.IsAbs(p) {
			out = append(out, filepath.Clean(p))
			continue
		}
		out = append(out, filepath.Join(root, p))
	}
	return out
}

// Tree collects the files below dirs matching any include pattern and no exclude pattern.
// Patterns use doublestar syntax relative to each directory; no includes means every file.
// The result is sorted and free of duplicates. Missing directories contribute nothing.
func Tree(dirs, includes, excludes []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	for _, dir := range dirs {
		matches, err := Match(dir, includes, excludes)
		if err != nil {
			return nil, err
		}

		for _, rel := range matches {
			path := filepath.Join(dir, filepath.FromSlash(rel))
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	slices.Sort(files)
	return files, nil
}

// Match returns the files below dir matching any include pattern and no exclude
// pattern, as sorted slash-separated paths relative to dir. No includes means
// every file. A missing directory yields no files.
func Match(dir string, includes, excludes []string) ([]string, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "unable to read directory"), "path", dir)
	}

	if len(includes) == 0 {
		includes = []string{"**"}
	}

	fsys := os.DirFS(dir)
	seen := make(map[string]struct{})
	var files []string

	for _, pattern := range includes {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid include pattern"), "pattern", pattern)
		}

		for _, rel := range matches {
			if _, dup := seen[rel]; dup {
				continue
			}
			excluded, err := matchesAny(excludes, rel)
			if err != nil {
				return nil, err
			}
			if excluded {
				continue
			}
			seen[rel] = struct{}{}
			files = append(files, rel)
		}
	}

	slices.Sort(files)
	return files, nil
}

func matchesAny(patterns []string, name string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, zerr.With(zerr.Wrap(err, "invalid exclude pattern"), "pattern", pattern)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// CheckCollisions fails on the first two files sharing a base name.
// Names are compared exactly, so Foo.java and foo.java do not collide.
// descriptor names the project file whose setting turns the check off;
// empty means objcbuild.yaml.
func CheckCollisions(descriptor string, files []string) error {
	if descriptor == "" {
		descriptor = domain.ProjectFileName
	}

	byName := make(map[string]string, len(files))

	for _, file := range files {
		name := filepath.Base(file)
		prev, ok := byName[name]
		if !ok {
			byName[name] = file
			continue
		}
		if prev == file {
			continue
		}

		msg := "File name collision detected:\n" +
			"  " + prev + "\n" +
			"  " + file + "\n" +
			"\n" +
			"To disable this check (which may overwrite files), modify " + descriptor + ":\n" +
			"\n" +
			domain.J2ObjCSettingHint(descriptor, domain.CollisionCheckFlag, "false")

		err := zerr.With(zerr.Wrap(domain.ErrFilenameCollision, msg), "first", prev)
		return zerr.With(err, "second", file)
	}

	return nil
}

// Copy hands spec to the host copy mechanism.
func Copy(copier ports.Copier, spec domain.CopySpec) (domain.CopyResult, error) {
	return copier.Copy(spec)
}
