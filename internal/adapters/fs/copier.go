// Package fs provides file system adapters for copying file trees.
package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/objcbuild/internal/core/domain"
	"go.trai.ch/objcbuild/internal/core/ports"
	"go.trai.ch/objcbuild/internal/engine/fileset"
	"go.trai.ch/zerr"
)

var _ ports.Copier = (*Copier)(nil)

// Copier implements ports.Copier on the local file system.
// Destination files whose content already matches the source are left untouched.
type Copier struct{}

// NewCopier creates a new Copier.
func NewCopier() *Copier {
	return &Copier{}
}

// Copy copies every matching file below each source directory into spec.Into,
// preserving the relative layout. Missing source directories are skipped.
func (c *Copier) Copy(spec domain.CopySpec) (domain.CopyResult, error) {
	var result domain.CopyResult

	for _, from := range spec.From {
		files, err := fileset.Match(from, spec.Includes, spec.Excludes)
		if err != nil {
			return result, err
		}

		for _, rel := range files {
			src := filepath.Join(from, filepath.FromSlash(rel))
			dst := filepath.Join(spec.Into, filepath.FromSlash(rel))

			same, err := sameContent(src, dst)
			if err != nil {
				return result, err
			}
			if same {
				result.Skipped++
				continue
			}

			if err := copyFile(src, dst); err != nil {
				return result, err
			}
			result.Copied++
		}
	}

	return result, nil
}

// sameContent reports whether dst exists with the same size and XXHash as src.
func sameContent(src, dst string) (bool, error) {
	dstInfo, err := os.Stat(dst)
	if errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, copyFailed(err, dst)
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, copyFailed(err, src)
	}
	if srcInfo.Size() != dstInfo.Size() {
		return false, nil
	}

	srcHash, err := hashFile(src)
	if err != nil {
		return false, err
	}
	dstHash, err := hashFile(dst)
	if err != nil {
		return false, err
	}
	return srcHash == dstHash, nil
}

func hashFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, copyFailed(err, path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, copyFailed(err, path)
	}
	return hasher.Sum64(), nil
}

func copyFile(src, dst string) (err error) {
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return copyFailed(err, filepath.Dir(dst))
	}

	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return copyFailed(err, src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return copyFailed(err, dst)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = copyFailed(cerr, dst)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return copyFailed(err, dst)
	}
	return nil
}

func copyFailed(err error, path string) error {
	return zerr.With(zerr.Wrap(domain.Failure(domain.ErrCopyFailed, err), "unable to copy "+path), "path", path)
}
