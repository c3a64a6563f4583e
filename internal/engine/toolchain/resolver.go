// Package toolchain locates and verifies the j2objc distribution.
package toolchain

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-version"
	"go.trai.ch/objcbuild/internal/core/domain"
	"go.trai.ch/objcbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	notConfiguredMessage = "J2ObjC Home not set, this should be configured in one of two ways:\n" +
		"1) Add j2objc.home to local.properties in the project root:\n" +
		"   j2objc.home=/SOME/PATH/j2objc\n" +
		"2) Set the J2OBJC_HOME environment variable:\n" +
		"   export J2OBJC_HOME=/SOME/PATH/j2objc\n" +
		"The directory is the unzipped j2objc release, containing the j2objc executable and lib/"

	versionPattern = `j2objc\s+(\S+)`
)

// Capturer runs a command and returns the first capturing group of a pattern matched against its output.
type Capturer interface {
	Capture(ctx context.Context, spec domain.CommandSpec, matchOutput string) (string, error)
}

// Resolver finds the toolchain home. It keeps no state between calls.
type Resolver struct {
	props     ports.PropertiesLoader
	capturer  Capturer
	lookupEnv func(string) (string, bool)
}

// NewResolver creates a Resolver reading the process environment.
func NewResolver(props ports.PropertiesLoader, capturer Capturer) *Resolver {
	return &Resolver{
		props:     props,
		capturer:  capturer,
		lookupEnv: os.LookupEnv,
	}
}

// WithLookupEnv replaces the environment lookup.
func (r *Resolver) WithLookupEnv(fn func(string) (string, bool)) *Resolver {
	r.lookupEnv = fn
	return r
}

// LocalProperty returns j2objc.<key> from local.properties in root, or def when
// the file or key is absent. A malformed file is an error.
func (r *Resolver) LocalProperty(root, key, def string) (string, error) {
	path := domain.LocalPropertiesPath(root)

	props, err := r.props.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return def, nil
		}
		return "", zerr.With(zerr.Wrap(domain.Failure(domain.ErrLocalPropertiesInvalid, err), "unable to load "+path), "path", path)
	}

	if v, ok := props[domain.LocalPropertyPrefix+key]; ok {
		return v, nil
	}
	return def, nil
}

// Home resolves the toolchain directory: j2objc.home in local.properties first,
// then the J2OBJC_HOME environment variable. An empty j2objc.home counts as unset.
// The result must be an existing directory.
// Relative paths are resolved against root.
func (r *Resolver) Home(root string) (string, error) {
	home, err := r.LocalProperty(root, domain.HomeProperty, "")
	if err != nil {
		return "", err
	}

	if home == "" {
		home, _ = r.lookupEnv(domain.HomeEnvVar)
	}

	if home == "" {
		return "", zerr.With(
			zerr.Wrap(domain.ErrToolchainNotConfigured, notConfiguredMessage),
			"local_properties", domain.LocalPropertiesPath(root),
		)
	}

	if !filepath.IsAbs(home) {
		home = filepath.Join(root, home)
	}
	home = filepath.Clean(home)

	info, err := os.Stat(home)
	if err != nil || !info.IsDir() {
		return "", zerr.With(
			zerr.Wrap(domain.ErrToolchainDirNotFound,
				"J2ObjC directory not found, expected location: "+home+"\n"+
					"Check j2objc.home in local.properties or the J2OBJC_HOME environment variable"),
			"path", home,
		)
	}

	return home, nil
}

// Binary returns the path of an executable inside home.
func Binary(home, name string) string {
	return filepath.Join(home, name)
}

// Verify runs `j2objc -version` from home and checks it against minVersion.
// An empty minVersion only checks that the version can be read.
func (r *Resolver) Verify(ctx context.Context, home, minVersion string) (*version.Version, error) {
	raw, err := r.capturer.Capture(ctx, domain.CommandSpec{
		Executable: Binary(home, domain.TranslatorBinary),
		Args:       []string{"-version"},
	}, versionPattern)
	if err != nil {
		return nil, err
	}

	v, err := version.NewVersion(raw)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrToolchainVersionUnreadable, err.Error()), "version", raw)
	}

	if minVersion == "" {
		return v, nil
	}

	minV, err := version.NewVersion(minVersion)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid minVersion"), "min_version", minVersion)
	}

	if v.LessThan(minV) {
		return v, zerr.With(
			zerr.Wrap(domain.ErrToolchainTooOld, "j2objc "+v.Original()+" is older than the required "+minV.Original()),
			"home", home,
		)
	}

	return v, nil
}
