package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrToolchainNotConfigured is returned when neither local.properties nor the environment names a toolchain.
	ErrToolchainNotConfigured = zerr.New("j2objc home not set")

	// ErrToolchainDirNotFound is returned when the configured toolchain home is not an existing directory.
	ErrToolchainDirNotFound = zerr.New("j2objc directory not found")

	// ErrToolchainTooOld is returned when the installed translator is older than the required version.
	ErrToolchainTooOld = zerr.New("j2objc version too old")

	// ErrToolchainVersionUnreadable is returned when the translator reports a version that cannot be parsed.
	ErrToolchainVersionUnreadable = zerr.New("unable to parse j2objc version")

	// ErrLocalPropertiesInvalid is returned when local.properties cannot be parsed.
	ErrLocalPropertiesInvalid = zerr.New("failed to read local.properties")

	// ErrJavaPluginMissing is returned when the project does not apply the java plugin.
	ErrJavaPluginMissing = zerr.New("java plugin not applied")

	// ErrInvalidSourceSet is returned when a source set name and file kind do not form a valid pair.
	ErrInvalidSourceSet = zerr.New("invalid source set and file kind combination")

	// ErrFilenameCollision is returned when two files in one collection share a base name.
	ErrFilenameCollision = zerr.New("filename collision")

	// ErrInvalidOutputPattern is returned when an output pattern does not compile or has no capturing group.
	ErrInvalidOutputPattern = zerr.New("invalid output pattern")

	// ErrOutputNotFound is returned when neither captured stream matches the expected output pattern.
	ErrOutputNotFound = zerr.New("expected output not found")

	// ErrCommandFailed is returned when an external process could not be started or exited non-zero.
	ErrCommandFailed = zerr.New("command failed")

	// ErrUnexpectedCycles is returned when cycle_finder reports a different number of cycles than expected.
	ErrUnexpectedCycles = zerr.New("unexpected number of reference cycles")

	// ErrProjectNotFound is returned when no project descriptor exists in the project directory.
	ErrProjectNotFound = zerr.New("could not find objcbuild.yaml or objcbuild.toml")

	// ErrProjectReadFailed is returned when the project descriptor cannot be read.
	ErrProjectReadFailed = zerr.New("failed to read project descriptor")

	// ErrProjectParseFailed is returned when the project descriptor cannot be parsed.
	ErrProjectParseFailed = zerr.New("failed to parse project descriptor")

	// ErrCopyFailed is returned when a file cannot be copied.
	ErrCopyFailed = zerr.New("failed to copy files")
)

// Failure classifies err under the sentinel kind. errors.Is matches kind, and err
// stays reachable through errors.Is and errors.As.
func Failure(kind, err error) error {
	return fmt.Errorf("%w: %w", kind, err)
}
