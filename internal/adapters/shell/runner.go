// Package shell runs external processes with os/exec.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/objcbuild/internal/core/domain"
	"go.trai.ch/objcbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProcessRunner = (*Runner)(nil)

// Runner implements ports.ProcessRunner.
type Runner struct {
	environ func() []string
}

// NewRunner creates a Runner that inherits the current process environment.
func NewRunner() *Runner {
	return &Runner{environ: os.Environ}
}

// Run starts the command and waits for it to exit.
func (r *Runner) Run(
	ctx context.Context,
	spec domain.CommandSpec,
	stdout, stderr io.Writer,
) (domain.ExecResult, error) {
	if spec.Executable == "" {
		return domain.ExecResult{}, zerr.Wrap(domain.ErrCommandFailed, "empty command")
	}

	env := resolveEnvironment(r.environ(), spec.Env)

	executable := spec.Executable
	if !filepath.IsAbs(executable) && !strings.ContainsRune(executable, filepath.Separator) {
		if lp, err := lookPath(executable, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, spec.Args...) //nolint:gosec // command comes from project configuration
	cmd.Args[0] = spec.Executable
	cmd.Dir = spec.Dir
	cmd.Env = env
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err == nil {
		return domain.ExecResult{ExitCode: 0}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode := exitErr.ExitCode()
		if spec.IgnoreExitValue {
			return domain.ExecResult{ExitCode: exitCode}, nil
		}
		return domain.ExecResult{ExitCode: exitCode}, zerr.With(
			zerr.Wrap(domain.Failure(domain.ErrCommandFailed, err), "process exited with code "+strconv.Itoa(exitCode)),
			"exit_code", exitCode,
		)
	}

	return domain.ExecResult{ExitCode: -1}, zerr.With(
		zerr.Wrap(domain.Failure(domain.ErrCommandFailed, err), "unable to start "+spec.Executable),
		"exit_code", -1,
	)
}

// resolveEnvironment overlays the command's variables on the inherited environment.
// Each key appears once; overridden keys keep their inherited position.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	order := make([]string, 0, len(sysEnv)+len(overrides))

	set := func(k, v string) {
		if _, exists := envMap[k]; !exists {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
		}
	}
	for k, v := range overrides {
		set(k, v)
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the PATH of the given environment.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if p, ok := strings.CutPrefix(e, "PATH="); ok {
			path = p
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
