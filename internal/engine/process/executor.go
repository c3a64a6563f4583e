// Package process runs external commands and inspects their captured output.
package process

import (
	"bytes"
	"context"
	"regexp"

	"go.trai.ch/objcbuild/internal/core/domain"
	"go.trai.ch/objcbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor runs commands through a ports.ProcessRunner.
type Executor struct {
	runner ports.ProcessRunner
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(runner ports.ProcessRunner, logger ports.Logger) *Executor {
	return &Executor{
		runner: runner,
		logger: logger,
	}
}

// Exec runs spec synchronously, streaming its output into stdout and stderr.
//
// When matchOutput is non-empty it must contain a capturing group, and after
// the process exits stderr and then stdout must match it. Every failure is
// returned as a *domain.ExecError carrying the command line and both streams.
func (e *Executor) Exec(
	ctx context.Context,
	spec domain.CommandSpec,
	stdout, stderr *bytes.Buffer,
	matchOutput string,
) (domain.ExecResult, error) {
	var re *regexp.Regexp
	if matchOutput != "" {
		var err error
		if re, err = CompilePattern(matchOutput); err != nil {
			return domain.ExecResult{}, err
		}
	}

	result, _, err := e.exec(ctx, spec, stdout, stderr, re)
	return result, err
}

// exec runs spec and, when re is set, returns its first capturing group.
func (e *Executor) exec(
	ctx context.Context,
	spec domain.CommandSpec,
	stdout, stderr *bytes.Buffer,
	re *regexp.Regexp,
) (domain.ExecResult, string, error) {
	result, err := e.runner.Run(ctx, spec, stdout, stderr)
	if err != nil {
		return result, "", &domain.ExecError{
			CommandLine: spec.CommandLine(),
			Stdout:      stdout.String(),
			Stderr:      stderr.String(),
			Err:         err,
		}
	}

	var group string
	if re != nil {
		var ok bool
		if group, ok = MatchOutputs(stdout.String(), stderr.String(), re); !ok {
			pattern := re.String()
			notFound := zerr.With(
				zerr.Wrap(domain.ErrOutputNotFound,
					"Unable to find expected output in stdout or stderr\nFailed Regex Match: "+pattern),
				"pattern", pattern,
			)
			return result, "", &domain.ExecError{
				CommandLine: spec.CommandLine(),
				Succeeded:   true,
				Stdout:      stdout.String(),
				Stderr:      stderr.String(),
				Err:         notFound,
			}
		}
	}

	e.logger.Debug("Command Line:\n" + spec.CommandLine())
	if stdout.Len() > 0 {
		e.logger.Debug("Standard Output:\n" + stdout.String())
	}
	if stderr.Len() > 0 {
		e.logger.Debug("Error Output:\n" + stderr.String())
	}

	return result, group, nil
}

// CompilePattern compiles an output pattern and requires at least one capturing group.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidOutputPattern, err.Error()), "pattern", pattern)
	}
	if re.NumSubexp() < 1 {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrInvalidOutputPattern, "pattern must contain a capturing group"),
			"pattern", pattern,
		)
	}
	return re, nil
}

// MatchOutputs searches stderr, then stdout, and returns the first capturing group of the first match.
func MatchOutputs(stdout, stderr string, re *regexp.Regexp) (string, bool) {
	for _, out := range []string{stderr, stdout} {
		if m := re.FindStringSubmatch(out); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// Capture runs spec with fresh buffers and returns the first capturing group of matchOutput.
// matchOutput is required and is checked before the process starts.
func (e *Executor) Capture(ctx context.Context, spec domain.CommandSpec, matchOutput string) (string, error) {
	if matchOutput == "" {
		return "", zerr.Wrap(domain.ErrInvalidOutputPattern, "capture requires an output pattern")
	}

	re, err := CompilePattern(matchOutput)
	if err != nil {
		return "", err
	}

	var stdout, stderr bytes.Buffer
	_, group, err := e.exec(ctx, spec, &stdout, &stderr, re)
	return group, err
}
