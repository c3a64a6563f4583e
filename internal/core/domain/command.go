package domain

import (
	"strings"
)

// CommandSpec describes an external process invocation.
type CommandSpec struct {
	// Executable is the program to run, either absolute or resolved through PATH.
	Executable string
	// Args are passed to the executable verbatim.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env overrides or extends the inherited environment.
	Env map[string]string
	// IgnoreExitValue accepts a non-zero exit status as a completed run.
	IgnoreExitValue bool
}

// CommandLine renders the executable and its arguments separated by single spaces.
func (s CommandSpec) CommandLine() string {
	parts := make([]string, 0, len(s.Args)+1)
	parts = append(parts, s.Executable)
	parts = append(parts, s.Args...)
	return strings.Join(parts, " ")
}

// ExecResult describes a completed process.
type ExecResult struct {
	ExitCode int
}

// ExecError is returned by the process executor for any failed invocation.
// It carries everything needed to diagnose the failure without re-running the command.
type ExecError struct {
	// CommandLine is the full command line that was executed.
	CommandLine string
	// Succeeded is true when the process exited cleanly but its output did not match.
	Succeeded bool
	// Stdout and Stderr hold the captured streams at the time of failure.
	Stdout string
	Stderr string
	// Err is the original failure.
	Err error
}

func (e *ExecError) Error() string {
	status := "Failed"
	if e.Succeeded {
		status = "Succeeded"
	}

	var cause string
	if e.Err != nil {
		cause = e.Err.Error()
	}

	var b strings.Builder
	b.WriteString("Command Line " + status + ":\n")
	b.WriteString(e.CommandLine + "\n")
	b.WriteString("Cause:\n")
	b.WriteString(cause + "\n")
	b.WriteString("\n")
	b.WriteString("Standard Output:\n")
	b.WriteString(e.Stdout + "\n")
	b.WriteString("Error Output:\n")
	b.WriteString(e.Stderr)
	return b.String()
}

// Unwrap returns the original failure.
func (e *ExecError) Unwrap() error {
	return e.Err
}
