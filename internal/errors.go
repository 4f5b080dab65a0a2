package internal

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, checked with errors.Is.
var (
	// ErrToolNotFound indicates that the external program is not installed or not on PATH.
	ErrToolNotFound = errors.New("tool not found")

	// ErrCommandFailed indicates that the external program ran and exited with a non-zero
	// status, or could not be started in the requested directory.
	ErrCommandFailed = errors.New("command failed")

	// ErrInvalidConfig indicates that a run parameter is missing or malformed.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// CommandError describes a failed external command.
type CommandError struct {
	Program  string
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	// Kind is ErrToolNotFound or ErrCommandFailed.
	Kind error
	Err  error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.CommandLine())
	if out := e.Output(); out != "" {
		msg += "\n" + out
	}
	return msg
}

// Unwrap exposes both the kind and the underlying exec error.
func (e *CommandError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// CommandLine returns the program and its arguments joined by spaces.
func (e *CommandError) CommandLine() string {
	return strings.Join(append([]string{e.Program}, e.Args...), " ")
}

// Output returns the captured error text: stderr if present, otherwise stdout,
// otherwise the underlying error.
func (e *CommandError) Output() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return s
	}
	if s := strings.TrimSpace(e.Stdout); s != "" {
		return s
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}
