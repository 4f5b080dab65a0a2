package internal

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Runner executes one external command inside a working directory.
type Runner interface {
	Run(ctx context.Context, dir string, env []string, program string, args ...string) (string, error)
}

// CommandRunner runs commands through os/exec and waits for them to finish.
type CommandRunner struct{}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{}
}

// Run executes program with args in dir and returns its trimmed stdout.
// Extra env entries are appended to the current environment.
// Failures are returned as *CommandError.
func (r *CommandRunner) Run(ctx context.Context, dir string, env []string, program string, args ...string) (string, error) {
	logger := zerolog.Ctx(ctx).With().Str("program", program).Strs("args", args).Str("dir", dir).Logger()

	cmd := exec.CommandContext(ctx, program, args...) //#nosec G204 -- program and args come from the run configuration
	cmd.Dir = dir
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug().Msg("starting command")
	start := time.Now()
	err := cmd.Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		cmdErr := &CommandError{
			Program:  program,
			Args:     args,
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			ExitCode: -1,
			Kind:     classifyExecError(err),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		}
		logger.Debug().Err(err).Int("exit_code", cmdErr.ExitCode).Dur("duration", time.Since(start)).Msg("command failed")
		return "", cmdErr
	}

	logger.Debug().Dur("duration", time.Since(start)).Msg("command finished")
	return strings.TrimSpace(stdout.String()), nil
}

// classifyExecError maps an exec failure to ErrToolNotFound or ErrCommandFailed.
func classifyExecError(err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return ErrToolNotFound
	}
	// A program given by path that does not exist fails at fork/exec rather than lookup.
	// A missing working directory fails at chdir and is a command failure.
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && pathErr.Op != "chdir" && errors.Is(pathErr.Err, fs.ErrNotExist) {
		return ErrToolNotFound
	}
	return ErrCommandFailed
}
