package internal

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Uploader runs the init, stage and commit sequence against one project directory.
type Uploader struct {
	cfg      *Config
	runner   Runner
	reporter *Reporter
}

// NewUploader creates an Uploader. cfg must already be validated.
func NewUploader(cfg *Config, runner Runner, reporter *Reporter) *Uploader {
	return &Uploader{cfg: cfg, runner: runner, reporter: reporter}
}

// UploadRepo initializes, stages and commits cfg.ProjectDir with the real git binary,
// reporting progress to w.
func UploadRepo(ctx context.Context, cfg *Config, w io.Writer) (*UploadResult, error) {
	return NewUploader(cfg, NewCommandRunner(), NewReporter(w)).Run(ctx)
}

// steps returns the sequence in execution order; each step requires the previous one.
func (u *Uploader) steps() ([]Step, error) {
	commit, err := commitStep(u.cfg)
	if err != nil {
		return nil, err
	}

	return []Step{
		{Name: "initialize repository", Program: u.cfg.GitBinary, Args: []string{"init"}},
		{Name: "stage files", Program: u.cfg.GitBinary, Args: []string{"add", "."}},
		commit,
	}, nil
}

// Run executes the sequence and stops at the first failing step.
// The remote repository is never created; its command is only reported.
func (u *Uploader) Run(ctx context.Context) (*UploadResult, error) {
	logger := zerolog.Ctx(ctx)

	steps, err := u.steps()
	if err != nil {
		return nil, err
	}

	for _, step := range steps {
		u.reporter.Running(step.Tokens())
		if _, err := u.runner.Run(ctx, u.cfg.ProjectDir, step.Env, step.Program, step.Args...); err != nil {
			u.reporter.Failure(step.Tokens(), err)
			return nil, fmt.Errorf("failed to %s: %w", step.Name, err)
		}
		logger.Debug().Str("step", step.Name).Msg("step completed")
	}

	commit, err := HeadCommit(u.cfg.ProjectDir)
	if err != nil {
		logger.Warn().Err(err).Msg("could not read back the new commit")
	}

	result := &UploadResult{
		Commit:   commit,
		FollowUp: u.cfg.FollowUpCommand(),
	}
	u.reporter.Done(result.Commit, result.FollowUp)

	return result, nil
}
