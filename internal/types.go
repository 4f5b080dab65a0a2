package internal

import (
	"strings"
	"time"
)

// Config holds the run parameters for one upload.
type Config struct {
	// ProjectDir is the directory that becomes the repository.
	ProjectDir string `mapstructure:"dir"`
	// CommitMessage is used for the single commit created by the run.
	CommitMessage string `mapstructure:"message"`
	// RepoName is the remote repository name used in the follow-up instruction.
	RepoName string `mapstructure:"repo"`
	// Visibility of the remote repository: public, private or internal.
	Visibility string `mapstructure:"visibility"`
	// GitBinary is the version-control program to invoke.
	GitBinary string `mapstructure:"git"`
	// HostCLI is the repository-hosting program named in the follow-up instruction.
	HostCLI string `mapstructure:"host_cli"`
	// Author overrides the commit identity, in "Name <email>" form.
	Author string `mapstructure:"author"`
}

// FollowUpCommand returns the manual command that creates and pushes the remote repository.
func (c *Config) FollowUpCommand() string {
	return strings.Join([]string{
		c.HostCLI, "repo", "create", c.RepoName,
		"--" + c.Visibility, "--source=.", "--push",
	}, " ")
}

// Step is one external command of the upload sequence.
type Step struct {
	// Name describes the step in error messages, e.g. "initialize repository".
	Name    string
	Program string
	Args    []string
	Env     []string
}

// Tokens returns the program followed by its arguments.
func (s Step) Tokens() []string {
	return append([]string{s.Program}, s.Args...)
}

// CommitSummary describes a commit read back from the repository.
type CommitSummary struct {
	Hash    string
	Message string
	Author  string
	When    time.Time
}

// ShortHash returns the first 7 characters of the commit hash.
func (c CommitSummary) ShortHash() string {
	if len(c.Hash) > 7 {
		return c.Hash[:7]
	}
	return c.Hash
}

// Subject returns the first line of the commit message.
func (c CommitSummary) Subject() string {
	subject, _, _ := strings.Cut(strings.TrimSpace(c.Message), "\n")
	return subject
}

// UploadResult contains information about a successful upload
type UploadResult struct {
	// Commit is nil when the created commit could not be read back.
	Commit   *CommitSummary
	FollowUp string
}
