package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"git-upload/internal"
)

// app holds per-invocation state shared by the commands.
type app struct {
	stdout io.Writer
	stderr io.Writer
	v      *viper.Viper

	configFile string
	verbose    bool
	logFile    string
	readme     bool

	logCloser io.Closer
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr, v: internal.NewViper()}
}

func (a *app) close() {
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
}

// configFlags maps config keys to the persistent flags that override them.
var configFlags = map[string]string{
	"dir":        "dir",
	"message":    "message",
	"repo":       "repo",
	"visibility": "visibility",
	"git":        "git",
	"host_cli":   "host-cli",
	"author":     "author",
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "git-upload",
		Short: "Initialize, stage and commit a project directory",
		Long: `git-upload runs "git init", "git add ." and "git commit -m <message>" in a project
directory, stopping at the first failure, then prints the command that creates the
remote repository and pushes to it. That last command is never run for you.`,
		Version:           GitSHA,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.readme {
				fmt.Fprintln(a.stdout, readmeContent)
				return nil
			}

			cfg, err := internal.LoadConfig(a.v, a.configFile)
			if err != nil {
				return err
			}

			_, err = internal.UploadRepo(cmd.Context(), cfg, a.stdout)
			return err
		},
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.SetVersionTemplate("git-upload version {{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default .git-upload.yaml in the current directory or $HOME)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log every command with its duration")
	pf.StringVar(&a.logFile, "log-file", "", "also write logs to this file, rotated")
	pf.String("dir", internal.DefaultProjectDir, "project directory to turn into a repository")
	pf.StringP("message", "m", internal.DefaultCommitMessage, "commit message")
	pf.String("repo", internal.DefaultRepoName, "name of the remote repository to create")
	pf.String("visibility", internal.DefaultVisibility, "remote repository visibility: public, private or internal")
	pf.String("git", internal.DefaultGitBinary, "git executable")
	pf.String("host-cli", internal.DefaultHostCLI, "repository-hosting CLI named in the follow-up command")
	pf.String("author", "", `commit author and committer, "Name <email>"`)

	cmd.Flags().BoolVar(&a.readme, "readme", false, "show full documentation")

	cmd.AddCommand(a.logCmd())
	return cmd
}

// setup binds flags to viper and attaches the logger to the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	for key, name := range configFlags {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	var logger zerolog.Logger
	logger, a.logCloser = newLogger(a.stderr, a.verbose, a.logFile)
	cmd.SetContext(logger.WithContext(cmd.Context()))

	logger.Debug().Str("version", GitSHA).Str("command", cmd.Name()).Msg("starting")
	return nil
}

func (a *app) logCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "List the commits of the project directory, newest first",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := internal.LoadConfig(a.v, a.configFile)
			if err != nil {
				return err
			}
			return internal.LogHistory(cfg.ProjectDir, a.stdout)
		},
	}
}
