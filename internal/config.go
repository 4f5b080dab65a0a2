package internal

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override run parameters.
const EnvPrefix = "GIT_UPLOAD"

// DefaultConfigName is the config file looked up in the working directory and $HOME.
const DefaultConfigName = ".git-upload"

// Defaults used when no flag, environment variable or config file sets a value.
const (
	DefaultProjectDir    = "."
	DefaultCommitMessage = "Initial commit"
	DefaultRepoName      = "train_app"
	DefaultVisibility    = "public"
	DefaultGitBinary     = "git"
	DefaultHostCLI       = "gh"
)

var validVisibilities = []string{"public", "private", "internal"}

// NewViper creates a viper instance with defaults and GIT_UPLOAD_* environment lookup.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("dir", DefaultProjectDir)
	v.SetDefault("message", DefaultCommitMessage)
	v.SetDefault("repo", DefaultRepoName)
	v.SetDefault("visibility", DefaultVisibility)
	v.SetDefault("git", DefaultGitBinary)
	v.SetDefault("host_cli", DefaultHostCLI)
	v.SetDefault("author", "")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the config file (if any) into v and decodes a validated Config.
// An explicit configFile must exist; the default .git-upload.yaml is optional.
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that every run parameter is usable.
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"dir", c.ProjectDir},
		{"message", c.CommitMessage},
		{"repo", c.RepoName},
		{"git", c.GitBinary},
		{"host_cli", c.HostCLI},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, r.key)
		}
	}

	if strings.ContainsAny(c.RepoName, " \t\n") {
		return fmt.Errorf("%w: repo %q must not contain whitespace", ErrInvalidConfig, c.RepoName)
	}

	valid := false
	for _, vis := range validVisibilities {
		if c.Visibility == vis {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: visibility %q must be one of %s", ErrInvalidConfig, c.Visibility, strings.Join(validVisibilities, ", "))
	}

	if c.Author != "" {
		if _, err := ParseSignature(c.Author); err != nil {
			return fmt.Errorf("%w: author: %v", ErrInvalidConfig, err)
		}
	}

	return nil
}
