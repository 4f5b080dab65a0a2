package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-git/v5/plumbing/object"
)

// commitStep builds the "git commit -m <message>" step.
// When an author is configured it is applied to both author and committer
// through the GIT_AUTHOR_* / GIT_COMMITTER_* environment.
func commitStep(cfg *Config) (Step, error) {
	step := Step{
		Name:    "commit files",
		Program: cfg.GitBinary,
		Args:    []string{"commit", "-m", cfg.CommitMessage},
	}

	if cfg.Author == "" {
		return step, nil
	}

	sig, err := ParseSignature(cfg.Author)
	if err != nil {
		return Step{}, fmt.Errorf("failed to parse author: %w", err)
	}
	step.Env = signatureEnv(sig)

	return step, nil
}

// signatureEnv returns the environment entries git reads the commit identity from.
func signatureEnv(sig *object.Signature) []string {
	return []string{
		"GIT_AUTHOR_NAME=" + sig.Name,
		"GIT_AUTHOR_EMAIL=" + sig.Email,
		"GIT_COMMITTER_NAME=" + sig.Name,
		"GIT_COMMITTER_EMAIL=" + sig.Email,
	}
}

// ParseSignature parses a git signature string
func ParseSignature(sigStr string) (*object.Signature, error) {
	// Expected format: "Name <email>"
	parts := strings.Split(strings.TrimSpace(sigStr), " <")
	if len(parts) != 2 || !strings.HasSuffix(parts[1], ">") {
		return nil, fmt.Errorf("invalid signature format: %s", sigStr)
	}

	name := strings.TrimSpace(parts[0])
	email := strings.TrimSuffix(parts[1], ">")
	if name == "" || email == "" || strings.ContainsAny(email, "<> ") {
		return nil, fmt.Errorf("invalid signature format: %s", sigStr)
	}

	return &object.Signature{
		Name:  name,
		Email: email,
		When:  time.Now(),
	}, nil
}
