package internal

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// openRepo opens the repository at dir with go-git.
func openRepo(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository %s: %w", dir, err)
	}
	return repo, nil
}

// HeadCommit reads the commit HEAD points to.
func HeadCommit(dir string) (*CommitSummary, error) {
	repo, err := openRepo(dir)
	if err != nil {
		return nil, err
	}

	ref, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD commit: %w", err)
	}

	summary := summarizeCommit(commit)
	return &summary, nil
}

func summarizeCommit(commit *object.Commit) CommitSummary {
	return CommitSummary{
		Hash:    commit.Hash.String(),
		Message: commit.Message,
		Author:  fmt.Sprintf("%s <%s>", commit.Author.Name, commit.Author.Email),
		When:    commit.Author.When,
	}
}
