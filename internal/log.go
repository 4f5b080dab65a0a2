package internal

import (
	"fmt"
	"io"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// History returns every commit reachable from HEAD, newest first.
func History(dir string) ([]CommitSummary, error) {
	repo, err := openRepo(dir)
	if err != nil {
		return nil, err
	}

	ref, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	commitIter, err := repo.Log(&git.LogOptions{From: ref.Hash()})
	if err != nil {
		return nil, fmt.Errorf("failed to get commit log: %w", err)
	}
	defer commitIter.Close()

	var commits []CommitSummary
	err = commitIter.ForEach(func(commit *object.Commit) error {
		commits = append(commits, summarizeCommit(commit))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to process commits: %w", err)
	}

	return commits, nil
}

// LogHistory writes one "<short-hash> <subject>" line per commit to w.
func LogHistory(dir string, w io.Writer) error {
	commits, err := History(dir)
	if err != nil {
		return err
	}

	for _, c := range commits {
		if _, err := fmt.Fprintf(w, "%s %s\n", c.ShortHash(), c.Subject()); err != nil {
			return err
		}
	}

	return nil
}
