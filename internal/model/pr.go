package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRepo is returned for a repository that isn't of the form owner/name
	ErrInvalidRepo = errors.New("invalid repository identifier")

	// ErrInvalidPRNumber is returned for a pull request number below 1
	ErrInvalidPRNumber = errors.New("invalid pull request number")
)

// PullRequestRef identifies the commit of a pull request that should be built.
// It is immutable once fetched.
type PullRequestRef struct {
	Repo       string // owner/name
	Number     int    // PR number
	HeadBranch string // branch the PR was opened from
	BaseBranch string // branch the PR targets
	Commit     string // head commit, or the commit requested explicitly
}

// ValidateRepo checks that repo has the form owner/name
func ValidateRepo(repo string) error {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("%w: %q must have the form owner/name", ErrInvalidRepo, repo)
	}
	if strings.ContainsAny(repo, " \t\n") || strings.Contains(repo, "..") {
		return fmt.Errorf("%w: %q contains invalid characters", ErrInvalidRepo, repo)
	}
	return nil
}

// ValidatePRNumber checks that number refers to a possible pull request
func ValidatePRNumber(number int) error {
	if number <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPRNumber, number)
	}
	return nil
}
