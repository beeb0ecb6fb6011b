package gh

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/eessi/ebdev/internal/model"
	"github.com/eessi/ebdev/internal/runner"
)

// ErrContentFormat is returned when a GitHub response lacks expected fields
var ErrContentFormat = errors.New("unexpected response format")

// Client fetches pull request data from GitHub via curl
type Client struct {
	runner runner.Runner
	opts   Options
}

// NewClient creates a new GitHub client
func NewClient(r runner.Runner, opts Options) *Client {
	if opts.Curl == "" {
		opts.Curl = "curl"
	}
	opts.APIURL = strings.TrimSuffix(opts.APIURL, "/")
	opts.WebURL = strings.TrimSuffix(opts.WebURL, "/")
	return &Client{runner: r, opts: opts}
}

// PullRequestURL returns the REST endpoint for a pull request
func (c *Client) PullRequestURL(repo string, number int) string {
	return fmt.Sprintf("%s/repos/%s/pulls/%d", c.opts.APIURL, repo, number)
}

// PatchURL returns the download location of a commit's patch
func (c *Client) PatchURL(repo, commit string) string {
	return fmt.Sprintf("%s/%s/commit/%s.patch", c.opts.WebURL, repo, commit)
}

// ArchiveURL returns the location of source archives for repo
func (c *Client) ArchiveURL(repo string) string {
	return fmt.Sprintf("%s/%s/archive/", c.opts.WebURL, repo)
}

// FetchPullRequest queries GitHub for the branches and head commit of a PR.
// A non-empty commitOverride replaces the PR's head commit.
func (c *Client) FetchPullRequest(ctx context.Context, repo string, number int, commitOverride string) (*model.PullRequestRef, error) {
	if err := model.ValidateRepo(repo); err != nil {
		return nil, err
	}
	if err := model.ValidatePRNumber(number); err != nil {
		return nil, err
	}

	args := append(c.authArgs(), c.PullRequestURL(repo, number))
	result, err := c.runner.Run(ctx, runner.Command{
		Name:    c.opts.Curl,
		Args:    append([]string{"-sSL"}, args...),
		Purpose: "fetch pr",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch PR #%d of %s: %w", number, repo, err)
	}

	pr, err := parsePullRequest([]byte(result.Stdout))
	if err != nil {
		return nil, fmt.Errorf("PR #%d of %s: %w", number, repo, err)
	}

	ref := &model.PullRequestRef{
		Repo:       repo,
		Number:     number,
		HeadBranch: pr.Head.Ref,
		BaseBranch: pr.Base.Ref,
		Commit:     pr.Head.SHA,
	}
	if commitOverride != "" {
		ref.Commit = commitOverride
	}
	return ref, nil
}

// FetchPatch downloads the patch of commit into dir as <commit>.patch.
// A failing download is reported through the result's exit code, not as an error.
func (c *Client) FetchPatch(ctx context.Context, repo, commit, dir string) (*runner.Result, error) {
	url := c.PatchURL(repo, commit)
	return c.runner.Run(ctx, runner.Command{
		Name:         c.opts.Curl,
		Args:         []string{"-sSfL", "-o", PatchFileName(commit), url},
		Dir:          dir,
		Purpose:      "get patch of " + strings.TrimSuffix(url, ".patch"),
		AllowFailure: true,
	})
}

// PatchFileName returns the file name FetchPatch writes for commit
func PatchFileName(commit string) string {
	return commit + ".patch"
}

// PatchPath returns the full path of the patch for commit inside dir
func PatchPath(dir, commit string) string {
	return filepath.Join(dir, PatchFileName(commit))
}

func (c *Client) authArgs() []string {
	args := []string{"-H", "Accept: application/vnd.github+json"}
	if c.opts.Token != "" {
		args = append(args, "-H", "Authorization: Bearer "+c.opts.Token)
	}
	return args
}

// parsePullRequest decodes the pulls endpoint body and checks required fields
func parsePullRequest(data []byte) (*prJSON, error) {
	var pr prJSON
	if err := json.Unmarshal(data, &pr); err != nil {
		return nil, fmt.Errorf("%w: failed to parse PR JSON: %v", ErrContentFormat, err)
	}

	switch {
	case pr.Head == nil || pr.Head.Ref == "":
		return nil, fmt.Errorf("%w: missing head.ref", ErrContentFormat)
	case pr.Head.SHA == "":
		return nil, fmt.Errorf("%w: missing head.sha", ErrContentFormat)
	case pr.Base == nil || pr.Base.Ref == "":
		return nil, fmt.Errorf("%w: missing base.ref", ErrContentFormat)
	}
	return &pr, nil
}
