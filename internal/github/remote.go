package github

import (
	"context"
	"fmt"
)

// DefaultBranch returns the default branch name of owner/repo.
func (c *Client) DefaultBranch(ctx context.Context, owner, repo string) (string, error) {
	r, _, err := c.Client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return "", fmt.Errorf("unable to fetch repository %s/%s: %w", owner, repo, err)
	}
	branch := r.GetDefaultBranch()
	if branch == "" {
		return "", fmt.Errorf("repository %s/%s has no default branch", owner, repo)
	}
	return branch, nil
}

// DefaultBranchProvider checks a remote repository's default branch instead
// of a local checkout, for use in CI against repos that are not cloned.
type DefaultBranchProvider struct {
	Client *Client
	Owner  string
	Repo   string
}

func (p DefaultBranchProvider) BranchName(ctx context.Context) (string, error) {
	return p.Client.DefaultBranch(ctx, p.Owner, p.Repo)
}
