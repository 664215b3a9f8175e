package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/matt-winfield/rels/internal/models"

	"github.com/google/go-github/v60/github"
)

// GitHubStore reads a remote repository through the GitHub API instead
// of a local clone. Same contract as GitStore, higher latency.
type GitHubStore struct {
	client *github.Client
	ctx    context.Context
	owner  string
	repo   string
}

// NewGitHubStore creates a store for owner/repo. An empty token uses
// anonymous access (rate-limited).
func NewGitHubStore(ctx context.Context, owner, repo, token string) *GitHubStore {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return &GitHubStore{
		client: client,
		ctx:    ctx,
		owner:  owner,
		repo:   repo,
	}
}

// Tags lists all tags, following pagination
func (s *GitHubStore) Tags() ([]models.Tag, error) {
	var all []models.Tag
	opts := &github.ListOptions{PerPage: 100}

	for {
		tags, resp, err := s.client.Repositories.ListTags(s.ctx, s.owner, s.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("list tags for %s/%s: %w", s.owner, s.repo, err)
		}
		for _, t := range tags {
			all = append(all, models.NewTag(t.GetName(), t.GetCommit().GetSHA()))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

// Commit fetches one commit by SHA
func (s *GitHubStore) Commit(id string) (models.Commit, error) {
	c, resp, err := s.client.Repositories.GetCommit(s.ctx, s.owner, s.repo, id, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return models.Commit{}, &NotFoundError{ID: id}
		}
		return models.Commit{}, fmt.Errorf("get commit %s in %s/%s: %w", id, s.owner, s.repo, err)
	}

	parents := make([]string, 0, len(c.Parents))
	for _, p := range c.Parents {
		parents = append(parents, p.GetSHA())
	}

	return models.NewCommit(
		c.GetSHA(),
		parents,
		c.GetCommit().GetMessage(),
		c.GetCommit().GetAuthor().GetDate().Time,
	), nil
}

// Head resolves the default branch to a commit SHA
func (s *GitHubStore) Head() (string, error) {
	info, _, err := s.client.Repositories.Get(s.ctx, s.owner, s.repo)
	if err != nil {
		return "", fmt.Errorf("get repository %s/%s: %w", s.owner, s.repo, err)
	}

	c, _, err := s.client.Repositories.GetCommit(s.ctx, s.owner, s.repo, info.GetDefaultBranch(), nil)
	if err != nil {
		return "", fmt.Errorf("resolve %s head: %w", info.GetDefaultBranch(), err)
	}
	return c.GetSHA(), nil
}

// ParseRepo splits an "owner/repo" argument or GitHub URL
func ParseRepo(arg string) (owner, repo string, err error) {
	arg = strings.TrimPrefix(arg, "https://")
	arg = strings.TrimPrefix(arg, "http://")
	arg = strings.TrimPrefix(arg, "github.com/")
	arg = strings.TrimSuffix(arg, ".git")
	arg = strings.TrimSuffix(arg, "/")

	parts := strings.SplitN(arg, "/", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("cannot parse GitHub repo from %q", arg)
	}
	return parts[0], parts[1], nil
}
