package store

import (
	"os"
	"path/filepath"

	"github.com/matt-winfield/rels/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitStore reads a local repository through go-git
type GitStore struct {
	repo *git.Repository
	// Path is the repository root the store was opened at
	Path string
}

// IsGitRepo checks if the path is a git repository
func IsGitRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// Open opens the repository at path, walking up parent directories the
// way git itself does. Returns a RepoError when no repository is found.
func Open(path string) (*GitStore, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	dir := abs
	for {
		if IsGitRepo(dir) {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, &RepoError{Path: abs, Reason: "not a git repository"}
		}
		dir = parent
	}

	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, &RepoError{Path: dir, Reason: err.Error()}
	}

	return &GitStore{repo: repo, Path: dir}, nil
}

// OpenCwd opens the repository containing the current working directory
func OpenCwd() (*GitStore, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return Open(cwd)
}

// Tags returns all tags, peeling annotated tags to their target commit
func (s *GitStore) Tags() ([]models.Tag, error) {
	iter, err := s.repo.Tags()
	if err != nil {
		return nil, err
	}

	var tags []models.Tag
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		tag := models.NewTag(ref.Name().Short(), ref.Hash().String())

		// Annotated tags point at a tag object, not the commit itself
		if obj, err := s.repo.TagObject(ref.Hash()); err == nil {
			tag.Target = obj.Target.String()
			tag = tag.WithTagged(obj.Tagger.When)
		}

		tags = append(tags, tag)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tags, nil
}

// Commit resolves one commit by hash
func (s *GitStore) Commit(id string) (models.Commit, error) {
	c, err := s.repo.CommitObject(plumbing.NewHash(id))
	if err == plumbing.ErrObjectNotFound {
		return models.Commit{}, &NotFoundError{ID: id}
	}
	if err != nil {
		return models.Commit{}, err
	}
	return convertCommit(c), nil
}

// Head returns the hash HEAD resolves to
func (s *GitStore) Head() (string, error) {
	ref, err := s.repo.Head()
	if err != nil {
		return "", err
	}
	return ref.Hash().String(), nil
}

func convertCommit(c *object.Commit) models.Commit {
	parents := make([]string, 0, len(c.ParentHashes))
	for _, p := range c.ParentHashes {
		parents = append(parents, p.String())
	}
	return models.NewCommit(c.Hash.String(), parents, c.Message, c.Author.When)
}
