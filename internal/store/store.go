package store

import (
	"errors"

	"github.com/matt-winfield/rels/internal/models"
)

// Store exposes a read snapshot of a repository: the commit DAG and the
// tag pointers into it. Implementations never mutate the repository.
// The engine receives a Store explicitly so tests can run against
// in-memory fixtures without shared state.
type Store interface {
	// Tags returns every tag in the repository
	Tags() ([]models.Tag, error)
	// Commit resolves one commit by hash; NotFoundError if absent
	Commit(id string) (models.Commit, error)
	// Head returns the hash HEAD points at
	Head() (string, error)
}

// NotFoundError indicates a commit id the store cannot resolve
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "commit not found: " + e.ID
}

// RepoError indicates the repository itself is unusable (fatal)
type RepoError struct {
	Path   string
	Reason string
}

func (e *RepoError) Error() string {
	return e.Path + ": " + e.Reason
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
