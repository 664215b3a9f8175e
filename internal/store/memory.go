package store

import (
	"time"

	"github.com/matt-winfield/rels/internal/models"
)

// MemoryStore is an in-memory Store used by tests and fixtures
type MemoryStore struct {
	commits map[string]models.Commit
	tags    []models.Tag
	head    string
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{commits: make(map[string]models.Commit)}
}

// AddCommit records a commit and returns the store for chaining
func (s *MemoryStore) AddCommit(hash, message string, when time.Time, parents ...string) *MemoryStore {
	s.commits[hash] = models.NewCommit(hash, parents, message, when)
	return s
}

// AddTag records a tag pointing at target
func (s *MemoryStore) AddTag(name, target string) *MemoryStore {
	s.tags = append(s.tags, models.NewTag(name, target))
	return s
}

// SetHead sets the HEAD commit hash
func (s *MemoryStore) SetHead(hash string) *MemoryStore {
	s.head = hash
	return s
}

// Tags returns the recorded tags
func (s *MemoryStore) Tags() ([]models.Tag, error) {
	return s.tags, nil
}

// Commit resolves a recorded commit
func (s *MemoryStore) Commit(id string) (models.Commit, error) {
	c, ok := s.commits[id]
	if !ok {
		return models.Commit{}, &NotFoundError{ID: id}
	}
	return c, nil
}

// Head returns the recorded HEAD hash
func (s *MemoryStore) Head() (string, error) {
	return s.head, nil
}
