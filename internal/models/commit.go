package models

import "time"

// Commit is one node of the commit DAG as seen through a store adapter.
// Immutable once observed; traversal is done via parent hash lookups,
// never via node pointers.
type Commit struct {
	// Hash is the full commit identifier
	Hash string
	// Parents are parent hashes in order (0 = root, 1 = normal, >=2 = merge)
	Parents []string
	// Message is the full commit message
	Message string
	// When is the author timestamp
	When time.Time
}

// NewCommit creates a new Commit
func NewCommit(hash string, parents []string, message string, when time.Time) Commit {
	return Commit{
		Hash:    hash,
		Parents: parents,
		Message: message,
		When:    when,
	}
}

// ShortHash returns the abbreviated hash used for display
func (c Commit) ShortHash() string {
	if len(c.Hash) < 7 {
		return c.Hash
	}
	return c.Hash[:7]
}

// IsMerge reports whether the commit has more than one parent
func (c Commit) IsMerge() bool {
	return len(c.Parents) > 1
}
