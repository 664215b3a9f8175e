package models

import "time"

// UntaggedName labels the pseudo-release holding commits reachable from
// HEAD that no tag has released yet.
const UntaggedName = "(unreleased)"

// Release is a tag plus the commits first introduced by it. Derived,
// never persisted; rebuilt from the store on every run.
type Release struct {
	// Tag that marks the release
	Tag Tag
	// Time is the author timestamp of the tagged commit
	Time time.Time
	// Commits exclusively introduced by this release, newest first
	Commits []Commit
	// Tickets referenced by those commits, sorted by key, unique keys
	Tickets []TicketRef
	// Incomplete is set when a data-integrity problem cut the walk short
	Incomplete bool
}

// NewRelease creates an empty Release for the given tag
func NewRelease(tag Tag) Release {
	return Release{Tag: tag}
}

// Name returns the release label
func (r Release) Name() string {
	return r.Tag.Name
}

// TicketKeys returns the unique ticket keys, already sorted
func (r Release) TicketKeys() []string {
	keys := make([]string, 0, len(r.Tickets))
	seen := make(map[string]bool, len(r.Tickets))
	for _, t := range r.Tickets {
		if seen[t.Key] {
			continue
		}
		seen[t.Key] = true
		keys = append(keys, t.Key)
	}
	return keys
}
