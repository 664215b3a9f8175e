package models

import "time"

// Tag is a pointer into the commit DAG marking one release.
// Multiple tags may point at the same commit.
type Tag struct {
	// Name is the tag ref name without the refs/tags/ prefix
	Name string
	// Target is the hash of the tagged commit (annotated tags peeled)
	Target string
	// Tagged is the tag creation time for annotated tags, nil for lightweight
	Tagged *time.Time
}

// NewTag creates a new Tag
func NewTag(name, target string) Tag {
	return Tag{Name: name, Target: target}
}

// WithTagged sets the tag creation time and returns the Tag
func (t Tag) WithTagged(when time.Time) Tag {
	t.Tagged = &when
	return t
}
