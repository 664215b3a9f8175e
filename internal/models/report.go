package models

// Report is the full result of one run: ordered releases, the untagged
// head pseudo-release, tags the ordering step could not place, and the
// warnings collected along the way.
type Report struct {
	// Releases ordered oldest to newest
	Releases []Release
	// Untagged holds commits reachable from HEAD but not from any tag.
	// Nil when every reachable commit is released.
	Untagged *Release
	// Unreachable are tags whose targets could not be resolved
	Unreachable []Tag
	// Warnings aggregated across the run, surfaced once at the end
	Warnings []string
}

// AddWarning appends a warning message
func (r *Report) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
