package models

// TicketRef is a normalized issue-tracker key together with the commit
// it was extracted from. Only the key is surfaced; the commit hash is
// kept for traceability.
type TicketRef struct {
	// Key is the normalized ticket key (e.g., "PROJ-123")
	Key string
	// Commit is the hash of the commit whose message referenced the key
	Commit string
}

// NewTicketRef creates a new TicketRef
func NewTicketRef(key, commit string) TicketRef {
	return TicketRef{Key: key, Commit: commit}
}
