package tickets

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/matt-winfield/rels/internal/models"
)

// DefaultPattern matches issue-tracker keys like "PROJ-123"
const DefaultPattern = `[A-Z][A-Z0-9]*-[0-9]+`

// Extractor finds ticket keys in commit messages. Purely lexical, no
// tracker lookup. Matching is case-insensitive; keys are normalized to
// uppercase.
type Extractor struct {
	re *regexp.Regexp
}

// NewExtractor compiles pattern into an Extractor
func NewExtractor(pattern string) (*Extractor, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	re, err := regexp.Compile("(?i)(" + pattern + ")")
	if err != nil {
		return nil, fmt.Errorf("invalid ticket pattern %q: %w", pattern, err)
	}
	return &Extractor{re: re}, nil
}

// Extract returns the unique normalized keys in text, sorted
func (e *Extractor) Extract(text string) []string {
	matches := e.re.FindAllStringSubmatch(text, -1)

	ticketSet := make(map[string]bool)
	for _, match := range matches {
		if len(match) > 1 {
			ticketSet[strings.ToUpper(match[1])] = true
		}
	}

	keys := make([]string, 0, len(ticketSet))
	for k := range ticketSet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// ExtractRefs returns the keys found in one commit's message, each
// carrying the commit hash for traceability
func (e *Extractor) ExtractRefs(c models.Commit) []models.TicketRef {
	keys := e.Extract(c.Message)
	refs := make([]models.TicketRef, 0, len(keys))
	for _, k := range keys {
		refs = append(refs, models.NewTicketRef(k, c.Hash))
	}
	return refs
}

// Collect unions all keys across commits, keeping the first commit seen
// for each key, sorted by key
func (e *Extractor) Collect(commits []models.Commit) []models.TicketRef {
	byKey := make(map[string]models.TicketRef)
	for _, c := range commits {
		for _, ref := range e.ExtractRefs(c) {
			if _, ok := byKey[ref.Key]; !ok {
				byKey[ref.Key] = ref
			}
		}
	}

	refs := make([]models.TicketRef, 0, len(byKey))
	for _, ref := range byKey {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Key < refs[j].Key })

	return refs
}
