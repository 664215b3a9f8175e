// Package engine reconstructs the release graph: it partitions the
// commit DAG into disjoint per-release commit sets and extracts ticket
// references from each.
package engine

import (
	"context"
	"fmt"

	"github.com/matt-winfield/rels/internal/models"
	"github.com/matt-winfield/rels/internal/store"
	"github.com/matt-winfield/rels/internal/tickets"
)

// Engine builds a release report from one store snapshot. The whole
// model is rebuilt on every Build call; nothing is cached across runs.
type Engine struct {
	store     store.Store
	extractor *tickets.Extractor

	// commit lookups are memoized for the duration of a run
	cache map[string]models.Commit
}

// New creates an Engine reading from st
func New(st store.Store, ex *tickets.Extractor) *Engine {
	return &Engine{
		store:     st,
		extractor: ex,
		cache:     make(map[string]models.Commit),
	}
}

// Build computes the full report: releases ordered oldest to newest,
// each with the commits it introduced and the tickets they reference,
// plus the untagged-head pseudo-release.
//
// Store-level failures are fatal. A tag whose target cannot be resolved
// goes to the unreachable bucket with a warning. A missing commit inside
// a walk marks that one release incomplete and the run continues.
// Cancelling ctx aborts the walk and yields whatever was computed.
func (e *Engine) Build(ctx context.Context) (*models.Report, error) {
	tags, err := e.store.Tags()
	if err != nil {
		return nil, fmt.Errorf("resolve tags: %w", err)
	}

	report := &models.Report{}

	ordered := e.order(tags, report)

	covered := make(map[string]bool)
	for _, ot := range ordered {
		if ctx.Err() != nil {
			report.AddWarning("aborted: " + ctx.Err().Error() + ", result is partial")
			return report, nil
		}

		release := models.NewRelease(ot.tag)
		release.Time = ot.commit.When
		commits, incomplete := e.walk(ctx, ot.tag.Target, covered, report)
		release.Commits = commits
		release.Incomplete = incomplete
		release.Tickets = e.extractor.Collect(commits)
		report.Releases = append(report.Releases, release)
	}

	e.buildUntagged(ctx, covered, report)

	return report, nil
}

// buildUntagged walks back from HEAD for commits no release has claimed
func (e *Engine) buildUntagged(ctx context.Context, covered map[string]bool, report *models.Report) {
	if ctx.Err() != nil {
		return
	}

	head, err := e.store.Head()
	if err != nil || head == "" {
		// No HEAD (empty or bare repository): nothing unreleased to show
		return
	}

	commits, incomplete := e.walk(ctx, head, covered, report)
	if len(commits) == 0 {
		return
	}

	release := models.NewRelease(models.NewTag(models.UntaggedName, head))
	release.Time = commits[0].When
	release.Commits = commits
	release.Incomplete = incomplete
	release.Tickets = e.extractor.Collect(commits)
	report.Untagged = &release
}

// commit resolves a commit through the run-scoped cache
func (e *Engine) commit(id string) (models.Commit, error) {
	if c, ok := e.cache[id]; ok {
		return c, nil
	}
	c, err := e.store.Commit(id)
	if err != nil {
		return models.Commit{}, err
	}
	e.cache[id] = c
	return c, nil
}
