package engine

import (
	"github.com/matt-winfield/rels/internal/models"
	"github.com/matt-winfield/rels/internal/store"
)

// orderedTag pairs a tag with its resolved target commit and the set of
// the target's strict ancestors
type orderedTag struct {
	tag       models.Tag
	commit    models.Commit
	ancestors map[string]bool
}

// order sorts tags oldest to newest. Ancestry wins: a tag whose target
// is a strict ancestor of another tag's target is older. Tags with no
// ancestry relation fall back to commit timestamp, then tag name, which
// keeps the output deterministic for parallel branches and for multiple
// tags on one commit.
//
// Tags whose targets cannot be resolved land in the report's
// unreachable bucket and never enter the sequence.
func (e *Engine) order(tags []models.Tag, report *models.Report) []orderedTag {
	var candidates []orderedTag
	for _, tag := range tags {
		c, err := e.commit(tag.Target)
		if err != nil {
			if store.IsNotFound(err) {
				report.Unreachable = append(report.Unreachable, tag)
				report.AddWarning("tag " + tag.Name + " points at unresolvable commit " + tag.Target)
				continue
			}
			// Transient adapter failure: treat like unreachable but keep the cause
			report.Unreachable = append(report.Unreachable, tag)
			report.AddWarning("tag " + tag.Name + ": " + err.Error())
			continue
		}
		candidates = append(candidates, orderedTag{
			tag:       tag,
			commit:    c,
			ancestors: e.ancestors(tag.Target),
		})
	}

	// Topological selection: among tags with no unpicked tagged strict
	// ancestor, take the smallest (commit time, tag name). This is a
	// total order, so reruns on the same snapshot are byte-identical.
	ordered := make([]orderedTag, 0, len(candidates))
	picked := make([]bool, len(candidates))

	for len(ordered) < len(candidates) {
		best := -1
		for i, ot := range candidates {
			if picked[i] {
				continue
			}
			if hasUnpickedAncestor(i, candidates, picked) {
				continue
			}
			if best == -1 || older(ot, candidates[best]) {
				best = i
			}
		}
		if best == -1 {
			// Cannot happen on an acyclic DAG, but never loop forever
			// on corrupt parent data: take the first remaining tag.
			for i := range candidates {
				if !picked[i] {
					best = i
					break
				}
			}
		}
		picked[best] = true
		ordered = append(ordered, candidates[best])
	}

	return ordered
}

// hasUnpickedAncestor reports whether another unpicked tag's target is a
// strict ancestor of candidate i's target
func hasUnpickedAncestor(i int, candidates []orderedTag, picked []bool) bool {
	for j, other := range candidates {
		if j == i || picked[j] {
			continue
		}
		if candidates[i].ancestors[other.tag.Target] {
			return true
		}
	}
	return false
}

// older is the timestamp/name fallback used between ancestry-unrelated tags
func older(a, b orderedTag) bool {
	if !a.commit.When.Equal(b.commit.When) {
		return a.commit.When.Before(b.commit.When)
	}
	return a.tag.Name < b.tag.Name
}

// ancestors collects every commit reachable from id via parent edges,
// excluding id itself. Unresolvable parents end the walk on that branch;
// the partition step reports them.
func (e *Engine) ancestors(id string) map[string]bool {
	seen := map[string]bool{id: true}
	result := make(map[string]bool)

	queue := []string{id}
	for len(queue) > 0 {
		cur := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		c, err := e.commit(cur)
		if err != nil {
			continue
		}
		for _, p := range c.Parents {
			if seen[p] {
				continue
			}
			seen[p] = true
			result[p] = true
			queue = append(queue, p)
		}
	}

	return result
}
