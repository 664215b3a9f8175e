package engine

import (
	"context"
	"sort"

	"github.com/matt-winfield/rels/internal/models"
	"github.com/matt-winfield/rels/internal/store"
)

// walk collects the commits reachable from start that no earlier
// release has claimed, marking them covered as it goes. Branches are
// pruned as soon as they hit a covered commit, which bounds the walk to
// exactly the new commits: a merge whose second parent is already
// released contributes only its unique side, and a commit shared by
// sibling branches belongs to whichever release is processed first.
//
// A commit the store cannot resolve is reported as a data-integrity
// warning and marks the walk incomplete; the walk continues on other
// branches. Results come back newest first.
func (e *Engine) walk(ctx context.Context, start string, covered map[string]bool, report *models.Report) ([]models.Commit, bool) {
	var commits []models.Commit
	incomplete := false

	queue := []string{start}
	for len(queue) > 0 {
		if ctx.Err() != nil {
			report.AddWarning("aborted: " + ctx.Err().Error() + ", result is partial")
			incomplete = true
			break
		}

		cur := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		if covered[cur] {
			continue
		}

		c, err := e.commit(cur)
		if err != nil {
			if store.IsNotFound(err) {
				report.AddWarning("commit " + cur + " referenced but not found, release data incomplete")
			} else {
				report.AddWarning("commit " + cur + ": " + err.Error())
			}
			incomplete = true
			covered[cur] = true
			continue
		}

		covered[cur] = true
		commits = append(commits, c)

		for _, p := range c.Parents {
			if !covered[p] {
				queue = append(queue, p)
			}
		}
	}

	// Traversal order depends on parent layout; sort for stable output
	sort.Slice(commits, func(i, j int) bool {
		if !commits[i].When.Equal(commits[j].When) {
			return commits[i].When.After(commits[j].When)
		}
		return commits[i].Hash < commits[j].Hash
	})

	return commits, incomplete
}
