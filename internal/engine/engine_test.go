package engine

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/matt-winfield/rels/internal/models"
	"github.com/matt-winfield/rels/internal/report"
	"github.com/matt-winfield/rels/internal/store"
	"github.com/matt-winfield/rels/internal/tickets"
)

var base = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func at(n int) time.Time {
	return base.Add(time.Duration(n) * time.Hour)
}

func newEngine(t *testing.T, st store.Store) *Engine {
	t.Helper()
	ex, err := tickets.NewExtractor("")
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}
	return New(st, ex)
}

func build(t *testing.T, st store.Store) *models.Report {
	t.Helper()
	rep, err := newEngine(t, st).Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return rep
}

func releaseNames(rep *models.Report) []string {
	var names []string
	for _, r := range rep.Releases {
		names = append(names, r.Name())
	}
	return names
}

func commitHashes(r models.Release) map[string]bool {
	set := make(map[string]bool)
	for _, c := range r.Commits {
		set[c.Hash] = true
	}
	return set
}

func TestSingleTagOwnsEverything(t *testing.T) {
	st := store.NewMemoryStore().
		AddCommit("a", "init ABC-1", at(0)).
		AddCommit("b", "feature ABC-2", at(1), "a").
		AddCommit("c", "fix abc-3", at(2), "b").
		AddTag("v1.0.0", "c").
		SetHead("c")

	rep := build(t, st)

	if len(rep.Releases) != 1 {
		t.Fatalf("got %d releases; want 1", len(rep.Releases))
	}
	rel := rep.Releases[0]
	if len(rel.Commits) != 3 {
		t.Fatalf("got %d commits; want 3", len(rel.Commits))
	}
	keys := rel.TicketKeys()
	want := []string{"ABC-1", "ABC-2", "ABC-3"}
	if strings.Join(keys, ",") != strings.Join(want, ",") {
		t.Fatalf("tickets=%v; want %v", keys, want)
	}
	if rep.Untagged != nil {
		t.Fatalf("expected no untagged pseudo-release, got %v", rep.Untagged.Commits)
	}
	if len(rep.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", rep.Warnings)
	}
}

func TestAncestorPairAttribution(t *testing.T) {
	// v1 -> intervening ABC-1 commit -> v2
	st := store.NewMemoryStore().
		AddCommit("a", "init", at(0)).
		AddCommit("b", "ABC-1 fix", at(1), "a").
		AddCommit("c", "release prep", at(2), "b").
		AddTag("v2", "c").
		AddTag("v1", "a").
		SetHead("c")

	rep := build(t, st)

	names := releaseNames(rep)
	if strings.Join(names, ",") != "v1,v2" {
		t.Fatalf("order=%v; want [v1 v2]", names)
	}
	if len(rep.Releases[0].Tickets) != 0 {
		t.Fatalf("v1 tickets=%v; want empty", rep.Releases[0].Tickets)
	}
	keys := rep.Releases[1].TicketKeys()
	if len(keys) != 1 || keys[0] != "ABC-1" {
		t.Fatalf("v2 tickets=%v; want [ABC-1]", keys)
	}
}

func TestDisjointCover(t *testing.T) {
	// Two parallel branches off a, merged at e, tagged along the way
	st := store.NewMemoryStore().
		AddCommit("a", "root", at(0)).
		AddCommit("b", "left XY-1", at(1), "a").
		AddCommit("c", "right XY-2", at(2), "a").
		AddCommit("d", "left more XY-3", at(3), "b").
		AddCommit("e", "merge XY-4", at(4), "d", "c").
		AddTag("left-1.0", "d").
		AddTag("right-1.0", "c").
		AddTag("final-2.0", "e").
		SetHead("e")

	rep := build(t, st)

	seen := make(map[string]string)
	for _, rel := range rep.Releases {
		for h := range commitHashes(rel) {
			if owner, dup := seen[h]; dup {
				t.Fatalf("commit %s in both %s and %s", h, owner, rel.Name())
			}
			seen[h] = rel.Name()
		}
	}

	for _, h := range []string{"a", "b", "c", "d", "e"} {
		if _, ok := seen[h]; !ok {
			t.Fatalf("commit %s not covered by any release", h)
		}
	}
}

func TestMergeWithFullyCoveredParents(t *testing.T) {
	// Releases rel-a and rel-b cover both sides; the merge commit is the
	// only new commit of rel-m, and its own message ticket still counts.
	st := store.NewMemoryStore().
		AddCommit("a", "root", at(0)).
		AddCommit("b", "side one", at(1), "a").
		AddCommit("c", "side two", at(2), "a").
		AddCommit("m", "merge MM-1", at(3), "b", "c").
		AddTag("rel-a", "b").
		AddTag("rel-b", "c").
		AddTag("rel-m", "m").
		SetHead("m")

	rep := build(t, st)

	var relM *models.Release
	for i := range rep.Releases {
		if rep.Releases[i].Name() == "rel-m" {
			relM = &rep.Releases[i]
		}
	}
	if relM == nil {
		t.Fatalf("rel-m missing from %v", releaseNames(rep))
	}
	if len(relM.Commits) != 1 || relM.Commits[0].Hash != "m" {
		t.Fatalf("rel-m commits=%v; want only the merge", relM.Commits)
	}
	keys := relM.TicketKeys()
	if len(keys) != 1 || keys[0] != "MM-1" {
		t.Fatalf("rel-m tickets=%v; want [MM-1]", keys)
	}
}

func TestDuplicateTagsOnOneCommit(t *testing.T) {
	st := store.NewMemoryStore().
		AddCommit("a", "everything DUP-1", at(0)).
		AddTag("v1.0.0", "a").
		AddTag("v1.0.0-rebuild", "a").
		SetHead("a")

	rep := build(t, st)

	if len(rep.Releases) != 2 {
		t.Fatalf("got %d releases; want 2", len(rep.Releases))
	}
	// Name tiebreak: "v1.0.0" sorts first and owns the commit
	first, second := rep.Releases[0], rep.Releases[1]
	if first.Name() != "v1.0.0" {
		t.Fatalf("first release=%s; want v1.0.0", first.Name())
	}
	if len(first.Commits) != 1 {
		t.Fatalf("first release commits=%d; want 1", len(first.Commits))
	}
	if len(second.Commits) != 0 || len(second.Tickets) != 0 {
		t.Fatalf("duplicate tag release should be empty, got %v", second)
	}
}

func TestUnresolvableTagTarget(t *testing.T) {
	st := store.NewMemoryStore().
		AddCommit("a", "fine OK-1", at(0)).
		AddTag("good", "a").
		AddTag("broken", "feedface").
		SetHead("a")

	rep := build(t, st)

	if len(rep.Releases) != 1 || rep.Releases[0].Name() != "good" {
		t.Fatalf("releases=%v; want only good", releaseNames(rep))
	}
	if len(rep.Unreachable) != 1 || rep.Unreachable[0].Name != "broken" {
		t.Fatalf("unreachable=%v; want [broken]", rep.Unreachable)
	}
	if len(rep.Warnings) != 1 {
		t.Fatalf("warnings=%v; want exactly one", rep.Warnings)
	}
}

func TestMissingParentMarksIncomplete(t *testing.T) {
	// b's parent is absent from the store: the walk reports it and goes on
	st := store.NewMemoryStore().
		AddCommit("b", "top GO-1", at(1), "missing").
		AddTag("v1", "b").
		SetHead("b")

	rep := build(t, st)

	if len(rep.Releases) != 1 {
		t.Fatalf("releases=%v; want 1", releaseNames(rep))
	}
	rel := rep.Releases[0]
	if !rel.Incomplete {
		t.Fatalf("release should be incomplete")
	}
	if len(rel.Commits) != 1 {
		t.Fatalf("commits=%v; want the resolvable one", rel.Commits)
	}
	if len(rep.Warnings) == 0 {
		t.Fatalf("expected a data-integrity warning")
	}
}

func TestNoTagsUntaggedHead(t *testing.T) {
	st := store.NewMemoryStore().
		AddCommit("a", "WIP-1 start", at(0)).
		AddCommit("b", "WIP-2 more", at(1), "a").
		SetHead("b")

	rep := build(t, st)

	if len(rep.Releases) != 0 {
		t.Fatalf("releases=%v; want none", releaseNames(rep))
	}
	if rep.Untagged == nil {
		t.Fatalf("expected untagged pseudo-release")
	}
	if rep.Untagged.Name() != models.UntaggedName {
		t.Fatalf("untagged label=%q", rep.Untagged.Name())
	}
	if len(rep.Untagged.Commits) != 2 {
		t.Fatalf("untagged commits=%d; want 2", len(rep.Untagged.Commits))
	}
	keys := rep.Untagged.TicketKeys()
	if strings.Join(keys, ",") != "WIP-1,WIP-2" {
		t.Fatalf("untagged tickets=%v", keys)
	}
}

func TestUntaggedHeadAfterLastRelease(t *testing.T) {
	st := store.NewMemoryStore().
		AddCommit("a", "released", at(0)).
		AddCommit("b", "pending NEW-1", at(1), "a").
		AddTag("v1", "a").
		SetHead("b")

	rep := build(t, st)

	if rep.Untagged == nil {
		t.Fatalf("expected untagged pseudo-release")
	}
	if len(rep.Untagged.Commits) != 1 || rep.Untagged.Commits[0].Hash != "b" {
		t.Fatalf("untagged commits=%v; want [b]", rep.Untagged.Commits)
	}
}

func TestIdempotentOutput(t *testing.T) {
	st := store.NewMemoryStore().
		AddCommit("a", "root R-1", at(0)).
		AddCommit("b", "left R-2", at(1), "a").
		AddCommit("c", "right R-3", at(1), "a").
		AddCommit("d", "merge R-4", at(2), "b", "c").
		AddTag("v1", "b").
		AddTag("v2", "c").
		AddTag("v3", "d").
		SetHead("d")

	ex, err := tickets.NewExtractor("")
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}

	render := func() string {
		rep, err := New(st, ex).Build(context.Background())
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		out := report.Assemble(rep, ex, report.Options{All: true})
		var buf bytes.Buffer
		if err := report.New("json", &buf).Render(out); err != nil {
			t.Fatalf("Render: %v", err)
		}
		return buf.String()
	}

	first := render()
	second := render()
	if first != second {
		t.Fatalf("output not byte-identical across runs:\n%s\n---\n%s", first, second)
	}
}

func TestCancelledContext(t *testing.T) {
	st := store.NewMemoryStore().
		AddCommit("a", "root", at(0)).
		AddTag("v1", "a").
		SetHead("a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := newEngine(t, st).Build(ctx)
	if err != nil {
		t.Fatalf("Build should report partial result, got error: %v", err)
	}
	if len(rep.Warnings) == 0 {
		t.Fatalf("expected a partial-result warning")
	}
}

func TestNewestFirstWithinRelease(t *testing.T) {
	st := store.NewMemoryStore().
		AddCommit("a", "one", at(0)).
		AddCommit("b", "two", at(1), "a").
		AddCommit("c", "three", at(2), "b").
		AddTag("v1", "c").
		SetHead("c")

	rep := build(t, st)

	got := rep.Releases[0].Commits
	if got[0].Hash != "c" || got[1].Hash != "b" || got[2].Hash != "a" {
		t.Fatalf("commits not newest first: %v", got)
	}
}
