package store

import (
	"testing"
	"time"
)

func TestMemoryStore(t *testing.T) {
	when := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	st := NewMemoryStore().
		AddCommit("a", "root", when).
		AddCommit("b", "child", when.Add(time.Hour), "a").
		AddTag("v1", "b").
		SetHead("b")

	tags, err := st.Tags()
	if err != nil || len(tags) != 1 || tags[0].Name != "v1" {
		t.Fatalf("tags=%v err=%v", tags, err)
	}

	c, err := st.Commit("b")
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if len(c.Parents) != 1 || c.Parents[0] != "a" {
		t.Fatalf("parents=%v", c.Parents)
	}

	head, err := st.Head()
	if err != nil || head != "b" {
		t.Fatalf("head=%q err=%v", head, err)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	_, err := NewMemoryStore().Commit("nope")
	if !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
