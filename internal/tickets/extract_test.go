package tickets

import (
	"reflect"
	"testing"
	"time"

	"github.com/matt-winfield/rels/internal/models"
)

func TestExtract(t *testing.T) {
	ex, err := NewExtractor("")
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}

	cases := []struct {
		name string
		text string
		want []string
	}{
		{"single", "PROJ-123: fix login", []string{"PROJ-123"}},
		{"multiple", "closes ABC-1 and ABC-2", []string{"ABC-1", "ABC-2"}},
		{"dedupe", "ABC-1 ABC-1 ABC-1", []string{"ABC-1"}},
		{"lowercase normalized", "fixes proj-99", []string{"PROJ-99"}},
		{"sorted", "ZZZ-9 then AAA-1", []string{"AAA-1", "ZZZ-9"}},
		{"numeric only rejected", "bump to 1234", nil},
		{"prefix only rejected", "PROJ- something", nil},
		{"no match", "refactor internals", nil},
		{"multiline body", "title\n\nrefs JIRA-7\nand JIRA-8", []string{"JIRA-7", "JIRA-8"}},
	}

	for _, tc := range cases {
		got := ex.Extract(tc.text)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: Extract(%q)=%v; want %v", tc.name, tc.text, got, tc.want)
		}
	}
}

func TestExtractCustomPattern(t *testing.T) {
	ex, err := NewExtractor("GH-[0-9]+")
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}

	got := ex.Extract("GH-42 but not PROJ-1")
	if !reflect.DeepEqual(got, []string{"GH-42"}) {
		t.Fatalf("Extract=%v; want [GH-42]", got)
	}
}

func TestNewExtractorInvalidPattern(t *testing.T) {
	if _, err := NewExtractor("[unclosed"); err == nil {
		t.Fatalf("expected error for invalid pattern")
	}
}

func TestCollect(t *testing.T) {
	ex, err := NewExtractor("")
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}

	when := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	commits := []models.Commit{
		models.NewCommit("c1", nil, "ABC-2 first mention", when),
		models.NewCommit("c2", nil, "ABC-2 again, plus ABC-1", when),
	}

	refs := ex.Collect(commits)
	if len(refs) != 2 {
		t.Fatalf("Collect returned %d refs; want 2", len(refs))
	}
	if refs[0].Key != "ABC-1" || refs[1].Key != "ABC-2" {
		t.Fatalf("keys not sorted: %v", refs)
	}
	// ABC-2 is attributed to the commit that mentioned it first
	if refs[1].Commit != "c1" {
		t.Fatalf("ABC-2 attributed to %s; want c1", refs[1].Commit)
	}
}

func TestURL(t *testing.T) {
	cases := []struct {
		template string
		key      string
		want     string
	}{
		{"", "ABC-1", "ABC-1"},
		{"https://jira.example.com/browse/", "ABC-1", "https://jira.example.com/browse/ABC-1"},
		{"https://t.example.com/{ticket}?ref=rels", "ABC-1", "https://t.example.com/ABC-1?ref=rels"},
	}

	for _, tc := range cases {
		if got := URL(tc.template, tc.key); got != tc.want {
			t.Fatalf("URL(%q, %q)=%q; want %q", tc.template, tc.key, got, tc.want)
		}
	}
}
