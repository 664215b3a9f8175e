package config

import (
	"testing"

	"github.com/spf13/pflag"
)

func scanFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("rels", pflag.ContinueOnError)
	flags.StringP("age", "t", "", "")
	flags.StringP("regex", "r", "", "")
	flags.StringP("jira-url", "u", "", "")
	flags.BoolP("all", "a", false, "")
	flags.StringP("output", "o", "", "")
	return flags
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Tickets.Pattern == "" {
		t.Fatalf("default ticket pattern missing")
	}
	if cfg.Scan.MaxAge != "1y" {
		t.Fatalf("default max_age=%q; want 1y", cfg.Scan.MaxAge)
	}
	if cfg.Output.Format != "text" {
		t.Fatalf("default format=%q; want text", cfg.Output.Format)
	}
	if !cfg.Update.Enabled {
		t.Fatalf("update check should default to enabled")
	}
}

func TestMergeFlagsOverrides(t *testing.T) {
	flags := scanFlags()
	if err := flags.Parse([]string{"-t", "2w", "-r", "GH-[0-9]+", "-a", "-o", "json", "-u", "https://example.com/{ticket}"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg := MergeFlags(DefaultConfig(), flags)

	if cfg.Scan.MaxAge != "2w" {
		t.Fatalf("max_age=%q; want 2w", cfg.Scan.MaxAge)
	}
	if cfg.Tickets.Pattern != "GH-[0-9]+" {
		t.Fatalf("pattern=%q", cfg.Tickets.Pattern)
	}
	if !cfg.Scan.All {
		t.Fatalf("all should be set")
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("format=%q; want json", cfg.Output.Format)
	}
	if cfg.Tickets.JiraURL != "https://example.com/{ticket}" {
		t.Fatalf("jira_url=%q", cfg.Tickets.JiraURL)
	}
}

func TestMergeFlagsKeepsDefaults(t *testing.T) {
	cfg := MergeFlags(DefaultConfig(), scanFlags())

	if cfg.Scan.MaxAge != "1y" || cfg.Scan.All || cfg.Output.Format != "text" {
		t.Fatalf("unset flags must not override config: %+v", cfg)
	}
}
