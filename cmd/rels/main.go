package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/matt-winfield/rels/internal/termfix"

import (
	"errors"
	"fmt"
	"os"

	"github.com/matt-winfield/rels/internal/app"
	"github.com/matt-winfield/rels/internal/config"
	"github.com/matt-winfield/rels/internal/engine"
	"github.com/matt-winfield/rels/internal/report"
	"github.com/matt-winfield/rels/internal/store"
	"github.com/matt-winfield/rels/internal/tickets"
	"github.com/matt-winfield/rels/internal/ui"
	"github.com/matt-winfield/rels/internal/update"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	repoPath    string
	githubRepo  string
	githubToken string
	filter      string
	interactive bool
	noColor     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "rels",
		Short:         "Show which tickets landed in which release",
		Long:          "rels maps a repository's commit history onto its tags: each release is listed with the issue-tracker tickets referenced by the commits it introduced.",
		Version:       version,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&repoPath, "repo", "C", ".", "Path to the repository (searched upward like git)")
	rootCmd.Flags().StringVar(&githubRepo, "github", "", "Read a remote GitHub repository (owner/repo) instead of a local one")
	rootCmd.Flags().StringVar(&githubToken, "token", os.Getenv("GITHUB_TOKEN"), "GitHub token for --github")
	rootCmd.Flags().StringP("age", "t", "", "Maximum age of tags to show, in the format 1y 2mon 3w 4d 5h 6m 7s")
	rootCmd.Flags().StringP("regex", "r", "", "Regex used to match ticket numbers")
	rootCmd.Flags().StringP("jira-url", "u", "", "Base URL for tickets, e.g. https://jira.example.com/browse/; {ticket} is replaced if present, otherwise the key is appended")
	rootCmd.Flags().BoolP("all", "a", false, "Show all commits, not just those matching the ticket regex")
	rootCmd.Flags().StringVarP(&filter, "filter", "f", "", "Filter by tag name or ticket key")
	rootCmd.Flags().StringP("output", "o", "", "Output format: text | table | json")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse releases in a TUI")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newUpdateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = config.MergeFlags(cfg, cmd.Flags())

	extractor, err := tickets.NewExtractor(cfg.Tickets.Pattern)
	if err != nil {
		return err
	}

	maxAge, err := config.ParseAge(cfg.Scan.MaxAge)
	if err != nil {
		return err
	}

	st, label, err := openStore(cmd)
	if err != nil {
		return err
	}

	opts := report.Options{
		All:     cfg.Scan.All,
		Filter:  filter,
		MaxAge:  maxAge,
		JiraURL: cfg.Tickets.JiraURL,
	}

	eng := engine.New(st, extractor)
	build := func() (report.Output, error) {
		rep, err := eng.Build(cmd.Context())
		if err != nil {
			return report.Output{}, err
		}
		return report.Assemble(rep, extractor, opts), nil
	}

	if interactive {
		p := tea.NewProgram(app.New(label, build), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	}

	out, err := build()
	if err != nil {
		return err
	}
	if err := report.New(cfg.Output.Format, os.Stdout).Render(out); err != nil {
		return err
	}

	maybeHintUpdate(cfg)
	return nil
}

// openStore picks the local go-git adapter or the GitHub one
func openStore(cmd *cobra.Command) (store.Store, string, error) {
	if githubRepo != "" {
		owner, repo, err := store.ParseRepo(githubRepo)
		if err != nil {
			return nil, "", err
		}
		return store.NewGitHubStore(cmd.Context(), owner, repo, githubToken), owner + "/" + repo, nil
	}

	st, err := store.Open(repoPath)
	if err != nil {
		var re *store.RepoError
		if errors.As(err, &re) {
			return nil, "", fmt.Errorf("%s is not a git repository!", ui.BoldStyle.Render(re.Path))
		}
		return nil, "", err
	}
	return st, st.Path, nil
}

// maybeHintUpdate prints a one-line hint when a newer release exists.
// Checked at most once a day; failures (no gh, offline) stay silent.
func maybeHintUpdate(cfg *config.Config) {
	if !cfg.ShouldCheckForUpdate() {
		return
	}
	cfg.RecordUpdateCheck()
	_ = cfg.Save()

	release, err := update.CheckForUpdate(version, cfg.Update.Repo)
	if err != nil || release == nil || release.TagName == cfg.Update.SkippedVersion {
		return
	}
	fmt.Fprintln(os.Stderr, ui.DimStyle.Render(
		fmt.Sprintf("rels %s is available, run 'rels update' to install", update.VersionDisplay(release.TagName))))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of rels",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("rels " + version)
		},
	}
}

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update rels to the latest release",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			release, err := update.CheckForUpdate(version, cfg.Update.Repo)
			if err != nil {
				return err
			}
			if release == nil {
				fmt.Println("rels is up to date")
				return nil
			}

			fmt.Printf("updating to %s...\n", update.VersionDisplay(release.TagName))
			if err := update.DownloadAndInstall(release, cfg.Update.Repo); err != nil {
				return err
			}
			fmt.Println("done")
			return nil
		},
	}
}
