package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

type Config struct {
	Tickets TicketsConfig `toml:"tickets"`
	Scan    ScanConfig    `toml:"scan"`
	Output  OutputConfig  `toml:"output"`
	Update  UpdateConfig  `toml:"update"`
}

type TicketsConfig struct {
	// Pattern is the ticket key regex, matched case-insensitively
	Pattern string `toml:"pattern"`
	// JiraURL is the link template; "{ticket}" is replaced with the key
	JiraURL string `toml:"jira_url"`
}

type ScanConfig struct {
	// MaxAge is the maximum tag age to show, e.g. "1y 2mon 3w 4d 5h 6m 7s"
	MaxAge string `toml:"max_age"`
	// All includes commits without ticket matches
	All bool `toml:"all"`
}

type OutputConfig struct {
	// Format is "text", "table" or "json"
	Format string `toml:"format"`
}

type UpdateConfig struct {
	Enabled        bool      `toml:"enabled"`
	LastCheck      time.Time `toml:"last_check"`
	SkippedVersion string    `toml:"skipped_version"`
	Repo           string    `toml:"repo"`
}

func DefaultConfig() *Config {
	return &Config{
		Tickets: TicketsConfig{
			Pattern: "[A-Z][A-Z0-9]*-[0-9]+",
		},
		Scan: ScanConfig{
			MaxAge: "1y",
		},
		Output: OutputConfig{
			Format: "text",
		},
		Update: UpdateConfig{
			Enabled: true,
			Repo:    "matt-winfield/rels",
		},
	}
}

func configPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "rels.toml"), nil
}

func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			_ = cfg.Save() // Best effort save
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// MergeFlags overlays set command-line flags onto the config
func MergeFlags(cfg *Config, flags *pflag.FlagSet) *Config {
	if v, err := flags.GetString("regex"); err == nil && v != "" {
		cfg.Tickets.Pattern = v
	}
	if v, err := flags.GetString("jira-url"); err == nil && v != "" {
		cfg.Tickets.JiraURL = v
	}
	if v, err := flags.GetString("age"); err == nil && v != "" {
		cfg.Scan.MaxAge = v
	}
	if v, err := flags.GetBool("all"); err == nil && v {
		cfg.Scan.All = true
	}
	if v, err := flags.GetString("output"); err == nil && v != "" {
		cfg.Output.Format = v
	}
	return cfg
}

// ShouldCheckForUpdate returns true if update check is enabled and 24h since last check
func (c *Config) ShouldCheckForUpdate() bool {
	if !c.Update.Enabled {
		return false
	}
	return time.Since(c.Update.LastCheck) > 24*time.Hour
}

// RecordUpdateCheck updates the last check time
func (c *Config) RecordUpdateCheck() {
	c.Update.LastCheck = time.Now()
}
