package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/wahlandcase/draftrel/internal/models"
)

// FileName is the config file looked up in the user config directory
const FileName = "draftrel.toml"

type Config struct {
	Build   BuildConfig   `toml:"build"`
	Notes   NotesConfig   `toml:"notes"`
	Release ReleaseConfig `toml:"release"`
}

type BuildConfig struct {
	// File is the build script to read; empty = build.gradle.kts then build.gradle
	File   string `toml:"file"`
	Format string `toml:"format"`
}

type NotesConfig struct {
	Source    string `toml:"source"`
	Script    string `toml:"script"`
	Dir       string `toml:"dir"`
	OnFailure string `toml:"on_failure"`
}

type ReleaseConfig struct {
	Tool       string `toml:"tool"`
	Strict     bool   `toml:"strict"`
	Prerelease bool   `toml:"prerelease"`
}

func DefaultConfig() *Config {
	return &Config{
		Build: BuildConfig{
			Format: "auto",
		},
		Notes: NotesConfig{
			Source:    "script",
			Script:    "scripts/commits-since-tag.sh",
			OnFailure: "abort",
		},
		Release: ReleaseConfig{
			Tool: "gh",
		},
	}
}

// DefaultPath returns the config file location in the user config directory
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, FileName), nil
}

// Load reads the config at path, or at DefaultPath when path is empty.
// A missing file yields the defaults; nothing is written back.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every enumerated setting parses
func (c *Config) Validate() error {
	if _, err := c.BuildFormat(); err != nil {
		return fmt.Errorf("build.format: %w", err)
	}
	if _, err := c.NotesSource(); err != nil {
		return fmt.Errorf("notes.source: %w", err)
	}
	if _, err := c.NotesFailurePolicy(); err != nil {
		return fmt.Errorf("notes.on_failure: %w", err)
	}
	return nil
}

func (c *Config) BuildFormat() (models.BuildFormat, error) {
	return models.ParseBuildFormat(c.Build.Format)
}

func (c *Config) NotesSource() (models.NotesSource, error) {
	return models.ParseNotesSource(c.Notes.Source)
}

func (c *Config) NotesFailurePolicy() (models.FailurePolicy, error) {
	return models.ParseFailurePolicy(c.Notes.OnFailure)
}

// NotesDir returns the helper script directory with "~/" expanded.
// Empty means the directory of the running executable.
func (c *Config) NotesDir() string {
	return expandTilde(c.Notes.Dir)
}

// Save writes the config to path, or to DefaultPath when path is empty
func (c *Config) Save(path string) (string, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return "", err
		}
		path = p
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return "", err
	}

	return path, os.WriteFile(path, data, 0644)
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
