// internal/config/config.go
//
// This package handles the optional aoc.yaml file at the repository root.
// The file only tunes where inputs live and which event year download links
// point at; a repository without it gets the defaults.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kingrea/aoc-2021/internal/puzzleinput"
	"github.com/kingrea/aoc-2021/internal/repo"
)

const (
	// FileName is the project config file looked up in the repository root.
	FileName = "aoc.yaml"

	// StateDir holds tool-owned files (logs) inside the repository root.
	StateDir = ".aoc"

	// RootEnv overrides repository discovery when set.
	RootEnv = "AOC_ROOT"

	firstEventYear = 2015
)

const defaultProjectConfigYAML = `# advent of code project configuration
version: 1

# Event year used in download links.
year: 2021

# Directory holding "Day N.txt" files, relative to the repository root.
inputs_dir: puzzle_inputs
`

// ProjectConfig models aoc.yaml.
type ProjectConfig struct {
	Version   int    `yaml:"version"`
	Year      int    `yaml:"year"`
	InputsDir string `yaml:"inputs_dir"`
}

// Config holds the resolved configuration for one repository.
type Config struct {
	// Root is the repository root everything else is relative to.
	Root string

	Project ProjectConfig
}

// Resolve finds the repository root above start (or takes it from AOC_ROOT)
// and loads its configuration.
func Resolve(start string) (*Config, error) {
	if root := strings.TrimSpace(os.Getenv(RootEnv)); root != "" {
		return Load(root)
	}
	root, err := repo.FindRoot(start)
	if err != nil {
		return nil, err
	}
	return Load(root)
}

// Load reads aoc.yaml from root. A missing file yields the defaults. A
// relative root is resolved against the working directory.
func Load(root string) (*Config, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("config: resolve root %s: %w", root, err)
	}
	cfg := &Config{
		Root:    abs,
		Project: defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.Root, FileName)
}

// InputsDir returns the absolute inputs directory.
func (c *Config) InputsDir() string {
	return resolvePath(c.Root, c.Project.InputsDir)
}

// LogsDir returns the directory for tool logs.
func (c *Config) LogsDir() string {
	return filepath.Join(c.Root, StateDir, "logs")
}

// Year returns the configured event year.
func (c *Config) Year() int {
	return c.Project.Year
}

// Loader builds a puzzle input loader from this configuration.
func (c *Config) Loader() *puzzleinput.Loader {
	return puzzleinput.New(c.Root,
		puzzleinput.WithDir(c.InputsDir()),
		puzzleinput.WithYear(c.Year()),
	)
}

// WriteDefault creates aoc.yaml with commented defaults unless it already exists.
func (c *Config) WriteDefault() error {
	path := c.ProjectConfigPath()
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(defaultProjectConfigYAML), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(c.Root); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version:   1,
		Year:      puzzleinput.DefaultYear,
		InputsDir: puzzleinput.DefaultDir,
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if pc.Year == 0 {
		pc.Year = puzzleinput.DefaultYear
	}
	if strings.TrimSpace(pc.InputsDir) == "" {
		pc.InputsDir = puzzleinput.DefaultDir
	}
}

func (pc *ProjectConfig) normalize() {
	pc.InputsDir = filepath.Clean(strings.TrimSpace(pc.InputsDir))
}

func (pc *ProjectConfig) validate(root string) error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if pc.Year < firstEventYear {
		return fmt.Errorf("year must be >= %d, got %d", firstEventYear, pc.Year)
	}
	if !within(root, resolvePath(root, pc.InputsDir)) {
		return fmt.Errorf("inputs_dir %q must name a directory below the repository root", pc.InputsDir)
	}
	return nil
}

// within reports whether dir lies strictly below root.
func within(root, dir string) bool {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." || rel == ".." {
		return false
	}
	return !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func resolvePath(base, candidate string) string {
	if filepath.IsAbs(candidate) {
		return filepath.Clean(candidate)
	}
	return filepath.Clean(filepath.Join(base, candidate))
}
