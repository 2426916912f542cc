// Package config reads and writes the ssassign YAML configuration.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/ssassign/assign"
	"github.com/katalvlaran/ssassign/report"
	"github.com/katalvlaran/ssassign/roster"
	"github.com/katalvlaran/ssassign/score"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// AppDirName is the per-user directory under $HOME.
	AppDirName = ".ssassign"
	// FileName is the config file inside the app directory.
	FileName = "config.yaml"
	// HistoryFileName is the default SQLite history file inside the app directory.
	HistoryFileName = "history.db"

	dirMode  = 0700
	fileMode = 0600
)

// Config represents the app config file.
type Config struct {
	Scoring score.Weights  `yaml:"scoring"`
	Solver  Solver         `yaml:"solver"`
	Input   roster.Options `yaml:"input"`
	Output  Output         `yaml:"output"`
	History History        `yaml:"history"`
}

// Solver selects the extraction method.
type Solver struct {
	Method string `yaml:"method"`
}

// Output selects the report format.
type Output struct {
	Format string `yaml:"format"`
}

// History controls run recording. An empty Path means <app dir>/history.db.
type History struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Scoring: score.DefaultWeights(),
		Solver:  Solver{Method: "greedy"},
		Input:   roster.DefaultOptions(),
		Output:  Output{Format: report.FormatTable.String()},
		History: History{Enabled: false},
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config required")
	}
	if err := c.Scoring.Validate(); err != nil {
		return errors.Wrap(err, "scoring")
	}
	if _, err := assign.ParseMethod(c.Solver.Method); err != nil {
		return errors.Wrap(err, "solver.method")
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrap(err, "output.format")
	}

	return nil
}

// Method returns the parsed solver method. Call Validate first.
func (c *Config) Method() assign.Method {
	m, _ := assign.ParseMethod(c.Solver.Method)
	return m
}

// Format returns the parsed output format. Call Validate first.
func (c *Config) Format() report.Format {
	f, _ := report.ParseFormat(c.Output.Format)
	return f
}

// Load reads the config file at path. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path required")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config file: %s", path)
	}

	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrapf(err, "error unmarshalling config file: %s", path)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file: %s", path)
	}

	return c, nil
}

// Save writes c to path, creating the parent directory when needed.
func Save(path string, c *Config) error {
	if path == "" {
		return errors.New("config path required")
	}
	if c == nil {
		return errors.New("config required")
	}
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return errors.Wrapf(err, "failed to create dir: %s", filepath.Dir(path))
	}

	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file: %s", path)
	}

	return nil
}

// ReadOrCreate reads the config from dirPath or writes the defaults there first.
func ReadOrCreate(dirPath string) (*Config, error) {
	if dirPath == "" {
		return nil, errors.New("config directory required")
	}

	path := filepath.Join(dirPath, FileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating default config", "path", path)
		if err := Save(path, Default()); err != nil {
			return nil, errors.Wrap(err, "failed to create default config")
		}
	}

	return Load(path)
}

// HistoryPath resolves the history database path against dirPath.
func (c *Config) HistoryPath(dirPath string) string {
	if c.History.Path != "" {
		return c.History.Path
	}

	return filepath.Join(dirPath, HistoryFileName)
}

// GetOrCreateHomeDir returns $HOME/<name>, creating it when missing.
// The created flag is set to true if the directory was created.
func GetOrCreateHomeDir(name string) (path string, created bool, err error) {
	if name == "" {
		return "", false, errors.New("name cannot be empty")
	}
	if !strings.HasPrefix(name, ".") {
		name = "." + name
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false, errors.Wrap(err, "failed to get user home dir")
	}

	dir := filepath.Join(home, name)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating dir", "path", dir)
		if err := os.Mkdir(dir, dirMode); err != nil {
			return "", false, errors.Wrapf(err, "failed to create dir: %s", dir)
		}
		created = true
	}

	return dir, created, nil
}
