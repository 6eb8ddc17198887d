// Package config loads and stores jvocab preferences.
//
// Preferences live in a TOML file, by default
// $XDG_CONFIG_HOME/jvocab/config.toml (or ~/.config/jvocab/config.toml):
//
//	[output]
//	compact = false
//	omit_zero_lesson = false
//
//	[recent]
//	max = 6
//	files = ["/home/me/words.json"]
//
// A missing file is not an error; [Load] returns [Default] in that case.
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	verrors "github.com/psyberchi/jvocab/pkg/errors"
	"github.com/psyberchi/jvocab/pkg/io"
)

const (
	appName  = "jvocab"
	fileName = "config.toml"

	// DefaultRecentMax is the number of recent files remembered when the
	// configuration does not say otherwise.
	DefaultRecentMax = 6
)

// Config holds user preferences.
type Config struct {
	Output Output `toml:"output"`
	Recent Recent `toml:"recent"`
}

// Output controls how vocabulary files are written.
type Output struct {
	Compact        bool `toml:"compact"`
	OmitZeroLesson bool `toml:"omit_zero_lesson"`
}

// Recent is the most-recently-used file list, newest first.
type Recent struct {
	Max   int      `toml:"max"`
	Files []string `toml:"files"`
}

// Default returns the preferences used when no file exists.
func Default() *Config {
	return &Config{Recent: Recent{Max: DefaultRecentMax}}
}

// DefaultPath returns the configuration file location following the XDG
// base directory convention.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", verrors.Wrap(verrors.ErrCodeInternal, err, "locate config directory")
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the configuration at path. A file that does not exist yields
// [Default].
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, verrors.Wrap(verrors.ErrCodeRead, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, verrors.Wrap(verrors.ErrCodeParse, err, "parse config %s", path)
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return verrors.Wrap(verrors.ErrCodeInternal, err, "encode config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return verrors.Wrap(verrors.ErrCodeWrite, err, "create config directory")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return verrors.Wrap(verrors.ErrCodeWrite, err, "write config %s", path)
	}
	return nil
}

// AddRecentFile moves path to the front of the recent list. Relative paths
// are made absolute. It returns false for an empty path.
func (c *Config) AddRecentFile(path string) bool {
	if path == "" {
		return false
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	files := slices.DeleteFunc(slices.Clone(c.Recent.Files), func(f string) bool { return f == path })
	c.Recent.Files = append([]string{path}, files...)
	c.normalize()
	return true
}

// RemoveRecentFile drops path from the recent list.
func (c *Config) RemoveRecentFile(path string) bool {
	n := len(c.Recent.Files)
	c.Recent.Files = slices.DeleteFunc(c.Recent.Files, func(f string) bool { return f == path })
	return len(c.Recent.Files) != n
}

// RecentFiles returns a copy of the recent list, newest first.
func (c *Config) RecentFiles() []string {
	return slices.Clone(c.Recent.Files)
}

// MostRecent returns the newest recent file, if any.
func (c *Config) MostRecent() (string, bool) {
	if len(c.Recent.Files) == 0 {
		return "", false
	}
	return c.Recent.Files[0], true
}

// CodecOptions translates the output preferences into writer options.
func (c *Config) CodecOptions() []io.Option {
	var opts []io.Option
	if c.Output.Compact {
		opts = append(opts, io.WithCompact())
	}
	if c.Output.OmitZeroLesson {
		opts = append(opts, io.WithOmitZeroLesson())
	}
	return opts
}

func (c *Config) normalize() {
	if c.Recent.Max <= 0 {
		c.Recent.Max = DefaultRecentMax
	}
	var files []string
	for _, f := range c.Recent.Files {
		if f != "" && !slices.Contains(files, f) {
			files = append(files, f)
		}
	}
	if len(files) > c.Recent.Max {
		files = files[:c.Recent.Max]
	}
	c.Recent.Files = files
}
