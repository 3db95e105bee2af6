// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the .protosyntax.toml file that configures the
// protosyntax command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
)

// FileName is the name of the configuration file.
const FileName = ".protosyntax.toml"

// ColorMode says when diagnostics are colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode given on the command line or in a
// configuration file.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(s); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid color mode %q; must be one of auto, always or never", s)
	}
}

// Enabled returns whether to color output written to a terminal, or not.
func (m ColorMode) Enabled(terminal bool) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return terminal
	}
}

// Config is the contents of a configuration file.
type Config struct {
	// The file the configuration was loaded from, or "" for the defaults.
	Path string `toml:"-"`
	// The directory that file patterns are relative to.
	Root string `toml:"-"`

	Diagnostics Diagnostics `toml:"diagnostics"`
	Files       Files       `toml:"files"`
}

// Diagnostics is the [diagnostics] table.
type Diagnostics struct {
	Color ColorMode `toml:"color"`
	// Stop reporting after this many errors in one file; 0 means no limit.
	MaxErrors int `toml:"max_errors"`
}

// Files is the [files] table: doublestar globs selecting the files to
// parse when none are named on the command line.
type Files struct {
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
}

// Default returns the configuration used when there is no file, rooted at
// root.
func Default(root string) Config {
	return Config{
		Root: root,
		Diagnostics: Diagnostics{
			Color:     ColorAuto,
			MaxErrors: 100,
		},
		Files: Files{
			Include: []string{"**/*.proto"},
		},
	}
}

// Find walks up from startDir looking for a configuration file.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Discover loads the configuration file that applies to startDir, or the
// defaults if there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		root, err := filepath.Abs(startDir)
		if err != nil {
			return Config{}, err
		}
		return Default(root), nil
	}
	return Load(path)
}

// Load reads the configuration file at path. Settings it does not mention
// keep their defaults.
func Load(path string) (Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default(filepath.Dir(abs))
	cfg.Path = abs

	meta, err := toml.DecodeFile(abs, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", abs, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", abs, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", abs, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := ParseColorMode(string(c.Diagnostics.Color)); err != nil {
		return fmt.Errorf("[diagnostics].color: %w", err)
	}
	if c.Diagnostics.MaxErrors < 0 {
		return fmt.Errorf("[diagnostics].max_errors must not be negative")
	}
	for _, pattern := range slices.Concat(c.Files.Include, c.Files.Exclude) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("[files]: invalid pattern %q", pattern)
		}
	}
	return nil
}

// Excluded returns whether rel, a slash-separated path relative to the
// root, matches an exclude pattern.
func (c *Config) Excluded(rel string) bool {
	for _, pattern := range c.Files.Exclude {
		if doublestar.MatchUnvalidated(pattern, rel) {
			return true
		}
	}
	return false
}

// Sources lists the files under the root selected by the include and
// exclude patterns, in lexical order.
func (c *Config) Sources() ([]string, error) {
	fsys := os.DirFS(c.Root)
	seen := make(map[string]struct{})
	var out []string
	for _, pattern := range c.Files.Include {
		err := doublestar.GlobWalk(fsys, pattern, func(rel string, d fs.DirEntry) error {
			if d.IsDir() || c.Excluded(rel) {
				return nil
			}
			if _, ok := seen[rel]; !ok {
				seen[rel] = struct{}{}
				out = append(out, filepath.Join(c.Root, filepath.FromSlash(rel)))
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
	}
	slices.Sort(out)
	return out, nil
}
