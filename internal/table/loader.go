// Package table loads per-table YAML settings (locale, roll mode, GM users
// and roll presets) and reloads them when the files change.
package table

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"
)

var ErrBadTableName = errors.New("invalid table name")

var tableName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Paths locates table files under a base directory.
type Paths struct {
	BaseDir string // e.g. /etc/dice
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "tables", "default.yaml")
}

func (p Paths) TablePath(table string) string {
	return filepath.Join(p.BaseDir, "tables", table+".yaml")
}

// Files lists the files that make up table, in merge order.
func (p Paths) Files(table string) []string {
	if table == "" || table == "default" {
		return []string{p.DefaultPath()}
	}
	return []string{p.DefaultPath(), p.TablePath(table)}
}

// Loader reads YAML configs and merges default → table.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawConfig
}

// NewLoader creates a config loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawConfig),
	}
}

func (l *Loader) Paths() Paths { return l.paths }

// Load returns the merged, validated config of table. Missing files count as
// empty; results are cached until Invalidate.
func (l *Loader) Load(table string) (RawConfig, error) {
	if table == "" {
		table = "default"
	}
	if !tableName.MatchString(table) {
		return RawConfig{}, fmt.Errorf("%w: %q", ErrBadTableName, table)
	}

	l.mu.RLock()
	cfg, ok := l.cache[table]
	l.mu.RUnlock()
	if ok {
		return cfg, nil
	}

	var merged RawConfig
	for _, path := range l.paths.Files(table) {
		c, err := readYAML(path)
		if err != nil {
			return RawConfig{}, fmt.Errorf("read %s: %w", path, err)
		}
		merged = mergeRaw(merged, c)
	}
	if err := ValidateRaw(merged); err != nil {
		return RawConfig{}, err
	}

	l.mu.Lock()
	l.cache[table] = merged
	l.mu.Unlock()
	return merged, nil
}

// Invalidate clears loader's cache. Call after the watcher detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
}

// readYAML loads a YAML file into RawConfig. Missing files return zero cfg, no error.
func readYAML(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, err
	}
	return cfg, nil
}

// mergeRaw overlays b on a: non-empty scalars and gm_users replace, presets
// are replaced by name.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Locale != "" {
		out.Locale = b.Locale
	}
	if b.RollMode != "" {
		out.RollMode = b.RollMode
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}
	if len(b.GMUsers) > 0 {
		out.GMUsers = append([]string(nil), b.GMUsers...)
	}

	if len(b.Presets) > 0 {
		presets := make(map[string]Preset, len(a.Presets)+len(b.Presets))
		for k, p := range a.Presets {
			presets[k] = p
		}
		for k, p := range b.Presets {
			presets[k] = p
		}
		out.Presets = presets
	}
	return out
}
