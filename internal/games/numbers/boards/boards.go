// Package boards provides preset starting layouts for Numbers.
// Built-in presets are embedded; more can be loaded from a directory of
// YAML files. This package depends on core but core does not depend on
// boards.
package boards

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-numbers/internal/games/numbers/core"
)

// DefaultID is the preset used when none is named.
const DefaultID = "classic"

// ErrNotFound is returned when no preset has the requested ID.
var ErrNotFound = errors.New("boards: preset not found")

//go:embed presets/*.yaml
var builtin embed.FS

// Preset is a named starting layout.
type Preset struct {
	ID          string
	Name        string
	Description string
	// EdgePolicy is the preset's preferred policy. Empty means the
	// caller decides.
	EdgePolicy string
	// Tiles is the starting layout. An empty layout means the standard
	// opening.
	Tiles  core.Snapshot
	Source string
}

// NewBoard builds a playable board from the preset. The preset's edge
// policy is applied first, so opts can override it. Layouts without a
// live pair are refilled before the board is returned.
func (p Preset) NewBoard(opts ...core.Option) (*core.Board, error) {
	var all []core.Option
	if p.EdgePolicy != "" {
		policy, err := core.ParseEdgePolicy(p.EdgePolicy)
		if err != nil {
			return nil, fmt.Errorf("boards: preset %s: %w", p.ID, err)
		}
		all = append(all, core.WithEdgePolicy(policy))
	}
	all = append(all, opts...)

	b := core.New(all...)
	if len(p.Tiles) == 0 {
		return b, nil
	}
	if err := b.RestoreFrom(p.Tiles); err != nil {
		return nil, fmt.Errorf("boards: preset %s: %w", p.ID, err)
	}
	b.Evaluate()
	return b, nil
}

// Loader loads presets from the embedded set and an optional directory.
type Loader struct {
	// Root is a directory of extra preset files. Presets found there
	// replace built-ins with the same ID. Empty means built-ins only.
	Root string
}

// NewLoader creates a new preset loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll returns every preset sorted by ID.
func (l *Loader) LoadAll() ([]Preset, error) {
	byID := make(map[string]Preset)

	sub, err := fs.Sub(builtin, "presets")
	if err != nil {
		return nil, fmt.Errorf("boards: built-in presets: %w", err)
	}
	if err := walk(sub, "builtin:", byID); err != nil {
		return nil, err
	}

	if l.Root != "" {
		if _, err := os.Stat(l.Root); err == nil {
			if err := walk(os.DirFS(l.Root), l.Root+"/", byID); err != nil {
				return nil, err
			}
		}
	}

	presets := make([]Preset, 0, len(byID))
	for _, p := range byID {
		presets = append(presets, p)
	}
	sort.Slice(presets, func(i, j int) bool {
		return presets[i].ID < presets[j].ID
	})
	return presets, nil
}

// walk parses every YAML file in fsys into byID. Invalid files are skipped.
func walk(fsys fs.FS, prefix string, byID map[string]Preset) error {
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil
		}
		preset, err := ParseYAML(data)
		if err != nil {
			return nil
		}
		preset.Source = prefix + p
		byID[preset.ID] = preset
		return nil
	})
	if err != nil {
		return fmt.Errorf("boards: walking %s: %w", prefix, err)
	}
	return nil
}

// LoadFile loads a single preset file.
func (l *Loader) LoadFile(filename string) (Preset, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Preset{}, fmt.Errorf("boards: reading %s: %w", filename, err)
	}
	p, err := ParseYAML(data)
	if err != nil {
		return Preset{}, fmt.Errorf("boards: parsing %s: %w", filename, err)
	}
	p.Source = filename
	return p, nil
}

// LoadByID loads a specific preset by ID.
func (l *Loader) LoadByID(id string) (Preset, error) {
	if id == "" {
		id = DefaultID
	}
	presets, err := l.LoadAll()
	if err != nil {
		return Preset{}, err
	}
	for _, p := range presets {
		if p.ID == id {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all preset IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	presets, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(presets))
	for i, p := range presets {
		ids[i] = p.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
