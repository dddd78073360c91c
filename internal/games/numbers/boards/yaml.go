package boards

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-numbers/internal/games/numbers/core"
	"gopkg.in/yaml.v3"
)

// yamlPreset is the on-disk layout of a preset file.
type yamlPreset struct {
	ID          string                `yaml:"id"`
	Name        string                `yaml:"name"`
	Description string                `yaml:"description,omitempty"`
	EdgePolicy  string                `yaml:"edge_policy,omitempty"`
	Tiles       []core.SerializedTile `yaml:"tiles,omitempty"`
}

// ParseYAML parses and validates a preset file.
func ParseYAML(data []byte) (Preset, error) {
	var yp yamlPreset
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Preset{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yp.ID == "" {
		return Preset{}, errors.New("preset has no id")
	}
	if yp.EdgePolicy != "" {
		if _, err := core.ParseEdgePolicy(yp.EdgePolicy); err != nil {
			return Preset{}, err
		}
	}

	tiles := core.Snapshot(yp.Tiles)
	if err := tiles.Validate(); err != nil {
		return Preset{}, err
	}
	if len(tiles) > 0 && tiles.ActiveCount() == 0 {
		return Preset{}, fmt.Errorf("preset %s has no active tiles", yp.ID)
	}

	name := yp.Name
	if name == "" {
		name = yp.ID
	}
	return Preset{
		ID:          yp.ID,
		Name:        name,
		Description: yp.Description,
		EdgePolicy:  yp.EdgePolicy,
		Tiles:       tiles,
	}, nil
}

// MarshalYAML encodes the preset in the file format read by ParseYAML.
func (p Preset) MarshalYAML() (interface{}, error) {
	return yamlPreset{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		EdgePolicy:  p.EdgePolicy,
		Tiles:       p.Tiles,
	}, nil
}
