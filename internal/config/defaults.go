package config

import (
	_ "embed"
)

//go:embed defaults/numbers.yaml
var defaultNumbersYAML []byte

// DefaultNumbersConfig returns hardcoded defaults, used when the embedded
// YAML cannot be parsed.
func DefaultNumbersConfig() NumbersConfig {
	return NumbersConfig{
		Board: BoardConfig{
			EdgePolicy: "wrap",
			Preset:     "classic",
		},
		Input: InputConfig{
			DebounceMS: 200,
		},
		Autopilot: AutopilotConfig{
			StepTicks: 6,
		},
		Render: RenderConfig{
			CollapseRows: true,
		},
	}
}
