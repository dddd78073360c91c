package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// FileName is the config file name searched for in each location.
const FileName = "numbers.yaml"

// LoadNumbers loads the Numbers configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/numbers/numbers.yaml ->
// ./configs/numbers.yaml -> embedded default -> hardcoded default.
// Keys missing from a file keep their default values. Only an explicit
// customPath that cannot be read or is invalid is an error; other
// candidates are skipped.
func LoadNumbers(customPath string) (NumbersConfig, error) {
	if customPath != "" {
		cfg, err := parseFile(customPath)
		if err != nil {
			return DefaultNumbersConfig(), err
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		if cfg, err := parseFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultNumbersConfig()
	if err := yaml.Unmarshal(defaultNumbersYAML, &cfg); err != nil {
		return DefaultNumbersConfig(), nil
	}
	return cfg, nil
}

// searchPaths lists the config locations that exist, in priority order.
func searchPaths() []string {
	var paths []string
	if p, err := xdg.SearchConfigFile(filepath.Join(AppName, FileName)); err == nil {
		paths = append(paths, p)
	}
	local := filepath.Join("configs", FileName)
	if _, err := os.Stat(local); err == nil {
		paths = append(paths, local)
	}
	return paths
}

// parseFile reads and validates one config file over the defaults.
func parseFile(path string) (NumbersConfig, error) {
	cfg := DefaultNumbersConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// WriteDefault writes the embedded default config to the XDG config
// directory and returns its path. An existing file is left alone.
func WriteDefault() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join(AppName, FileName))
	if err != nil {
		return "", fmt.Errorf("config: cannot resolve config path: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.WriteFile(path, defaultNumbersYAML, 0o644); err != nil {
		return "", fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return path, nil
}
