package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "gravflip"

// Load loads gravity runner tuning.
// Search order: customPath -> $XDG_CONFIG_HOME/gravflip/gravity.yaml ->
// ./configs/gravity.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (GravityConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GravityConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GravityConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if path, err := xdg.SearchConfigFile(AppName + "/gravity.yaml"); err == nil {
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/gravity.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultGravityYAML)
	if err != nil {
		return DefaultGravityConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults and validates the result.
func Parse(data []byte) (GravityConfig, error) {
	cfg := DefaultGravityConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GravityConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return GravityConfig{}, err
	}
	return cfg, nil
}
