package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables that override loaded values.
const (
	EnvWidth     = "MAPGEN_WIDTH"
	EnvHeight    = "MAPGEN_HEIGHT"
	EnvStrategy  = "MAPGEN_STRATEGY"
	EnvWalkers   = "MAPGEN_WALKERS"
	EnvLifetime  = "MAPGEN_LIFETIME"
	EnvSeed      = "MAPGEN_SEED"
	EnvArchetype = "MAPGEN_ARCHETYPE"
)

// LoadGenerator loads generator configuration.
// Search order: customPath -> ~/.mapgen/configs/mapgen.yaml -> ./configs/mapgen.yaml -> embedded default
func LoadGenerator(customPath string) (GeneratorConfig, error) {
	// Unset keys keep their default values
	cfg := DefaultGeneratorConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("mapgen.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultGeneratorConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/mapgen.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultGeneratorConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultGeneratorYAML, &cfg); err != nil {
		return DefaultGeneratorConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mapgen", "configs", filename)
}

// ApplyEnv overrides cfg with any MAPGEN_* variables that are set.
func ApplyEnv(cfg *GeneratorConfig) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &cfg.Grid.Width},
		{EnvHeight, &cfg.Grid.Height},
		{EnvWalkers, &cfg.Walkers.Count},
		{EnvLifetime, &cfg.Walkers.Lifetime},
	}
	for _, e := range ints {
		v, ok := os.LookupEnv(e.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s must be an integer: %w", e.key, err)
		}
		*e.dst = n
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s must be an unsigned integer: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv(EnvStrategy); v != "" {
		cfg.Strategy = v
	}
	if v := os.Getenv(EnvArchetype); v != "" {
		cfg.Archetype = v
	}
	return nil
}
