package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames are the file names probed in each search directory, in order.
var configNames = []string{"dodger.yaml", "dodger.yml", "dodger.toml"}

// Load loads and validates the Block Dodger configuration.
// Search order: customPath -> ~/.blockdodger/configs/ -> ./configs/ -> embedded default.
// Files only need to set the fields they override; everything else keeps
// its default. A file ending in .toml is decoded as TOML, anything else as YAML.
func Load(customPath string) (DodgerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DodgerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return DodgerConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, dir := range searchDirs() {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			cfg, err := decode(path, data)
			if err != nil {
				return DodgerConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
			}
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := decode("dodger.yaml", defaultDodgerYAML)
	if err != nil {
		cfg = DefaultDodgerConfig() // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// Parse decodes a YAML configuration, such as one produced by Marshal,
// over the defaults and validates it.
func Parse(data []byte) (DodgerConfig, error) {
	cfg, err := decode("dodger.yaml", data)
	if err != nil {
		return DodgerConfig{}, fmt.Errorf("config: failed to parse: %w", err)
	}
	return cfg, cfg.Validate()
}

// decode overlays the file contents on the built-in defaults.
func decode(path string, data []byte) (DodgerConfig, error) {
	cfg := DefaultDodgerConfig()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return DodgerConfig{}, err
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DodgerConfig{}, err
	}
	return cfg, nil
}

// searchDirs returns the user and local config directories.
func searchDirs() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".blockdodger", "configs"))
	}
	return append(dirs, "configs")
}

// Marshal renders a configuration as YAML.
func Marshal(cfg DodgerConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return buf.Bytes(), nil
}
