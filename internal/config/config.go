// Package config reads and writes the optional config.json kept next to
// the binary.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/coffe/quicktube2/internal/model"
	"github.com/coffe/quicktube2/internal/tools"
)

const fileName = "config.json"

// DefaultPath returns config.json next to the binary.
func DefaultPath() string {
	dir, err := tools.ScriptDir()
	if err != nil {
		return fileName
	}
	return filepath.Join(dir, fileName)
}

// Load reads the config file. A missing file is not an error and yields a
// zero config; the program runs fine without one.
func Load(path string) (*model.Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &model.Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg model.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config with restrictive permissions.
func Save(path string, cfg *model.Config) error {
	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
