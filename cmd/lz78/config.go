// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lz78/lz78/cmd/lz78

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-lz78/lz78"
)

// fileDefaults is the shape of the optional YAML config file: a place to
// pin default dictionary/buffer sizes instead of passing them on every
// invocation. Unset fields fall through to the engine's own defaults.
type fileDefaults struct {
	DictSize string `yaml:"dict_size"`
	BufSize  string `yaml:"buffer_size"`
}

// loadDefaults reads path (if non-empty) and returns the lz78.Config it
// describes. An empty path returns the zero Config, which ApplyDefaults
// will fill with the package defaults.
func loadDefaults(path string) (lz78.Config, error) {
	if path == "" {
		return lz78.Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return lz78.Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	var fd fileDefaults
	if err := yaml.Unmarshal(data, &fd); err != nil {
		return lz78.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	var cfg lz78.Config
	if fd.DictSize != "" {
		cfg.DictSize = uint32(lz78.ParseSize(fd.DictSize))
	}
	if fd.BufSize != "" {
		cfg.BufCapacityBits = uint32(lz78.ParseSize(fd.BufSize)) * 8
	}
	return cfg, nil
}
