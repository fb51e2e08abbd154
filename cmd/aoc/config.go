package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// config is the optional .aoc.yml: a directory of puzzle inputs named
// day_NNN.txt, so subcommands can be run without an explicit input path.
type config struct {
	Inputs string `yaml:"inputs"`
}

// loadConfig reads path if it exists; a missing file is not an error, it
// just leaves every field at its zero value.
func loadConfig(path string) (config, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config{}, nil
	}
	if err != nil {
		return config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveInput picks the input path: an explicit argument wins, otherwise
// the config's inputs directory supplies day_NNN.txt.
func resolveInput(day int, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return "", err
	}
	if cfg.Inputs == "" {
		return "", fmt.Errorf("no input path given and no inputs directory in %s", configPath)
	}
	return filepath.Join(cfg.Inputs, fmt.Sprintf("day_%03d.txt", day)), nil
}
