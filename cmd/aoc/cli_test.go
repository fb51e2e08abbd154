package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileIsFine(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	require.Empty(t, cfg.Inputs)
}

func TestLoadConfig_Parses(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".aoc.yml")
	require.NoError(t, os.WriteFile(path, []byte("inputs: ./inputs\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "./inputs", cfg.Inputs)
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".aoc.yml")
	require.NoError(t, os.WriteFile(path, []byte(":\tnot yaml"), 0o644))

	_, err := loadConfig(path)
	require.Error(t, err)
}

func TestResolveInput(t *testing.T) {
	// explicit argument wins, regardless of config
	path, err := resolveInput(24, []string{"custom.txt"})
	require.NoError(t, err)
	require.Equal(t, "custom.txt", path)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".aoc.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("inputs: "+dir+"\n"), 0o644))

	old := configPath
	configPath = cfgPath
	defer func() { configPath = old }()

	path, err = resolveInput(24, nil)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "day_024.txt"), path)

	// no argument and no config: a usable error, not a guess
	configPath = filepath.Join(dir, "absent.yml")
	_, err = resolveInput(24, nil)
	require.Error(t, err)
}

func TestDayCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"run", "blizzard-basin", "calorie-counting", "supply-stacks"} {
		require.True(t, names[want], "missing subcommand %q", want)
	}
}
