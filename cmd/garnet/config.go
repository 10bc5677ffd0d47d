package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"garnet"
)

// garnetConfig mirrors garnet.toml. Command-line flags always win over
// the file.
type garnetConfig struct {
	Parse parseSection `toml:"parse"`
}

type parseSection struct {
	Grammar        string `toml:"grammar"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

// findGarnetToml walks up from startDir looking for garnet.toml.
func findGarnetToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "garnet.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadGarnetConfig(startDir string) (garnetConfig, error) {
	var cfg garnetConfig
	path, ok, err := findGarnetToml(startDir)
	if err != nil || !ok {
		return cfg, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return garnetConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// resolveParseConfig merges garnet.toml defaults with the persistent
// flags of the invocation.
func resolveParseConfig(cmd *cobra.Command) (garnet.ParseConfig, error) {
	fileCfg, err := loadGarnetConfig(".")
	if err != nil {
		return garnet.ParseConfig{}, err
	}

	flags := cmd.Root().PersistentFlags()
	grammar, err := flags.GetString("grammar")
	if err != nil {
		return garnet.ParseConfig{}, err
	}
	if grammar == "" {
		grammar = fileCfg.Parse.Grammar
	}
	maxDiagnostics, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return garnet.ParseConfig{}, err
	}
	if !flags.Changed("max-diagnostics") && fileCfg.Parse.MaxDiagnostics > 0 {
		maxDiagnostics = fileCfg.Parse.MaxDiagnostics
	}

	cfg := garnet.ParseConfig{
		Grammar:        grammar,
		MaxDiagnostics: maxDiagnostics,
	}
	if _, err := garnet.ResolveVersion(cfg.Grammar); err != nil {
		return garnet.ParseConfig{}, err
	}
	return cfg, nil
}
