package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/polymorpher/band-oracle-reader/internal/domain/config"
)

// loadProjectConfig loads .env files and parses bandreader.toml when present.
// Values are kept raw; ${VAR} references are expanded when they are used.
func loadProjectConfig(projectRoot string) (*config.ProjectConfig, string, error) {
	loadEnvFiles(projectRoot)

	cfg := &config.ProjectConfig{}
	source := ""

	path := filepath.Join(projectRoot, ProjectFile)
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, "", fmt.Errorf("failed to parse %s: %w", ProjectFile, err)
		}
		source = ProjectFile
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, "", err
	}

	if cfg.RpcEndpoints == nil {
		cfg.RpcEndpoints = make(map[string]string)
	}
	if cfg.Senders == nil {
		cfg.Senders = make(map[string]config.SenderConfig)
	}

	return cfg, source, nil
}

// loadEnvFiles loads .env then .env.local. godotenv never overrides variables
// that are already set, so the process environment wins.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}
