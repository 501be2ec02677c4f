package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/polymorpher/band-oracle-reader/internal/domain/config"
	"github.com/spf13/viper"
)

// ProjectFile is the name of the optional project configuration file
const ProjectFile = "bandreader.toml"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	// SetupViper defaults project_root to the discovered root
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		return nil, fmt.Errorf("project root not set")
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		Network:        v.GetString("network"),
		Sender:         v.GetString("sender"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        v.GetDuration("timeout"),
	}

	projectConfig, source, err := loadProjectConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", ProjectFile, err)
	}
	cfg.ProjectConfig = projectConfig
	cfg.ConfigSource = source

	if cfg.Network == "" {
		cfg.Network = projectConfig.DefaultNetwork
	}

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find bandreader.toml.
// The config file is optional, so the working directory is used when none is found.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectFile)); err == nil {
			return dir, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()

	// Local overrides live next to the data dir, e.g. {"network": "sepolia"}
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".bandreader"))

	v.SetEnvPrefix("BANDREADER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("sender", "default")
	v.SetDefault("timeout", "0s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	return v
}
