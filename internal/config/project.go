package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/mxc-foundation/zkdeploy/internal/domain"
	"github.com/mxc-foundation/zkdeploy/internal/domain/config"
)

// LoadDotEnv loads .env and .env.local from the project root.
// Variables already present in the environment are not overridden.
func LoadDotEnv(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// LoadProjectConfig loads zkdeploy.toml, expanding ${VAR} references in
// network settings. A missing file yields the defaults.
func LoadProjectConfig(projectRoot string) (*config.ProjectConfig, error) {
	LoadDotEnv(projectRoot)

	cfg := &config.ProjectConfig{}
	path := filepath.Join(projectRoot, config.ProjectFile)

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", config.ProjectFile, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat %s: %w", config.ProjectFile, err)
	}

	cfg.ApplyDefaults()

	if _, err := domain.ParseProxyKind(cfg.Project.ProxyKind); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.ProjectFile, err)
	}

	for name, network := range cfg.Networks {
		network.RPCURL, network.UnsetVars = expandEnv(network.RPCURL)
		for key, addr := range network.Addresses {
			network.Addresses[key] = os.ExpandEnv(addr)
		}
		cfg.Networks[name] = network
	}

	return cfg, nil
}
