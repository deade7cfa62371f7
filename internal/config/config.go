// Package config loads the server configuration from YAML with
// environment variable expansion and overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/zoralabs/coins-mcp/pkg/utils"
)

const (
	// DefaultChainID is Base mainnet.
	DefaultChainID = 8453
	DefaultRPCURL  = "https://mainnet.base.org"
)

// Config is the full server configuration.
type Config struct {
	API   APIConfig       `yaml:"api"`
	Chain ChainConfig     `yaml:"chain"`
	Log   utils.LogConfig `yaml:"logging"`
}

// APIConfig configures the coin platform API client.
type APIConfig struct {
	// BaseURL overrides the platform API endpoint. Empty means the
	// production endpoint.
	BaseURL string `yaml:"base_url"`
	// Key authenticates API calls; optional but rate limits are tighter
	// without it.
	Key string `yaml:"key"`
}

// ChainConfig configures on-chain access. PrivateKey is optional; without
// it the server runs read-only.
type ChainConfig struct {
	ID         int64  `yaml:"id"`
	RPCURL     string `yaml:"rpc_url"`
	PrivateKey string `yaml:"private_key"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Chain: ChainConfig{
			ID:     DefaultChainID,
			RPCURL: DefaultRPCURL,
		},
		Log: utils.DefaultLogConfig(),
	}
}

// Load reads configuration from a YAML file, expanding ${VAR} references,
// then applies environment overrides. A missing file is not an error; the
// defaults plus environment apply.
func Load(path string, logger *logrus.Logger) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if path != "" {
			logger.Warnf("Configuration file %s not found, using defaults", path)
		}
		applyEnvironmentOverrides(cfg)
		return cfg, validate(cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := utils.ExpandEnvVars(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvironmentOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyEnvironmentOverrides lets the conventional environment variables
// win over file values.
func applyEnvironmentOverrides(cfg *Config) {
	if v := os.Getenv("ZORA_API_KEY"); v != "" {
		cfg.API.Key = v
	}
	if v := os.Getenv("COINS_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("CHAIN_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Chain.ID = id
		}
	}
	if v := os.Getenv("BASE_RPC_URL"); v != "" {
		cfg.Chain.RPCURL = v
	}
	if v := os.Getenv("PRIVATE_KEY"); v != "" {
		cfg.Chain.PrivateKey = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

func validate(cfg *Config) error {
	if cfg.Chain.ID <= 0 {
		return fmt.Errorf("chain id must be positive, got %d", cfg.Chain.ID)
	}
	if cfg.Chain.PrivateKey != "" && cfg.Chain.RPCURL == "" {
		return fmt.Errorf("rpc_url must be set when a private key is configured")
	}
	return nil
}
