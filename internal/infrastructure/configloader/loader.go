package configloader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the selectors from the config file.
const (
	EnvPublicNetwork     = "PUBLIC_NETWORK"
	EnvPublicEnvironment = "PUBLIC_ENVIRONMENT"
)

// ServerConfig holds server-specific configurations.
type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
	SwaggerPath    string   `yaml:"swaggerPath"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// EnvironmentConfig holds the raw network/environment selectors.
// They are validated later, never here: an invalid value must not stop the service.
type EnvironmentConfig struct {
	Network     string `yaml:"network"`
	Environment string `yaml:"environment"`
}

// DirectoryConfig tells the directory provider where chain and asset lists come from.
// For each list a URL wins over a file; with neither set the built-in definitions are used.
type DirectoryConfig struct {
	ChainsURL              string `yaml:"chainsURL"`
	AssetsURL              string `yaml:"assetsURL"`
	ChainsFile             string `yaml:"chainsFile"`
	AssetsFile             string `yaml:"assetsFile"`
	RequestTimeoutMillis   int64  `yaml:"requestTimeoutMillis"`
	RetryAttempts          int    `yaml:"retryAttempts"`
	RefreshIntervalSeconds int    `yaml:"refreshIntervalSeconds"`
}

// SDKConfig holds settings for constructing the bridge SDK.
type SDKConfig struct {
	ConnectionTimeoutSeconds int  `yaml:"connectionTimeoutSeconds"`
	DiscardStaleResults      bool `yaml:"discardStaleResults"`
}

// WalletConfig points at the file holding the initially connected wallet, if any.
type WalletConfig struct {
	AddressFile string `yaml:"addressFile"`
}

// RpcClientConfig holds outbound request limits.
type RpcClientConfig struct {
	RateLimit  int `yaml:"rateLimit"`
	BurstLimit int `yaml:"burstLimit"`
}

// CacheConfig holds configuration for caching directory lists.
// DefaultExpirationMinutes of 0 disables the cache; an absent key means 5 minutes.
type CacheConfig struct {
	DefaultExpirationMinutes int `yaml:"defaultExpirationMinutes"`
	CleanupIntervalMinutes   int `yaml:"cleanupIntervalMinutes"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Logging     LoggingConfig     `yaml:"logging"`
	Environment EnvironmentConfig `yaml:"environment"`
	Directory   DirectoryConfig   `yaml:"directory"`
	SDK         SDKConfig         `yaml:"sdk"`
	Wallet      WalletConfig      `yaml:"wallet"`
	RpcClient   RpcClientConfig   `yaml:"rpcClient"`
	Cache       CacheConfig       `yaml:"cache"`
}

// Load reads the YAML configuration file from the given path and unmarshals it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML configuration, applies env overrides and fills defaults.
func Parse(data []byte) (*Config, error) {
	// yaml.v3 leaves absent keys untouched, so a pre-set value survives only when the key is missing.
	cfg := Config{Cache: CacheConfig{DefaultExpirationMinutes: defaultCacheTTLMinutes}}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data: %w", err)
	}

	// Selectors from the process environment take precedence over the file.
	if v, ok := os.LookupEnv(EnvPublicNetwork); ok {
		cfg.Environment.Network = v
	}
	if v, ok := os.LookupEnv(EnvPublicEnvironment); ok {
		cfg.Environment.Environment = v
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

const defaultCacheTTLMinutes = 5

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.Directory.RequestTimeoutMillis <= 0 {
		cfg.Directory.RequestTimeoutMillis = 10000 // 10 seconds
	}
	if cfg.Directory.RetryAttempts <= 0 {
		cfg.Directory.RetryAttempts = 3
	}
	if cfg.Directory.RefreshIntervalSeconds < 0 {
		cfg.Directory.RefreshIntervalSeconds = 0 // no periodic refresh
	}

	if cfg.SDK.ConnectionTimeoutSeconds <= 0 {
		cfg.SDK.ConnectionTimeoutSeconds = 10
	}

	if cfg.RpcClient.RateLimit <= 0 {
		cfg.RpcClient.RateLimit = 5
	}
	if cfg.RpcClient.BurstLimit <= 0 {
		cfg.RpcClient.BurstLimit = 1
	}

	if cfg.Cache.DefaultExpirationMinutes < 0 {
		cfg.Cache.DefaultExpirationMinutes = defaultCacheTTLMinutes
	}
	if cfg.Cache.CleanupIntervalMinutes <= 0 {
		cfg.Cache.CleanupIntervalMinutes = 10
	}
}
