package configloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv(EnvPublicNetwork, "")
	os.Unsetenv(EnvPublicNetwork)
	t.Setenv(EnvPublicEnvironment, "")
	os.Unsetenv(EnvPublicEnvironment)

	cfg, err := Parse([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, int64(10000), cfg.Directory.RequestTimeoutMillis)
	assert.Equal(t, 3, cfg.Directory.RetryAttempts)
	assert.Equal(t, 0, cfg.Directory.RefreshIntervalSeconds)
	assert.Equal(t, 10, cfg.SDK.ConnectionTimeoutSeconds)
	assert.False(t, cfg.SDK.DiscardStaleResults)
	assert.Equal(t, 5, cfg.RpcClient.RateLimit)
	assert.Equal(t, 1, cfg.RpcClient.BurstLimit)
	assert.Equal(t, 5, cfg.Cache.DefaultExpirationMinutes)
	assert.Equal(t, 10, cfg.Cache.CleanupIntervalMinutes)
	assert.Empty(t, cfg.Environment.Network)
	assert.Empty(t, cfg.Environment.Environment)
}

func TestParse_Values(t *testing.T) {
	t.Setenv(EnvPublicNetwork, "")
	os.Unsetenv(EnvPublicNetwork)
	t.Setenv(EnvPublicEnvironment, "")
	os.Unsetenv(EnvPublicEnvironment)

	data := []byte(`
server:
  port: "9000"
  allowedOrigins: ["https://app.example"]
logging:
  level: debug
environment:
  network: mainnet
  environment: staging
directory:
  chainsFile: data/chains.json
  refreshIntervalSeconds: -5
sdk:
  discardStaleResults: true
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"https://app.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "mainnet", cfg.Environment.Network)
	assert.Equal(t, "staging", cfg.Environment.Environment)
	assert.Equal(t, "data/chains.json", cfg.Directory.ChainsFile)
	assert.Equal(t, 0, cfg.Directory.RefreshIntervalSeconds)
	assert.True(t, cfg.SDK.DiscardStaleResults)
}

func TestParse_EnvOverridesSelectors(t *testing.T) {
	t.Setenv(EnvPublicNetwork, "testnet")
	t.Setenv(EnvPublicEnvironment, "not-an-environment")

	cfg, err := Parse([]byte("environment:\n  network: mainnet\n  environment: production\n"))
	require.NoError(t, err)

	assert.Equal(t, "testnet", cfg.Environment.Network)
	// invalid values pass through untouched; they are validated later
	assert.Equal(t, "not-an-environment", cfg.Environment.Environment)
}

func TestParse_EmptyEnvMeansAbsent(t *testing.T) {
	t.Setenv(EnvPublicNetwork, "")

	cfg, err := Parse([]byte("environment:\n  network: mainnet\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Environment.Network)
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvPublicNetwork, "")
	os.Unsetenv(EnvPublicNetwork)
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"1234\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1234", cfg.Server.Port)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorContains(t, err, "failed to read config file")

	bad := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("server: [\n"), 0o600))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to unmarshal")
}

func TestParse_CacheTTL(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want int
	}{
		{name: "absent key", yaml: "cache:\n  cleanupIntervalMinutes: 1\n", want: 5},
		{name: "explicit zero disables cache", yaml: "cache:\n  defaultExpirationMinutes: 0\n", want: 0},
		{name: "negative", yaml: "cache:\n  defaultExpirationMinutes: -3\n", want: 5},
		{name: "set", yaml: "cache:\n  defaultExpirationMinutes: 30\n", want: 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Cache.DefaultExpirationMinutes)
		})
	}
}
