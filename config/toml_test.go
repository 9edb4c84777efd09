package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ensureFiles(t *testing.T, rootDir string, files ...string) {
	for _, f := range files {
		p := rootify(f, rootDir)
		_, err := os.Stat(p)
		assert.NoError(t, err, p)
	}
}

func TestEnsureRoot(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, EnsureRoot(tmpDir))

	data, err := os.ReadFile(filepath.Join(tmpDir, defaultConfigFilePath))
	require.NoError(t, err)
	checkConfig(t, string(data))

	ensureFiles(t, tmpDir, "config")

	// an existing file is left alone
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, defaultConfigFilePath), []byte("# mine\n"), 0600))
	require.NoError(t, EnsureRoot(tmpDir))
	data, err = os.ReadFile(filepath.Join(tmpDir, defaultConfigFilePath))
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(data))
}

func TestWriteConfigFileRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureRoot(tmpDir))

	cfg := DefaultConfig()
	cfg.RPC.Remote = "https://node.example.com:8648"
	cfg.RPC.Username = "alice"
	cfg.RPC.RateLimit = 2.5
	cfg.RPC.Timeout = 30 * time.Second
	cfg.Instrumentation.Prometheus = true
	require.NoError(t, WriteConfigFile(tmpDir, cfg))

	var rendered struct {
		LogLevel  string `toml:"log-level"`
		LogFormat string `toml:"log-format"`
		Output    string `toml:"output"`
		RPC       struct {
			Remote         string  `toml:"remote"`
			Username       string  `toml:"username"`
			Password       string  `toml:"password"`
			Timeout        string  `toml:"timeout"`
			RateLimit      float64 `toml:"rate-limit"`
			RateBurst      int     `toml:"rate-burst"`
			BlockCacheSize int     `toml:"block-cache-size"`
			PollInterval   string  `toml:"poll-interval"`
		} `toml:"rpc"`
		Instrumentation struct {
			Prometheus bool   `toml:"prometheus"`
			ListenAddr string `toml:"prometheus-listen-addr"`
			MaxConns   int    `toml:"max-open-connections"`
			Namespace  string `toml:"namespace"`
		} `toml:"instrumentation"`
	}
	md, err := toml.DecodeFile(filepath.Join(tmpDir, defaultConfigFilePath), &rendered)
	require.NoError(t, err)
	assert.Empty(t, md.Undecoded(), "template has keys without a struct field")

	assert.Equal(t, "https://node.example.com:8648", rendered.RPC.Remote)
	assert.Equal(t, "alice", rendered.RPC.Username)
	assert.Equal(t, "30s", rendered.RPC.Timeout)
	assert.Equal(t, 2.5, rendered.RPC.RateLimit)
	assert.Equal(t, cfg.RPC.BlockCacheSize, rendered.RPC.BlockCacheSize)
	assert.True(t, rendered.Instrumentation.Prometheus)
	assert.Equal(t, "nimiq_rpc", rendered.Instrumentation.Namespace)
	assert.Equal(t, 3, rendered.Instrumentation.MaxConns)

	info, err := os.Stat(filepath.Join(tmpDir, defaultConfigFilePath))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func checkConfig(t *testing.T, configFile string) {
	t.Helper()
	// list of words we expect in the config
	var elems = []string{
		"log-level",
		"log-format",
		"output",
		"[rpc]",
		"remote",
		"password",
		"rate-limit",
		"block-cache-size",
		"poll-interval",
		"[instrumentation]",
		"prometheus-listen-addr",
	}
	for _, e := range elems {
		assert.Contains(t, configFile, e)
	}

	_, err := toml.Decode(configFile, new(map[string]interface{}))
	require.NoError(t, err, "rendered config is not valid TOML")
}
