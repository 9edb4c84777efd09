package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	"github.com/nimiq-community/go-nimiq-rpc/libs/log"
)

const (
	// OutputJSON prints command results as indented JSON.
	OutputJSON = "json"
	// OutputYAML prints command results as YAML.
	OutputYAML = "yaml"
)

// NOTE: Most of the structs & relevant comments + the
// default configuration options were used to manually
// generate the config.toml. Please reflect any changes
// made here in the defaultConfigTemplate constant in
// config/toml.go
// NOTE: libs/cli must know to look in the config dir!
var (
	DefaultHomeDir   = ".nimiq-rpc"
	defaultConfigDir = "config"

	defaultConfigFileName = "config.toml"
	defaultEnvFileName    = ".env"

	defaultConfigFilePath = filepath.Join(defaultConfigDir, defaultConfigFileName)
)

// Config defines the top level configuration for the Nimiq RPC client.
type Config struct {
	// Top level options use an anonymous struct
	BaseConfig `mapstructure:",squash"`

	// Options for the node connection
	RPC *RPCConfig `mapstructure:"rpc"`

	// Options for metrics
	Instrumentation *InstrumentationConfig `mapstructure:"instrumentation"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseConfig:      DefaultBaseConfig(),
		RPC:             DefaultRPCConfig(),
		Instrumentation: DefaultInstrumentationConfig(),
	}
}

// TestConfig returns a configuration that can be used for testing
func TestConfig() *Config {
	return &Config{
		BaseConfig:      TestBaseConfig(),
		RPC:             TestRPCConfig(),
		Instrumentation: TestInstrumentationConfig(),
	}
}

// SetRoot sets the RootDir for all Config structs
func (cfg *Config) SetRoot(root string) *Config {
	cfg.BaseConfig.RootDir = root
	return cfg
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *Config) ValidateBasic() error {
	if err := cfg.BaseConfig.ValidateBasic(); err != nil {
		return err
	}
	if err := cfg.RPC.ValidateBasic(); err != nil {
		return fmt.Errorf("error in [rpc] section: %w", err)
	}
	if err := cfg.Instrumentation.ValidateBasic(); err != nil {
		return fmt.Errorf("error in [instrumentation] section: %w", err)
	}
	return nil
}

//-----------------------------------------------------------------------------
// BaseConfig

// BaseConfig defines the base configuration of the client.
type BaseConfig struct {
	// The root directory for all data.
	// This should be set in viper so it can unmarshal into this struct
	RootDir string `mapstructure:"home"`

	// Output level for logging
	LogLevel string `mapstructure:"log-level"`

	// Output format: 'plain' (colored text) or 'json'
	LogFormat string `mapstructure:"log-format"`

	// Format of command results: 'json' or 'yaml'
	Output string `mapstructure:"output"`
}

// DefaultBaseConfig returns a default base configuration.
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		LogLevel:  log.LogLevelInfo,
		LogFormat: log.LogFormatPlain,
		Output:    OutputJSON,
	}
}

// TestBaseConfig returns a base configuration for testing.
func TestBaseConfig() BaseConfig {
	cfg := DefaultBaseConfig()
	cfg.LogLevel = log.LogLevelDebug
	return cfg
}

// ConfigFile returns the full path to the config.toml file
func (cfg BaseConfig) ConfigFile() string {
	return rootify(defaultConfigFilePath, cfg.RootDir)
}

// EnvFile returns the full path to the .env file holding secrets such as
// the RPC password.
func (cfg BaseConfig) EnvFile() string {
	return rootify(defaultEnvFileName, cfg.RootDir)
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg BaseConfig) ValidateBasic() error {
	switch cfg.LogFormat {
	case log.LogFormatPlain, log.LogFormatText, log.LogFormatJSON:
	default:
		return errors.New("unknown log-format (must be 'plain', 'text' or 'json')")
	}
	switch cfg.LogLevel {
	case log.LogLevelDebug, log.LogLevelInfo, log.LogLevelWarn, log.LogLevelError:
	default:
		return fmt.Errorf("unknown log-level %q", cfg.LogLevel)
	}
	switch cfg.Output {
	case OutputJSON, OutputYAML:
	default:
		return errors.New("unknown output (must be 'json' or 'yaml')")
	}
	return nil
}

//-----------------------------------------------------------------------------
// RPCConfig

// RPCConfig defines how the client reaches the Nimiq node.
type RPCConfig struct {
	// URL of the node's JSON-RPC endpoint
	Remote string `mapstructure:"remote"`

	// Basic auth credentials, if the node requires them
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	// Timeout of a single request, including reading the response body.
	// 0 - no timeout.
	Timeout time.Duration `mapstructure:"timeout"`

	// Maximum number of requests per second sent to the node.
	// 0 - unlimited.
	RateLimit float64 `mapstructure:"rate-limit"`

	// Number of requests that may exceed rate-limit in a burst.
	RateBurst int `mapstructure:"rate-burst"`

	// Number of blocks fetched by hash that are kept in memory.
	// 0 - no cache.
	BlockCacheSize int `mapstructure:"block-cache-size"`

	// Interval between two polls of the chain head by the watch command
	PollInterval time.Duration `mapstructure:"poll-interval"`
}

// DefaultRPCConfig returns a default configuration for the node connection.
func DefaultRPCConfig() *RPCConfig {
	return &RPCConfig{
		Remote:         "http://127.0.0.1:8648",
		Timeout:        10 * time.Second,
		RateLimit:      0,
		RateBurst:      1,
		BlockCacheSize: 128,
		PollInterval:   5 * time.Second,
	}
}

// TestRPCConfig returns a configuration for testing the node connection.
func TestRPCConfig() *RPCConfig {
	cfg := DefaultRPCConfig()
	cfg.Timeout = time.Second
	cfg.PollInterval = 10 * time.Millisecond
	return cfg
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *RPCConfig) ValidateBasic() error {
	if cfg.Remote == "" {
		return errors.New("remote can't be empty")
	}
	if _, err := url.Parse(cfg.Remote); err != nil {
		return fmt.Errorf("invalid remote: %w", err)
	}
	if cfg.Timeout < 0 {
		return errors.New("timeout can't be negative")
	}
	if cfg.RateLimit < 0 {
		return errors.New("rate-limit can't be negative")
	}
	if cfg.RateBurst < 0 {
		return errors.New("rate-burst can't be negative")
	}
	if cfg.BlockCacheSize < 0 {
		return errors.New("block-cache-size can't be negative")
	}
	if cfg.PollInterval <= 0 {
		return errors.New("poll-interval must be positive")
	}
	return nil
}

//-----------------------------------------------------------------------------
// InstrumentationConfig

// InstrumentationConfig defines the configuration for metrics reporting.
type InstrumentationConfig struct {
	// When true, Prometheus metrics are served under /metrics on
	// PrometheusListenAddr.
	Prometheus bool `mapstructure:"prometheus"`

	// Address to listen for Prometheus collector(s) connections.
	PrometheusListenAddr string `mapstructure:"prometheus-listen-addr"`

	// Maximum number of simultaneous connections to the metrics server.
	// 0 - unlimited.
	MaxOpenConnections int `mapstructure:"max-open-connections"`

	// Instrumentation namespace.
	Namespace string `mapstructure:"namespace"`
}

// DefaultInstrumentationConfig returns a default configuration for metrics
// reporting.
func DefaultInstrumentationConfig() *InstrumentationConfig {
	return &InstrumentationConfig{
		Prometheus:           false,
		PrometheusListenAddr: ":26660",
		MaxOpenConnections:   3,
		Namespace:            "nimiq_rpc",
	}
}

// TestInstrumentationConfig returns a default configuration for metrics
// reporting.
func TestInstrumentationConfig() *InstrumentationConfig {
	return DefaultInstrumentationConfig()
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *InstrumentationConfig) ValidateBasic() error {
	if cfg.Prometheus && cfg.PrometheusListenAddr == "" {
		return errors.New("prometheus-listen-addr can't be empty when prometheus is enabled")
	}
	if cfg.MaxOpenConnections < 0 {
		return errors.New("max-open-connections can't be negative")
	}
	return nil
}

//-----------------------------------------------------------------------------
// Utils

// helper function to make config creation independent of root dir
func rootify(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
