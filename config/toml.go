package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"text/template"

	tmos "github.com/nimiq-community/go-nimiq-rpc/libs/os"
)

// defaultDirPerm is the default permissions used when creating directories.
const defaultDirPerm = 0700

var configTemplate *template.Template

func init() {
	var err error
	tmpl := template.New("configFileTemplate").Funcs(template.FuncMap{
		"StringsJoin": strings.Join,
	})
	if configTemplate, err = tmpl.Parse(defaultConfigTemplate); err != nil {
		panic(err)
	}
}

/****** these are for production settings ***********/

// EnsureRoot creates the root and config directories if they don't exist,
// and writes a default config file when there is none.
func EnsureRoot(rootDir string) error {
	if err := tmos.EnsureDir(rootDir, defaultDirPerm); err != nil {
		return err
	}
	if err := tmos.EnsureDir(filepath.Join(rootDir, defaultConfigDir), defaultDirPerm); err != nil {
		return err
	}
	return writeDefaultConfigFileIfNone(rootDir)
}

// WriteConfigFile renders config using the template and writes it to
// configFilePath. This function is called by cmd/nimiq-rpc/commands/init.go
func WriteConfigFile(rootDir string, config *Config) error {
	return config.WriteToTemplate(filepath.Join(rootDir, defaultConfigFilePath))
}

// WriteToTemplate writes the config to the exact file specified by
// the path, in the default toml template and does not mangle the path
// or filename at all.
func (cfg *Config) WriteToTemplate(path string) error {
	var buffer bytes.Buffer

	if err := configTemplate.Execute(&buffer, cfg); err != nil {
		return err
	}

	// the file may hold credentials
	return tmos.WriteFile(path, buffer.Bytes(), 0600)
}

func writeDefaultConfigFileIfNone(rootDir string) error {
	configFilePath := filepath.Join(rootDir, defaultConfigFilePath)
	if !tmos.FileExists(configFilePath) {
		return WriteConfigFile(rootDir, DefaultConfig())
	}
	return nil
}

// Note: any changes to the comments/variables/mapstructure
// must be reflected in the appropriate struct in config/config.go
const defaultConfigTemplate = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml

# NOTE: Every option can also be set through the environment, prefixed
# with NIMIQ and with dots and dashes replaced by underscores
# (e.g. NIMIQ_RPC_REMOTE). Variables in "$HOME/.nimiq-rpc/.env" are loaded
# before the environment is read, which is the preferred place for the
# RPC password.

#######################################################################
###                   Main Base Config Options                      ###
#######################################################################

# Output level for logging: debug | info | warn | error
log-level = "{{ .BaseConfig.LogLevel }}"

# Output format: 'plain' (colored text), 'text' or 'json'
log-format = "{{ .BaseConfig.LogFormat }}"

# Format of command results: 'json' or 'yaml'
output = "{{ .BaseConfig.Output }}"

#######################################################################
###                 Node Connection Configuration                   ###
#######################################################################
[rpc]

# URL of the node's JSON-RPC endpoint
remote = "{{ .RPC.Remote }}"

# Basic auth credentials, if the node requires them
username = "{{ .RPC.Username }}"
password = "{{ .RPC.Password }}"

# Timeout of a single request, including reading the response body.
# 0 - no timeout.
timeout = "{{ .RPC.Timeout }}"

# Maximum number of requests per second sent to the node.
# 0 - unlimited.
rate-limit = {{ .RPC.RateLimit }}

# Number of requests that may exceed rate-limit in a burst.
rate-burst = {{ .RPC.RateBurst }}

# Number of blocks fetched by hash that are kept in memory.
# 0 - no cache.
block-cache-size = {{ .RPC.BlockCacheSize }}

# Interval between two polls of the chain head by the watch command
poll-interval = "{{ .RPC.PollInterval }}"

#######################################################################
###                 Instrumentation Configuration                   ###
#######################################################################
[instrumentation]

# When true, Prometheus metrics are served under /metrics on
# PrometheusListenAddr.
prometheus = {{ .Instrumentation.Prometheus }}

# Address to listen for Prometheus collector(s) connections
prometheus-listen-addr = "{{ .Instrumentation.PrometheusListenAddr }}"

# Maximum number of simultaneous connections to the metrics server.
# 0 - unlimited.
max-open-connections = {{ .Instrumentation.MaxOpenConnections }}

# Instrumentation namespace
namespace = "{{ .Instrumentation.Namespace }}"
`
