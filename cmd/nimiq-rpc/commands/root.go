package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nimiq-community/go-nimiq-rpc/config"
	"github.com/nimiq-community/go-nimiq-rpc/libs/cli"
	"github.com/nimiq-community/go-nimiq-rpc/libs/log"
	rpchttp "github.com/nimiq-community/go-nimiq-rpc/rpc/client/http"
	jsonrpcclient "github.com/nimiq-community/go-nimiq-rpc/rpc/jsonrpc/client"
)

// EnvPrefix prefixes every environment variable read by the CLI.
const EnvPrefix = "NIMIQ"

// flags that live under the [rpc] section of the config file
var rpcFlags = map[string]string{
	"remote":   "rpc.remote",
	"username": "rpc.username",
	"password": "rpc.password",
}

// ParseConfig retrieves the default environment configuration and
// validates it.
func ParseConfig(conf *config.Config) (*config.Config, error) {
	if err := viper.Unmarshal(conf); err != nil {
		return nil, err
	}

	conf.SetRoot(conf.RootDir)

	if err := conf.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("error in config file: %w", err)
	}
	return conf, nil
}

// RootCommand constructs the root command-line entry point for the client.
func RootCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nimiq-rpc",
		Short: "Command line client for the Nimiq node JSON-RPC API",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == VersionCmd.Name() {
				return nil
			}

			if err := cli.BindFlagsLoadViper(cmd, args); err != nil {
				return err
			}
			for flag, key := range rpcFlags {
				if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
					return err
				}
			}

			pconf, err := ParseConfig(conf)
			if err != nil {
				return err
			}
			*conf = *pconf

			return log.OverrideWithNewLogger(logger, conf.LogFormat, conf.LogLevel)
		},
	}
	cmd.PersistentFlags().StringP(cli.HomeFlag, "", os.ExpandEnv(filepath.Join("$HOME", config.DefaultHomeDir)), "directory for config and data")
	cmd.PersistentFlags().Bool(cli.TraceFlag, false, "print out full stack trace on errors")
	cmd.PersistentFlags().String("log-level", conf.LogLevel, "log level")
	cmd.PersistentFlags().String("log-format", conf.LogFormat, "log format (plain|text|json)")
	cmd.PersistentFlags().StringP(cli.OutputFlag, "o", conf.Output, "output format (json|yaml)")
	cmd.PersistentFlags().String("remote", conf.RPC.Remote, "URL of the node's JSON-RPC endpoint")
	cmd.PersistentFlags().String("username", conf.RPC.Username, "basic auth username")
	cmd.PersistentFlags().String("password", conf.RPC.Password, "basic auth password")
	cobra.OnInitialize(func() { cli.InitEnv(EnvPrefix) })
	return cmd
}

// newClient builds the node client described by conf.
func newClient(conf *config.Config, logger log.Logger, opts ...rpchttp.Option) (*rpchttp.HTTP, error) {
	opts = append([]rpchttp.Option{
		rpchttp.WithLogger(logger),
		rpchttp.WithRateLimit(conf.RPC.RateLimit, conf.RPC.RateBurst),
		rpchttp.WithBlockCache(conf.RPC.BlockCacheSize),
	}, opts...)

	if conf.RPC.Username != "" || conf.RPC.Password != "" {
		return rpchttp.NewWithCredentials(conf.RPC.Remote, conf.RPC.Username, conf.RPC.Password, opts...)
	}
	return rpchttp.New(conf.RPC.Remote, opts...)
}

// newCaller builds a raw JSON-RPC client for methods without a typed wrapper.
// Credentials in the remote URL apply unless the config sets its own.
func newCaller(conf *config.Config, logger log.Logger) (*jsonrpcclient.Client, error) {
	opts := []jsonrpcclient.Option{
		jsonrpcclient.WithLogger(logger),
		jsonrpcclient.WithRateLimit(conf.RPC.RateLimit, conf.RPC.RateBurst),
	}
	if conf.RPC.Username != "" || conf.RPC.Password != "" {
		opts = append(opts, jsonrpcclient.WithCredentials(conf.RPC.Username, conf.RPC.Password))
	}
	return jsonrpcclient.New(conf.RPC.Remote, opts...)
}

// requestContext bounds a single command's requests by the configured
// timeout.
func requestContext(ctx context.Context, conf *config.Config) (context.Context, context.CancelFunc) {
	if conf.RPC.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, conf.RPC.Timeout)
}
