package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	tmos "github.com/nimiq-community/go-nimiq-rpc/libs/os"
)

const (
	HomeFlag   = "home"
	TraceFlag  = "trace"
	OutputFlag = "output" // used in the cli

	envFileName = ".env"
)

// InitEnv sets to use ENV variables if set.
func InitEnv(prefix string) {
	// This copies all variables like NIMIQHOME to NIMIQ_HOME,
	// so we can support both formats for the user
	prefix = strings.ToUpper(prefix)
	ps := prefix + "_"
	for _, e := range os.Environ() {
		kv := strings.SplitN(e, "=", 2)
		if len(kv) == 2 {
			k, v := kv[0], kv[1]
			if strings.HasPrefix(k, prefix) && !strings.HasPrefix(k, ps) {
				k2 := strings.Replace(k, prefix, ps, 1)
				os.Setenv(k2, v)
			}
		}
	}

	// env variables with the prefix (eg. NIMIQ_RPC_REMOTE)
	viper.SetEnvPrefix(prefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

// BindFlagsLoadViper binds all flags, loads the .env file of the home
// directory into the environment and reads the config into viper.
func BindFlagsLoadViper(cmd *cobra.Command, args []string) error {
	// cmd.Flags() includes flags from this command and all persistent flags from the parent
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	homeDir := viper.GetString(HomeFlag)
	viper.Set(HomeFlag, homeDir)

	// variables already present in the environment win over the file
	envFile := filepath.Join(homeDir, envFileName)
	if tmos.FileExists(envFile) {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	viper.SetConfigName("config")                         // name of config file (without extension)
	viper.AddConfigPath(homeDir)                          // search root directory
	viper.AddConfigPath(filepath.Join(homeDir, "config")) // search root directory /config

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		// ignore not found error, return other errors
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}

// RunWithTrace executes cmd. Errors are printed to stderr, with the stack
// trace recorded by github.com/pkg/errors when the trace flag is set.
func RunWithTrace(ctx context.Context, cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if err := cmd.ExecuteContext(ctx); err != nil {
		if viper.GetBool(TraceFlag) {
			fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		return err
	}
	return nil
}
