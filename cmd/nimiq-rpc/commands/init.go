package commands

import (
	"github.com/spf13/cobra"

	"github.com/nimiq-community/go-nimiq-rpc/config"
	"github.com/nimiq-community/go-nimiq-rpc/libs/log"
	tmos "github.com/nimiq-community/go-nimiq-rpc/libs/os"
)

// MakeInitCommand returns the command that writes a config file into the
// home directory.
func MakeInitCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings to the home directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := conf.ConfigFile()
			if tmos.FileExists(path) && !force {
				logger.Info("found config file", "path", path)
				return nil
			}

			if err := config.EnsureRoot(conf.RootDir); err != nil {
				return err
			}
			if err := config.WriteConfigFile(conf.RootDir, conf); err != nil {
				return err
			}
			logger.Info("generated config file", "path", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
