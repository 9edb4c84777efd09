package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nimiq-community/go-nimiq-rpc/version"
)

var verbose bool

// VersionCmd ...
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Version)
			return err
		}
		values, err := json.MarshalIndent(struct {
			Client  string `json:"client"`
			NodeAPI string `json:"node_api"`
			JSONRPC string `json:"jsonrpc"`
		}{
			Client:  version.Version,
			NodeAPI: version.NodeAPIVersion,
			JSONRPC: version.JSONRPCVersion,
		}, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(values))
		return err
	},
}

func init() {
	VersionCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show API versions")
}
