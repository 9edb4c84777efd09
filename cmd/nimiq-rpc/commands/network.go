package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nimiq-community/go-nimiq-rpc/config"
	"github.com/nimiq-community/go-nimiq-rpc/libs/log"
	"github.com/nimiq-community/go-nimiq-rpc/rpc/coretypes"
)

// MakePeersCommand returns the command that lists the node's peers.
func MakePeersCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "peers",
		Short: "List the peers known to the node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(conf, logger)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd.Context(), conf)
			defer cancel()

			peers, err := c.PeerList(ctx)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), conf.Output, peers)
		},
	}
}

// MakePeerCommand returns the command that shows or changes the state of a
// peer.
func MakePeerCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	var set string

	cmd := &cobra.Command{
		Use:   "peer <address>",
		Short: "Show the state of a peer, or connect, disconnect, ban, unban or fail it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(conf, logger)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd.Context(), conf)
			defer cancel()

			var state *coretypes.PeerState
			if set != "" {
				command := coretypes.PeerStateCommand(set)
				if !command.Valid() {
					return fmt.Errorf("unknown peer command %q", set)
				}
				state, err = c.SetPeerState(ctx, args[0], command)
			} else {
				state, err = c.PeerState(ctx, args[0])
			}
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), conf.Output, state)
		},
	}
	cmd.Flags().StringVar(&set, "set", "", "command to apply (connect|disconnect|ban|unban|fail)")
	return cmd
}
