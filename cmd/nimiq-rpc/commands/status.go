package commands

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nimiq-community/go-nimiq-rpc/config"
	"github.com/nimiq-community/go-nimiq-rpc/libs/log"
	"github.com/nimiq-community/go-nimiq-rpc/rpc/coretypes"
)

// NodeStatus summarizes the state of a node.
type NodeStatus struct {
	Remote    string                   `json:"remote"`
	Consensus coretypes.ConsensusState `json:"consensus"`
	Height    uint32                   `json:"blockNumber"`
	Syncing   *coretypes.SyncStatus    `json:"syncing"`
	Peers     int                      `json:"peerCount"`
	Mining    bool                     `json:"mining"`
	Hashrate  float64                  `json:"hashrate"`
}

// MakeStatusCommand returns the command that queries the node's status
// with concurrent requests.
func MakeStatusCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show consensus, sync, peer and mining state of the node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(conf, logger)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd.Context(), conf)
			defer cancel()

			status := NodeStatus{Remote: c.Remote()}
			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() (err error) {
				status.Consensus, err = c.Consensus(ctx)
				return err
			})
			g.Go(func() (err error) {
				status.Height, err = c.BlockNumber(ctx)
				return err
			})
			g.Go(func() (err error) {
				status.Syncing, err = c.Syncing(ctx)
				return err
			})
			g.Go(func() (err error) {
				status.Peers, err = c.PeerCount(ctx)
				return err
			})
			g.Go(func() (err error) {
				status.Mining, err = c.Mining(ctx)
				return err
			})
			g.Go(func() (err error) {
				status.Hashrate, err = c.Hashrate(ctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), conf.Output, status)
		},
	}
}
