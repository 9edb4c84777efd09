package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/nimiq-community/go-nimiq-rpc/config"
	"github.com/nimiq-community/go-nimiq-rpc/libs/log"
	"github.com/nimiq-community/go-nimiq-rpc/rpc/coretypes"
	"github.com/nimiq-community/go-nimiq-rpc/types"
)

// MiningStatus is the output of the mining command.
type MiningStatus struct {
	Mining               bool                          `json:"mining"`
	Hashrate             float64                       `json:"hashrate"`
	Threads              int                           `json:"minerThreads"`
	MinerAddress         string                        `json:"minerAddress"`
	PoolConnectionState  coretypes.PoolConnectionState `json:"poolConnectionState"`
	PoolConfirmedBalance types.Luna                    `json:"poolConfirmedBalance"`
}

// MakeMiningCommand returns the command that shows and controls the miner.
func MakeMiningCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	var (
		enable, disable bool
		threads         int
		work, template  bool
	)

	cmd := &cobra.Command{
		Use:   "mining",
		Short: "Show or control the node's miner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if enable && disable {
				return errors.New("--enable and --disable are mutually exclusive")
			}

			c, err := newClient(conf, logger)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd.Context(), conf)
			defer cancel()

			switch {
			case work:
				w, err := c.GetWork(ctx)
				if err != nil {
					return err
				}
				return printResult(cmd.OutOrStdout(), conf.Output, w)
			case template:
				tmpl, err := c.GetBlockTemplate(ctx)
				if err != nil {
					return err
				}
				return printResult(cmd.OutOrStdout(), conf.Output, tmpl)
			}

			if enable || disable {
				if _, err := c.SetMining(ctx, enable); err != nil {
					return err
				}
			}
			if threads > 0 {
				if _, err := c.SetMinerThreads(ctx, threads); err != nil {
					return err
				}
			}

			var status MiningStatus
			if status.Mining, err = c.Mining(ctx); err != nil {
				return err
			}
			if status.Hashrate, err = c.Hashrate(ctx); err != nil {
				return err
			}
			if status.Threads, err = c.MinerThreads(ctx); err != nil {
				return err
			}
			if status.MinerAddress, err = c.MinerAddress(ctx); err != nil {
				return err
			}
			if status.PoolConnectionState, err = c.PoolConnectionState(ctx); err != nil {
				return err
			}
			if status.PoolConfirmedBalance, err = c.PoolConfirmedBalance(ctx); err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), conf.Output, status)
		},
	}
	cmd.Flags().BoolVar(&enable, "enable", false, "start mining")
	cmd.Flags().BoolVar(&disable, "disable", false, "stop mining")
	cmd.Flags().IntVar(&threads, "threads", 0, "set the number of miner threads")
	cmd.Flags().BoolVar(&work, "work", false, "print the current mining work instead")
	cmd.Flags().BoolVar(&template, "template", false, "print the current block template instead")
	return cmd
}
