package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nimiq-community/go-nimiq-rpc/config"
	"github.com/nimiq-community/go-nimiq-rpc/libs/log"
	"github.com/nimiq-community/go-nimiq-rpc/rpc/coretypes"
)

// MakeLogCommand returns the command that sets the node's log level.
func MakeLogCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "log <tag> <level>",
		Short: "Set the log level of the node for a tag, or '*' for all tags",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := coretypes.LogLevel(args[1])
			if !level.Valid() {
				return fmt.Errorf("unknown log level %q", args[1])
			}

			c, err := newClient(conf, logger)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd.Context(), conf)
			defer cancel()

			ok, err := c.Log(ctx, args[0], level)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), conf.Output, ok)
		},
	}
}

// Mempool is the output of the mempool command.
type Mempool struct {
	MinFeePerByte int      `json:"minFeePerByte"`
	Transactions  []string `json:"transactions"`
}

// MakeMempoolCommand returns the command that shows the node's mempool.
func MakeMempoolCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	var minFee int

	cmd := &cobra.Command{
		Use:   "mempool",
		Short: "Show the transactions in the node's mempool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(conf, logger)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd.Context(), conf)
			defer cancel()

			var out Mempool
			if cmd.Flags().Changed("min-fee") {
				out.MinFeePerByte, err = c.SetMinFeePerByte(ctx, minFee)
			} else {
				out.MinFeePerByte, err = c.MinFeePerByte(ctx)
			}
			if err != nil {
				return err
			}
			if out.Transactions, err = c.MempoolContent(ctx); err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), conf.Output, out)
		},
	}
	cmd.Flags().IntVar(&minFee, "min-fee", 0, "set the minimum fee per byte accepted into the mempool")
	return cmd
}
