package commands

import (
	"github.com/spf13/cobra"

	"github.com/nimiq-community/go-nimiq-rpc/config"
	"github.com/nimiq-community/go-nimiq-rpc/libs/log"
	"github.com/nimiq-community/go-nimiq-rpc/rpc/coretypes"
	"github.com/nimiq-community/go-nimiq-rpc/types"
)

// MakeTxCommand returns the command that looks up a transaction.
func MakeTxCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	var (
		block string
		index int
	)

	cmd := &cobra.Command{
		Use:   "tx [hash]",
		Short: "Show a transaction by hash, or by block and index",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(conf, logger)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd.Context(), conf)
			defer cancel()

			var tx *coretypes.Transaction
			switch {
			case len(args) == 1:
				tx, err = c.GetTransactionByHash(ctx, args[0])
			case block != "":
				ref, perr := parseBlockRef(block)
				if perr != nil {
					return perr
				}
				if ref.hash != "" {
					tx, err = c.GetTransactionByBlockHashAndIndex(ctx, ref.hash, index)
				} else {
					tx, err = c.GetTransactionByBlockNumberAndIndex(ctx, ref.height, index)
				}
			default:
				return cmd.Usage()
			}
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), conf.Output, tx)
		},
	}
	cmd.Flags().StringVar(&block, "block", "", "height or hash of the block holding the transaction")
	cmd.Flags().IntVar(&index, "index", 0, "index of the transaction in the block")
	return cmd
}

// MakeReceiptCommand returns the command that shows a transaction receipt.
func MakeReceiptCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "receipt <hash>",
		Short: "Show the receipt of a mined transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(conf, logger)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd.Context(), conf)
			defer cancel()

			receipt, err := c.GetTransactionReceipt(ctx, args[0])
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), conf.Output, receipt)
		},
	}
}

// MakeTxsCommand returns the command that lists the transactions of an
// address.
func MakeTxsCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "txs <address>",
		Short: "List the transactions sent from or to an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := types.ParseAddress(args[0])
			if err != nil {
				return err
			}
			c, err := newClient(conf, logger)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd.Context(), conf)
			defer cancel()

			txs, err := c.GetTransactionsByAddress(ctx, addr.String(), limit)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), conf.Output, txs)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of transactions (0 - node default)")
	return cmd
}

// MakeSendCommand returns the command that sends a transaction from an
// account of the node's wallet.
func MakeSendCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	var (
		from, to, value, data string
		fee                   uint64
		raw                   bool
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send NIM from an account held by the node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := types.ParseNIM(value)
			if err != nil {
				return err
			}
			tx := coretypes.OutgoingTransaction{
				From:  from,
				To:    to,
				Value: amount,
				Fee:   types.Luna(fee),
				Data:  data,
			}
			if err := tx.ValidateBasic(); err != nil {
				return err
			}

			c, err := newClient(conf, logger)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd.Context(), conf)
			defer cancel()

			if raw {
				signed, err := c.CreateRawTransaction(ctx, tx)
				if err != nil {
					return err
				}
				return printResult(cmd.OutOrStdout(), conf.Output, signed)
			}

			hash, err := c.SendTransaction(ctx, tx)
			if err != nil {
				return err
			}
			logger.Info("sent transaction", "hash", hash, "value", amount)
			return printResult(cmd.OutOrStdout(), conf.Output, hash)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "sender address, held by the node's wallet")
	cmd.Flags().StringVar(&to, "to", "", "recipient address")
	cmd.Flags().StringVar(&value, "value", "", "amount in NIM, e.g. 1.5")
	cmd.Flags().Uint64Var(&fee, "fee", 0, "fee in luna")
	cmd.Flags().StringVar(&data, "data", "", "hex encoded extra data")
	cmd.Flags().BoolVar(&raw, "raw", false, "only sign and print the serialized transaction")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

// MakeSendRawCommand returns the command that broadcasts a signed
// transaction.
func MakeSendRawCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "send-raw <hex>",
		Short: "Broadcast a serialized, signed transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(conf, logger)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd.Context(), conf)
			defer cancel()

			hash, err := c.SendRawTransaction(ctx, args[0])
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), conf.Output, hash)
		},
	}
}
