package commands

import (
	"context"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nimiq-community/go-nimiq-rpc/config"
	"github.com/nimiq-community/go-nimiq-rpc/libs/log"
	rpchttp "github.com/nimiq-community/go-nimiq-rpc/rpc/client/http"
	"github.com/nimiq-community/go-nimiq-rpc/rpc/coretypes"
)

const hashLength = 32

// blockRef is either a block height or a block hash.
type blockRef struct {
	height uint32
	hash   string
}

func parseBlockRef(s string) (blockRef, error) {
	if h, err := strconv.ParseUint(s, 10, 32); err == nil {
		return blockRef{height: uint32(h)}, nil
	}
	if bz, err := hex.DecodeString(s); err == nil && len(bz) == hashLength {
		return blockRef{hash: s}, nil
	}
	return blockRef{}, fmt.Errorf("%q is neither a block height nor a block hash", s)
}

// MakeBlockCommand returns the command that fetches blocks by height or hash.
// Several blocks are fetched in a single batch request.
func MakeBlockCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "block <height|hash>...",
		Short: "Show blocks by height or hash",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refs := make([]blockRef, 0, len(args))
			for _, arg := range args {
				ref, err := parseBlockRef(arg)
				if err != nil {
					return err
				}
				refs = append(refs, ref)
			}

			c, err := newClient(conf, logger)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd.Context(), conf)
			defer cancel()

			if len(refs) == 1 {
				block, err := fetchBlock(ctx, c, refs[0], full)
				if err != nil {
					return err
				}
				return printResult(cmd.OutOrStdout(), conf.Output, block)
			}

			batch := c.NewBatch()
			blocks := make([]*coretypes.Block, 0, len(refs))
			for _, ref := range refs {
				var block *coretypes.Block
				if ref.hash != "" {
					block, err = batch.GetBlockByHash(ctx, ref.hash, full)
				} else {
					block, err = batch.GetBlockByNumber(ctx, ref.height, full)
				}
				if err != nil {
					return err
				}
				blocks = append(blocks, block)
			}
			if _, err := batch.Send(ctx); err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), conf.Output, blocks)
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "include full transaction objects")
	return cmd
}

func fetchBlock(ctx context.Context, c *rpchttp.HTTP, ref blockRef, full bool) (*coretypes.Block, error) {
	if ref.hash != "" {
		return c.GetBlockByHash(ctx, ref.hash, full)
	}
	return c.GetBlockByNumber(ctx, ref.height, full)
}

// MakeBlockNumberCommand returns the command that prints the chain height.
func MakeBlockNumberCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "block-number",
		Short: "Show the height of the node's chain head",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(conf, logger)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd.Context(), conf)
			defer cancel()

			height, err := c.BlockNumber(ctx)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), conf.Output, height)
		},
	}
}
