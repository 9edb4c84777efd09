package client

import (
	"context"
	"fmt"
	"time"
)

// BlockTime is the target interval between two Nimiq blocks.
const BlockTime = time.Minute

// MaxWaitBlocks is the largest gap DefaultWaitStrategy is willing to wait for.
const MaxWaitBlocks = 10

// Waiter is called with the number of blocks still missing and either
// sleeps until the next poll or returns an error to give up. delta is zero or
// negative once the target height has been reached.
type Waiter func(ctx context.Context, delta int64) error

// DefaultWaitStrategy sleeps for the expected time until the next block and
// gives up when more than MaxWaitBlocks blocks are missing.
func DefaultWaitStrategy(ctx context.Context, delta int64) error {
	if delta > MaxWaitBlocks {
		return fmt.Errorf("%d blocks behind the target height, not waiting", delta)
	}
	if delta <= 0 {
		return nil
	}

	// the block in progress is on average half way done
	delay := time.Duration(delta-1)*BlockTime + BlockTime/2
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WaitForHeight polls BlockNumber until the node's head reaches height h.
// A nil waiter selects DefaultWaitStrategy.
func WaitForHeight(ctx context.Context, c BlockchainClient, h uint32, waiter Waiter) error {
	if waiter == nil {
		waiter = DefaultWaitStrategy
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		head, err := c.BlockNumber(ctx)
		if err != nil {
			return err
		}
		delta := int64(h) - int64(head)
		if err := waiter(ctx, delta); err != nil {
			return err
		}
		if delta <= 0 {
			return nil
		}
	}
}
