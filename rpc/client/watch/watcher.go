// Package watch follows the head of a Nimiq chain by polling a node.
package watch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nimiq-community/go-nimiq-rpc/libs/log"
	"github.com/nimiq-community/go-nimiq-rpc/libs/service"
	rpcclient "github.com/nimiq-community/go-nimiq-rpc/rpc/client"
	"github.com/nimiq-community/go-nimiq-rpc/rpc/coretypes"
)

const (
	DefaultPollInterval = 5 * time.Second
	DefaultMaxCatchUp   = 20
	DefaultBufferSize   = 16
)

// HeadWatcher polls the node's block number and publishes every new block,
// in height order, on the channel returned by Blocks.
//
// When the chain advances by more than the catch-up limit between two polls,
// intermediate blocks are skipped and the watcher resumes from the head.
// Blocks is closed once the watcher stops.
type HeadWatcher struct {
	service.BaseService

	client   rpcclient.BlockchainClient
	logger   log.Logger
	metrics  *Metrics
	interval time.Duration
	catchUp  uint32

	out     chan *coretypes.Block
	last    uint32
	started bool // last holds a height to continue from

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option sets an optional parameter on the HeadWatcher.
type Option func(*HeadWatcher)

// WithPollInterval sets the time between two polls of the node.
func WithPollInterval(d time.Duration) Option {
	return func(w *HeadWatcher) { w.interval = d }
}

// WithMaxCatchUp bounds the number of blocks fetched after a single poll.
func WithMaxCatchUp(n uint32) Option {
	return func(w *HeadWatcher) { w.catchUp = n }
}

// WithMetrics sets the metrics recorded by the watcher.
func WithMetrics(m *Metrics) Option {
	return func(w *HeadWatcher) { w.metrics = m }
}

// WithStartHeight makes the watcher publish blocks following height instead
// of starting at the current head. A height of 0 starts at the first block.
func WithStartHeight(height uint32) Option {
	return func(w *HeadWatcher) {
		w.last = height
		w.started = true
	}
}

// NewHeadWatcher returns a watcher for c. It does nothing until started.
func NewHeadWatcher(logger log.Logger, c rpcclient.BlockchainClient, opts ...Option) *HeadWatcher {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	w := &HeadWatcher{
		client:   c,
		logger:   logger,
		metrics:  NopMetrics(),
		interval: DefaultPollInterval,
		catchUp:  DefaultMaxCatchUp,
		out:      make(chan *coretypes.Block, DefaultBufferSize),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.catchUp == 0 {
		w.catchUp = 1
	}
	w.BaseService = *service.NewBaseService(logger, "HeadWatcher", w)
	return w
}

// Blocks returns the channel new blocks are published on.
func (w *HeadWatcher) Blocks() <-chan *coretypes.Block {
	return w.out
}

// OnStart implements service.Service.
func (w *HeadWatcher) OnStart(ctx context.Context) error {
	if w.interval <= 0 {
		return errors.New("poll interval must be positive")
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go w.run(ctx)
	return nil
}

// OnStop implements service.Service.
func (w *HeadWatcher) OnStop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}

func (w *HeadWatcher) run(ctx context.Context) {
	defer w.wg.Done()
	defer close(w.out)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if err := w.poll(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			w.metrics.PollErrors.Add(1)
			w.logger.Error("failed to poll node", "err", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// poll publishes the blocks between the last published height and the
// current head. The last height only advances past blocks that were sent.
func (w *HeadWatcher) poll(ctx context.Context) error {
	head, err := w.client.BlockNumber(ctx)
	if err != nil {
		return err
	}
	w.metrics.Height.Set(float64(head))

	if head <= w.last {
		return nil
	}

	from := w.last + 1
	switch {
	case !w.started:
		from = head
	case head-w.last > w.catchUp:
		w.logger.Info("skipping blocks", "from", from, "to", head-w.catchUp)
		from = head - w.catchUp + 1
	}

	for h := from; h <= head; h++ {
		block, err := w.client.GetBlockByNumber(ctx, h, false)
		if err != nil {
			return err
		}

		select {
		case w.out <- block:
		case <-ctx.Done():
			return ctx.Err()
		}
		w.last = h
		w.started = true
		w.metrics.Blocks.Add(1)
		w.logger.Debug("new block", "height", h, "hash", block.Hash)
	}
	return nil
}
