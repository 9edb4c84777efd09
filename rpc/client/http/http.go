package http

import (
	"context"
	"net/http"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/nimiq-community/go-nimiq-rpc/libs/log"
	rpcclient "github.com/nimiq-community/go-nimiq-rpc/rpc/client"
	"github.com/nimiq-community/go-nimiq-rpc/rpc/coretypes"
	jsonrpcclient "github.com/nimiq-community/go-nimiq-rpc/rpc/jsonrpc/client"
	"github.com/nimiq-community/go-nimiq-rpc/types"
)

/*
HTTP is a Client implementation that communicates with a Nimiq node over
JSON-RPC 2.0 HTTP POST requests.

Every method maps one-to-one to a node RPC method. Parameters are sent
positionally, in the order the node expects them. Errors returned by the node
are *types.RPCError values wrapped with the RPC method name, so errors.As and
errors.Is see through the wrapping.

Lookups the node answers with null (unknown block, transaction or receipt)
return coretypes.ErrNotFound.

Batching of requests is possible with NewBatch.

Example:

	c, err := New("http://127.0.0.1:8648")
	if err != nil {
		// handle error
	}

	height, err := c.BlockNumber(ctx)
	if err != nil {
		// handle error
	}

	block, err := c.GetBlockByNumber(ctx, height, false)
	...
*/
type HTTP struct {
	remote string
	rpc    *jsonrpcclient.Client
	caller jsonrpcclient.Caller
	logger log.Logger

	// blocks caches getBlockByHash results without transaction bodies.
	blocks *lru.Cache[string, *coretypes.Block]
}

var _ rpcclient.Client = (*HTTP)(nil)

type options struct {
	rpcOpts   []jsonrpcclient.Option
	logger    log.Logger
	cacheSize int
}

// Option sets an optional parameter on the HTTP client.
type Option func(*options)

// WithLogger sets the logger of the client and of its JSON-RPC transport.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
		o.rpcOpts = append(o.rpcOpts, jsonrpcclient.WithLogger(logger))
	}
}

// WithMetrics records per-method call metrics.
func WithMetrics(metrics *jsonrpcclient.Metrics) Option {
	return func(o *options) { o.rpcOpts = append(o.rpcOpts, jsonrpcclient.WithMetrics(metrics)) }
}

// WithRateLimit limits outgoing requests to rps per second.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *options) { o.rpcOpts = append(o.rpcOpts, jsonrpcclient.WithRateLimit(rps, burst)) }
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(o *options) { o.rpcOpts = append(o.rpcOpts, jsonrpcclient.WithHeader(key, value)) }
}

// WithBlockCache keeps up to size blocks fetched by hash in memory. A
// non-positive size disables the cache.
func WithBlockCache(size int) Option {
	return func(o *options) { o.cacheSize = size }
}

func withCredentials(username, password string) Option {
	return func(o *options) {
		o.rpcOpts = append(o.rpcOpts, jsonrpcclient.WithCredentials(username, password))
	}
}

// New takes a remote endpoint in the form <protocol>://<host>:<port>. An
// error is returned on invalid remote. Credentials embedded in the URL are
// sent as basic auth.
func New(remote string, opts ...Option) (*HTTP, error) {
	c, err := jsonrpcclient.DefaultHTTPClient(remote)
	if err != nil {
		return nil, err
	}
	return NewWithClient(remote, c, opts...)
}

// NewWithCredentials is like New but authenticates every request with the
// given username and password.
func NewWithCredentials(remote, username, password string, opts ...Option) (*HTTP, error) {
	return New(remote, append([]Option{withCredentials(username, password)}, opts...)...)
}

// NewWithClient allows you to set a custom http client. An error is returned
// on invalid remote. The function panics when client is nil.
func NewWithClient(remote string, c *http.Client, opts ...Option) (*HTTP, error) {
	if c == nil {
		panic("nil http.Client")
	}

	o := options{logger: log.NewNopLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	rc, err := jsonrpcclient.NewWithHTTPClient(remote, c, o.rpcOpts...)
	if err != nil {
		return nil, err
	}

	h := &HTTP{
		remote: remote,
		rpc:    rc,
		caller: rc,
		logger: o.logger,
	}

	if o.cacheSize > 0 {
		h.blocks, err = lru.New[string, *coretypes.Block](o.cacheSize)
		if err != nil {
			return nil, err
		}
	}

	return h, nil
}

// Remote returns the remote network address in a string form.
func (c *HTTP) Remote() string {
	return c.remote
}

// NewBatch creates a new batch client for this HTTP client.
func (c *HTTP) NewBatch() *BatchHTTP {
	return &BatchHTTP{batch: c.rpc.NewRequestBatch()}
}

func (c *HTTP) call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	if _, err := c.caller.Call(ctx, method, params, result); err != nil {
		return errors.Wrap(err, method)
	}
	return nil
}

//-----------------------------------------------------------------------------
// accounts

func (c *HTTP) Accounts(ctx context.Context) ([]coretypes.Account, error) {
	var accounts []coretypes.Account
	if err := c.call(ctx, "accounts", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *HTTP) CreateAccount(ctx context.Context) (*coretypes.Wallet, error) {
	wallet := new(coretypes.Wallet)
	if err := c.call(ctx, "createAccount", nil, wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

func (c *HTTP) GetAccount(ctx context.Context, address string) (*coretypes.Account, error) {
	account := new(coretypes.Account)
	if err := c.call(ctx, "getAccount", []interface{}{address}, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (c *HTTP) GetBalance(ctx context.Context, address string) (types.Luna, error) {
	var balance types.Luna
	if err := c.call(ctx, "getBalance", []interface{}{address}, &balance); err != nil {
		return 0, err
	}
	return balance, nil
}

//-----------------------------------------------------------------------------
// blockchain

func (c *HTTP) BlockNumber(ctx context.Context) (uint32, error) {
	var height uint32
	if err := c.call(ctx, "blockNumber", nil, &height); err != nil {
		return 0, err
	}
	return height, nil
}

// GetBlockByHash fetches a block by its hash. When the client has a block
// cache and fullTransactions is false, repeated lookups are served from memory.
func (c *HTTP) GetBlockByHash(ctx context.Context, hash string, fullTransactions bool) (*coretypes.Block, error) {
	cacheable := c.blocks != nil && !fullTransactions
	key := strings.ToLower(hash)
	if cacheable {
		if block, ok := c.blocks.Get(key); ok {
			c.logger.Debug("block cache hit", "hash", key)
			return block.Copy(), nil
		}
	}

	var block *coretypes.Block
	if err := c.call(ctx, "getBlockByHash", []interface{}{hash, fullTransactions}, &block); err != nil {
		return nil, err
	}
	if block == nil {
		return nil, coretypes.ErrNotFound
	}

	if cacheable {
		c.blocks.Add(key, block.Copy())
	}
	return block, nil
}

func (c *HTTP) GetBlockByNumber(ctx context.Context, height uint32, fullTransactions bool) (*coretypes.Block, error) {
	var block *coretypes.Block
	if err := c.call(ctx, "getBlockByNumber", []interface{}{height, fullTransactions}, &block); err != nil {
		return nil, err
	}
	if block == nil {
		return nil, coretypes.ErrNotFound
	}
	return block, nil
}

func (c *HTTP) GetBlockTransactionCountByHash(ctx context.Context, hash string) (int, error) {
	return c.txCount(ctx, "getBlockTransactionCountByHash", hash)
}

func (c *HTTP) GetBlockTransactionCountByNumber(ctx context.Context, height uint32) (int, error) {
	return c.txCount(ctx, "getBlockTransactionCountByNumber", height)
}

func (c *HTTP) txCount(ctx context.Context, method string, block interface{}) (int, error) {
	var count *int
	if err := c.call(ctx, method, []interface{}{block}, &count); err != nil {
		return 0, err
	}
	if count == nil {
		return 0, coretypes.ErrNotFound
	}
	return *count, nil
}

//-----------------------------------------------------------------------------
// transactions

func (c *HTTP) CreateRawTransaction(ctx context.Context, tx coretypes.OutgoingTransaction) (string, error) {
	if err := tx.ValidateBasic(); err != nil {
		return "", errors.Wrap(err, "createRawTransaction")
	}
	var raw string
	if err := c.call(ctx, "createRawTransaction", []interface{}{tx}, &raw); err != nil {
		return "", err
	}
	return raw, nil
}

func (c *HTTP) GetTransactionByBlockHashAndIndex(ctx context.Context, hash string, index int) (*coretypes.Transaction, error) {
	return c.transaction(ctx, "getTransactionByBlockHashAndIndex", hash, index)
}

func (c *HTTP) GetTransactionByBlockNumberAndIndex(ctx context.Context, height uint32, index int) (*coretypes.Transaction, error) {
	return c.transaction(ctx, "getTransactionByBlockNumberAndIndex", height, index)
}

func (c *HTTP) GetTransactionByHash(ctx context.Context, hash string) (*coretypes.Transaction, error) {
	return c.transaction(ctx, "getTransactionByHash", hash)
}

func (c *HTTP) transaction(ctx context.Context, method string, params ...interface{}) (*coretypes.Transaction, error) {
	var tx *coretypes.Transaction
	if err := c.call(ctx, method, params, &tx); err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, coretypes.ErrNotFound
	}
	return tx, nil
}

func (c *HTTP) GetTransactionReceipt(ctx context.Context, hash string) (*coretypes.TransactionReceipt, error) {
	var receipt *coretypes.TransactionReceipt
	if err := c.call(ctx, "getTransactionReceipt", []interface{}{hash}, &receipt); err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, coretypes.ErrNotFound
	}
	return receipt, nil
}

// GetTransactionsByAddress returns up to limit transactions involving
// address. A non-positive limit leaves the node's default in place.
func (c *HTTP) GetTransactionsByAddress(ctx context.Context, address string, limit int) ([]coretypes.Transaction, error) {
	params := []interface{}{address}
	if limit > 0 {
		params = append(params, limit)
	}
	var txs []coretypes.Transaction
	if err := c.call(ctx, "getTransactionsByAddress", params, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *HTTP) SendRawTransaction(ctx context.Context, txHex string) (string, error) {
	var hash string
	if err := c.call(ctx, "sendRawTransaction", []interface{}{txHex}, &hash); err != nil {
		return "", err
	}
	return hash, nil
}

func (c *HTTP) SendTransaction(ctx context.Context, tx coretypes.OutgoingTransaction) (string, error) {
	if err := tx.ValidateBasic(); err != nil {
		return "", errors.Wrap(err, "sendTransaction")
	}
	var hash string
	if err := c.call(ctx, "sendTransaction", []interface{}{tx}, &hash); err != nil {
		return "", err
	}
	return hash, nil
}

//-----------------------------------------------------------------------------
// mempool

func (c *HTTP) MempoolContent(ctx context.Context) ([]string, error) {
	var hashes []string
	if err := c.call(ctx, "mempoolContent", nil, &hashes); err != nil {
		return nil, err
	}
	return hashes, nil
}

func (c *HTTP) MinFeePerByte(ctx context.Context) (int, error) {
	return c.intCall(ctx, "minFeePerByte")
}

func (c *HTTP) SetMinFeePerByte(ctx context.Context, fee int) (int, error) {
	return c.intCall(ctx, "minFeePerByte", fee)
}

func (c *HTTP) intCall(ctx context.Context, method string, params ...interface{}) (int, error) {
	var n int
	if err := c.call(ctx, method, params, &n); err != nil {
		return 0, err
	}
	return n, nil
}

//-----------------------------------------------------------------------------
// mining

func (c *HTTP) GetBlockTemplate(ctx context.Context) (*coretypes.BlockTemplate, error) {
	tmpl := new(coretypes.BlockTemplate)
	if err := c.call(ctx, "getBlockTemplate", nil, tmpl); err != nil {
		return nil, err
	}
	return tmpl, nil
}

func (c *HTTP) GetWork(ctx context.Context) (*coretypes.Work, error) {
	work := new(coretypes.Work)
	if err := c.call(ctx, "getWork", nil, work); err != nil {
		return nil, err
	}
	return work, nil
}

func (c *HTTP) Hashrate(ctx context.Context) (float64, error) {
	var rate float64
	if err := c.call(ctx, "hashrate", nil, &rate); err != nil {
		return 0, err
	}
	return rate, nil
}

func (c *HTTP) MinerAddress(ctx context.Context) (string, error) {
	var address string
	if err := c.call(ctx, "minerAddress", nil, &address); err != nil {
		return "", err
	}
	return address, nil
}

func (c *HTTP) MinerThreads(ctx context.Context) (int, error) {
	return c.intCall(ctx, "minerThreads")
}

func (c *HTTP) SetMinerThreads(ctx context.Context, threads int) (int, error) {
	return c.intCall(ctx, "minerThreads", threads)
}

func (c *HTTP) Mining(ctx context.Context) (bool, error) {
	return c.boolCall(ctx, "mining")
}

func (c *HTTP) SetMining(ctx context.Context, enabled bool) (bool, error) {
	return c.boolCall(ctx, "mining", enabled)
}

func (c *HTTP) boolCall(ctx context.Context, method string, params ...interface{}) (bool, error) {
	var ok bool
	if err := c.call(ctx, method, params, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (c *HTTP) PoolConfirmedBalance(ctx context.Context) (types.Luna, error) {
	var balance types.Luna
	if err := c.call(ctx, "poolConfirmedBalance", nil, &balance); err != nil {
		return 0, err
	}
	return balance, nil
}

func (c *HTTP) PoolConnectionState(ctx context.Context) (coretypes.PoolConnectionState, error) {
	var state coretypes.PoolConnectionState
	if err := c.call(ctx, "poolConnectionState", nil, &state); err != nil {
		return coretypes.PoolClosed, err
	}
	return state, nil
}

func (c *HTTP) SubmitBlock(ctx context.Context, blockHex string) error {
	return c.call(ctx, "submitBlock", []interface{}{blockHex}, nil)
}

//-----------------------------------------------------------------------------
// network

func (c *HTTP) PeerCount(ctx context.Context) (int, error) {
	return c.intCall(ctx, "peerCount")
}

func (c *HTTP) PeerList(ctx context.Context) ([]coretypes.Peer, error) {
	var peers []coretypes.Peer
	if err := c.call(ctx, "peerList", nil, &peers); err != nil {
		return nil, err
	}
	return peers, nil
}

func (c *HTTP) PeerState(ctx context.Context, address string) (*coretypes.PeerState, error) {
	return c.peerState(ctx, address)
}

func (c *HTTP) SetPeerState(ctx context.Context, address string, cmd coretypes.PeerStateCommand) (*coretypes.PeerState, error) {
	if !cmd.Valid() {
		return nil, errors.Errorf("peerState: unknown command %q", cmd)
	}
	return c.peerState(ctx, address, cmd)
}

func (c *HTTP) peerState(ctx context.Context, params ...interface{}) (*coretypes.PeerState, error) {
	var state *coretypes.PeerState
	if err := c.call(ctx, "peerState", params, &state); err != nil {
		return nil, err
	}
	if state == nil {
		return nil, coretypes.ErrNotFound
	}
	return state, nil
}

//-----------------------------------------------------------------------------
// node

func (c *HTTP) Consensus(ctx context.Context) (coretypes.ConsensusState, error) {
	var state coretypes.ConsensusState
	if err := c.call(ctx, "consensus", nil, &state); err != nil {
		return "", err
	}
	return state, nil
}

func (c *HTTP) Syncing(ctx context.Context) (*coretypes.SyncStatus, error) {
	status := new(coretypes.SyncStatus)
	if err := c.call(ctx, "syncing", nil, status); err != nil {
		return nil, err
	}
	return status, nil
}

// Log sets the log level of the node for tag. Use coretypes.LogTagAll to
// change every tag at once.
func (c *HTTP) Log(ctx context.Context, tag string, level coretypes.LogLevel) (bool, error) {
	if !level.Valid() {
		return false, errors.Errorf("log: unknown level %q", level)
	}
	return c.boolCall(ctx, "log", tag, level)
}
