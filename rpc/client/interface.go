package client

/*
The client package provides a general purpose interface (Client) for talking
to a Nimiq node over its JSON-RPC API, as well as a helper for waiting on the
chain head.

The main implementation is HTTP, which connects to a remote node over HTTP
POST. The mocks package provides a testify-based implementation for use in
unit tests of code that consumes a Client.
*/

import (
	"context"

	"github.com/nimiq-community/go-nimiq-rpc/rpc/coretypes"
	"github.com/nimiq-community/go-nimiq-rpc/types"
)

//go:generate ../../scripts/mockery_generate.sh Client

// Client describes the full API of a Nimiq node.
type Client interface {
	AccountsClient
	BlockchainClient
	TransactionClient
	MempoolClient
	MiningClient
	NetworkClient
	NodeClient
}

// AccountsClient manages accounts held by the node's wallet.
type AccountsClient interface {
	Accounts(context.Context) ([]coretypes.Account, error)
	CreateAccount(context.Context) (*coretypes.Wallet, error)
	GetAccount(ctx context.Context, address string) (*coretypes.Account, error)
	GetBalance(ctx context.Context, address string) (types.Luna, error)
}

// BlockchainClient queries blocks and the chain head.
type BlockchainClient interface {
	BlockNumber(context.Context) (uint32, error)
	GetBlockByHash(ctx context.Context, hash string, fullTransactions bool) (*coretypes.Block, error)
	GetBlockByNumber(ctx context.Context, height uint32, fullTransactions bool) (*coretypes.Block, error)
	GetBlockTransactionCountByHash(ctx context.Context, hash string) (int, error)
	GetBlockTransactionCountByNumber(ctx context.Context, height uint32) (int, error)
}

// TransactionClient looks up and submits transactions.
type TransactionClient interface {
	CreateRawTransaction(ctx context.Context, tx coretypes.OutgoingTransaction) (string, error)
	GetTransactionByBlockHashAndIndex(ctx context.Context, hash string, index int) (*coretypes.Transaction, error)
	GetTransactionByBlockNumberAndIndex(ctx context.Context, height uint32, index int) (*coretypes.Transaction, error)
	GetTransactionByHash(ctx context.Context, hash string) (*coretypes.Transaction, error)
	GetTransactionReceipt(ctx context.Context, hash string) (*coretypes.TransactionReceipt, error)
	GetTransactionsByAddress(ctx context.Context, address string, limit int) ([]coretypes.Transaction, error)
	SendRawTransaction(ctx context.Context, txHex string) (string, error)
	SendTransaction(ctx context.Context, tx coretypes.OutgoingTransaction) (string, error)
}

// MempoolClient inspects the node's mempool and fee policy.
type MempoolClient interface {
	MempoolContent(context.Context) ([]string, error)
	MinFeePerByte(context.Context) (int, error)
	SetMinFeePerByte(ctx context.Context, fee int) (int, error)
}

// MiningClient controls the node's miner.
type MiningClient interface {
	GetBlockTemplate(context.Context) (*coretypes.BlockTemplate, error)
	GetWork(context.Context) (*coretypes.Work, error)
	Hashrate(context.Context) (float64, error)
	MinerAddress(context.Context) (string, error)
	MinerThreads(context.Context) (int, error)
	SetMinerThreads(ctx context.Context, threads int) (int, error)
	Mining(context.Context) (bool, error)
	SetMining(ctx context.Context, enabled bool) (bool, error)
	PoolConfirmedBalance(context.Context) (types.Luna, error)
	PoolConnectionState(context.Context) (coretypes.PoolConnectionState, error)
	SubmitBlock(ctx context.Context, blockHex string) error
}

// NetworkClient inspects and manipulates the node's peers.
type NetworkClient interface {
	PeerCount(context.Context) (int, error)
	PeerList(context.Context) ([]coretypes.Peer, error)
	PeerState(ctx context.Context, address string) (*coretypes.PeerState, error)
	SetPeerState(ctx context.Context, address string, cmd coretypes.PeerStateCommand) (*coretypes.PeerState, error)
}

// NodeClient reports node status and adjusts logging.
type NodeClient interface {
	Consensus(context.Context) (coretypes.ConsensusState, error)
	Syncing(context.Context) (*coretypes.SyncStatus, error)
	Log(ctx context.Context, tag string, level coretypes.LogLevel) (bool, error)
}
