package http

import (
	"context"

	"github.com/pkg/errors"

	"github.com/nimiq-community/go-nimiq-rpc/rpc/coretypes"
	jsonrpcclient "github.com/nimiq-community/go-nimiq-rpc/rpc/jsonrpc/client"
	"github.com/nimiq-community/go-nimiq-rpc/types"
)

// BatchHTTP provides the same read-only queries as HTTP, but queues them up
// so that they can be sent in a single round trip with Send.
//
// Each method returns a pointer to its result, which is filled in once Send
// returns without error. Results the node answered with null are left
// zero-valued.
type BatchHTTP struct {
	batch *jsonrpcclient.RequestBatch
}

// Send is a convenience function for an HTTP batch that will trigger the
// compilation of the batched requests and send them off using the client as a
// single request. On success, this returns a list of the deserialized results
// from each request in the sent batch.
func (b *BatchHTTP) Send(ctx context.Context) ([]interface{}, error) {
	results, err := b.batch.Send(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "batch")
	}
	return results, nil
}

// Clear will empty out this batch of requests and return the number of
// requests that were cleared out.
func (b *BatchHTTP) Clear() int {
	return b.batch.Clear()
}

// Count returns the number of enqueued requests waiting to be sent.
func (b *BatchHTTP) Count() int {
	return b.batch.Count()
}

func (b *BatchHTTP) enqueue(ctx context.Context, method string, params []interface{}, result interface{}) error {
	if _, err := b.batch.Call(ctx, method, params, result); err != nil {
		return errors.Wrap(err, method)
	}
	return nil
}

func (b *BatchHTTP) BlockNumber(ctx context.Context) (*uint32, error) {
	height := new(uint32)
	return height, b.enqueue(ctx, "blockNumber", nil, height)
}

func (b *BatchHTTP) GetAccount(ctx context.Context, address string) (*coretypes.Account, error) {
	account := new(coretypes.Account)
	return account, b.enqueue(ctx, "getAccount", []interface{}{address}, account)
}

func (b *BatchHTTP) GetBalance(ctx context.Context, address string) (*types.Luna, error) {
	balance := new(types.Luna)
	return balance, b.enqueue(ctx, "getBalance", []interface{}{address}, balance)
}

func (b *BatchHTTP) GetBlockByHash(ctx context.Context, hash string, fullTransactions bool) (*coretypes.Block, error) {
	block := new(coretypes.Block)
	return block, b.enqueue(ctx, "getBlockByHash", []interface{}{hash, fullTransactions}, block)
}

func (b *BatchHTTP) GetBlockByNumber(ctx context.Context, height uint32, fullTransactions bool) (*coretypes.Block, error) {
	block := new(coretypes.Block)
	return block, b.enqueue(ctx, "getBlockByNumber", []interface{}{height, fullTransactions}, block)
}

func (b *BatchHTTP) GetTransactionByHash(ctx context.Context, hash string) (*coretypes.Transaction, error) {
	tx := new(coretypes.Transaction)
	return tx, b.enqueue(ctx, "getTransactionByHash", []interface{}{hash}, tx)
}

func (b *BatchHTTP) GetTransactionReceipt(ctx context.Context, hash string) (*coretypes.TransactionReceipt, error) {
	receipt := new(coretypes.TransactionReceipt)
	return receipt, b.enqueue(ctx, "getTransactionReceipt", []interface{}{hash}, receipt)
}

func (b *BatchHTTP) Consensus(ctx context.Context) (*coretypes.ConsensusState, error) {
	state := new(coretypes.ConsensusState)
	return state, b.enqueue(ctx, "consensus", nil, state)
}

func (b *BatchHTTP) PeerCount(ctx context.Context) (*int, error) {
	count := new(int)
	return count, b.enqueue(ctx, "peerCount", nil, count)
}

func (b *BatchHTTP) Syncing(ctx context.Context) (*coretypes.SyncStatus, error) {
	status := new(coretypes.SyncStatus)
	return status, b.enqueue(ctx, "syncing", nil, status)
}
