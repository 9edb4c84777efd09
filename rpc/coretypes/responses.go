package coretypes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nimiq-community/go-nimiq-rpc/types"
)

// ErrNotFound is returned when the node answers null for a block,
// transaction or receipt lookup.
var ErrNotFound = errors.New("not found")

// AccountType distinguishes basic, vesting and HTLC accounts.
type AccountType uint8

const (
	AccountTypeBasic AccountType = iota
	AccountTypeVesting
	AccountTypeHTLC
)

func (t AccountType) String() string {
	switch t {
	case AccountTypeBasic:
		return "basic"
	case AccountTypeVesting:
		return "vesting"
	case AccountTypeHTLC:
		return "htlc"
	default:
		return fmt.Sprintf("AccountType(%d)", uint8(t))
	}
}

// Account as returned by accounts and getAccount. Vesting and HTLC fields are
// only set for the corresponding account types.
type Account struct {
	ID      string      `json:"id"`
	Address string      `json:"address"`
	Balance types.Luna  `json:"balance"`
	Type    AccountType `json:"type"`

	// vesting contract
	Owner              string     `json:"owner,omitempty"`
	OwnerAddress       string     `json:"ownerAddress,omitempty"`
	VestingStart       uint32     `json:"vestingStart,omitempty"`
	VestingStepBlocks  uint32     `json:"vestingStepBlocks,omitempty"`
	VestingStepAmount  types.Luna `json:"vestingStepAmount,omitempty"`
	VestingTotalAmount types.Luna `json:"vestingTotalAmount,omitempty"`

	// hashed time-locked contract
	Sender           string     `json:"sender,omitempty"`
	SenderAddress    string     `json:"senderAddress,omitempty"`
	Recipient        string     `json:"recipient,omitempty"`
	RecipientAddress string     `json:"recipientAddress,omitempty"`
	HashRoot         string     `json:"hashRoot,omitempty"`
	HashAlgorithm    uint8      `json:"hashAlgorithm,omitempty"`
	HashCount        uint8      `json:"hashCount,omitempty"`
	Timeout          uint32     `json:"timeout,omitempty"`
	TotalAmount      types.Luna `json:"totalAmount,omitempty"`
}

// Wallet is returned by createAccount.
type Wallet struct {
	ID         string `json:"id"`
	Address    string `json:"address"`
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey,omitempty"`
}

// Block as returned by getBlockByHash and getBlockByNumber.
type Block struct {
	Number       uint32              `json:"number"`
	Hash         string              `json:"hash"`
	PoW          string              `json:"pow"`
	ParentHash   string              `json:"parentHash"`
	Nonce        uint64              `json:"nonce"`
	BodyHash     string              `json:"bodyHash"`
	AccountsHash string              `json:"accountsHash"`
	Miner        string              `json:"miner"`
	MinerAddress string              `json:"minerAddress"`
	Difficulty   string              `json:"difficulty"`
	ExtraData    string              `json:"extraData"`
	Size         uint32              `json:"size"`
	Timestamp    uint64              `json:"timestamp"`
	Transactions TransactionSequence `json:"transactions"`
}

// Copy returns a deep copy of the block. Nil and empty transaction slices
// are preserved as such.
func (b *Block) Copy() *Block {
	if b == nil {
		return nil
	}
	cp := *b
	cp.Transactions = b.Transactions.Copy()
	return &cp
}

// TransactionSequence holds a block's transactions, which the node sends
// either as hashes or as full objects depending on the fullTransactions flag.
// Exactly one of the two slices is populated for a non-empty block.
type TransactionSequence struct {
	Hashes       []string
	Transactions []Transaction
}

// Full reports whether the sequence carries transaction objects.
func (s TransactionSequence) Full() bool {
	return s.Transactions != nil
}

// Copy returns a deep copy of the sequence.
func (s TransactionSequence) Copy() TransactionSequence {
	var cp TransactionSequence
	if s.Hashes != nil {
		cp.Hashes = make([]string, len(s.Hashes))
		copy(cp.Hashes, s.Hashes)
	}
	if s.Transactions != nil {
		cp.Transactions = make([]Transaction, len(s.Transactions))
		for i, tx := range s.Transactions {
			cp.Transactions[i] = tx.Copy()
		}
	}
	return cp
}

// Len returns the number of transactions in the sequence.
func (s TransactionSequence) Len() int {
	if s.Full() {
		return len(s.Transactions)
	}
	return len(s.Hashes)
}

func (s TransactionSequence) MarshalJSON() ([]byte, error) {
	if s.Full() {
		return json.Marshal(s.Transactions)
	}
	if s.Hashes == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.Hashes)
}

func (s *TransactionSequence) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	*s = TransactionSequence{}
	if len(items) == 0 {
		s.Hashes = []string{}
		return nil
	}

	if bytes.HasPrefix(bytes.TrimSpace(items[0]), []byte(`"`)) {
		return json.Unmarshal(data, &s.Hashes)
	}
	return json.Unmarshal(data, &s.Transactions)
}

// BlockTemplate is returned by getBlockTemplate.
type BlockTemplate struct {
	Header    BlockHeader `json:"header"`
	Interlink string      `json:"interlink"`
	Target    uint64      `json:"target"`
	Body      BlockBody   `json:"body"`
}

type BlockHeader struct {
	Version       uint16 `json:"version"`
	PrevHash      string `json:"prevHash"`
	InterlinkHash string `json:"interlinkHash"`
	AccountsHash  string `json:"accountsHash"`
	NBits         uint32 `json:"nBits"`
	Height        uint32 `json:"height"`
}

type BlockBody struct {
	Hash           string   `json:"hash"`
	MinerAddr      string   `json:"minerAddr"`
	ExtraData      string   `json:"extraData"`
	Transactions   []string `json:"transactions"`
	MerkleHashes   []string `json:"merkleHashes"`
	PrunedAccounts []string `json:"prunedAccounts"`
}

// Work holds the mining instructions returned by getWork.
type Work struct {
	Data      string `json:"data"`
	Suffix    string `json:"suffix"`
	Target    uint64 `json:"target"`
	Algorithm string `json:"algorithm"`
}

// Transaction as returned by the getTransaction* family. Block fields are
// empty for transactions that are still in the mempool.
type Transaction struct {
	Hash             string     `json:"hash"`
	BlockHash        string     `json:"blockHash,omitempty"`
	BlockNumber      uint32     `json:"blockNumber,omitempty"`
	Timestamp        uint64     `json:"timestamp,omitempty"`
	Confirmations    uint32     `json:"confirmations"`
	TransactionIndex *int       `json:"transactionIndex,omitempty"`
	From             string     `json:"from"`
	FromAddress      string     `json:"fromAddress"`
	To               string     `json:"to"`
	ToAddress        string     `json:"toAddress"`
	Value            types.Luna `json:"value"`
	Fee              types.Luna `json:"fee"`
	Data             *string    `json:"data"`
	Flags            uint8      `json:"flags"`
}

// Copy returns a copy of tx that shares no memory with it.
func (tx Transaction) Copy() Transaction {
	if tx.TransactionIndex != nil {
		idx := *tx.TransactionIndex
		tx.TransactionIndex = &idx
	}
	if tx.Data != nil {
		data := *tx.Data
		tx.Data = &data
	}
	return tx
}

// TransactionReceipt is returned by getTransactionReceipt.
type TransactionReceipt struct {
	TransactionHash  string `json:"transactionHash"`
	TransactionIndex int    `json:"transactionIndex"`
	BlockHash        string `json:"blockHash"`
	BlockNumber      uint32 `json:"blockNumber"`
	Confirmations    uint32 `json:"confirmations"`
	Timestamp        uint64 `json:"timestamp"`
}

// AddressState of a peer address in the node's address book.
type AddressState uint8

const (
	AddressStateNew AddressState = iota + 1
	AddressStateEstablished
	AddressStateTried
	AddressStateFailed
	AddressStateBanned
)

func (s AddressState) String() string {
	switch s {
	case AddressStateNew:
		return "new"
	case AddressStateEstablished:
		return "established"
	case AddressStateTried:
		return "tried"
	case AddressStateFailed:
		return "failed"
	case AddressStateBanned:
		return "banned"
	default:
		return fmt.Sprintf("AddressState(%d)", uint8(s))
	}
}

// ConnectionState of a peer connection.
type ConnectionState uint8

const (
	ConnectionStateNew ConnectionState = iota + 1
	ConnectionStateConnecting
	ConnectionStateConnected
	ConnectionStateNegotiating
	ConnectionStateEstablished
	ConnectionStateClosed
)

func (s ConnectionState) String() string {
	switch s {
	case ConnectionStateNew:
		return "new"
	case ConnectionStateConnecting:
		return "connecting"
	case ConnectionStateConnected:
		return "connected"
	case ConnectionStateNegotiating:
		return "negotiating"
	case ConnectionStateEstablished:
		return "established"
	case ConnectionStateClosed:
		return "closed"
	default:
		return fmt.Sprintf("ConnectionState(%d)", uint8(s))
	}
}

// Peer is an entry of peerList. Connection fields are only present for
// connected peers.
type Peer struct {
	ID              string           `json:"id"`
	Address         string           `json:"address"`
	AddressState    AddressState     `json:"addressState"`
	ConnectionState *ConnectionState `json:"connectionState,omitempty"`
	Version         *uint32          `json:"version,omitempty"`
	TimeOffset      *int64           `json:"timeOffset,omitempty"`
	HeadHash        *string          `json:"headHash,omitempty"`
	Latency         *uint64          `json:"latency,omitempty"`
	Rx              *uint64          `json:"rx,omitempty"`
	Tx              *uint64          `json:"tx,omitempty"`
}

// PeerState is returned by peerState.
type PeerState struct {
	ID           string       `json:"id"`
	Address      string       `json:"address"`
	AddressState AddressState `json:"addressState"`
}

// SyncStatus is the result of syncing. The node answers false when it is not
// syncing, and a progress object otherwise.
type SyncStatus struct {
	Syncing       bool   `json:"-"`
	StartingBlock uint32 `json:"startingBlock"`
	CurrentBlock  uint32 `json:"currentBlock"`
	HighestBlock  uint32 `json:"highestBlock"`
}

type syncProgress struct {
	StartingBlock uint32 `json:"startingBlock"`
	CurrentBlock  uint32 `json:"currentBlock"`
	HighestBlock  uint32 `json:"highestBlock"`
}

func (s SyncStatus) MarshalJSON() ([]byte, error) {
	if !s.Syncing {
		return []byte("false"), nil
	}
	return json.Marshal(syncProgress{
		StartingBlock: s.StartingBlock,
		CurrentBlock:  s.CurrentBlock,
		HighestBlock:  s.HighestBlock,
	})
}

func (s *SyncStatus) UnmarshalJSON(data []byte) error {
	var flag bool
	if err := json.Unmarshal(data, &flag); err == nil {
		*s = SyncStatus{Syncing: flag}
		return nil
	}

	var p syncProgress
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("syncing: expected bool or progress object: %w", err)
	}
	*s = SyncStatus{
		Syncing:       true,
		StartingBlock: p.StartingBlock,
		CurrentBlock:  p.CurrentBlock,
		HighestBlock:  p.HighestBlock,
	}
	return nil
}

// ConsensusState as reported by consensus.
type ConsensusState string

const (
	ConsensusConnecting  ConsensusState = "connecting"
	ConsensusSyncing     ConsensusState = "syncing"
	ConsensusEstablished ConsensusState = "established"
)

// Established reports whether the node is in a good consensus state.
func (s ConsensusState) Established() bool {
	return s == ConsensusEstablished
}

// PoolConnectionState of the node's mining pool connection.
type PoolConnectionState uint8

const (
	PoolConnected PoolConnectionState = iota
	PoolConnecting
	PoolClosed
)

func (s PoolConnectionState) String() string {
	switch s {
	case PoolConnected:
		return "connected"
	case PoolConnecting:
		return "connecting"
	case PoolClosed:
		return "closed"
	default:
		return fmt.Sprintf("PoolConnectionState(%d)", uint8(s))
	}
}
