package node

import (
	"sync"

	rpctypes "github.com/MON4LX-FINANCE/frontier/rpc/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// txOrigin identifies the queue slot a transaction competes for.
type txOrigin struct {
	from  common.Address
	nonce uint64
}

// LocalTxTracker mirrors the queue manager's view of locally submitted
// transactions: the pending set plus a terminal status for everything that
// left it. A single lock covers the whole structure.
type LocalTxTracker struct {
	mu       sync.Mutex
	pending  *rpctypes.PendingTransactions
	byOrigin map[txOrigin]common.Hash
	statuses map[common.Hash]rpctypes.LocalTransactionStatus
}

// NewLocalTxTracker returns an empty tracker.
func NewLocalTxTracker() *LocalTxTracker {
	return &LocalTxTracker{
		pending:  rpctypes.NewPendingTransactions(),
		byOrigin: make(map[txOrigin]common.Hash),
		statuses: make(map[common.Hash]rpctypes.LocalTransactionStatus),
	}
}

// Pending exposes the shared pending collection.
func (t *LocalTxTracker) Pending() *rpctypes.PendingTransactions {
	return t.pending
}

// Submitted tracks a new transaction as pending at the given head height.
// When a transaction from the same sender and nonce is already pending, the
// old entry is marked replaced by the new one and its hash is returned.
func (t *LocalTxTracker) Submitted(from common.Address, record *rpctypes.Transaction, atBlock uint64) (replaced *common.Hash) {
	t.mu.Lock()
	defer t.mu.Unlock()

	origin := txOrigin{from: from, nonce: uint64(record.Nonce)}
	if oldHash, ok := t.byOrigin[origin]; ok && oldHash != record.Hash {
		if old := t.pending.Get(oldHash); old != nil {
			t.pending.Remove(oldHash)
			t.statuses[oldHash] = rpctypes.ReplacedStatus(old.Transaction, replacementPrice(record), record.Hash)
			replaced = &oldHash
		}
	}

	t.byOrigin[origin] = record.Hash
	t.pending.Put(rpctypes.NewPendingTransaction(record, atBlock))
	t.statuses[record.Hash] = rpctypes.PendingStatus()
	return replaced
}

// Rejected records a transaction that never entered the queue.
func (t *LocalTxTracker) Rejected(record *rpctypes.Transaction, reason string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.statuses[record.Hash] = rpctypes.RejectedStatus(record, reason)
}

// Canceled removes a pending transaction on request of its submitter and
// reports whether it was pending.
func (t *LocalTxTracker) Canceled(hash common.Hash) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry := t.pending.Get(hash)
	if entry == nil {
		return false
	}
	t.pending.Remove(hash)
	delete(t.byOrigin, txOrigin{from: entry.Transaction.From, nonce: uint64(entry.Transaction.Nonce)})
	t.statuses[hash] = rpctypes.CanceledStatus(entry.Transaction)
	return true
}

// Status returns the lifecycle status recorded for hash.
func (t *LocalTxTracker) Status(hash common.Hash) (rpctypes.LocalTransactionStatus, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	status, ok := t.statuses[hash]
	return status, ok
}

// Statuses returns a snapshot of all recorded statuses.
func (t *LocalTxTracker) Statuses() map[common.Hash]rpctypes.LocalTransactionStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[common.Hash]rpctypes.LocalTransactionStatus, len(t.statuses))
	for hash, status := range t.statuses {
		out[hash] = status
	}
	return out
}

// replacementPrice is the gas price the replacement transaction bids: the
// legacy gas price when present, the fee cap otherwise.
func replacementPrice(record *rpctypes.Transaction) *hexutil.Big {
	if record.GasPrice != nil {
		return record.GasPrice
	}
	return record.MaxFeePerGas
}
