package types

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// PendingTransaction pairs a canonical record with the block height at which
// it was submitted.
type PendingTransaction struct {
	Transaction *Transaction
	AtBlock     uint64
}

// NewPendingTransaction wraps a canonical record with its submission height.
func NewPendingTransaction(tx *Transaction, atBlock uint64) *PendingTransaction {
	return &PendingTransaction{Transaction: tx, AtBlock: atBlock}
}

// PendingTransactions is the shared collection of not-yet-included
// transactions, keyed by hash. A single coarse lock covers the whole
// collection; readers and writers exclude each other.
type PendingTransactions struct {
	mu  sync.Mutex
	txs map[common.Hash]*PendingTransaction
}

// NewPendingTransactions returns an empty collection.
func NewPendingTransactions() *PendingTransactions {
	return &PendingTransactions{txs: make(map[common.Hash]*PendingTransaction)}
}

// Put inserts or overwrites the entry for the record's hash.
func (p *PendingTransactions) Put(tx *PendingTransaction) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.txs[tx.Transaction.Hash] = tx
}

// Get returns the entry for hash, or nil.
func (p *PendingTransactions) Get(hash common.Hash) *PendingTransaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.txs[hash]
}

// Remove deletes the entry for hash and reports whether it existed.
func (p *PendingTransactions) Remove(hash common.Hash) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.txs[hash]
	delete(p.txs, hash)
	return ok
}

// Len returns the number of tracked transactions.
func (p *PendingTransactions) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.txs)
}

// Range calls fn for every entry while holding the collection lock. fn must
// not call back into the collection.
func (p *PendingTransactions) Range(fn func(hash common.Hash, tx *PendingTransaction)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for hash, tx := range p.txs {
		fn(hash, tx)
	}
}
