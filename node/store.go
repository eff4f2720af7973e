package node

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ledgerwatch/erigon-lib/kv"
)

// TableLocalTransactions holds the raw wire encoding of locally submitted
// transactions, keyed by transaction hash.
const TableLocalTransactions = "LocalTransaction"

// frontierTablesCfg declares the tables of the local-transaction database.
func frontierTablesCfg(kv.TableCfg) kv.TableCfg {
	return kv.TableCfg{
		TableLocalTransactions: {},
	}
}

// TxStore persists raw transaction envelopes keyed by their hash. The raw
// bytes are the canonical wire encoding, so a stored entry can always be
// re-decoded and re-normalized after a restart.
type TxStore struct {
	db kv.RwDB
}

// NewTxStore wraps db.
func NewTxStore(db kv.RwDB) *TxStore {
	return &TxStore{db: db}
}

// Put stores the raw encoding under hash.
func (s *TxStore) Put(ctx context.Context, hash common.Hash, raw []byte) error {
	return s.db.Update(ctx, func(tx kv.RwTx) error {
		return tx.Put(TableLocalTransactions, hash.Bytes(), raw)
	})
}

// Get returns the raw encoding stored under hash, or nil when absent.
func (s *TxStore) Get(ctx context.Context, hash common.Hash) ([]byte, error) {
	var raw []byte
	err := s.db.View(ctx, func(tx kv.Tx) error {
		v, err := tx.GetOne(TableLocalTransactions, hash.Bytes())
		if err != nil {
			return err
		}
		raw = common.CopyBytes(v)
		return nil
	})
	return raw, err
}

// Delete removes the entry stored under hash, if any.
func (s *TxStore) Delete(ctx context.Context, hash common.Hash) error {
	return s.db.Update(ctx, func(tx kv.RwTx) error {
		return tx.Delete(TableLocalTransactions, hash.Bytes())
	})
}

// Walk calls fn for every stored transaction.
func (s *TxStore) Walk(ctx context.Context, fn func(hash common.Hash, raw []byte) error) error {
	return s.db.View(ctx, func(tx kv.Tx) error {
		c, err := tx.Cursor(TableLocalTransactions)
		if err != nil {
			return err
		}
		defer c.Close()
		for k, v, err := c.First(); k != nil; k, v, err = c.Next() {
			if err != nil {
				return err
			}
			if err := fn(common.BytesToHash(k), common.CopyBytes(v)); err != nil {
				return err
			}
		}
		return nil
	})
}
