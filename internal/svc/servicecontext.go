package svc

import (
	"math/big"

	ctypes "github.com/MON4LX-FINANCE/frontier/core/types"
	"github.com/MON4LX-FINANCE/frontier/node"
	"github.com/MON4LX-FINANCE/frontier/internal/config"
	"github.com/MON4LX-FINANCE/frontier/params"
)

type ServiceContext struct {
	Config config.Config

	// Signer recovers senders for the configured chain.
	Signer ctypes.Signer
	// Tracker holds the pending set and lifecycle statuses.
	Tracker *node.LocalTxTracker
	// Store persists raw envelopes across restarts.
	Store *node.TxStore
	// HeadBlock reports the current head height pending entries are stamped
	// with. The default of a fresh service is 0.
	HeadBlock func() uint64
}

func NewServiceContext(c config.Config, store *node.TxStore) *ServiceContext {
	chainConfig := &params.ChainConfig{ChainID: new(big.Int).SetUint64(c.ChainID)}
	return &ServiceContext{
		Config:    c,
		Signer:    ctypes.MakeSigner(chainConfig),
		Tracker:   node.NewLocalTxTracker(),
		Store:     store,
		HeadBlock: func() uint64 { return 0 },
	}
}
