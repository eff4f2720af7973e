package node

import (
	"crypto/ecdsa"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	ctypes "github.com/MON4LX-FINANCE/frontier/core/types"
	rpctypes "github.com/MON4LX-FINANCE/frontier/rpc/types"
)

func signedRecord(t *testing.T, key *ecdsa.PrivateKey, nonce uint64, gasPrice int64) *rpctypes.Transaction {
	t.Helper()
	to := common.HexToAddress("0x01")
	tx, err := ctypes.SignNewTx(key, ctypes.NewSigner(big.NewInt(1337)), &ctypes.LegacyTx{
		Nonce:    nonce,
		GasPrice: big.NewInt(gasPrice),
		Gas:      21000,
		To:       &to,
		Value:    big.NewInt(1),
	})
	require.NoError(t, err)
	record := rpctypes.NewTransaction(tx)
	record.From = crypto.PubkeyToAddress(key.PublicKey)
	return record
}

func newRecord(t *testing.T, nonce uint64, gasPrice int64) (common.Address, *rpctypes.Transaction) {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	record := signedRecord(t, key, nonce, gasPrice)
	return record.From, record
}

func TestTrackerSubmitted(t *testing.T) {
	tracker := NewLocalTxTracker()
	from, record := newRecord(t, 0, 10)

	replaced := tracker.Submitted(from, record, 5)
	require.Nil(t, replaced)

	status, ok := tracker.Status(record.Hash)
	require.True(t, ok)
	require.Equal(t, "pending", status.String())

	entry := tracker.Pending().Get(record.Hash)
	require.NotNil(t, entry)
	require.Equal(t, uint64(5), entry.AtBlock)
	require.Equal(t, 1, tracker.Pending().Len())
}

func TestTrackerReplacement(t *testing.T) {
	tracker := NewLocalTxTracker()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	first := signedRecord(t, key, 0, 10)

	require.Nil(t, tracker.Submitted(first.From, first, 0))

	// Same sender and nonce with a higher bid supersedes the first entry.
	second := signedRecord(t, key, 0, 20)
	replaced := tracker.Submitted(second.From, second, 1)
	require.NotNil(t, replaced)
	require.Equal(t, first.Hash, *replaced)

	require.Nil(t, tracker.Pending().Get(first.Hash))
	require.NotNil(t, tracker.Pending().Get(second.Hash))

	status, ok := tracker.Status(first.Hash)
	require.True(t, ok)
	require.Equal(t, "replaced", status.String())
	require.Equal(t, first, status.Transaction())

	status, ok = tracker.Status(second.Hash)
	require.True(t, ok)
	require.Equal(t, "pending", status.String())
}

func TestTrackerCanceled(t *testing.T) {
	tracker := NewLocalTxTracker()
	from, record := newRecord(t, 0, 10)
	tracker.Submitted(from, record, 0)

	require.True(t, tracker.Canceled(record.Hash))
	require.Nil(t, tracker.Pending().Get(record.Hash))

	status, ok := tracker.Status(record.Hash)
	require.True(t, ok)
	require.Equal(t, "canceled", status.String())

	// Canceling twice, or canceling an unknown hash, reports false.
	require.False(t, tracker.Canceled(record.Hash))
	require.False(t, tracker.Canceled(common.HexToHash("0xff")))

	// The queue slot is free again.
	require.Nil(t, tracker.Submitted(from, record, 2))
}

func TestTrackerRejected(t *testing.T) {
	tracker := NewLocalTxTracker()
	_, record := newRecord(t, 0, 10)

	tracker.Rejected(record, "invalid signature")

	status, ok := tracker.Status(record.Hash)
	require.True(t, ok)
	require.Equal(t, "rejected", status.String())
	require.Equal(t, 0, tracker.Pending().Len())
}

func TestTrackerStatusesSnapshot(t *testing.T) {
	tracker := NewLocalTxTracker()
	from1, record1 := newRecord(t, 0, 10)
	from2, record2 := newRecord(t, 0, 10)

	tracker.Submitted(from1, record1, 0)
	tracker.Submitted(from2, record2, 0)
	require.True(t, tracker.Canceled(record2.Hash))

	statuses := tracker.Statuses()
	require.Len(t, statuses, 2)
	require.Equal(t, "pending", statuses[record1.Hash].String())
	require.Equal(t, "canceled", statuses[record2.Hash].String())

	// The snapshot is detached from the tracker.
	delete(statuses, record1.Hash)
	_, ok := tracker.Status(record1.Hash)
	require.True(t, ok)
}
