package logic

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ledgerwatch/log/v3"
	"github.com/stretchr/testify/require"

	ctypes "github.com/MON4LX-FINANCE/frontier/core/types"
	"github.com/MON4LX-FINANCE/frontier/node"
	"github.com/MON4LX-FINANCE/frontier/internal/config"
	"github.com/MON4LX-FINANCE/frontier/internal/svc"
	"github.com/MON4LX-FINANCE/frontier/internal/types"
	"github.com/MON4LX-FINANCE/frontier/node/nodecfg"
)

func newTestSvc(t *testing.T) *svc.ServiceContext {
	t.Helper()
	db, err := node.OpenDatabase(nodecfg.DefaultConfig("test", ""), log.New())
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return svc.NewServiceContext(config.Config{ChainID: 1337}, node.NewTxStore(db))
}

func rawEnvelope(t *testing.T, key *ecdsa.PrivateKey, nonce uint64, gasPrice int64) string {
	t.Helper()
	to := common.HexToAddress("0x01")
	tx, err := ctypes.SignNewTx(key, ctypes.LatestSignerForChainID(big.NewInt(1337)), &ctypes.LegacyTx{
		Nonce:    nonce,
		GasPrice: big.NewInt(gasPrice),
		Gas:      21000,
		To:       &to,
		Value:    big.NewInt(1),
	})
	require.NoError(t, err)
	raw, err := tx.MarshalBinary()
	require.NoError(t, err)
	return hexutil.Encode(raw)
}

func TestSendRawTransaction(t *testing.T) {
	svcCtx := newTestSvc(t)
	ctx := context.Background()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	raw := rawEnvelope(t, key, 0, 10)

	rich, err := NewSendRawTransactionLogic(ctx, svcCtx).SendRawTransaction(&types.SendRawTransactionRequest{Raw: raw})
	require.NoError(t, err)
	require.Equal(t, raw, hexutil.Encode(rich.Raw))
	require.Equal(t, crypto.PubkeyToAddress(key.PublicKey), rich.Transaction.From)

	// The envelope is persisted and the entry is pending.
	stored, err := svcCtx.Store.Get(ctx, rich.Transaction.Hash)
	require.NoError(t, err)
	require.Equal(t, []byte(rich.Raw), stored)

	status, ok := svcCtx.Tracker.Status(rich.Transaction.Hash)
	require.True(t, ok)
	require.Equal(t, "pending", status.String())
}

func TestSendRawTransactionReplacement(t *testing.T) {
	svcCtx := newTestSvc(t)
	ctx := context.Background()
	l := NewSendRawTransactionLogic(ctx, svcCtx)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	first, err := l.SendRawTransaction(&types.SendRawTransactionRequest{Raw: rawEnvelope(t, key, 0, 10)})
	require.NoError(t, err)
	second, err := l.SendRawTransaction(&types.SendRawTransactionRequest{Raw: rawEnvelope(t, key, 0, 20)})
	require.NoError(t, err)

	status, ok := svcCtx.Tracker.Status(first.Transaction.Hash)
	require.True(t, ok)
	require.Equal(t, "replaced", status.String())

	status, ok = svcCtx.Tracker.Status(second.Transaction.Hash)
	require.True(t, ok)
	require.Equal(t, "pending", status.String())
}

func TestSendRawTransactionBadInput(t *testing.T) {
	svcCtx := newTestSvc(t)
	l := NewSendRawTransactionLogic(context.Background(), svcCtx)

	// Not hex at all.
	_, err := l.SendRawTransaction(&types.SendRawTransactionRequest{Raw: "zzzz"})
	require.Error(t, err)

	// Hex that does not decode to an envelope.
	_, err = l.SendRawTransaction(&types.SendRawTransactionRequest{Raw: "0x00"})
	require.Error(t, err)

	// An unknown type byte is refused.
	_, err = l.SendRawTransaction(&types.SendRawTransactionRequest{Raw: "0x7e0102"})
	require.Error(t, err)

	// Undecodable input leaves no trace: there is no record to key a
	// status on.
	require.Equal(t, 0, svcCtx.Tracker.Pending().Len())
	require.Empty(t, svcCtx.Tracker.Statuses())
}

func TestSendRawTransactionWrongChain(t *testing.T) {
	svcCtx := newTestSvc(t)
	l := NewSendRawTransactionLogic(context.Background(), svcCtx)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	to := common.HexToAddress("0x01")
	tx, err := ctypes.SignNewTx(key, ctypes.NewSigner(big.NewInt(2)), &ctypes.LegacyTx{
		Nonce:    0,
		GasPrice: big.NewInt(1),
		Gas:      21000,
		To:       &to,
		Value:    big.NewInt(1),
	})
	require.NoError(t, err)
	raw, err := tx.MarshalBinary()
	require.NoError(t, err)

	_, err = l.SendRawTransaction(&types.SendRawTransactionRequest{Raw: hexutil.Encode(raw)})
	require.Error(t, err)

	// The rejection is recorded for the submitter to inspect.
	status, ok := svcCtx.Tracker.Status(tx.Hash())
	require.True(t, ok)
	require.Equal(t, "rejected", status.String())
}

func TestGetAndRemoveTransaction(t *testing.T) {
	svcCtx := newTestSvc(t)
	ctx := context.Background()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	rich, err := NewSendRawTransactionLogic(ctx, svcCtx).SendRawTransaction(&types.SendRawTransactionRequest{Raw: rawEnvelope(t, key, 0, 10)})
	require.NoError(t, err)

	hash := rich.Transaction.Hash.Hex()

	record, err := NewGetTransactionLogic(ctx, svcCtx).GetTransaction(&types.TransactionHashRequest{Hash: hash})
	require.NoError(t, err)
	require.Equal(t, rich.Transaction.Hash, record.Hash)

	resp, err := NewRemoveTransactionLogic(ctx, svcCtx).RemoveTransaction(&types.TransactionHashRequest{Hash: hash})
	require.NoError(t, err)
	require.True(t, resp.Removed)

	// The record survives cancellation through its status; unknown hashes
	// are the only not-found case.
	record, err = NewGetTransactionLogic(ctx, svcCtx).GetTransaction(&types.TransactionHashRequest{Hash: hash})
	require.NoError(t, err)
	require.Equal(t, rich.Transaction.Hash, record.Hash)

	_, err = NewGetTransactionLogic(ctx, svcCtx).GetTransaction(&types.TransactionHashRequest{Hash: common.HexToHash("0xff").Hex()})
	require.ErrorIs(t, err, ErrTxNotFound)

	statuses, err := NewLocalTransactionsLogic(ctx, svcCtx).LocalTransactions()
	require.NoError(t, err)
	require.Equal(t, "canceled", statuses[rich.Transaction.Hash].String())
}
