package node

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ledgerwatch/log/v3"
	"github.com/stretchr/testify/require"

	"github.com/MON4LX-FINANCE/frontier/node/nodecfg"
)

func newTestStore(t *testing.T) *TxStore {
	t.Helper()
	db, err := OpenDatabase(nodecfg.DefaultConfig("test", ""), log.New())
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return NewTxStore(db)
}

func TestTxStorePutGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	hash := common.HexToHash("0x01")
	raw := []byte{0xf8, 0x61, 0x03}

	require.NoError(t, store.Put(ctx, hash, raw))

	got, err := store.Get(ctx, hash)
	require.NoError(t, err)
	require.Equal(t, raw, got)

	// Absent keys return nil without error.
	got, err = store.Get(ctx, common.HexToHash("0x02"))
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestTxStoreDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	hash := common.HexToHash("0x01")
	require.NoError(t, store.Put(ctx, hash, []byte{0x01}))
	require.NoError(t, store.Delete(ctx, hash))

	got, err := store.Get(ctx, hash)
	require.NoError(t, err)
	require.Nil(t, got)

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete(ctx, hash))
}

func TestTxStoreWalk(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	want := map[common.Hash][]byte{
		common.HexToHash("0x01"): {0x0a},
		common.HexToHash("0x02"): {0x0b},
		common.HexToHash("0x03"): {0x0c},
	}
	for hash, raw := range want {
		require.NoError(t, store.Put(ctx, hash, raw))
	}

	got := make(map[common.Hash][]byte)
	require.NoError(t, store.Walk(ctx, func(hash common.Hash, raw []byte) error {
		got[hash] = raw
		return nil
	}))
	require.Equal(t, want, got)
}

func TestOpenDatabasePersistent(t *testing.T) {
	cfg := nodecfg.DefaultConfig("test", t.TempDir())

	db, err := OpenDatabase(cfg, log.New())
	require.NoError(t, err)

	store := NewTxStore(db)
	ctx := context.Background()
	hash := common.HexToHash("0xaa")
	require.NoError(t, store.Put(ctx, hash, []byte{0x01, 0x02}))
	db.Close()

	// Reopen and check the entry survived.
	db, err = OpenDatabase(cfg, log.New())
	require.NoError(t, err)
	defer db.Close()

	got, err := NewTxStore(db).Get(ctx, hash)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, got)
}
