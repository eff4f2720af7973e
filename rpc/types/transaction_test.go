package types

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	ctypes "github.com/MON4LX-FINANCE/frontier/core/types"
	"github.com/MON4LX-FINANCE/frontier/params"
)

var testChainID = params.TestChainConfig.ChainID

func signedTx(t *testing.T, inner ctypes.TxData) *ctypes.Transaction {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	tx, err := ctypes.SignNewTx(key, ctypes.MakeSigner(params.TestChainConfig), inner)
	require.NoError(t, err)
	return tx
}

func jsonFields(t *testing.T, v any) map[string]json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	return fields
}

func TestNewTransactionLegacy(t *testing.T) {
	to := common.HexToAddress("0xb94f5374fce5edbc8e2a8697c15331677e6ebf0b")
	tx := signedTx(t, &ctypes.LegacyTx{
		Nonce:    3,
		GasPrice: big.NewInt(1),
		Gas:      2000,
		To:       &to,
		Value:    big.NewInt(10),
		Data:     []byte{0x55, 0x44},
	})

	record := NewTransaction(tx)

	require.Equal(t, crypto.Keccak256Hash(record.Raw), record.Hash)
	require.Equal(t, tx.Hash(), record.Hash)

	// Only the legacy fee field is populated.
	require.NotNil(t, record.GasPrice)
	require.Nil(t, record.MaxFeePerGas)
	require.Nil(t, record.MaxPriorityFeePerGas)
	require.Nil(t, record.AccessList)

	require.NotNil(t, record.ChainID)
	require.EqualValues(t, testChainID.Uint64(), *record.ChainID)

	// V carries replay protection, standardV is the bare recovery id.
	parity := new(big.Int).Sub(record.V.ToInt(), big.NewInt(35))
	parity.Mod(parity, big.NewInt(2))
	require.Zero(t, record.StandardV.ToInt().Cmp(parity))
	require.True(t, record.StandardV.ToInt().Uint64() < 2)

	// The raw bytes decode back to the same identifier.
	decoded := new(ctypes.Transaction)
	require.NoError(t, decoded.UnmarshalBinary(record.Raw))
	require.Equal(t, record.Hash, decoded.Hash())
}

func TestNewTransactionUnprotectedLegacy(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	to := common.HexToAddress("0x01")
	tx, err := ctypes.SignNewTx(key, ctypes.NewSigner(nil), &ctypes.LegacyTx{
		Nonce:    0,
		GasPrice: big.NewInt(1),
		Gas:      21000,
		To:       &to,
		Value:    big.NewInt(0),
	})
	require.NoError(t, err)

	record := NewTransaction(tx)
	require.Nil(t, record.ChainID)

	fields := jsonFields(t, record)
	require.NotContains(t, fields, "chainId")
}

func TestNewTransactionAccessList(t *testing.T) {
	to := common.HexToAddress("0x02")
	tx := signedTx(t, &ctypes.AccessListTx{
		ChainID:  testChainID,
		Nonce:    1,
		GasPrice: big.NewInt(30),
		Gas:      60000,
		To:       &to,
		Value:    big.NewInt(5),
		AccessList: ctypes.AccessList{{
			Address:     common.HexToAddress("0x01"),
			StorageKeys: []common.Hash{common.HexToHash("0x02")},
		}},
	})

	record := NewTransaction(tx)

	require.NotNil(t, record.GasPrice)
	require.Nil(t, record.MaxFeePerGas)
	require.Nil(t, record.MaxPriorityFeePerGas)

	require.NotNil(t, record.AccessList)
	require.Len(t, *record.AccessList, 1)
	require.Equal(t, 1, record.AccessList.StorageKeys())

	// Typed envelopes carry the bare parity bit in both v and standardV.
	require.Zero(t, record.V.ToInt().Cmp(record.StandardV.ToInt()))
	require.True(t, record.V.ToInt().Uint64() < 2)

	require.NotNil(t, record.ChainID)
	require.EqualValues(t, testChainID.Uint64(), *record.ChainID)
}

func TestNewTransactionDynamicFee(t *testing.T) {
	to := common.HexToAddress("0x03")
	tx := signedTx(t, &ctypes.DynamicFeeTx{
		ChainID:   testChainID,
		Nonce:     2,
		GasTipCap: big.NewInt(10),
		GasFeeCap: big.NewInt(100),
		Gas:       60000,
		To:        &to,
		Value:     big.NewInt(5),
	})

	record := NewTransaction(tx)

	require.Nil(t, record.GasPrice)
	require.NotNil(t, record.MaxFeePerGas)
	require.NotNil(t, record.MaxPriorityFeePerGas)
	require.Zero(t, record.MaxFeePerGas.ToInt().Cmp(big.NewInt(100)))
	require.Zero(t, record.MaxPriorityFeePerGas.ToInt().Cmp(big.NewInt(10)))
	require.NotNil(t, record.AccessList)

	fields := jsonFields(t, record)
	require.NotContains(t, fields, "gasPrice")
	require.JSONEq(t, `"0x64"`, string(fields["maxFeePerGas"]))
	require.JSONEq(t, `"0xa"`, string(fields["maxPriorityFeePerGas"]))
}

func TestTransactionJSONShape(t *testing.T) {
	// Contract creation with zero value: optional fields stay out, zero
	// always-present fields stay in.
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	tx, err := ctypes.SignTx(
		ctypes.NewContractCreation(0, big.NewInt(0), 53000, big.NewInt(0), []byte{0x60, 0x00}),
		ctypes.MakeSigner(params.TestChainConfig), key)
	require.NoError(t, err)

	fields := jsonFields(t, NewTransaction(tx))

	for _, name := range []string{"hash", "nonce", "from", "value", "gas", "input", "raw", "standardV", "v", "r", "s"} {
		require.Contains(t, fields, name)
	}
	for _, name := range []string{"to", "blockHash", "blockNumber", "transactionIndex", "creates", "publicKey", "maxFeePerGas", "maxPriorityFeePerGas", "accessList"} {
		require.NotContains(t, fields, name)
	}

	require.JSONEq(t, `"0x0"`, string(fields["nonce"]))
	require.JSONEq(t, `"0x0"`, string(fields["value"]))
	require.JSONEq(t, `"0x0"`, string(fields["gasPrice"]))
}

func TestNewRichRawTransaction(t *testing.T) {
	to := common.HexToAddress("0x04")
	tx := signedTx(t, &ctypes.LegacyTx{
		Nonce:    9,
		GasPrice: big.NewInt(7),
		Gas:      21000,
		To:       &to,
		Value:    big.NewInt(1),
	})

	rich := NewRichRawTransaction(tx)
	require.Equal(t, rich.Transaction.Raw, rich.Raw)

	fields := jsonFields(t, rich)
	require.Contains(t, fields, "raw")
	require.Contains(t, fields, "tx")
}
