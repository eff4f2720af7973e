// Package types holds the external representation of transactions: the
// canonical record every envelope generation is normalized into, the
// lifecycle status union and its serialization, and the pending-transaction
// bookkeeping shapes.
package types

import (
	"math/big"

	ctypes "github.com/MON4LX-FINANCE/frontier/core/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Transaction is the canonical external view of a signed transaction, the
// same shape for all three envelope generations. Optional fields are
// pointers and never appear in JSON output when unset; zero-valued
// always-present fields are still emitted.
type Transaction struct {
	// Hash is the keccak256 digest of Raw.
	Hash common.Hash `json:"hash"`
	// Nonce of the sender account.
	Nonce hexutil.Uint64 `json:"nonce"`
	// BlockHash, BlockNumber and TransactionIndex are unset until the
	// transaction is included in a block.
	BlockHash        *common.Hash    `json:"blockHash,omitempty"`
	BlockNumber      *hexutil.Big    `json:"blockNumber,omitempty"`
	TransactionIndex *hexutil.Uint64 `json:"transactionIndex,omitempty"`
	// From is zero at construction; filled by sender recovery.
	From common.Address `json:"from"`
	// To is nil for contract-creation transactions.
	To *common.Address `json:"to,omitempty"`
	// Value transferred, in wei.
	Value *hexutil.Big `json:"value"`
	// GasPrice is set for generations 0 and 1 only.
	GasPrice *hexutil.Big `json:"gasPrice,omitempty"`
	// MaxFeePerGas and MaxPriorityFeePerGas are set for generation 2 only.
	MaxFeePerGas         *hexutil.Big `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas *hexutil.Big `json:"maxPriorityFeePerGas,omitempty"`
	// Gas limit.
	Gas hexutil.Uint64 `json:"gas"`
	// Input data.
	Input hexutil.Bytes `json:"input"`
	// Creates is the created contract address, unset until execution.
	Creates *common.Address `json:"creates,omitempty"`
	// Raw is the exact wire encoding Hash is derived from.
	Raw hexutil.Bytes `json:"raw"`
	// PublicKey of the signer, unset until recovery.
	PublicKey *hexutil.Bytes `json:"publicKey,omitempty"`
	// ChainID is absent for unprotected legacy transactions.
	ChainID *hexutil.Uint64 `json:"chainId,omitempty"`
	// StandardV is the normalized recovery id (0 or 1).
	StandardV *hexutil.Big `json:"standardV"`
	// V is the raw V signature value.
	V *hexutil.Big `json:"v"`
	// R and S are the signature curve points.
	R *hexutil.Big `json:"r"`
	S *hexutil.Big `json:"s"`
	// AccessList is nil for the legacy generation, present (possibly empty)
	// from generation 1 onward.
	AccessList *ctypes.AccessList `json:"accessList,omitempty"`
}

// NewTransaction normalizes a decoded envelope of any generation into the
// canonical record. It is total over well-formed envelopes: the upstream
// decoder guarantees the input, so there is no error path.
//
// Block placement, sender, created contract and public key are left unset;
// they need context (inclusion, recovery, execution) this layer does not
// have.
func NewTransaction(tx *ctypes.Transaction) *Transaction {
	// The raw bytes are the envelope's exact wire encoding; the identifier
	// is their keccak256 digest. Re-encoding a decoded envelope cannot fail.
	raw, _ := tx.MarshalBinary()

	result := &Transaction{
		Hash:  crypto.Keccak256Hash(raw),
		Nonce: hexutil.Uint64(tx.Nonce()),
		To:    tx.To(),
		Value: (*hexutil.Big)(tx.Value()),
		Gas:   hexutil.Uint64(tx.Gas()),
		Input: tx.Data(),
		Raw:   raw,
	}

	v, r, s := tx.RawSignatureValues()
	result.R = (*hexutil.Big)(new(big.Int).Set(r))
	result.S = (*hexutil.Big)(new(big.Int).Set(s))

	switch tx.Type() {
	case ctypes.LegacyTxType:
		result.GasPrice = (*hexutil.Big)(tx.GasPrice())
		result.V = (*hexutil.Big)(new(big.Int).Set(v))
		result.StandardV = (*hexutil.Big)(legacyStandardV(v))
		if tx.Protected() {
			id := hexutil.Uint64(tx.ChainId().Uint64())
			result.ChainID = &id
		}
	case ctypes.AccessListTxType:
		result.GasPrice = (*hexutil.Big)(tx.GasPrice())
		result.V = (*hexutil.Big)(new(big.Int).Set(v))
		result.StandardV = (*hexutil.Big)(new(big.Int).Set(v))
		id := hexutil.Uint64(tx.ChainId().Uint64())
		result.ChainID = &id
		al := tx.AccessList()
		result.AccessList = &al
	case ctypes.DynamicFeeTxType:
		result.MaxFeePerGas = (*hexutil.Big)(tx.GasFeeCap())
		result.MaxPriorityFeePerGas = (*hexutil.Big)(tx.GasTipCap())
		result.V = (*hexutil.Big)(new(big.Int).Set(v))
		result.StandardV = (*hexutil.Big)(new(big.Int).Set(v))
		id := hexutil.Uint64(tx.ChainId().Uint64())
		result.ChainID = &id
		al := tx.AccessList()
		result.AccessList = &al
	}
	return result
}

// legacyStandardV normalizes a legacy V value to the 0/1 recovery id.
func legacyStandardV(v *big.Int) *big.Int {
	if v.BitLen() <= 64 {
		switch raw := v.Uint64(); {
		case raw == 27 || raw == 28:
			return new(big.Int).SetUint64(raw - 27)
		case raw >= 35:
			return new(big.Int).SetUint64((raw - 35) % 2)
		default:
			return new(big.Int).SetUint64(raw)
		}
	}
	// Replay-protected V with a huge chain id: parity is (v - 35) mod 2.
	res := new(big.Int).Sub(v, big.NewInt(35))
	return res.Mod(res, big.NewInt(2))
}

// RichRawTransaction pairs the wire bytes of a signed transaction with its
// canonical record.
type RichRawTransaction struct {
	Raw         hexutil.Bytes `json:"raw"`
	Transaction *Transaction  `json:"tx"`
}

// NewRichRawTransaction normalizes the envelope and wraps it together with
// its raw encoding.
func NewRichRawTransaction(tx *ctypes.Transaction) *RichRawTransaction {
	record := NewTransaction(tx)
	return &RichRawTransaction{
		Raw:         record.Raw,
		Transaction: record,
	}
}
