package types

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// statusKind discriminates the arms of LocalTransactionStatus.
type statusKind uint8

const (
	statusPending statusKind = iota
	statusFuture
	statusMined
	statusCulled
	statusDropped
	statusReplaced
	statusRejected
	statusInvalid
	statusCanceled
)

// LocalTransactionStatus describes where a locally submitted transaction
// stands relative to the pending queue. It is a closed union: values are
// built through the arm constructors and each arm serializes only its own
// fields.
type LocalTransactionStatus struct {
	kind statusKind

	tx       *Transaction // all arms except pending and future
	reason   string       // rejected
	gasPrice *hexutil.Big // replaced: the replacement's gas price
	hash     common.Hash  // replaced: the replacement's hash
}

// PendingStatus marks a transaction currently in the pending queue.
func PendingStatus() LocalTransactionStatus {
	return LocalTransactionStatus{kind: statusPending}
}

// FutureStatus marks a transaction parked in the future part of the queue.
func FutureStatus() LocalTransactionStatus {
	return LocalTransactionStatus{kind: statusFuture}
}

// MinedStatus marks a transaction that was mined.
func MinedStatus(tx *Transaction) LocalTransactionStatus {
	return LocalTransactionStatus{kind: statusMined, tx: tx}
}

// CulledStatus marks a transaction removed from the queue without being
// mined.
func CulledStatus(tx *Transaction) LocalTransactionStatus {
	return LocalTransactionStatus{kind: statusCulled, tx: tx}
}

// DroppedStatus marks a transaction dropped because of queue limits.
func DroppedStatus(tx *Transaction) LocalTransactionStatus {
	return LocalTransactionStatus{kind: statusDropped, tx: tx}
}

// InvalidStatus marks a transaction that turned out to be invalid.
func InvalidStatus(tx *Transaction) LocalTransactionStatus {
	return LocalTransactionStatus{kind: statusInvalid, tx: tx}
}

// CanceledStatus marks a transaction canceled by its submitter.
func CanceledStatus(tx *Transaction) LocalTransactionStatus {
	return LocalTransactionStatus{kind: statusCanceled, tx: tx}
}

// RejectedStatus marks a transaction that never made it into the queue,
// with a human-readable reason.
func RejectedStatus(tx *Transaction, reason string) LocalTransactionStatus {
	return LocalTransactionStatus{kind: statusRejected, tx: tx, reason: reason}
}

// ReplacedStatus marks a transaction superseded by one with a higher gas
// price, recording the replacement's gas price and hash.
func ReplacedStatus(tx *Transaction, gasPrice *hexutil.Big, hash common.Hash) LocalTransactionStatus {
	return LocalTransactionStatus{kind: statusReplaced, tx: tx, gasPrice: gasPrice, hash: hash}
}

// Transaction returns the canonical record attached to the status, or nil
// for the pending and future arms.
func (s LocalTransactionStatus) Transaction() *Transaction {
	return s.tx
}

// String returns the status tag.
func (s LocalTransactionStatus) String() string {
	switch s.kind {
	case statusPending:
		return "pending"
	case statusFuture:
		return "future"
	case statusMined:
		return "mined"
	case statusCulled:
		return "culled"
	case statusDropped:
		return "dropped"
	case statusReplaced:
		return "replaced"
	case statusRejected:
		return "rejected"
	case statusInvalid:
		return "invalid"
	case statusCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler. The field set varies by arm: the
// bare arms carry only the status tag, most arms add the transaction, and
// the rejected and replaced arms append their extra payload. Fields of
// other arms never appear.
func (s LocalTransactionStatus) MarshalJSON() ([]byte, error) {
	type withTx struct {
		Status      string       `json:"status"`
		Transaction *Transaction `json:"transaction"`
	}

	switch s.kind {
	case statusPending, statusFuture:
		return json.Marshal(struct {
			Status string `json:"status"`
		}{s.String()})

	case statusMined, statusCulled, statusDropped, statusInvalid, statusCanceled:
		return json.Marshal(withTx{s.String(), s.tx})

	case statusRejected:
		return json.Marshal(struct {
			Status      string       `json:"status"`
			Transaction *Transaction `json:"transaction"`
			Error       string       `json:"error"`
		}{s.String(), s.tx, s.reason})

	case statusReplaced:
		return json.Marshal(struct {
			Status      string       `json:"status"`
			Transaction *Transaction `json:"transaction"`
			Hash        common.Hash  `json:"hash"`
			GasPrice    *hexutil.Big `json:"gasPrice"`
		}{s.String(), s.tx, s.hash, s.gasPrice})

	default:
		return json.Marshal(struct {
			Status string `json:"status"`
		}{s.String()})
	}
}
