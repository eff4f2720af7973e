package types

import (
	"github.com/ethereum/go-ethereum/common"
)

// AccessList is an ordered list of addresses and storage keys a transaction
// pre-declares. It exists from generation 1 onward; legacy transactions have
// none.
type AccessList []AccessTuple

// AccessTuple is the element type of an access list.
type AccessTuple struct {
	Address     common.Address `json:"address"`
	StorageKeys []common.Hash  `json:"storageKeys"`
}

// StorageKeys returns the total number of storage keys in the access list.
func (al AccessList) StorageKeys() int {
	sum := 0
	for _, tuple := range al {
		sum += len(tuple.StorageKeys)
	}
	return sum
}
