package types

// SendRawTransactionRequest carries the hex-encoded wire bytes of a signed
// transaction envelope of any generation.
type SendRawTransactionRequest struct {
	Raw string `json:"raw"`
}

// TransactionHashRequest addresses a tracked transaction by its identifier.
type TransactionHashRequest struct {
	Hash string `path:"hash"`
}

// RemoveTransactionResponse reports the outcome of a cancellation.
type RemoveTransactionResponse struct {
	Removed bool `json:"removed"`
}
