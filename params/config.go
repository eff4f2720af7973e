package params

import "math/big"

// ChainConfig holds the chain-scoped parameters the transaction layer needs.
type ChainConfig struct {
	ChainID *big.Int `json:"chainId"` // chainId identifies the current chain and is used for replay protection
}

var (
	// MainnetChainConfig is the configuration of the main network.
	MainnetChainConfig = &ChainConfig{
		ChainID: big.NewInt(1),
	}

	// TestChainConfig is the configuration used by the test suite.
	TestChainConfig = &ChainConfig{
		ChainID: big.NewInt(1337),
	}
)
