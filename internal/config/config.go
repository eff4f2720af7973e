package config

import "github.com/zeromicro/go-zero/rest"

type Config struct {
	rest.RestConf

	// ChainID selects the replay-protection domain for sender recovery.
	ChainID uint64 `json:",default=1"`
	// DataDir roots the local transaction store; empty keeps it in memory.
	DataDir string `json:",optional"`
}
