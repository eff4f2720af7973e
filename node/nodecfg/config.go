package nodecfg

import (
	"github.com/c2h5oh/datasize"
	"github.com/ledgerwatch/erigon-lib/common/datadir"
	"github.com/ledgerwatch/erigon-lib/kv"
)

// Config holds the storage-side configuration of a node: where the instance
// directory lives and how the mdbx environment is sized. An empty DataDir
// selects an in-memory database.
type Config struct {
	Name string `toml:"-"`

	Dirs datadir.Dirs

	DatabaseVerbosity kv.DBVerbosityLvl

	MdbxPageSize    datasize.ByteSize
	MdbxDBSizeLimit datasize.ByteSize
	MdbxGrowthStep  datasize.ByteSize
}

// DefaultConfig returns a config rooted at dataDir. An empty dataDir leaves
// Dirs zero, which makes OpenDatabase pick an in-memory environment.
func DefaultConfig(name, dataDir string) *Config {
	c := &Config{Name: name}
	if dataDir != "" {
		c.Dirs = datadir.New(dataDir)
	}
	return c
}
