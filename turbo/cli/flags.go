package cli

import (
	"github.com/MON4LX-FINANCE/frontier/cmd/utils"
	"github.com/urfave/cli/v2"
)

// DefaultFlags is the flag set of the frontier node binary.
var DefaultFlags = []cli.Flag{
	utils.ConfigFlag,
	utils.DataDirFlag,
	utils.ChainIDFlag,
	utils.HTTPHostFlag,
	utils.HTTPPortFlag,
}
