package utils

import (
	"fmt"
	"os"

	"github.com/MON4LX-FINANCE/frontier/params"
	"github.com/urfave/cli/v2"
)

var (
	// General settings
	DataDirFlag = &cli.StringFlag{
		Name:  "datadir",
		Usage: "Data directory for the local transaction store (empty keeps it in memory)",
	}
	ChainIDFlag = &cli.Uint64Flag{
		Name:  "chainid",
		Usage: "Chain id used for sender recovery and replay protection",
		Value: params.MainnetChainConfig.ChainID.Uint64(),
	}
	ConfigFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "YAML configuration file; flags override its values",
	}

	// HTTP settings
	HTTPHostFlag = &cli.StringFlag{
		Name:  "http.addr",
		Usage: "HTTP server listening interface",
		Value: "0.0.0.0",
	}
	HTTPPortFlag = &cli.IntFlag{
		Name:  "http.port",
		Usage: "HTTP server listening port",
		Value: 8545,
	}
)

// Fatalf formats a message to standard error and exits the program.
func Fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Fatal: "+format+"\n", args...)
	os.Exit(1)
}
