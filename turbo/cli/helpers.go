package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const (
	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
)

// VERSION is the version string of the frontier node binary.
var VERSION = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)

// NewApp creates a frontier CLI app with sane defaults.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Version = VERSION
	app.Copyright = "Copyright The Frontier Authors"
	return app
}
