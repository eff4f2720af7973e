package app

import (
	cli2 "github.com/MON4LX-FINANCE/frontier/turbo/cli"
	"github.com/urfave/cli/v2"
)

func MakeApp(name string, action cli.ActionFunc, cliFlags []cli.Flag) *cli.App {
	app := cli2.NewApp()
	app.Name = name
	app.Usage = name
	app.UsageText = app.Name + ` [command] [flags]`
	app.Action = action
	app.Flags = cliFlags

	return app
}
