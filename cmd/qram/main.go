// Command qram drives the fountain codec core against ordinary files: it
// stands in for a barcode display/camera pair, reading or writing a
// newline-delimited base64 packet transcript in place of an actual
// optical channel.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/qram-go/qram-core/build"
	"github.com/qram-go/qram-core/config"
)

var cfgFlag = cli.StringFlag{
	Name:  "config",
	Usage: "path to a qram.toml configuration file",
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx.GlobalString("config"))
	if err != nil {
		return nil, err
	}
	if err := build.InitBackend(os.Stderr, cfg.Logging.Level); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	app := cli.NewApp()
	app.Name = "qram"
	app.Usage = "send and receive files over an LT fountain-coded packet transcript"
	app.Flags = []cli.Flag{cfgFlag}
	app.Commands = []cli.Command{
		encodeCommand,
		decodeCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "qram: %v\n", err)
		os.Exit(1)
	}
}
