package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[sdes] %v\n", err)
	os.Exit(1)
}

func main() {
	app := cli.NewApp()
	app.Name = "sdes"
	app.Usage = "шифрование текста упрощённым DES (S-DES)"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "loglevel",
			Value: defaultLogLevel,
			Usage: "уровень логирования: trace, debug, info, warn, error, critical, off",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		return setupLogging(ctx.GlobalString("loglevel"))
	}
	app.Commands = []cli.Command{
		keysCommand,
		encryptCommand,
		decryptCommand,
		demoCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}
