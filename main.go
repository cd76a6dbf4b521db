package main

import (
	"context"
	"log"
	"os"

	"github.com/gregLibert/ykoath/cmd"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "ykoath",
		Usage: "Read OATH codes from a YubiKey over PC/SC",
		Flags: cmd.Flags(),
		Commands: []*cli.Command{
			cmd.InfoCommand(),
			cmd.ListCommand(),
			cmd.CodeCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
