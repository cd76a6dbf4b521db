package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/gregLibert/ykoath/pkg/ykoath"
	"github.com/urfave/cli/v3"
)

var errHOTPNotSupported = errors.New("HOTP is not supported")

// CodeCommand creates the code command
func CodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "code",
		Usage: "Print the current TOTP code of one account",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Usage:    "Account name, as listed",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "direct",
				Usage: "Skip CALCULATE ALL and calculate the account directly",
			},
		},
		Action: runCodeCommand,
	}
}

func runCodeCommand(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")
	w := cmd.Root().Writer

	return withClient(cmd, func(client *ykoath.Client, _ *ykoath.SelectResponse) error {
		chal := challenge()

		if !cmd.Bool("direct") {
			entries, err := client.CalculateAll(chal, true)
			if err != nil {
				return err
			}

			entry, err := entries.Find(name)
			if err != nil {
				return err
			}

			switch entry.Kind {
			case ykoath.KindHOTP:
				return errHOTPNotSupported
			case ykoath.KindTOTP:
				fmt.Fprintln(w, entry.Response.Code())
				return nil
			case ykoath.KindTouch:
				fmt.Fprintln(cmd.Root().ErrWriter, "Touch YubiKey ...")
			}
		}

		resp, err := client.Calculate(name, chal, true)
		if err != nil {
			return err
		}

		fmt.Fprintln(w, resp.Code())
		return nil
	})
}
