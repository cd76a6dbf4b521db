package cmd

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/gregLibert/ykoath/pkg/ykoath"
	"github.com/urfave/cli/v3"
)

// InfoCommand creates the info command
func InfoCommand() *cli.Command {
	return &cli.Command{
		Name:   "info",
		Usage:  "Show the OATH application version and device identifier",
		Action: runInfoCommand,
	}
}

func runInfoCommand(ctx context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer

	return withClient(cmd, func(_ *ykoath.Client, selected *ykoath.SelectResponse) error {
		fmt.Fprintf(w, "Version:     %s\n", selected.VersionString())
		fmt.Fprintf(w, "Device ID:   %s\n", hex.EncodeToString(selected.Name))

		if auth, ok := selected.Auth.Get(); ok {
			fmt.Fprintf(w, "Access code: set (%s)\n", auth.Algorithm)
		} else {
			fmt.Fprintln(w, "Access code: not set")
		}
		return nil
	})
}
