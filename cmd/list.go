package cmd

import (
	"context"
	"fmt"

	"github.com/gregLibert/ykoath/pkg/ykoath"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
)

// ListCommand creates the list command
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "Calculate every TOTP account in one exchange",
		Action: runListCommand,
	}
}

func runListCommand(ctx context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer

	return withClient(cmd, func(client *ykoath.Client, _ *ykoath.SelectResponse) error {
		entries, err := client.CalculateAll(challenge(), true)
		if err != nil {
			return err
		}

		var accounts []ykoath.BulkResponse
		for entry, err := range entries.All() {
			if err != nil {
				return fmt.Errorf("decoding accounts: %w", err)
			}
			accounts = append(accounts, entry)
		}

		width := lo.Max(lo.Map(accounts, func(a ykoath.BulkResponse, _ int) int {
			return len(a.Name)
		}))
		for _, a := range accounts {
			fmt.Fprintf(w, "%-*s  %s\n", width, a.Name, display(a))
		}
		return nil
	})
}

func display(entry ykoath.BulkResponse) string {
	switch entry.Kind {
	case ykoath.KindTouch:
		return "[touch]"
	case ykoath.KindHOTP:
		return "[hotp]"
	default:
		return entry.Response.Code()
	}
}
