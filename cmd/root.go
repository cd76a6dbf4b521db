package cmd

import (
	"io"
	"log"
	"log/slog"
	"time"

	"github.com/gregLibert/ykoath/pkg/pcsc"
	"github.com/gregLibert/ykoath/pkg/ykoath"
	"github.com/urfave/cli/v3"
)

// card is the connection a command works on.
type card interface {
	ykoath.Transmitter
	io.Closer
}

// openCard and now are replaced in tests.
var (
	openCard = func(reader string, logger *slog.Logger) (card, error) {
		c, err := pcsc.OpenReader(reader, logger)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	now = time.Now
)

// Flags returns the flags shared by every command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "reader",
			Usage:   "PC/SC reader name, matched as a case-insensitive substring",
			Value:   pcsc.DefaultReader,
			Sources: cli.EnvVars("YKOATH_READER"),
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Log decoded exchanges on stderr",
			Sources: cli.EnvVars("YKOATH_VERBOSE"),
		},
		&cli.BoolFlag{
			Name:    "trace",
			Usage:   "Also log raw APDU frames in hex",
			Sources: cli.EnvVars("YKOATH_TRACE"),
		},
	}
}

func newLogger(cmd *cli.Command) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case cmd.Bool("trace"):
		level = ykoath.LevelTrace
	case cmd.Bool("verbose"):
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{Level: level}))
}

// withClient opens the reader, selects the application and runs fn.
// The SelectResponse is only valid until fn sends another command.
func withClient(cmd *cli.Command, fn func(*ykoath.Client, *ykoath.SelectResponse) error) error {
	logger := newLogger(cmd)

	c, err := openCard(cmd.String("reader"), logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.Printf("Warning: Failed to close card: %v", err)
		}
	}()

	client := ykoath.NewClient(c, ykoath.WithLogger(logger))

	selected, err := client.Select()
	if err != nil {
		return err
	}

	return fn(client, selected)
}

// challenge is the TOTP challenge for the current time step.
func challenge() []byte {
	return ykoath.TOTPChallenge(now(), ykoath.DefaultPeriod)
}
