// Package pcsc connects a ykoath.Client to a YubiKey through the system PC/SC
// service (pcsclite, WinSCard or the macOS CryptoTokenKit bridge).
package pcsc

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ebfe/scard"
	"github.com/gregLibert/ykoath/pkg/ykoath"
	"github.com/samber/lo"
)

// DefaultReader is matched against reader names when none is given.
const DefaultReader = "yubico yubikey"

// maxFrameSize is the short APDU receive limit: 256 data bytes, the status
// word and some driver slack.
const maxFrameSize = 264

// Card is an open connection to a reader. It implements ykoath.Transmitter
// and ykoath.FrameSizer.
type Card struct {
	ctx    *scard.Context
	card   *scard.Card
	logger *slog.Logger

	// Reader is the name of the connected reader.
	Reader string
}

// Open connects to the first reader whose name contains DefaultReader.
func Open(logger *slog.Logger) (*Card, error) {
	return OpenReader(DefaultReader, logger)
}

// OpenReader connects to the first reader whose name contains name,
// ignoring case. It returns ykoath.ErrNoDevice when nothing matches.
func OpenReader(name string, logger *slog.Logger) (*Card, error) {
	if logger == nil {
		logger = slog.Default()
	}

	ctx, err := scard.EstablishContext()
	if err != nil {
		return nil, fmt.Errorf("establishing context: %w", err)
	}

	readers, err := ctx.ListReaders()
	if err != nil && !errors.Is(err, scard.ErrNoReadersAvailable) {
		release(ctx, logger)
		return nil, fmt.Errorf("listing readers: %w", err)
	}
	logger.Debug("Readers", "names", readers)

	reader, ok := matchReader(readers, name)
	if !ok {
		release(ctx, logger)
		return nil, fmt.Errorf("%w (reader %q)", ykoath.ErrNoDevice, name)
	}

	// Force T=0 or T=1 to avoid "Parameter Incorrect" errors (Error 57)
	card, err := ctx.Connect(reader, scard.ShareShared, scard.ProtocolT0|scard.ProtocolT1)
	if err != nil {
		release(ctx, logger)
		return nil, fmt.Errorf("connecting to %q: %w", reader, err)
	}

	logger.Debug("Connected", "reader", reader)

	return &Card{
		ctx:    ctx,
		card:   card,
		logger: logger,
		Reader: reader,
	}, nil
}

// matchReader returns the first reader containing want, ignoring case.
func matchReader(readers []string, want string) (string, bool) {
	want = strings.ToLower(want)
	return lo.Find(readers, func(r string) bool {
		return strings.Contains(strings.ToLower(r), want)
	})
}

func release(ctx *scard.Context, logger *slog.Logger) {
	if err := ctx.Release(); err != nil {
		logger.Warn("Failed to release context", "error", err)
	}
}

// Transmit sends one raw command APDU and returns the raw reply.
func (c *Card) Transmit(cmd []byte) ([]byte, error) {
	return c.card.Transmit(cmd)
}

// MaxFrameSize returns the largest reply a single Transmit can carry.
func (c *Card) MaxFrameSize() int {
	return maxFrameSize
}

// Close disconnects from the card, leaving it powered, and releases the
// PC/SC context. The first error encountered is returned.
func (c *Card) Close() error {
	disconnectErr := c.card.Disconnect(scard.LeaveCard)
	releaseErr := c.ctx.Release()

	if disconnectErr != nil {
		return fmt.Errorf("disconnecting card: %w", disconnectErr)
	}
	if releaseErr != nil {
		return fmt.Errorf("releasing context: %w", releaseErr)
	}
	return nil
}

var (
	_ ykoath.Transmitter = (*Card)(nil)
	_ ykoath.FrameSizer  = (*Card)(nil)
)
