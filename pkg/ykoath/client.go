package ykoath

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"slices"

	"github.com/gregLibert/ykoath/pkg/iso7816"
)

// CLIENT & PROTOCOL LOGIC:
// The card answers with at most one transport frame per exchange. When more
// data is pending it ends the frame with '61 XX'. The client then sends
// SEND REMAINING ('00 A5 00 00') and appends each frame's body to the same
// buffer until '90 00' arrives.
//
// XX is advisory: SEND REMAINING carries no Le, so the card always returns the
// next full frame. Any other status word aborts the exchange and the partial
// payload is dropped.

// Transmitter abstracts the physical card connection.
type Transmitter interface {
	Transmit(cmd []byte) ([]byte, error)
}

// FrameSizer is implemented by transports that know their maximum single
// frame receive size. The client uses it to size the receive buffer.
type FrameSizer interface {
	MaxFrameSize() int
}

var sendRemaining = []byte{classISO, byte(INS_SEND_REMAINING), 0x00, 0x00}

// Client manages the communication with the YKOATH application.
type Client struct {
	card   Transmitter
	logger *slog.Logger

	cmd  []byte // encoded command, reused
	body []byte // TLV body under construction, reused
	buf  []byte // accumulated response payload, reused
}

// NewClient creates a new Client instance.
func NewClient(card Transmitter, opts ...Option) *Client {
	oo := NewOptions(opts...)

	return &Client{
		card:   card,
		logger: oo.Logger,
	}
}

// Send transmits a command, follows '61 XX' continuations and returns the
// full response payload without status word.
//
// The returned slice aliases the client's receive buffer and is overwritten
// by the next Send.
func (c *Client) Send(cmd *iso7816.CommandAPDU) ([]byte, error) {
	rawCmd, err := cmd.AppendTo(c.cmd[:0])
	if err != nil {
		return nil, fmt.Errorf("encoding error: %w", err)
	}
	c.cmd = rawCmd
	c.buf = c.buf[:0]

	c.logger.Debug("Sending command", "command", cmd.String())

	request := rawCmd
	for {
		if sizer, ok := c.card.(FrameSizer); ok {
			c.buf = slices.Grow(c.buf, sizer.MaxFrameSize())
		}

		c.trace("C-APDU", request)
		rawResp, err := c.card.Transmit(request)
		if err != nil {
			c.buf = c.buf[:0]
			return nil, fmt.Errorf("%w: %w", ErrTransport, err)
		}
		c.trace("R-APDU", rawResp)

		resp, err := iso7816.ParseResponseAPDU(rawResp)
		if err != nil {
			c.buf = c.buf[:0]
			return nil, fmt.Errorf("%w: %w", ErrInsufficientData, err)
		}

		switch outcome := Classify(resp.Status); outcome {
		case OutcomeSuccess:
			c.buf = append(c.buf, resp.Data...)
			c.trace("Response", c.buf)
			return c.buf, nil

		case OutcomeMoreData:
			c.buf = append(c.buf, resp.Data...)
			request = sendRemaining

		default:
			c.buf = c.buf[:0]
			c.logger.Debug("Command failed", "status", resp.Status.Verbose(), "outcome", outcome.String())
			return nil, StatusError(resp.Status)
		}
	}
}

func (c *Client) trace(msg string, data []byte) {
	ctx := context.Background()
	if !c.logger.Enabled(ctx, LevelTrace) {
		return
	}
	c.logger.Log(ctx, LevelTrace, msg, "hex", hex.EncodeToString(data))
}
