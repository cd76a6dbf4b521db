package ykoath

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"unicode/utf8"

	"github.com/gregLibert/ykoath/pkg/iso7816"
	"github.com/gregLibert/ykoath/pkg/tlv"
)

// CALCULATE ALL RESPONSE:
// A flat list of pairs, one per stored account:
//
//	71 LL <name>
//	76 LL <digits><value>   TOTP, truncated (75 when a full response was requested)
//	77 LL ...               HOTP account, not calculated
//	7C LL ...               touch required, issue CALCULATE for this name

// EntryKind tells how a bulk entry must be handled.
type EntryKind int

const (
	// KindTOTP entries carry a calculated Response.
	KindTOTP EntryKind = iota
	// KindHOTP entries cannot be calculated through CALCULATE ALL.
	KindHOTP
	// KindTouch entries need a user touch and a separate Calculate call.
	KindTouch
)

func (k EntryKind) String() string {
	switch k {
	case KindTOTP:
		return "totp"
	case KindHOTP:
		return "hotp"
	case KindTouch:
		return "touch"
	default:
		return fmt.Sprintf("EntryKind(%d)", int(k))
	}
}

// BulkResponse is one entry of a CALCULATE ALL answer.
// Response is only meaningful when Kind is KindTOTP.
type BulkResponse struct {
	Name     string
	Kind     EntryKind
	Response Response
}

// BulkDecoder lazily decodes a CALCULATE ALL answer, one entry per call.
//
// It is forward-only and single pass. The first decode error is sticky: the
// position of the cursor after a malformed entry is not meaningful, so every
// later call returns the same error instead of resuming.
//
// The decoder reads from the client's receive buffer; sending another command
// on the same Client invalidates it.
type BulkDecoder struct {
	r        *tlv.Reader
	truncate bool
	logger   *slog.Logger
	err      error
}

// CalculateAll asks the card to compute every TOTP account with one challenge.
//
//	00 A4 00 P2 Lc  74 <challenge>
func (c *Client) CalculateAll(challenge []byte, truncate bool) (*BulkDecoder, error) {
	body, err := tlv.Append(c.body[:0], TagChallenge, challenge)
	if err != nil {
		return nil, fmt.Errorf("calculate all: challenge: %w", err)
	}
	c.body = body

	cmd := iso7816.NewCommandAPDU(classISO, INS_CALCULATE_ALL, 0x00, truncateP2(truncate), body)
	payload, err := c.Send(cmd)
	if err != nil {
		return nil, fmt.Errorf("calculate all: %w", err)
	}

	return newBulkDecoder(payload, truncate, c.logger), nil
}

func newBulkDecoder(payload []byte, truncate bool, logger *slog.Logger) *BulkDecoder {
	return &BulkDecoder{
		r:        tlv.NewReader(payload),
		truncate: truncate,
		logger:   logger,
	}
}

// Next decodes the next entry. It returns io.EOF once the buffer is exhausted.
func (d *BulkDecoder) Next() (BulkResponse, error) {
	if d.err != nil {
		return BulkResponse{}, d.err
	}
	if d.r.Empty() {
		return BulkResponse{}, io.EOF
	}

	entry, err := d.decode()
	if err != nil {
		d.err = err
		return BulkResponse{}, err
	}

	d.logger.Debug("Bulk entry", "name", tlv.MakeSafeASCII([]byte(entry.Name)), "kind", entry.Kind.String())
	return entry, nil
}

func (d *BulkDecoder) decode() (BulkResponse, error) {
	_, name, err := d.r.Pop(TagName)
	if err != nil {
		return BulkResponse{}, err
	}

	tag, value, err := d.r.Pop(responseTag(d.truncate), TagHOTP, TagTouch)
	if err != nil {
		return BulkResponse{}, err
	}

	var entry BulkResponse
	switch tag {
	case TagHOTP:
		entry.Kind = KindHOTP
	case TagTouch:
		entry.Kind = KindTouch
	default:
		resp, err := parseResponse(value)
		if err != nil {
			return BulkResponse{}, err
		}
		entry.Kind = KindTOTP
		entry.Response = resp
	}

	if !utf8.Valid(name) {
		return BulkResponse{}, fmt.Errorf("%w: %q", ErrInvalidName, tlv.MakeSafeASCII(name))
	}
	entry.Name = string(name)

	return entry, nil
}

// All returns the remaining entries as a sequence. A decode error is yielded
// once, after which the sequence ends.
func (d *BulkDecoder) All() iter.Seq2[BulkResponse, error] {
	return func(yield func(BulkResponse, error) bool) {
		for {
			entry, err := d.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(BulkResponse{}, err)
				return
			}
			if !yield(entry, nil) {
				return
			}
		}
	}
}

// Find consumes entries until one is named name. A decode error met on the
// way is returned as is.
func (d *BulkDecoder) Find(name string) (BulkResponse, error) {
	for entry, err := range d.All() {
		if err != nil {
			return BulkResponse{}, err
		}
		if entry.Name == name {
			return entry, nil
		}
	}
	return BulkResponse{}, fmt.Errorf("%w: %s", ErrNoSuchAccount, name)
}
