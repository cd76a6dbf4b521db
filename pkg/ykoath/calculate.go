package ykoath

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gregLibert/ykoath/pkg/iso7816"
	"github.com/gregLibert/ykoath/pkg/tlv"
)

// Response is a calculated OTP: the digit count and the 4 byte big-endian
// value returned by the card. For a full (non truncated) response only the
// first four bytes after the digit count are kept.
type Response struct {
	Digits uint8
	Value  uint32
}

// Code formats the OTP: Value modulo 10^Digits, zero padded to Digits characters.
func (r Response) Code() string {
	mod := uint64(1)
	for i := uint8(0); i < r.Digits && mod <= math.MaxUint32; i++ {
		mod *= 10
	}
	return fmt.Sprintf("%0*d", int(r.Digits), uint64(r.Value)%mod)
}

func (r Response) String() string {
	return r.Code()
}

func parseResponse(value []byte) (Response, error) {
	if len(value) < 1+4 {
		return Response{}, ErrInsufficientData
	}
	return Response{
		Digits: value[0],
		Value:  binary.BigEndian.Uint32(value[1:5]),
	}, nil
}

// Calculate asks the card to compute the OTP of one account.
//
//	00 A2 00 P2 Lc  71 <name>  74 <challenge>
//
// P2 = 01 requests a truncated response (tag 76), 00 a full one (tag 75).
func (c *Client) Calculate(name string, challenge []byte, truncate bool) (Response, error) {
	body, err := tlv.Append(c.body[:0], TagName, []byte(name))
	if err != nil {
		return Response{}, fmt.Errorf("calculate: name: %w", err)
	}
	body, err = tlv.Append(body, TagChallenge, challenge)
	if err != nil {
		return Response{}, fmt.Errorf("calculate: challenge: %w", err)
	}
	c.body = body

	cmd := iso7816.NewCommandAPDU(classISO, INS_CALCULATE, 0x00, truncateP2(truncate), body)
	payload, err := c.Send(cmd)
	if err != nil {
		return Response{}, fmt.Errorf("calculate: %w", err)
	}

	_, value, err := tlv.NewReader(payload).Pop(responseTag(truncate))
	if err != nil {
		return Response{}, fmt.Errorf("calculate: %w", err)
	}

	resp, err := parseResponse(value)
	if err != nil {
		return Response{}, fmt.Errorf("calculate: %w", err)
	}

	c.logger.Debug("Calculated", "name", tlv.MakeSafeASCII([]byte(name)), "digits", resp.Digits)
	return resp, nil
}
