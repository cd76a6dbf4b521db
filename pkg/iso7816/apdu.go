package iso7816

import (
	"errors"
	"fmt"
)

// APDU (Application Protocol Data Unit) structures according to ISO/IEC 7816-3 and 7816-4.
//
// COMMAND APDU (C-APDU):
// A command consists of a mandatory Header (4 bytes) and an optional Body.
//
// 1. Header:
//   - CLA (Class): Security, Chaining, Logical Channel.
//   - INS (Instruction): The specific command to execute.
//   - P1, P2 (Parameters): Command modifiers.
//
// 2. Body:
//   - Lc (Length Command): Number of bytes in the data field.
//   - Data: The command payload.
//
// Only Short Length encoding is produced: Lc is a single byte, so the data
// field is limited to 255 bytes. No Le field is emitted; the card returns what
// it has and signals leftovers with '61 XX'.
//
// RESPONSE APDU (R-APDU):
// A response sent by the card consists of an optional Body and a mandatory Trailer.
//
// 1. Body (Data Field):
//   - Variable length sequence of bytes containing the response data.
//
// 2. Trailer (Status Word):
//   - SW1 (1 byte): Command processing status (High byte).
//   - SW2 (1 byte): Command processing qualification (Low byte).
//   - Example: 0x9000 indicates success.

const (
	// HeaderLen is the size of CLA INS P1 P2.
	HeaderLen = 4

	// MaxShortLc is the maximum data length (Nc) encodable in Short Length mode (1 byte).
	MaxShortLc = 255

	// TrailerLen is the size of SW1 SW2.
	TrailerLen = 2
)

var (
	// ErrDataTooLong is returned when the command data does not fit in a one byte Lc.
	ErrDataTooLong = errors.New("command data exceeds short APDU length")

	// ErrResponseTooShort is returned when a response lacks the status word.
	ErrResponseTooShort = errors.New("response too short")
)

// CommandAPDU represents a command sent to the card.
type CommandAPDU struct {
	Class       byte
	Instruction InsCode
	P1, P2      byte
	Data        []byte
}

// NewCommandAPDU creates a basic command.
func NewCommandAPDU(cla byte, ins InsCode, p1, p2 byte, data []byte) *CommandAPDU {
	return &CommandAPDU{
		Class:       cla,
		Instruction: ins,
		P1:          p1,
		P2:          p2,
		Data:        data,
	}
}

// AppendTo encodes the command at the end of dst.
// Lc is derived from the data length once the body is known; a command
// without data is encoded as the bare 4 byte header.
func (c *CommandAPDU) AppendTo(dst []byte) ([]byte, error) {
	if err := c.Instruction.Validate(); err != nil {
		return dst, err
	}

	nc := len(c.Data)
	if nc > MaxShortLc {
		return dst, fmt.Errorf("%w: %d bytes", ErrDataTooLong, nc)
	}

	dst = append(dst, c.Class, byte(c.Instruction), c.P1, c.P2)
	if nc > 0 {
		dst = append(dst, byte(nc))
		dst = append(dst, c.Data...)
	}
	return dst, nil
}

// Bytes encodes the CommandAPDU into its byte representation (C-APDU).
func (c *CommandAPDU) Bytes() ([]byte, error) {
	return c.AppendTo(make([]byte, 0, HeaderLen+1+len(c.Data)))
}

// String returns a readable representation of the command meta-data.
func (c *CommandAPDU) String() string {
	return fmt.Sprintf("CLA: %02X | %s | P1: %02X, P2: %02X | Lc: %d",
		c.Class, c.Instruction.Verbose(), c.P1, c.P2, len(c.Data))
}

// ResponseAPDU represents the reply from the card (R-APDU).
// Data aliases the buffer it was parsed from.
type ResponseAPDU struct {
	Data   []byte
	Status StatusWord
}

// ParseResponseAPDU splits raw bytes received from the card into body and trailer.
// The input must contain at least 2 bytes (SW1, SW2).
func ParseResponseAPDU(raw []byte) (*ResponseAPDU, error) {
	if len(raw) < TrailerLen {
		return nil, fmt.Errorf("%w: length %d", ErrResponseTooShort, len(raw))
	}

	indexSW1 := len(raw) - TrailerLen

	return &ResponseAPDU{
		Data:   raw[:indexSW1],
		Status: NewStatusWord(raw[indexSW1], raw[indexSW1+1]),
	}, nil
}

// String returns a readable representation of the response.
func (r *ResponseAPDU) String() string {
	return fmt.Sprintf("Data (%d bytes) | Status: %s", len(r.Data), r.Status.Verbose())
}
