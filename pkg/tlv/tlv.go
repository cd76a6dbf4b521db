// Package tlv implements the simple Tag-Length-Value encoding used by the
// YKOATH application.
//
// Unlike BER-TLV, every entry is exactly one tag byte, one length byte and
// up to 255 value bytes. Entries are never nested.
//
//	+-----+-----+-----------------+
//	| TAG | LEN | VALUE (LEN)     |
//	+-----+-----+-----------------+
package tlv

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// MaxValueLength is the largest value encodable with a single length byte.
const MaxValueLength = 255

var (
	// ErrInsufficientData is returned when a buffer is shorter than a
	// length field declares.
	ErrInsufficientData = errors.New("response does not have enough length")

	// ErrValueTooLong is returned when a value does not fit in one length byte.
	ErrValueTooLong = errors.New("tlv value exceeds 255 bytes")
)

// UnexpectedValueError reports a byte that is not valid at a decode site,
// typically a tag outside the expected set.
type UnexpectedValueError struct {
	Value byte
}

func (e *UnexpectedValueError) Error() string {
	return fmt.Sprintf("unexpected value (0x%02x)", e.Value)
}

// Append encodes (tag, len(value), value) at the end of dst.
func Append(dst []byte, tag byte, value []byte) ([]byte, error) {
	if len(value) > MaxValueLength {
		return dst, fmt.Errorf("tag 0x%02X: %w (got %d)", tag, ErrValueTooLong, len(value))
	}
	dst = append(dst, tag, byte(len(value)))
	return append(dst, value...), nil
}

// Reader is a forward-only cursor over a TLV encoded buffer.
// Values returned by Pop alias the underlying buffer.
type Reader struct {
	buf []byte
}

// NewReader creates a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pop decodes the entry at the cursor. The tag must be one of expected.
// On failure the cursor does not move.
func (r *Reader) Pop(expected ...byte) (byte, []byte, error) {
	if len(r.buf) < 1 {
		return 0, nil, ErrInsufficientData
	}

	tag := r.buf[0]
	if !lo.Contains(expected, tag) {
		return 0, nil, &UnexpectedValueError{Value: tag}
	}

	if len(r.buf) < 2 {
		return 0, nil, ErrInsufficientData
	}

	end := 2 + int(r.buf[1])
	if len(r.buf) < end {
		return 0, nil, ErrInsufficientData
	}

	value := r.buf[2:end:end]
	r.buf = r.buf[end:]
	return tag, value, nil
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.buf)
}

// Empty reports whether every byte has been consumed.
func (r *Reader) Empty() bool {
	return len(r.buf) == 0
}
