package ykoath

import (
	"encoding/binary"
	"time"
)

// DefaultPeriod is the TOTP time step used by YubiKey accounts unless
// configured otherwise.
const DefaultPeriod = 30 * time.Second

// TOTPChallenge returns the 8 byte big-endian time step counter for t.
// Periods shorter than one second fall back to DefaultPeriod.
func TOTPChallenge(t time.Time, period time.Duration) []byte {
	if period < time.Second {
		period = DefaultPeriod
	}
	step := t.Unix() / int64(period/time.Second)
	return binary.BigEndian.AppendUint64(make([]byte, 0, 8), uint64(step))
}
