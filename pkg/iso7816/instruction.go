package iso7816

import (
	"fmt"
)

// Instruction Byte (INS) Logic according to ISO/IEC 7816-4.
//
// INS values where the upper nibble is '6' or '9' (0x6X or 0x9X) are invalid.
// These values are reserved for Status Words (SW1) or transport layer control
// procedures (ISO/IEC 7816-3).
//
// Applications are free to define proprietary instructions outside the
// interindustry table; YKOATH does so for CALCULATE (A2) and SEND REMAINING (A5),
// and reuses A4 for CALCULATE ALL when P1 is 00.

// InsCode is a typed representation of the instruction byte.
type InsCode byte

// INS_SELECT is the interindustry SELECT instruction.
const INS_SELECT InsCode = 0xA4

// Validate rejects '6X' and '9X' values as they are invalid according to ISO 7816-3.
func (i InsCode) Validate() error {
	highNibble := byte(i) & 0xF0
	if highNibble == 0x60 || highNibble == 0x90 {
		return fmt.Errorf("invalid INS 0x%02X: 6X and 9X are reserved", byte(i))
	}
	return nil
}

func (i InsCode) String() string {
	switch i {
	case INS_SELECT:
		return "INS_SELECT"
	default:
		return fmt.Sprintf("InsCode(0x%02X)", byte(i))
	}
}

// Verbose returns a human-readable description of the instruction.
func (i InsCode) Verbose() string {
	return fmt.Sprintf("INS: 0x%02X | Command: %s", byte(i), i.String())
}
