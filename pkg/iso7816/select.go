package iso7816

// SELECT COMMAND LOGIC (ISO 7816-4):
// The SELECT command (INS 'A4') opens a file or an application.
//
// P1 (Selection Method): how the target is designated.
// P2 (Selection Control): bits 4-3 response type, bits 2-1 occurrence.
//
// Applications on security keys are selected by DF name (their AID) with
// P2 = 00 (first occurrence, return FCI). The returned body is whatever the
// application chooses to send; YKOATH answers with its own TLV records.

// SelectionMethod defines how the file is targeted (P1).
type SelectionMethod byte

const (
	SelectByFileID SelectionMethod = 0x00
	SelectByDFName SelectionMethod = 0x04 // Select by AID
)

// NewSelectCommand creates a generic SELECT command returning the FCI of the
// first occurrence.
func NewSelectCommand(cla byte, method SelectionMethod, data []byte) *CommandAPDU {
	return NewCommandAPDU(cla, INS_SELECT, byte(method), 0x00, data)
}

// SelectByAID creates a SELECT command for an application name (AID).
func SelectByAID(cla byte, aid []byte) *CommandAPDU {
	return NewSelectCommand(cla, SelectByDFName, aid)
}
