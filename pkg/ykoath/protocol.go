package ykoath

import (
	"github.com/gregLibert/ykoath/pkg/iso7816"
)

// AID is the application identifier of the YKOATH applet.
var AID = []byte{0xA0, 0x00, 0x00, 0x05, 0x27, 0x21, 0x01}

// Instructions.
const (
	INS_CALCULATE      iso7816.InsCode = 0xA2
	INS_CALCULATE_ALL  iso7816.InsCode = 0xA4 // same byte as SELECT, P1 = 00
	INS_SEND_REMAINING iso7816.InsCode = 0xA5
)

// TLV tags.
const (
	TagName      byte = 0x71
	TagChallenge byte = 0x74
	TagResponse  byte = 0x75 // full HMAC
	TagTruncated byte = 0x76 // truncated response
	TagHOTP      byte = 0x77
	TagVersion   byte = 0x79
	TagAlgorithm byte = 0x7B
	TagTouch     byte = 0x7C
)

const classISO byte = 0x00

// responseTag is the tag the card uses for a calculated code.
func responseTag(truncate bool) byte {
	if truncate {
		return TagTruncated
	}
	return TagResponse
}

// truncateP2 encodes the truncation request in P2.
func truncateP2(truncate bool) byte {
	if truncate {
		return 0x01
	}
	return 0x00
}
