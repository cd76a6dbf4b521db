/*
Package ykoath is a client for the YKOATH smart card application found on
YubiKeys and compatible tokens.

Protocol reference: https://developers.yubico.com/OATH/YKOATH_Protocol.html

Only the read side of the protocol is implemented: SELECT, CALCULATE and
CALCULATE ALL. Accounts are provisioned with other tools.

# Transport

A Client talks to the card through any Transmitter, a single blocking
request/response exchange of raw APDU bytes. Package pcsc provides one backed
by the system PC/SC service. When a reply ends in '61 XX' the Client sends
SEND REMAINING ('00 A5 00 00') until the card answers '90 00', and returns the
concatenated payload. Any other status word aborts the exchange and is mapped
to an error (see StatusError).

# Buffers

A Client reuses its command and receive buffers between calls. Byte slices in
a SelectResponse, and the BulkDecoder returned by CalculateAll, point into the
receive buffer: they are valid until the next command is sent on the same
Client. Response and BulkResponse only hold copied values.

# Usage

	client := ykoath.NewClient(card, ykoath.WithLogger(logger))
	if _, err := client.Select(); err != nil {
	    return err
	}

	entries, err := client.CalculateAll(ykoath.TOTPChallenge(time.Now(), ykoath.DefaultPeriod), true)
	if err != nil {
	    return err
	}

	// All stops after the first decode error.
	for entry, err := range entries.All() {
	    if err != nil {
	        return err
	    }
	    fmt.Println(entry.Name, entry.Response)
	}

A client is not safe for concurrent use.
*/
package ykoath
