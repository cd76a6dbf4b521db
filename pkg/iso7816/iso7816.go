/*
Package iso7816 implements the APDU framing layer of the ISO/IEC 7816 standard
as far as security-key applications need it.

It provides Command and Response APDU structures and Status Word (SW)
analysis. Application protocols such as YKOATH build on top of it and decide
how each status word is interpreted.

# Fundamentals

The communication with a smart card is strictly synchronous:
 1. The Host sends a Command APDU (Header + Optional Body).
 2. The Card processes it and returns a Response APDU (Optional Body + Trailer SW1/SW2).

# Status Words

Every response ends with a 2-byte Status Word (SW).
  - 0x9000: Success (OK).
  - 0x61XX: Success, but response data is still available (XX bytes).
  - Other: Various warning and error conditions.

# Usage Example

	cmd := iso7816.SelectByAID(0x00, aid)
	raw, err := cmd.Bytes()
	if err != nil {
	    return err
	}

	reply, err := card.Transmit(raw)
	if err != nil {
	    return err
	}

	resp, err := iso7816.ParseResponseAPDU(reply)
	if err != nil {
	    return err
	}
	fmt.Println(resp.Status.Verbose())
*/
package iso7816
