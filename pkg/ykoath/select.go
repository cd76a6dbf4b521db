package ykoath

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/gregLibert/ykoath/pkg/iso7816"
	"github.com/gregLibert/ykoath/pkg/tlv"
	"github.com/samber/mo"
)

// SELECT RESPONSE:
//
//	79 LL <version>     firmware version, one byte per component
//	71 LL <name>        device identifier (salt for the access code)
//	74 LL <challenge>   only when an access code is set
//	7B 01 <algorithm>   only when an access code is set

// Algorithm identifies the HMAC used by the device.
type Algorithm byte

const (
	HmacSha1   Algorithm = 0x01
	HmacSha256 Algorithm = 0x02
	HmacSha512 Algorithm = 0x03
)

func (a Algorithm) String() string {
	switch a {
	case HmacSha1:
		return "HMAC-SHA1"
	case HmacSha256:
		return "HMAC-SHA256"
	case HmacSha512:
		return "HMAC-SHA512"
	default:
		return fmt.Sprintf("Algorithm(0x%02X)", byte(a))
	}
}

// AuthChallenge is present when the application is protected by an access code.
type AuthChallenge struct {
	Challenge []byte
	Algorithm Algorithm
}

// SelectResponse is the decoded answer to SELECT.
// Version, Name and Auth.Challenge alias the client's receive buffer.
type SelectResponse struct {
	Version []byte
	Name    []byte
	Auth    mo.Option[AuthChallenge]
}

// VersionString renders the version bytes as "5.4.3".
func (r *SelectResponse) VersionString() string {
	parts := make([]string, len(r.Version))
	for i, b := range r.Version {
		parts[i] = strconv.Itoa(int(b))
	}
	return strings.Join(parts, ".")
}

// Select selects the YKOATH application and decodes its identity.
func (c *Client) Select() (*SelectResponse, error) {
	payload, err := c.Send(iso7816.SelectByAID(classISO, AID))
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}

	resp, err := parseSelect(payload)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}

	c.logger.Debug("Application selected",
		"version", resp.VersionString(),
		"name", hex.EncodeToString(resp.Name),
		"protected", resp.Auth.IsPresent(),
	)
	return resp, nil
}

func parseSelect(payload []byte) (*SelectResponse, error) {
	r := tlv.NewReader(payload)

	_, version, err := r.Pop(TagVersion)
	if err != nil {
		return nil, err
	}
	_, name, err := r.Pop(TagName)
	if err != nil {
		return nil, err
	}

	resp := &SelectResponse{
		Version: version,
		Name:    name,
		Auth:    mo.None[AuthChallenge](),
	}
	if r.Empty() {
		return resp, nil
	}

	_, challenge, err := r.Pop(TagChallenge)
	if err != nil {
		return nil, err
	}
	_, algorithm, err := r.Pop(TagAlgorithm)
	if err != nil {
		return nil, err
	}

	alg, err := parseAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}

	resp.Auth = mo.Some(AuthChallenge{
		Challenge: challenge,
		Algorithm: alg,
	})
	return resp, nil
}

// parseAlgorithm accepts exactly one byte in 1..3. A value of any other
// length is reported through its length.
func parseAlgorithm(value []byte) (Algorithm, error) {
	if len(value) != 1 {
		return 0, &UnexpectedValueError{Value: byte(len(value))}
	}

	switch alg := Algorithm(value[0]); alg {
	case HmacSha1, HmacSha256, HmacSha512:
		return alg, nil
	default:
		return 0, &UnexpectedValueError{Value: value[0]}
	}
}
