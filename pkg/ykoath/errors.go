package ykoath

import (
	"errors"
	"fmt"

	"github.com/gregLibert/ykoath/pkg/iso7816"
	"github.com/gregLibert/ykoath/pkg/tlv"
)

var (
	// ErrTransport wraps any failure reported by the Transmitter.
	ErrTransport = errors.New("transport failure")

	// ErrNoDevice is returned when no YubiKey reader can be found.
	ErrNoDevice = errors.New("no YubiKey found")

	// ErrInsufficientData is returned when a reply is shorter than a length
	// field (or the status word trailer) requires.
	ErrInsufficientData = tlv.ErrInsufficientData

	// ErrInvalidName is returned when an account name is not valid UTF-8.
	ErrInvalidName = errors.New("non utf8 key name")

	// ErrNoSuchAccount is returned by BulkDecoder.Find when no entry matches.
	ErrNoSuchAccount = errors.New("no account")
)

// Errors mapped from status words.
var (
	ErrNoSpace      = errors.New("no space")
	ErrNoSuchObject = errors.New("no such object")
	ErrAuthRequired = errors.New("auth required")
	ErrWrongSyntax  = errors.New("wrong syntax")
	ErrGeneric      = errors.New("generic error")
)

// UnexpectedValueError reports a tag or field value that is not valid where
// it was found. It carries the offending byte.
type UnexpectedValueError = tlv.UnexpectedValueError

// UnknownStatusError is returned for a status word outside the YKOATH table.
type UnknownStatusError struct {
	Code iso7816.StatusWord
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown response code (0x%04x)", uint16(e.Code))
}
