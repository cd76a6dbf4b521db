package ykoath

import (
	"github.com/gregLibert/ykoath/pkg/iso7816"
)

// Outcome is the YKOATH interpretation of a status word.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeMoreData
	OutcomeNoSpace
	OutcomeNoSuchObject
	OutcomeAuthRequired
	OutcomeWrongSyntax
	OutcomeGenericError
	OutcomeUnknown
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeMoreData:
		return "more data"
	case OutcomeNoSpace:
		return "no space"
	case OutcomeNoSuchObject:
		return "no such object"
	case OutcomeAuthRequired:
		return "auth required"
	case OutcomeWrongSyntax:
		return "wrong syntax"
	case OutcomeGenericError:
		return "generic error"
	default:
		return "unknown"
	}
}

// Classify maps a status word to its Outcome. Every word maps to exactly one
// Outcome; words outside the table map to OutcomeUnknown.
func Classify(sw iso7816.StatusWord) Outcome {
	switch {
	case sw == iso7816.SW_NO_ERROR:
		return OutcomeSuccess
	case sw.HasMoreData():
		return OutcomeMoreData
	case sw == iso7816.SW_ERR_NOT_ENOUGH_MEMORY:
		return OutcomeNoSpace
	case sw == iso7816.SW_ERR_REF_DATA_NOT_USABLE:
		return OutcomeNoSuchObject
	case sw == iso7816.SW_ERR_SECURITY_STATUS_NOT_SAT:
		return OutcomeAuthRequired
	case sw == iso7816.SW_ERR_INCORRECT_PARAMS_DATA:
		return OutcomeWrongSyntax
	case sw == iso7816.SW_ERR_MEMORY_FAILURE:
		return OutcomeGenericError
	default:
		return OutcomeUnknown
	}
}

// StatusError returns the error carried by a status word, or nil when the
// word is 9000 or 61XX.
func StatusError(sw iso7816.StatusWord) error {
	switch Classify(sw) {
	case OutcomeSuccess, OutcomeMoreData:
		return nil
	case OutcomeNoSpace:
		return ErrNoSpace
	case OutcomeNoSuchObject:
		return ErrNoSuchObject
	case OutcomeAuthRequired:
		return ErrAuthRequired
	case OutcomeWrongSyntax:
		return ErrWrongSyntax
	case OutcomeGenericError:
		return ErrGeneric
	default:
		return &UnknownStatusError{Code: sw}
	}
}
