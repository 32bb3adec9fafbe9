package errs

import "errors"

// Kind classifies an error so that callers can branch without matching strings.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalid
	KindInvalidStage
	KindInvalidTransition
	KindUnknownItemType
	KindInvalidWeight
	KindDuplicateJob
	KindForbidden
	KindOutsideShiftWindow
	KindConflict
)

var kindSentinels = []struct {
	sentinel error
	kind     Kind
}{
	{ErrObjectNotFound, KindNotFound},
	{ErrInvalidStage, KindInvalidStage},
	{ErrInvalidTransition, KindInvalidTransition},
	{ErrUnknownItemType, KindUnknownItemType},
	{ErrInvalidWeight, KindInvalidWeight},
	{ErrDuplicateJob, KindDuplicateJob},
	{ErrForbidden, KindForbidden},
	{ErrOutsideShiftWindow, KindOutsideShiftWindow},
	{ErrVersionIsInvalid, KindConflict},
	{ErrValueIsInvalid, KindInvalid},
	{ErrValueIsOutOfRange, KindInvalid},
	{ErrValueIsRequired, KindInvalid},
}

// KindOf returns the kind of err. Workflow kinds take precedence over generic
// validation kinds when a joined error carries several of them.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	for _, ks := range kindSentinels {
		if errors.Is(err, ks.sentinel) {
			return ks.kind
		}
	}
	return KindInternal
}

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInvalid:
		return "Invalid"
	case KindInvalidStage:
		return "InvalidStage"
	case KindInvalidTransition:
		return "InvalidTransition"
	case KindUnknownItemType:
		return "UnknownItemType"
	case KindInvalidWeight:
		return "InvalidWeight"
	case KindDuplicateJob:
		return "DuplicateJob"
	case KindForbidden:
		return "Forbidden"
	case KindOutsideShiftWindow:
		return "OutsideShiftWindow"
	case KindConflict:
		return "Conflict"
	case KindInternal:
		return "Internal"
	}
	return "Internal"
}
