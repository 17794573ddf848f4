package program

import (
	"errors"
	"fmt"
)

// Kind classifies instruction failures.
type Kind int

// The available error kinds.
const (
	_ Kind = iota
	KeyMismatch
	CapacityExceeded
	EmptyInput
	UninitializedAccount
	AlreadyInitialized
	UnfundedAccount
	MissingSignature
	InsufficientFunds
	InvalidAccountData
	InvalidArgument
	NoTriesLeft
	ArithmeticOverflow
)

var kindNames = map[Kind]string{
	KeyMismatch:          "KeyMismatch",
	CapacityExceeded:     "CapacityExceeded",
	EmptyInput:           "EmptyInput",
	UninitializedAccount: "UninitializedAccount",
	AlreadyInitialized:   "AlreadyInitialized",
	UnfundedAccount:      "UnfundedAccount",
	MissingSignature:     "MissingSignature",
	InsufficientFunds:    "InsufficientFunds",
	InvalidAccountData:   "InvalidAccountData",
	InvalidArgument:      "InvalidArgument",
	NoTriesLeft:          "NoTriesLeft",
	ArithmeticOverflow:   "ArithmeticOverflow",
}

// String returns the name of the kind.
func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return name
}

// Error is returned by checks and handlers. The message carries the details
// needed to diagnose the failure without re-deriving state.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is reports whether the target is an error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels to be used with errors.Is.
var (
	ErrKeyMismatch          = &Error{Kind: KeyMismatch}
	ErrCapacityExceeded     = &Error{Kind: CapacityExceeded}
	ErrEmptyInput           = &Error{Kind: EmptyInput}
	ErrUninitializedAccount = &Error{Kind: UninitializedAccount}
	ErrAlreadyInitialized   = &Error{Kind: AlreadyInitialized}
	ErrUnfundedAccount      = &Error{Kind: UnfundedAccount}
	ErrMissingSignature     = &Error{Kind: MissingSignature}
	ErrInsufficientFunds    = &Error{Kind: InsufficientFunds}
	ErrInvalidAccountData   = &Error{Kind: InvalidAccountData}
	ErrInvalidArgument      = &Error{Kind: InvalidArgument}
	ErrNoTriesLeft          = &Error{Kind: NoTriesLeft}
	ErrArithmeticOverflow   = &Error{Kind: ArithmeticOverflow}
)

func fail(kind Kind, format string, args ...interface{}) error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf returns the kind of the provided error or zero if the error was not
// produced by this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}
