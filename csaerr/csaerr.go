// Package csaerr implements the error type used throughout the
// connection-set algebra packages (ival, value, mask, connset, csa).
// Errors carry an interpretable Kind so callers can distinguish, say,
// a malformed interval from an attempt to iterate an infinite set
// without inspecting message text. Errors can be chained with E,
// attributing one error to another, the way github.com/pkg/errors-style
// wrapping does.
package csaerr

import (
	"bytes"
	"errors"
	"fmt"
)

// Kind enumerates the error conditions the core signals, per the
// specification's error table.
type Kind int

const (
	// Other is an unclassified error.
	Other Kind = iota
	// MalformedInterval: a tuple is not (lo,hi) with lo <= hi, or
	// contains non-integers.
	MalformedInterval
	// NegativeIndex: constructing an interval set containing n < 0.
	NegativeIndex
	// OverlappingIntervals: input list has overlapping intervals.
	OverlappingIntervals
	// InfiniteOperation: len/max/iteration/bounded-iteration called on
	// an infinite interval set, or an infinite mask iterated without a
	// bounding window.
	InfiniteOperation
	// WrongOperandClass: intersection/difference operand is not a
	// mask, SampleNRandomMask's operand is not a finite interval-set
	// mask, or transpose was applied to an infinite mask.
	WrongOperandClass
	// ArityMismatch: binary op on connection-sets with different
	// arities.
	ArityMismatch
	// BadXML: unknown tag or malformed element during XML load.
	// Reserved: XML serialization is out of scope for this module: no
	// code path currently produces this kind.
	BadXML
	// OverlappingIntervalSetMaskSum: multiset sum of two
	// IntervalSetMasks with overlapping projections, which the
	// algebra does not support.
	OverlappingIntervalSetMaskSum

	maxKind
)

var kindText = map[Kind]string{
	Other:                         "unknown error",
	MalformedInterval:             "malformed interval",
	NegativeIndex:                 "negative index",
	OverlappingIntervals:          "overlapping intervals",
	InfiniteOperation:             "operation requires a finite set",
	WrongOperandClass:             "wrong operand class",
	ArityMismatch:                 "arity mismatch",
	BadXML:                        "malformed XML",
	OverlappingIntervalSetMaskSum: "overlapping IntervalSetMask multiset sum",
}

// String returns a human-readable description of k.
func (k Kind) String() string {
	if s, ok := kindText[k]; ok {
		return s
	}
	return "unknown error"
}

// Error is the standard error type returned by this module's
// packages. Errors may be chained through Err, and the full chain is
// printed by Error().
type Error struct {
	// Kind classifies the error.
	Kind Kind
	// Message is a human-readable description.
	Message string
	// Err is the error that caused this one, if any.
	Err error
}

// Separator is inserted between chained errors in error messages.
var Separator = ":\n\t"

// E constructs a new *Error from the given arguments. Arguments are
// interpreted by type: a Kind sets the error's kind, a string sets
// (and accumulates into) the message, and an error sets the cause. If
// no Kind is provided but the cause is itself an *Error, the kind is
// inherited from it.
func E(args ...interface{}) error {
	if len(args) == 0 {
		panic("csaerr.E: no args")
	}
	e := new(Error)
	var msg bytes.Buffer
	for _, arg := range args {
		switch a := arg.(type) {
		case Kind:
			e.Kind = a
		case string:
			if msg.Len() > 0 {
				msg.WriteString(" ")
			}
			msg.WriteString(a)
		case *Error:
			cp := *a
			e.Err = &cp
		case error:
			e.Err = a
		default:
			e.Err = fmt.Errorf("csaerr.E: unsupported argument %T: %v", arg, arg)
		}
	}
	e.Message = msg.String()
	if e.Kind == Other {
		if inner, ok := e.Err.(*Error); ok {
			e.Kind = inner.Kind
		}
	}
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b bytes.Buffer
	e.writeError(&b)
	return b.String()
}

func (e *Error) writeError(b *bytes.Buffer) {
	if e.Message != "" {
		b.WriteString(e.Message)
	}
	if e.Kind != Other {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(e.Kind.String())
	}
	if e.Err == nil {
		return
	}
	if inner, ok := e.Err.(*Error); ok {
		b.WriteString(Separator)
		b.WriteString(inner.Error())
	} else {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
}

// Unwrap returns e's cause, if any, letting the standard library's
// errors.Unwrap/errors.Is/errors.As work with *Error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether err is a *Error with the given kind.
func Is(kind Kind, err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
