package shapeinference

import (
	"fmt"

	"github.com/gomlx/jitshapes/jit"
	"github.com/pkg/errors"
)

// ErrorKind classifies the recoverable failures of a shape inference pass.
type ErrorKind int

//go:generate go tool enumer -type=ErrorKind -trimprefix=Kind -output=gen_errorkind_enumer.go errors.go

const (
	// KindUnknown is the zero value, not used by any error.
	KindUnknown ErrorKind = iota

	// KindArityMismatch - wrong number of inputs, at graph level or for an operator.
	KindArityMismatch

	// KindUnsupportedOperator - the operator has no shape rule.
	KindUnsupportedOperator

	// KindUnsupportedInputKind - a graph input (or constant) is not a tensor, bool, int or int list.
	KindUnsupportedInputKind

	// KindRankMismatch - operand ranks are incompatible with the operator.
	KindRankMismatch

	// KindShapeMismatch - dimension sizes are incompatible.
	KindShapeMismatch

	// KindDimOutOfRange - a (normalized) axis is outside the operand's rank.
	KindDimOutOfRange

	// KindUnorderedGraph - the graph nodes are not in topological order.
	KindUnorderedGraph
)

// Error is the error returned by shape rules and the Engine.
//
// Use errors.Is with one of the Err* sentinels to test for a kind, or errors.As to access the
// literal sizes involved.
type Error struct {
	Kind ErrorKind

	// Sizes involved in the failure, in the order they appear in the message.
	// For a ShapeMismatch these are the two conflicting dimensions.
	Sizes []int

	// Operator is the qualified name of the operator, set for UnsupportedOperator.
	Operator string

	msg   string
	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

// Is reports whether target is an *Error of the same kind. It makes the Err* sentinels match
// any error of their kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Sentinels, one per ErrorKind.
var (
	ErrArityMismatch        = &Error{Kind: KindArityMismatch}
	ErrUnsupportedOperator  = &Error{Kind: KindUnsupportedOperator}
	ErrUnsupportedInputKind = &Error{Kind: KindUnsupportedInputKind}
	ErrRankMismatch         = &Error{Kind: KindRankMismatch}
	ErrShapeMismatch        = &Error{Kind: KindShapeMismatch}
	ErrDimOutOfRange        = &Error{Kind: KindDimOutOfRange}
	ErrUnorderedGraph       = &Error{Kind: KindUnorderedGraph}
)

// KindOf returns the ErrorKind of err, or KindUnknown if err is not (or doesn't wrap) an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// errorf creates a new *Error with a stack trace.
func errorf(kind ErrorKind, sizes []int, format string, args ...any) error {
	return errors.WithStack(&Error{Kind: kind, Sizes: sizes, msg: fmt.Sprintf(format, args...)})
}

func arityErrorf(got int, format string, args ...any) error {
	return errorf(KindArityMismatch, []int{got}, format, args...)
}

func unsupportedOperator(symbol jit.Symbol) error {
	return errors.WithStack(&Error{
		Kind:     KindUnsupportedOperator,
		Operator: symbol.QualString(),
		msg:      fmt.Sprintf("operator %s has no shape rule", symbol.QualString()),
	})
}
