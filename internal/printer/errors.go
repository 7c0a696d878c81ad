package printer

import (
	"errors"
	"fmt"

	"github.com/cmmoran/cstgen/pkg/estree"
)

var (
	ErrUnsupportedNodeType    = errors.New("unsupported node type")
	ErrUnsupportedLiteralKind = errors.New("unsupported literal kind")
)

// UnsupportedNodeTypeError reports a node type with no registered handler. Context names the dispatcher
// (or operator table) that rejected it.
type UnsupportedNodeTypeError struct {
	Type    string
	Context string
}

func (e *UnsupportedNodeTypeError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("%s: %s", ErrUnsupportedNodeType, e.Type)
	}
	return fmt.Sprintf("%s: %s (%s)", ErrUnsupportedNodeType, e.Type, e.Context)
}

func (e *UnsupportedNodeTypeError) Unwrap() error { return ErrUnsupportedNodeType }

// UnsupportedLiteralKindError reports a literal value the encoders cannot express, or a violated
// internal invariant.
type UnsupportedLiteralKindError struct {
	Value  any
	Reason string
}

func (e *UnsupportedLiteralKindError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s", ErrUnsupportedLiteralKind, e.Reason)
	}
	return fmt.Sprintf("%s: %s (%T %v)", ErrUnsupportedLiteralKind, e.Reason, e.Value, e.Value)
}

func (e *UnsupportedLiteralKindError) Unwrap() error { return ErrUnsupportedLiteralKind }

// abort carries a fatal error up the builder's call stack to Print.
type abort struct{ err error }

func fail(err error) { panic(abort{err: err}) }

func unsupported(n estree.Node, context string) {
	name := "<nil>"
	if n != nil {
		name = n.Type().String()
	}
	fail(&UnsupportedNodeTypeError{Type: name, Context: context})
}

func invariant(format string, args ...any) {
	fail(&UnsupportedLiteralKindError{Reason: "invariant violated: " + fmt.Sprintf(format, args...)})
}

// catch converts an abort raised below it into err; other panics propagate.
func catch(err *error) {
	if r := recover(); r != nil {
		a, ok := r.(abort)
		if !ok {
			panic(r)
		}
		*err = a.err
	}
}
