package interp

import (
	"fmt"

	"github.com/cwbudde/go-rinha/internal/ast"
)

// Execution error kinds. Every runtime failure is a RuntimeError
// tagged with one of these; none are recovered locally, all propagate
// to the top of RunFile.
const (
	ErrUnknownVariable = "UnknownVariable"
	ErrTypeError       = "TypeError"
	ErrDivisionByZero  = "DivisionByZero"
	ErrNotCallable     = "NotCallable"
	ErrArity           = "Arity"
	ErrRecursionLimit  = "RecursionLimit"
	ErrUnsupported     = "Unsupported"
)

// RuntimeError is the single execution error type, subdivided by
// Kind. It carries the source span of the offending node when one was
// available.
type RuntimeError struct {
	Kind    string
	Message string
	Loc     ast.Location
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	if e.Loc.Filename != "" {
		return fmt.Sprintf("%s: %s (%s:%d..%d)", e.Kind, e.Message, e.Loc.Filename, e.Loc.Start, e.Loc.End)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// newError creates a RuntimeError for the given node and kind.
func newError(node ast.Node, kind, format string, args ...any) *RuntimeError {
	err := &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
	if node != nil {
		err.Loc = node.Loc()
	}
	return err
}
