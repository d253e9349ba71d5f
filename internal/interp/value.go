// Package interp provides the runtime values, environments, and
// tree-walking evaluator for Rinha.
package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/go-rinha/internal/ast"
)

// Value represents a runtime value produced by the evaluator.
// The interface does not carry interface{} payloads; the evaluator
// dispatches on the concrete types below.
type Value interface {
	// Type returns the type name of the value (e.g. "INTEGER")
	Type() string
	// String returns the printed representation used by print
	String() string
}

// IntegerValue represents an integer value.
type IntegerValue struct {
	Value int64
}

// Type returns "INTEGER".
func (i *IntegerValue) Type() string {
	return "INTEGER"
}

// String returns the decimal representation of the integer.
func (i *IntegerValue) String() string {
	return strconv.FormatInt(i.Value, 10)
}

// StringValue represents a string value.
type StringValue struct {
	Value string
}

// Type returns "STRING".
func (s *StringValue) Type() string {
	return "STRING"
}

// String returns the string value itself, unquoted.
func (s *StringValue) String() string {
	return s.Value
}

// BooleanValue represents a boolean value. The language has no
// boolean literals; these enter programs through the initial
// environment's true and false bindings.
type BooleanValue struct {
	Value bool
}

// Type returns "BOOLEAN".
func (b *BooleanValue) Type() string {
	return "BOOLEAN"
}

// String returns "True" or "False".
func (b *BooleanValue) String() string {
	if b.Value {
		return "True"
	}
	return "False"
}

// ClosureValue pairs a function literal with the environment captured
// at its point of definition. Closures compare by identity, never
// structurally.
type ClosureValue struct {
	Function *ast.FunctionLiteral
	Env      *Environment
}

// Type returns "CLOSURE".
func (c *ClosureValue) Type() string {
	return "CLOSURE"
}

// String renders an opaque identity tag plus the parameter list, e.g.
// <Closure#c00040 fn (a, b)>. The form does not round-trip through
// the loader.
func (c *ClosureValue) String() string {
	tag := fmt.Sprintf("%p", c)
	if len(tag) > 6 {
		tag = tag[len(tag)-6:]
	}

	params := make([]string, len(c.Function.Parameters))
	for i, param := range c.Function.Parameters {
		params[i] = param.Text
	}

	return fmt.Sprintf("<Closure#%s fn (%s)>", tag, strings.Join(params, ", "))
}

// Helper constructors mirroring the Go types.

// NewIntegerValue creates an IntegerValue from an int64.
func NewIntegerValue(v int64) Value {
	return &IntegerValue{Value: v}
}

// NewStringValue creates a StringValue from a string.
func NewStringValue(v string) Value {
	return &StringValue{Value: v}
}

// NewBooleanValue creates a BooleanValue from a bool.
func NewBooleanValue(v bool) Value {
	return &BooleanValue{Value: v}
}

// GoInt converts a Value to a Go int64. Returns an error if the value
// is not an IntegerValue.
func GoInt(v Value) (int64, error) {
	if iv, ok := v.(*IntegerValue); ok {
		return iv.Value, nil
	}
	return 0, fmt.Errorf("value is not an integer: %s", v.Type())
}

// GoString converts a Value to a Go string. Returns an error if the
// value is not a StringValue.
func GoString(v Value) (string, error) {
	if sv, ok := v.(*StringValue); ok {
		return sv.Value, nil
	}
	return "", fmt.Errorf("value is not a string: %s", v.Type())
}

// GoBool converts a Value to a Go bool. Returns an error if the value
// is not a BooleanValue.
func GoBool(v Value) (bool, error) {
	if bv, ok := v.(*BooleanValue); ok {
		return bv.Value, nil
	}
	return false, fmt.Errorf("value is not a boolean: %s", v.Type())
}

// isLiteral reports whether v is one of the three scalar value kinds,
// as opposed to a closure.
func isLiteral(v Value) bool {
	switch v.(type) {
	case *IntegerValue, *StringValue, *BooleanValue:
		return true
	}
	return false
}

// literalsEqual implements structural equality over literals: equal
// iff same kind and same scalar value. Booleans and integers are
// distinct kinds, so Literal(true) != Literal(1).
func literalsEqual(a, b Value) bool {
	switch l := a.(type) {
	case *IntegerValue:
		r, ok := b.(*IntegerValue)
		return ok && l.Value == r.Value
	case *StringValue:
		r, ok := b.(*StringValue)
		return ok && l.Value == r.Value
	case *BooleanValue:
		r, ok := b.(*BooleanValue)
		return ok && l.Value == r.Value
	}
	return false
}
