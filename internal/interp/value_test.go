package interp

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-rinha/internal/ast"
)

func TestValueStrings(t *testing.T) {
	tests := []struct {
		name string
		val  Value
		typ  string
		str  string
	}{
		{"integer", NewIntegerValue(42), "INTEGER", "42"},
		{"negative integer", NewIntegerValue(-7), "INTEGER", "-7"},
		{"string", NewStringValue("hello"), "STRING", "hello"},
		{"empty string", NewStringValue(""), "STRING", ""},
		{"true", NewBooleanValue(true), "BOOLEAN", "True"},
		{"false", NewBooleanValue(false), "BOOLEAN", "False"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.val.Type(); got != tt.typ {
				t.Errorf("Type() = %q, want %q", got, tt.typ)
			}
			if got := tt.val.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

// Printed strings are raw: quoting belongs to the AST renderer, not
// to values.
func TestStringValueUnquoted(t *testing.T) {
	val := NewStringValue(`say "hi"`)
	if got := val.String(); got != `say "hi"` {
		t.Errorf("String() = %q", got)
	}
}

func TestClosureString(t *testing.T) {
	closure := &ClosureValue{
		Function: &ast.FunctionLiteral{
			Parameters: []*ast.Symbol{{Text: "a"}, {Text: "b"}},
		},
		Env: Global(),
	}

	got := closure.String()
	if !strings.HasPrefix(got, "<Closure#") {
		t.Errorf("String() = %q", got)
	}
	if !strings.HasSuffix(got, " fn (a, b)>") {
		t.Errorf("String() = %q", got)
	}
	if closure.Type() != "CLOSURE" {
		t.Errorf("Type() = %q", closure.Type())
	}
}

func TestGoConversions(t *testing.T) {
	if n, err := GoInt(NewIntegerValue(7)); err != nil || n != 7 {
		t.Errorf("GoInt = %d, %v", n, err)
	}
	if s, err := GoString(NewStringValue("x")); err != nil || s != "x" {
		t.Errorf("GoString = %q, %v", s, err)
	}
	if b, err := GoBool(NewBooleanValue(true)); err != nil || !b {
		t.Errorf("GoBool = %v, %v", b, err)
	}

	if _, err := GoInt(NewStringValue("7")); err == nil {
		t.Error("GoInt accepted a string")
	}
	if _, err := GoString(NewIntegerValue(7)); err == nil {
		t.Error("GoString accepted an integer")
	}
	if _, err := GoBool(NewIntegerValue(1)); err == nil {
		t.Error("GoBool accepted an integer")
	}
}

func TestIsLiteral(t *testing.T) {
	if !isLiteral(NewIntegerValue(1)) || !isLiteral(NewStringValue("")) || !isLiteral(NewBooleanValue(false)) {
		t.Error("scalar kinds must be literals")
	}
	closure := &ClosureValue{Function: &ast.FunctionLiteral{}, Env: Global()}
	if isLiteral(closure) {
		t.Error("closures are not literals")
	}
}

// TestLiteralsEqual pins structural equality: same kind and same
// scalar value, with no cross-kind coercion.
func TestLiteralsEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal ints", NewIntegerValue(1), NewIntegerValue(1), true},
		{"unequal ints", NewIntegerValue(1), NewIntegerValue(2), false},
		{"equal strings", NewStringValue("a"), NewStringValue("a"), true},
		{"unequal strings", NewStringValue("a"), NewStringValue("b"), false},
		{"equal bools", NewBooleanValue(true), NewBooleanValue(true), true},
		{"unequal bools", NewBooleanValue(true), NewBooleanValue(false), false},
		{"int vs string", NewIntegerValue(1), NewStringValue("1"), false},
		{"bool vs int", NewBooleanValue(true), NewIntegerValue(1), false},
		{"bool vs string", NewBooleanValue(false), NewStringValue("False"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := literalsEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("literalsEqual = %v, want %v", got, tt.want)
			}
		})
	}
}
