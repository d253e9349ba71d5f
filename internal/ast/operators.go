package ast

import (
	"fmt"
	"strings"
)

// BinaryOp identifies a binary operator of the language.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpRem
	OpEq
	OpNeq
	OpLt
	OpGt
	OpLte
	OpGte
	OpAnd
	OpOr

	// OpNot appears in the serialized operator enumeration upstream
	// but is not a binary operation; the evaluator rejects it.
	OpNot
)

// operator carries the printable token plus the metadata the renderer
// needs to decide on parenthesization. The assoc flag marks operators
// whose equal-precedence chains may drop parentheses; it is carried
// for the non-associative comparisons but not consulted yet.
type operator struct {
	name       string
	token      string
	precedence int
	assoc      bool
}

// Precedence values leave gaps between levels (mostly steps of 10) so
// new levels fit between existing ones.
var operators = [...]operator{
	OpAdd: {name: "Add", token: "+", precedence: 30, assoc: true},
	OpSub: {name: "Sub", token: "-", precedence: 30, assoc: true},
	OpMul: {name: "Mul", token: "*", precedence: 40, assoc: true},
	OpDiv: {name: "Div", token: "/", precedence: 40, assoc: true},
	OpRem: {name: "Rem", token: "%", precedence: 40, assoc: true},
	OpEq:  {name: "Eq", token: "==", precedence: 20, assoc: false},
	OpNeq: {name: "Neq", token: "!=", precedence: 20, assoc: false},
	OpLt:  {name: "Lt", token: "<", precedence: 20, assoc: true},
	OpGt:  {name: "Gt", token: ">", precedence: 20, assoc: true},
	OpLte: {name: "Lte", token: "<=", precedence: 20, assoc: true},
	OpGte: {name: "Gte", token: ">=", precedence: 20, assoc: true},
	OpAnd: {name: "And", token: "&", precedence: 10, assoc: true},
	OpOr:  {name: "Or", token: "|", precedence: 5, assoc: true},
	OpNot: {name: "Not", token: "!", precedence: 25, assoc: true},
}

// Valid reports whether op is one of the enumerated operators.
func (op BinaryOp) Valid() bool {
	return op >= 0 && int(op) < len(operators)
}

// String returns the enumeration name of the operator, e.g. "Add".
func (op BinaryOp) String() string {
	if !op.Valid() {
		return fmt.Sprintf("BinaryOp(%d)", int(op))
	}
	return operators[op].name
}

// Token returns the surface token of the operator, e.g. "+".
func (op BinaryOp) Token() string {
	if !op.Valid() {
		return "?"
	}
	return operators[op].token
}

// Precedence returns the binding strength used by the renderer.
func (op BinaryOp) Precedence() int {
	if !op.Valid() {
		return 0
	}
	return operators[op].precedence
}

// Assoc reports whether equal-precedence chains of the operator may
// be rendered without parentheses.
func (op BinaryOp) Assoc() bool {
	if !op.Valid() {
		return false
	}
	return operators[op].assoc
}

// LookupBinaryOp resolves an operator by its enumeration name,
// matched case-insensitively ("Add", "add", "ADD").
func LookupBinaryOp(name string) (BinaryOp, bool) {
	for i := range operators {
		if strings.EqualFold(operators[i].name, name) {
			return BinaryOp(i), true
		}
	}
	return 0, false
}
