package interp

import (
	"github.com/cwbudde/go-rinha/internal/ast"
)

// evalBinary evaluates both operands, then dispatches on the operator
// and the operand kinds. Both sides are evaluated before the operator
// is inspected, so an ill-typed operation still runs its operands'
// effects.
func (i *Interpreter) evalBinary(node *ast.BinaryExpression, env *Environment) (Value, error) {
	lhs, err := i.Eval(node.Lhs, env)
	if err != nil {
		return nil, err
	}
	rhs, err := i.Eval(node.Rhs, env)
	if err != nil {
		return nil, err
	}

	if !isLiteral(lhs) || !isLiteral(rhs) {
		return nil, i.invalidOperands(node, lhs, rhs)
	}

	switch node.Op {
	case ast.OpAdd:
		if l, r, ok := integerOperands(lhs, rhs); ok {
			return NewIntegerValue(l + r), nil
		}
		if l, r, ok := stringOperands(lhs, rhs); ok {
			return NewStringValue(l + r), nil
		}

	case ast.OpSub:
		if l, r, ok := integerOperands(lhs, rhs); ok {
			return NewIntegerValue(l - r), nil
		}

	case ast.OpMul:
		if l, r, ok := integerOperands(lhs, rhs); ok {
			return NewIntegerValue(l * r), nil
		}

	case ast.OpDiv:
		if l, r, ok := integerOperands(lhs, rhs); ok {
			if r == 0 {
				return nil, newError(node, ErrDivisionByZero, "division by zero")
			}
			return NewIntegerValue(floorDiv(l, r)), nil
		}

	case ast.OpRem:
		if l, r, ok := integerOperands(lhs, rhs); ok {
			if r == 0 {
				return nil, newError(node, ErrDivisionByZero, "remainder by zero")
			}
			return NewIntegerValue(floorMod(l, r)), nil
		}

	case ast.OpEq:
		return NewBooleanValue(literalsEqual(lhs, rhs)), nil

	case ast.OpNeq:
		return NewBooleanValue(!literalsEqual(lhs, rhs)), nil

	case ast.OpLt:
		if l, r, ok := integerOperands(lhs, rhs); ok {
			return NewBooleanValue(l < r), nil
		}
		if l, r, ok := stringOperands(lhs, rhs); ok {
			return NewBooleanValue(l < r), nil
		}

	case ast.OpGt:
		if l, r, ok := integerOperands(lhs, rhs); ok {
			return NewBooleanValue(l > r), nil
		}
		if l, r, ok := stringOperands(lhs, rhs); ok {
			return NewBooleanValue(l > r), nil
		}

	case ast.OpLte:
		if l, r, ok := integerOperands(lhs, rhs); ok {
			return NewBooleanValue(l <= r), nil
		}
		if l, r, ok := stringOperands(lhs, rhs); ok {
			return NewBooleanValue(l <= r), nil
		}

	case ast.OpGte:
		if l, r, ok := integerOperands(lhs, rhs); ok {
			return NewBooleanValue(l >= r), nil
		}
		if l, r, ok := stringOperands(lhs, rhs); ok {
			return NewBooleanValue(l >= r), nil
		}

	case ast.OpAnd:
		if l, r, ok := booleanOperands(lhs, rhs); ok {
			return NewBooleanValue(l && r), nil
		}

	case ast.OpOr:
		if l, r, ok := booleanOperands(lhs, rhs); ok {
			return NewBooleanValue(l || r), nil
		}

	case ast.OpNot:
		// Present in the serialized enumeration, but not a binary
		// operation.
		return nil, newError(node, ErrUnsupported, "'!' is not a binary operator")
	}

	return nil, i.invalidOperands(node, lhs, rhs)
}

func (i *Interpreter) invalidOperands(node *ast.BinaryExpression, lhs, rhs Value) *RuntimeError {
	return newError(node, ErrTypeError,
		"invalid operands for '%s': %s, %s", node.Op.Token(), lhs.String(), rhs.String())
}

func integerOperands(lhs, rhs Value) (int64, int64, bool) {
	l, ok := lhs.(*IntegerValue)
	if !ok {
		return 0, 0, false
	}
	r, ok := rhs.(*IntegerValue)
	if !ok {
		return 0, 0, false
	}
	return l.Value, r.Value, true
}

func stringOperands(lhs, rhs Value) (string, string, bool) {
	l, ok := lhs.(*StringValue)
	if !ok {
		return "", "", false
	}
	r, ok := rhs.(*StringValue)
	if !ok {
		return "", "", false
	}
	return l.Value, r.Value, true
}

func booleanOperands(lhs, rhs Value) (bool, bool, bool) {
	l, ok := lhs.(*BooleanValue)
	if !ok {
		return false, false, false
	}
	r, ok := rhs.(*BooleanValue)
	if !ok {
		return false, false, false
	}
	return l.Value, r.Value, true
}

// floorDiv divides truncating toward negative infinity, so
// floorDiv(-7, 2) == -4.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod pairs with floorDiv: the result takes the sign of the
// divisor, so floorMod(-7, 2) == 1.
func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
