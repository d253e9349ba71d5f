package interp

import (
	"fmt"
	"io"

	"github.com/cwbudde/go-rinha/internal/ast"
)

// DefaultMaxDepth is the default bound on evaluator nesting. Deep
// ASTs and deep non-tail recursion in the object language both grow
// the interpreter's recursion; the bound turns would-be stack
// exhaustion into an ordinary execution error.
const DefaultMaxDepth = 100000

// Interpreter walks a Rinha AST and produces runtime values. Program
// output (the print effect) goes to the configured writer.
//
// An Interpreter is single-threaded: evaluation runs to completion or
// fails, with no suspension points.
type Interpreter struct {
	output   io.Writer
	maxDepth int
	depth    int
}

// New creates an interpreter writing program output to output.
func New(output io.Writer) *Interpreter {
	return &Interpreter{
		output:   output,
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth overrides the evaluation nesting bound.
func (i *Interpreter) SetMaxDepth(n int) {
	i.maxDepth = n
}

// RunFile evaluates the file's root expression in the initial
// environment and returns the final value.
func (i *Interpreter) RunFile(file *ast.File) (Value, error) {
	return i.Eval(file.Expression, Global())
}

// Eval evaluates a single term in the given environment.
func (i *Interpreter) Eval(term ast.Term, env *Environment) (Value, error) {
	i.depth++
	defer func() { i.depth-- }()
	if i.depth > i.maxDepth {
		return nil, newError(term, ErrRecursionLimit, "evaluation nested deeper than %d levels", i.maxDepth)
	}

	switch node := term.(type) {
	case *ast.IntegerLiteral:
		return &IntegerValue{Value: node.Value}, nil

	case *ast.StringLiteral:
		return &StringValue{Value: node.Value}, nil

	case *ast.Variable:
		val, ok := env.Get(node.Text)
		if !ok {
			return nil, newError(node, ErrUnknownVariable, "unknown variable '%s'", node.Text)
		}
		return val, nil

	case *ast.LetExpression:
		return i.evalLet(node, env)

	case *ast.FunctionLiteral:
		// Lexical capture: the closure sees the environment at its
		// point of definition.
		return &ClosureValue{Function: node, Env: env}, nil

	case *ast.IfExpression:
		return i.evalIf(node, env)

	case *ast.CallExpression:
		return i.evalCall(node, env)

	case *ast.BinaryExpression:
		return i.evalBinary(node, env)

	case *ast.PrintExpression:
		return i.evalPrint(node, env)

	default:
		return nil, newError(term, ErrUnsupported, "unexpected term %T", term)
	}
}

func (i *Interpreter) evalLet(node *ast.LetExpression, env *Environment) (Value, error) {
	val, err := i.Eval(node.Value, env)
	if err != nil {
		return nil, err
	}

	nextEnv := NewEnclosedEnvironment(env)
	if closure, ok := val.(*ClosureValue); ok {
		// A let of a function is recursive: rebind the closure to the
		// frame that will hold its own name. The frame has not
		// escaped yet, so no observer sees the pre-patch closure.
		val = &ClosureValue{Function: closure.Function, Env: nextEnv}
	}
	nextEnv.Define(node.Name.Text, val)

	return i.Eval(node.Next, nextEnv)
}

func (i *Interpreter) evalIf(node *ast.IfExpression, env *Environment) (Value, error) {
	cond, err := i.Eval(node.Condition, env)
	if err != nil {
		return nil, err
	}

	boolean, ok := cond.(*BooleanValue)
	if !ok {
		return nil, newError(node.Condition, ErrTypeError, "condition in 'if' is not boolean: %s", cond.String())
	}

	if boolean.Value {
		return i.Eval(node.Then, env)
	}
	return i.Eval(node.Otherwise, env)
}

func (i *Interpreter) evalCall(node *ast.CallExpression, env *Environment) (Value, error) {
	callee, err := i.Eval(node.Callee, env)
	if err != nil {
		return nil, err
	}

	closure, ok := callee.(*ClosureValue)
	if !ok {
		return nil, newError(node.Callee, ErrNotCallable, "'%s' is not callable", callee.String())
	}

	params := closure.Function.Parameters
	if len(node.Arguments) != len(params) {
		return nil, newError(node, ErrArity,
			"function of %d parameter(s) called with %d argument(s)", len(params), len(node.Arguments))
	}

	// Arguments are evaluated left to right in the caller's
	// environment, before the body runs.
	bindings := make(map[string]Value, len(params))
	for idx, arg := range node.Arguments {
		val, err := i.Eval(arg, env)
		if err != nil {
			return nil, err
		}
		bindings[params[idx].Text] = val
	}

	return i.Eval(closure.Function.Value, closure.Env.WithValues(bindings))
}

func (i *Interpreter) evalPrint(node *ast.PrintExpression, env *Environment) (Value, error) {
	val, err := i.Eval(node.Value, env)
	if err != nil {
		return nil, err
	}

	// No trailing newline: the program controls all formatting.
	if _, err := io.WriteString(i.output, val.String()); err != nil {
		return nil, fmt.Errorf("write program output: %w", err)
	}

	return val, nil
}
