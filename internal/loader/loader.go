// Package loader decodes pre-parsed Rinha AST documents into typed
// AST nodes.
//
// The document is JSON rooted at a File object. Every Term object
// carries a "kind" discriminator and a "location"; kinds and operator
// names match case-insensitively. All failures are fatal: a program
// with a malformed document never starts evaluating.
package loader

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/cwbudde/go-rinha/internal/ast"
)

// MaxDepth bounds the term nesting the loader accepts. The document
// is untrusted input; without a bound, a deeply nested document would
// exhaust the call stack before evaluation ever starts.
const MaxDepth = 10000

// Error describes a load failure. Path is the JSON path of the
// offending field, e.g. "expression.then.lhs.op".
type Error struct {
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return "load error: " + e.Message
	}
	return fmt.Sprintf("load error at %s: %s", e.Path, e.Message)
}

func errorf(path, format string, args ...any) *Error {
	return &Error{Path: path, Message: fmt.Sprintf(format, args...)}
}

// LoadFile reads an AST document from disk and decodes it.
func LoadFile(path string) (*ast.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Load(data)
}

// Load decodes a JSON AST document rooted at a File object.
func Load(data []byte) (*ast.File, error) {
	if !gjson.ValidBytes(data) {
		return nil, &Error{Message: "document is not valid JSON"}
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, &Error{Message: "document root is not an object"}
	}

	name, err := loadString(doc, "name")
	if err != nil {
		return nil, err
	}

	loc, err := loadLocation(doc, "location")
	if err != nil {
		return nil, err
	}

	expr, err := loadTerm(doc.Get("expression"), "expression", 0)
	if err != nil {
		return nil, err
	}

	return &ast.File{Name: name, Expression: expr, Location: loc}, nil
}

// loadTerm dispatches on the "kind" field of a Term object.
func loadTerm(v gjson.Result, path string, depth int) (ast.Term, error) {
	if depth > MaxDepth {
		return nil, errorf(path, "term nesting exceeds %d levels", MaxDepth)
	}
	if !v.Exists() {
		return nil, errorf(path, "missing required term")
	}
	if !v.IsObject() {
		return nil, errorf(path, "expected object, got %s", v.Type)
	}

	kind := v.Get("kind")
	if kind.Type != gjson.String {
		return nil, errorf(path+".kind", "missing or non-string kind")
	}

	loc, err := loadLocation(v, path+".location")
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(kind.Str) {
	case "int":
		value, err := loadInt(v, path+".value")
		if err != nil {
			return nil, err
		}
		return &ast.IntegerLiteral{Value: value, Location: loc}, nil

	case "str":
		value := v.Get("value")
		if value.Type != gjson.String {
			return nil, errorf(path+".value", "missing or non-string value")
		}
		return &ast.StringLiteral{Value: value.Str, Location: loc}, nil

	case "var":
		text := v.Get("text")
		if text.Type != gjson.String {
			return nil, errorf(path+".text", "missing or non-string text")
		}
		return &ast.Variable{Text: text.Str, Location: loc}, nil

	case "let":
		name, err := loadSymbol(v.Get("name"), path+".name")
		if err != nil {
			return nil, err
		}
		value, err := loadTerm(v.Get("value"), path+".value", depth+1)
		if err != nil {
			return nil, err
		}
		next, err := loadTerm(v.Get("next"), path+".next", depth+1)
		if err != nil {
			return nil, err
		}
		return &ast.LetExpression{Name: name, Value: value, Next: next, Location: loc}, nil

	case "function":
		params, err := loadSymbols(v.Get("parameters"), path+".parameters")
		if err != nil {
			return nil, err
		}
		value, err := loadTerm(v.Get("value"), path+".value", depth+1)
		if err != nil {
			return nil, err
		}
		return &ast.FunctionLiteral{Parameters: params, Value: value, Location: loc}, nil

	case "if":
		condition, err := loadTerm(v.Get("condition"), path+".condition", depth+1)
		if err != nil {
			return nil, err
		}
		then, err := loadTerm(v.Get("then"), path+".then", depth+1)
		if err != nil {
			return nil, err
		}
		otherwise, err := loadTerm(v.Get("otherwise"), path+".otherwise", depth+1)
		if err != nil {
			return nil, err
		}
		return &ast.IfExpression{Condition: condition, Then: then, Otherwise: otherwise, Location: loc}, nil

	case "call":
		callee, err := loadTerm(v.Get("callee"), path+".callee", depth+1)
		if err != nil {
			return nil, err
		}
		args, err := loadTerms(v.Get("arguments"), path+".arguments", depth+1)
		if err != nil {
			return nil, err
		}
		return &ast.CallExpression{Callee: callee, Arguments: args, Location: loc}, nil

	case "binary":
		lhs, err := loadTerm(v.Get("lhs"), path+".lhs", depth+1)
		if err != nil {
			return nil, err
		}
		opName := v.Get("op")
		if opName.Type != gjson.String {
			return nil, errorf(path+".op", "missing or non-string operator")
		}
		op, ok := ast.LookupBinaryOp(opName.Str)
		if !ok {
			return nil, errorf(path+".op", "unknown operator %q", opName.Str)
		}
		rhs, err := loadTerm(v.Get("rhs"), path+".rhs", depth+1)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpression{Lhs: lhs, Op: op, Rhs: rhs, Location: loc}, nil

	case "print":
		value, err := loadTerm(v.Get("value"), path+".value", depth+1)
		if err != nil {
			return nil, err
		}
		return &ast.PrintExpression{Value: value, Location: loc}, nil

	default:
		return nil, errorf(path+".kind", "unknown term kind %q", kind.Str)
	}
}

// loadSymbols decodes a parameter list. An absent field is an empty
// list, matching the upstream serializer's defaults.
func loadSymbols(v gjson.Result, path string) ([]*ast.Symbol, error) {
	if !v.Exists() {
		return nil, nil
	}
	if !v.IsArray() {
		return nil, errorf(path, "expected array, got %s", v.Type)
	}

	elems := v.Array()
	symbols := make([]*ast.Symbol, 0, len(elems))
	for i, elem := range elems {
		sym, err := loadSymbol(elem, fmt.Sprintf("%s.%d", path, i))
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, sym)
	}
	return symbols, nil
}

// loadTerms decodes an argument list. An absent field is an empty
// list, matching the upstream serializer's defaults.
func loadTerms(v gjson.Result, path string, depth int) ([]ast.Term, error) {
	if !v.Exists() {
		return nil, nil
	}
	if !v.IsArray() {
		return nil, errorf(path, "expected array, got %s", v.Type)
	}

	elems := v.Array()
	terms := make([]ast.Term, 0, len(elems))
	for i, elem := range elems {
		term, err := loadTerm(elem, fmt.Sprintf("%s.%d", path, i), depth)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, nil
}

func loadSymbol(v gjson.Result, path string) (*ast.Symbol, error) {
	if !v.Exists() {
		return nil, errorf(path, "missing required symbol")
	}
	if !v.IsObject() {
		return nil, errorf(path, "expected object, got %s", v.Type)
	}

	text := v.Get("text")
	if text.Type != gjson.String {
		return nil, errorf(path+".text", "missing or non-string text")
	}

	loc, err := loadLocation(v, path+".location")
	if err != nil {
		return nil, err
	}

	return &ast.Symbol{Text: text.Str, Location: loc}, nil
}

func loadLocation(parent gjson.Result, path string) (ast.Location, error) {
	v := parent.Get("location")
	if !v.Exists() {
		return ast.Location{}, errorf(path, "missing required location")
	}
	if !v.IsObject() {
		return ast.Location{}, errorf(path, "expected object, got %s", v.Type)
	}

	start := v.Get("start")
	if start.Type != gjson.Number {
		return ast.Location{}, errorf(path+".start", "missing or non-integer start")
	}
	end := v.Get("end")
	if end.Type != gjson.Number {
		return ast.Location{}, errorf(path+".end", "missing or non-integer end")
	}
	filename := v.Get("filename")
	if filename.Type != gjson.String {
		return ast.Location{}, errorf(path+".filename", "missing or non-string filename")
	}

	return ast.Location{
		Start:    int(start.Int()),
		End:      int(end.Int()),
		Filename: filename.Str,
	}, nil
}

// loadString reads a required string field directly under obj.
func loadString(obj gjson.Result, field string) (string, error) {
	v := obj.Get(field)
	if v.Type != gjson.String {
		return "", errorf(field, "missing or non-string %s", field)
	}
	return v.Str, nil
}

// loadInt reads a required integer field. The value must be a JSON
// number; fractional parts are rejected.
func loadInt(obj gjson.Result, path string) (int64, error) {
	v := obj.Get("value")
	if v.Type != gjson.Number {
		return 0, errorf(path, "missing or non-integer value")
	}
	if v.Num != math.Trunc(v.Num) {
		return 0, errorf(path, "value %v is not an integer", v.Num)
	}
	return v.Int(), nil
}
