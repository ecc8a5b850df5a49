// Package operator holds the fixed catalog of operators this language
// knows about: their symbol, precedence, arity, and (for the operators
// that need no environment) their evaluation rule.
package operator

import (
	"math"

	"github.com/myfstd/evalexpr/errs"
	"github.com/myfstd/evalexpr/value"
)

// Symbol identifies one operator in the catalog.
type Symbol int

const (
	// Root is the sentinel operator every built tree is rooted at.
	Root Symbol = iota
	// Aggregate is the `,` tuple-building operator.
	Aggregate
	// Or is `||`.
	Or
	// And is `&&`.
	And
	// Eq is `==`.
	Eq
	// Neq is `!=`.
	Neq
	// Lt is `<`.
	Lt
	// Lte is `<=`.
	Lte
	// Gt is `>`.
	Gt
	// Gte is `>=`.
	Gte
	// Add is infix `+`.
	Add
	// Sub is infix `-`.
	Sub
	// Mul is `*`.
	Mul
	// Div is `/`.
	Div
	// Mod is `%`.
	Mod
	// Negate is prefix `-`.
	Negate
	// Not is prefix `!`.
	Not
	// Pow is `^`.
	Pow
	// Apply is implicit function application.
	Apply
	// Value is a leaf: a literal or an identifier.
	Value
)

func (s Symbol) String() string {
	switch s {
	case Root:
		return "<root>"
	case Aggregate:
		return ","
	case Or:
		return "||"
	case And:
		return "&&"
	case Eq:
		return "=="
	case Neq:
		return "!="
	case Lt:
		return "<"
	case Lte:
		return "<="
	case Gt:
		return ">"
	case Gte:
		return ">="
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	case Negate:
		return "-"
	case Not:
		return "!"
	case Pow:
		return "^"
	case Apply:
		return "<apply>"
	case Value:
		return "<value>"
	default:
		return "<unknown>"
	}
}

// Precedence returns the operator's binding strength. Higher binds tighter.
func (s Symbol) Precedence() int {
	switch s {
	case Root:
		return 0
	case Aggregate:
		return 40
	case Or:
		return 70
	case And:
		return 75
	case Eq, Neq, Lt, Lte, Gt, Gte:
		return 80
	case Add, Sub:
		return 95
	case Mul, Div, Mod:
		return 100
	case Negate, Not:
		return 110
	case Pow:
		return 120
	case Apply:
		return 190
	case Value:
		return 200
	default:
		return 0
	}
}

// Arity returns the fixed number of children the operator requires once
// the tree is complete.
func (s Symbol) Arity() int {
	switch s {
	case Root:
		return 1
	case Negate, Not, Apply:
		return 1
	case Value:
		return 0
	default:
		return 2
	}
}

// IsPrefix reports whether s is a unary prefix operator.
func (s Symbol) IsPrefix() bool {
	return s == Negate || s == Not
}

// isComparator reports whether s is one of the relational operators
// dispatched in Eval.
func isComparator(s Symbol) bool {
	switch s {
	case Eq, Neq, Lt, Lte, Gt, Gte:
		return true
	default:
		return false
	}
}

// Eval applies s to already-evaluated children for every operator that
// needs no environment: arithmetic, relational, logical, prefix and
// aggregation. Apply, Value and Root are resolved by the evaluator itself
// because they need environment/tree context.
func Eval(s Symbol, children []value.Value) (value.Value, error) {
	switch {
	case s == Negate:
		return evalNegate(children[0])
	case s == Not:
		return evalNot(children[0])
	case s == Add || s == Sub || s == Mul || s == Div || s == Mod:
		return evalArithmetic(s, children[0], children[1])
	case s == Pow:
		return evalPow(children[0], children[1])
	case isComparator(s):
		return evalComparator(s, children[0], children[1])
	case s == And || s == Or:
		return evalLogical(s, children[0], children[1])
	case s == Aggregate:
		return evalAggregate(children[0], children[1]), nil
	default:
		return value.Value{}, errs.New(errs.ExpectedNumber)
	}
}

func evalNegate(v value.Value) (value.Value, error) {
	switch v.Kind() {
	case value.KindInt:
		i, _ := v.AsInt()
		return value.Int(-i), nil
	case value.KindFloat:
		f, _ := v.AsFloat()
		return value.Float(-f), nil
	default:
		return value.Value{}, errs.New(errs.ExpectedNumber)
	}
}

func evalNot(v value.Value) (value.Value, error) {
	b, err := v.AsBool()
	if err != nil {
		return value.Value{}, errs.New(errs.ExpectedBoolean)
	}
	return value.Bool(!b), nil
}

// evalArithmetic implements the promotion rule from the value model: both
// Int operands keep integer arithmetic (truncating division); otherwise
// both widen to Float.
func evalArithmetic(s Symbol, left, right value.Value) (value.Value, error) {
	if !left.IsNumeric() || !right.IsNumeric() {
		return value.Value{}, errs.New(errs.ExpectedNumber)
	}

	if left.Kind() == value.KindInt && right.Kind() == value.KindInt {
		a, _ := left.AsInt()
		b, _ := right.AsInt()
		switch s {
		case Add:
			return value.Int(a + b), nil
		case Sub:
			return value.Int(a - b), nil
		case Mul:
			return value.Int(a * b), nil
		case Div:
			return value.Int(a / b), nil
		case Mod:
			return value.Int(a % b), nil
		}
	}

	a, _ := left.AsFloat()
	b, _ := right.AsFloat()
	switch s {
	case Add:
		return value.Float(a + b), nil
	case Sub:
		return value.Float(a - b), nil
	case Mul:
		return value.Float(a * b), nil
	case Div:
		return value.Float(a / b), nil
	case Mod:
		return value.Float(math.Mod(a, b)), nil
	}
	return value.Value{}, errs.New(errs.ExpectedNumber)
}

// evalPow always widens to Float, regardless of operand kinds.
func evalPow(left, right value.Value) (value.Value, error) {
	if !left.IsNumeric() || !right.IsNumeric() {
		return value.Value{}, errs.New(errs.ExpectedNumber)
	}
	a, _ := left.AsFloat()
	b, _ := right.AsFloat()
	return value.Float(math.Pow(a, b)), nil
}

func evalComparator(s Symbol, left, right value.Value) (value.Value, error) {
	if s == Eq {
		return value.Bool(left.Equal(right)), nil
	}
	if s == Neq {
		return value.Bool(!left.Equal(right)), nil
	}

	if !left.IsNumeric() || !right.IsNumeric() {
		return value.Value{}, errs.New(errs.ExpectedNumber)
	}
	a, _ := left.AsFloat()
	b, _ := right.AsFloat()
	switch s {
	case Lt:
		return value.Bool(a < b), nil
	case Lte:
		return value.Bool(a <= b), nil
	case Gt:
		return value.Bool(a > b), nil
	case Gte:
		return value.Bool(a >= b), nil
	}
	return value.Value{}, errs.New(errs.ExpectedNumber)
}

func evalLogical(s Symbol, left, right value.Value) (value.Value, error) {
	a, err := left.AsBool()
	if err != nil {
		return value.Value{}, errs.New(errs.ExpectedBoolean)
	}
	b, err := right.AsBool()
	if err != nil {
		return value.Value{}, errs.New(errs.ExpectedBoolean)
	}
	if s == And {
		return value.Bool(a && b), nil
	}
	return value.Bool(a || b), nil
}

// evalAggregate builds a flat Tuple out of left and right, flattening one
// level on either side per the aggregation invariant: no Tuple ever
// directly contains a Tuple.
func evalAggregate(left, right value.Value) value.Value {
	return value.Tuple(left, right)
}
