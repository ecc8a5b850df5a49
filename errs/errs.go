// Package errs defines the single error sum type surfaced by every stage
// of the pipeline: tokenizing, tree building and evaluation all return
// *Error rather than ad-hoc error values, so a caller can switch on Kind
// regardless of which stage failed.
package errs

import "fmt"

// Kind tags which failure occurred.
type Kind int

const (
	// UnmatchedCharacter marks a tokenizer character the grammar doesn't know.
	UnmatchedCharacter Kind = iota
	// UnmatchedOperator marks an operator used in a context it doesn't support (e.g. infix `!`).
	UnmatchedOperator
	// InvalidLiteral marks a numeric literal that failed to parse.
	InvalidLiteral
	// UnmatchedLBrace marks an opening paren with no matching close.
	UnmatchedLBrace
	// UnmatchedRBrace marks a closing paren with no matching open.
	UnmatchedRBrace
	// WrongOperatorArgumentAmount marks a tree node missing, or with too many, children.
	WrongOperatorArgumentAmount
	// WrongFunctionArgumentAmount marks a call-time arity mismatch.
	WrongFunctionArgumentAmount
	// AppendedToLeafNode marks an attempt to attach a child where no slot exists.
	AppendedToLeafNode
	// VariableIdentifierNotFound marks a failed variable lookup.
	VariableIdentifierNotFound
	// FunctionIdentifierNotFound marks a failed function lookup.
	FunctionIdentifierNotFound
	// ExpectedNumber marks a type mismatch where a number was required.
	ExpectedNumber
	// ExpectedBoolean marks a type mismatch where a Boolean was required.
	ExpectedBoolean
	// ExpectedTuple marks a type mismatch where a Tuple was required.
	ExpectedTuple
	// EmptyExpression marks an expression with no tokens at all.
	EmptyExpression
)

func (k Kind) String() string {
	switch k {
	case UnmatchedCharacter:
		return "UnmatchedCharacter"
	case UnmatchedOperator:
		return "UnmatchedOperator"
	case InvalidLiteral:
		return "InvalidLiteral"
	case UnmatchedLBrace:
		return "UnmatchedLBrace"
	case UnmatchedRBrace:
		return "UnmatchedRBrace"
	case WrongOperatorArgumentAmount:
		return "WrongOperatorArgumentAmount"
	case WrongFunctionArgumentAmount:
		return "WrongFunctionArgumentAmount"
	case AppendedToLeafNode:
		return "AppendedToLeafNode"
	case VariableIdentifierNotFound:
		return "VariableIdentifierNotFound"
	case FunctionIdentifierNotFound:
		return "FunctionIdentifierNotFound"
	case ExpectedNumber:
		return "ExpectedNumber"
	case ExpectedBoolean:
		return "ExpectedBoolean"
	case ExpectedTuple:
		return "ExpectedTuple"
	case EmptyExpression:
		return "EmptyExpression"
	default:
		return "Unknown"
	}
}

// Error is the single error type returned by every stage. Only the fields
// relevant to Kind are populated; the rest are zero values.
type Error struct {
	Kind Kind

	// Token/character context, for tokenizer and tree-builder failures.
	Token string

	// Expected/Actual are used by WrongOperatorArgumentAmount and
	// WrongFunctionArgumentAmount.
	Expected int
	Actual   int

	// Name is used by VariableIdentifierNotFound / FunctionIdentifierNotFound.
	Name string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case UnmatchedCharacter:
		return fmt.Sprintf("unmatched character: %q", e.Token)
	case UnmatchedOperator:
		return fmt.Sprintf("unmatched operator: %q", e.Token)
	case InvalidLiteral:
		return fmt.Sprintf("invalid literal: %q", e.Token)
	case UnmatchedLBrace:
		return "unmatched opening parenthesis"
	case UnmatchedRBrace:
		return "unmatched closing parenthesis"
	case WrongOperatorArgumentAmount:
		return fmt.Sprintf("wrong operator argument amount: expected %d, got %d", e.Expected, e.Actual)
	case WrongFunctionArgumentAmount:
		return fmt.Sprintf("wrong function argument amount: expected %d, got %d", e.Expected, e.Actual)
	case AppendedToLeafNode:
		return fmt.Sprintf("appended to leaf node near %q", e.Token)
	case VariableIdentifierNotFound:
		return fmt.Sprintf("variable identifier not found: %q", e.Name)
	case FunctionIdentifierNotFound:
		return fmt.Sprintf("function identifier not found: %q", e.Name)
	case ExpectedNumber:
		return "expected a number"
	case ExpectedBoolean:
		return "expected a boolean"
	case ExpectedTuple:
		return "expected a tuple"
	case EmptyExpression:
		return "empty expression"
	default:
		return "unknown error"
	}
}

// New constructs a bare Error of the given Kind, for kinds that carry no
// extra payload (UnmatchedLBrace, UnmatchedRBrace, ExpectedNumber,
// ExpectedBoolean, ExpectedTuple, EmptyExpression).
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// NewToken constructs an Error tagged with the offending token text
// (UnmatchedCharacter, UnmatchedOperator, InvalidLiteral, AppendedToLeafNode).
func NewToken(kind Kind, token string) *Error {
	return &Error{Kind: kind, Token: token}
}

// NewName constructs an Error tagged with an identifier name
// (VariableIdentifierNotFound, FunctionIdentifierNotFound).
func NewName(kind Kind, name string) *Error {
	return &Error{Kind: kind, Name: name}
}

// NewArity constructs an Error carrying an expected/actual argument count
// (WrongOperatorArgumentAmount, WrongFunctionArgumentAmount).
//
// The concrete test `eval("true-") -> WrongOperatorArgumentAmount(1, 2)`
// fixes the field order as (actual, expected): trailing `-` leaves the
// infix minus node with one child (actual=1) against its declared arity
// of two (expected=2).
func NewArity(kind Kind, actual, expected int) *Error {
	return &Error{Kind: kind, Actual: actual, Expected: expected}
}
