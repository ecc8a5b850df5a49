// Package evalexpr is an embeddable expression language: it compiles a
// textual arithmetic/boolean expression into a reusable operator tree
// and evaluates that tree against a caller-supplied environment of named
// variables and functions.
package evalexpr

import (
	"github.com/pkg/errors"

	"github.com/myfstd/evalexpr/environment"
	"github.com/myfstd/evalexpr/token"
	"github.com/myfstd/evalexpr/tree"
	"github.com/myfstd/evalexpr/value"
)

// Node is the compiled, immutable operator tree. It can be evaluated any
// number of times against different environments.
type Node = tree.Node

// Eval tokenizes, builds and evaluates expression against an empty
// environment in one step.
func Eval(expression string) (value.Value, error) {
	return EvalWith(expression, environment.Empty)
}

// EvalWith tokenizes, builds and evaluates expression against env in one
// step.
func EvalWith(expression string, env environment.Environment) (value.Value, error) {
	node, err := BuildTree(expression)
	if err != nil {
		return value.Value{}, err
	}
	v, err := node.Evaluate(env)
	if err != nil {
		return value.Value{}, errors.Wrapf(err, "evaluating %q", expression)
	}
	return v, nil
}

// BuildTree compiles expression into a reusable operator tree without
// evaluating it. The returned Node's Evaluate method can be called any
// number of times against different environments.
func BuildTree(expression string) (*Node, error) {
	tokens, err := token.Tokenize(expression)
	if err != nil {
		return nil, errors.Wrapf(err, "tokenizing %q", expression)
	}
	node, err := tree.Build(tokens)
	if err != nil {
		return nil, errors.Wrapf(err, "building tree for %q", expression)
	}
	return node, nil
}
