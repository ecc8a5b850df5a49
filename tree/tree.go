// Package tree builds and evaluates the operator tree: the token list is
// spliced onto the rightmost spine of a growing tree respecting operator
// precedence and arity, and the finished tree is walked post-order to
// produce a Value.
package tree

import (
	"github.com/myfstd/evalexpr/environment"
	"github.com/myfstd/evalexpr/errs"
	"github.com/myfstd/evalexpr/operator"
	"github.com/myfstd/evalexpr/token"
	"github.com/myfstd/evalexpr/value"
)

// Node is one operator-tree node: an operator plus its ordered children.
// Leaves carry either a literal Value or an unresolved identifier name;
// a node extracted from a parenthesized group carries Group instead.
type Node struct {
	Operator   operator.Symbol
	Precedence int
	Children   []*Node

	IsLiteral bool
	Literal   value.Value

	// IsIdentifier marks a bare Value leaf that names a variable or,
	// via adjacency, a function. Identifier also doubles as the callee
	// name on an Apply node.
	IsIdentifier bool
	Identifier   string

	// Group holds the inner expression of a parenthesized, non-empty
	// sub-tree extracted on its closing paren; nil otherwise.
	Group *Node
}

func newRootNode() *Node {
	return &Node{Operator: operator.Root, Precedence: operator.Root.Precedence()}
}

func newLiteralNode(v value.Value) *Node {
	return &Node{Operator: operator.Value, Precedence: operator.Value.Precedence(), IsLiteral: true, Literal: v}
}

func newIdentifierNode(name string) *Node {
	return &Node{Operator: operator.Value, Precedence: operator.Value.Precedence(), IsIdentifier: true, Identifier: name}
}

func newOperatorNode(sym operator.Symbol) *Node {
	return &Node{Operator: sym, Precedence: sym.Precedence()}
}

// Build turns a token sequence into a root Node (the immutable operator
// tree). The returned root always has operator.Root with at most one
// child.
func Build(tokens []token.Token) (*Node, error) {
	if len(tokens) == 0 {
		return nil, errs.New(errs.EmptyExpression)
	}

	root := newRootNode()
	active := root
	var parenStack []*Node

	for _, tok := range tokens {
		switch tok.Kind {
		case token.Int:
			if err := attachLeaf(active, newLiteralNode(value.Int(tok.IntValue))); err != nil {
				return nil, err
			}
		case token.Float:
			if err := attachLeaf(active, newLiteralNode(value.Float(tok.FloatValue))); err != nil {
				return nil, err
			}
		case token.Bool:
			if err := attachLeaf(active, newLiteralNode(value.Bool(tok.BoolValue))); err != nil {
				return nil, err
			}
		case token.Identifier:
			if err := attachLeaf(active, newIdentifierNode(tok.Text)); err != nil {
				return nil, err
			}
		case token.LParen:
			parenStack = append(parenStack, active)
			active = newRootNode()
		case token.RParen:
			if len(parenStack) == 0 {
				return nil, errs.New(errs.UnmatchedRBrace)
			}
			popped := active
			active = parenStack[len(parenStack)-1]
			parenStack = parenStack[:len(parenStack)-1]

			group, err := extractGroup(popped)
			if err != nil {
				return nil, err
			}
			if err := attachLeaf(active, group); err != nil {
				return nil, err
			}
		case token.Operator:
			if err := attachOperator(active, newOperatorNode(tok.Symbol)); err != nil {
				return nil, err
			}
		}
	}

	if len(parenStack) > 0 {
		return nil, errs.New(errs.UnmatchedLBrace)
	}

	if err := validateComplete(root); err != nil {
		return nil, err
	}

	return root, nil
}

// extractGroup turns a just-closed paren group's sentinel root into a
// single value-level node, per the "closing paren" rule: an empty group
// is the empty Tuple; a non-empty one wraps its single child as an
// atomic value of precedence 200, so subsequent insertion always treats
// it as a completed leaf regardless of what operator sits at its root.
func extractGroup(popped *Node) (*Node, error) {
	if len(popped.Children) == 0 {
		return newLiteralNode(value.EmptyTuple()), nil
	}
	inner := popped.Children[0]
	if err := validateComplete(inner); err != nil {
		return nil, err
	}
	return &Node{Operator: operator.Value, Precedence: operator.Value.Precedence(), Group: inner}, nil
}

// attachLeaf inserts a value-producing node (literal, identifier or
// extracted group) at the deepest open slot on root's right spine. When
// that slot turns out to be occupied by a completed identifier leaf, the
// identifier is rewritten in place into a function-application node
// carrying leaf as its argument, instead of failing — this is the
// implicit juxtaposition rule.
func attachLeaf(root *Node, leaf *Node) error {
	pos := root
	for {
		if len(pos.Children) < pos.Operator.Arity() {
			pos.Children = append(pos.Children, leaf)
			return nil
		}

		last := pos.Children[len(pos.Children)-1]
		if last.Operator.Arity() != 0 {
			pos = last
			continue
		}

		if last.IsIdentifier {
			apply := &Node{Operator: operator.Apply, Precedence: operator.Apply.Precedence(), Identifier: last.Identifier}
			apply.Children = append(apply.Children, leaf)
			pos.Children[len(pos.Children)-1] = apply
			return nil
		}

		return errs.NewToken(errs.AppendedToLeafNode, describe(leaf))
	}
}

// attachOperator splices a binary or prefix operator node onto root's
// right spine: it walks down to the deepest node N whose own precedence
// is still looser than op's, then either drops op into N's open slot or,
// if N is already full, detaches N's last child and re-parents it under
// op. The walk stops at the first node with an open slot, and a prefix
// operator descends regardless of precedence, so it always lands in the
// open operand slot.
func attachOperator(root *Node, op *Node) error {
	n := root
	for len(n.Children) > 0 && len(n.Children) == n.Operator.Arity() {
		last := n.Children[len(n.Children)-1]
		if last.Operator.Arity() == 0 || (!op.Operator.IsPrefix() && last.Precedence >= op.Precedence) {
			break
		}
		n = last
	}

	if len(n.Children) < n.Operator.Arity() {
		n.Children = append(n.Children, op)
		return nil
	}

	last := n.Children[len(n.Children)-1]
	op.Children = append(op.Children, last)
	n.Children[len(n.Children)-1] = op
	return nil
}

// validateComplete checks, recursively, that every node's child count
// matches its operator's declared arity.
func validateComplete(n *Node) error {
	if n.Group != nil {
		return validateComplete(n.Group)
	}
	if len(n.Children) != n.Operator.Arity() {
		return errs.NewArity(errs.WrongOperatorArgumentAmount, len(n.Children), n.Operator.Arity())
	}
	for _, c := range n.Children {
		if err := validateComplete(c); err != nil {
			return err
		}
	}
	return nil
}

func describe(n *Node) string {
	if n.IsIdentifier {
		return n.Identifier
	}
	if n.IsLiteral {
		return n.Literal.String()
	}
	return n.Operator.String()
}

// Evaluate walks the tree post-order against env, dispatching each node
// through the operator catalog and resolving identifiers and function
// calls through env.
func (n *Node) Evaluate(env environment.Environment) (value.Value, error) {
	switch {
	case n.Operator == operator.Root:
		if len(n.Children) == 0 {
			return value.Value{}, errs.New(errs.EmptyExpression)
		}
		return n.Children[0].Evaluate(env)

	case n.Group != nil:
		return n.Group.Evaluate(env)

	case n.IsLiteral:
		return n.Literal, nil

	case n.IsIdentifier:
		v, ok := env.GetValue(n.Identifier)
		if !ok {
			return value.Value{}, errs.NewName(errs.VariableIdentifierNotFound, n.Identifier)
		}
		return v, nil

	case n.Operator == operator.Apply:
		return n.evaluateApply(env)

	default:
		children := make([]value.Value, len(n.Children))
		for i, c := range n.Children {
			v, err := c.Evaluate(env)
			if err != nil {
				return value.Value{}, err
			}
			children[i] = v
		}
		return operator.Eval(n.Operator, children)
	}
}

func (n *Node) evaluateApply(env environment.Environment) (value.Value, error) {
	fn, ok := env.GetFunction(n.Identifier)
	if !ok {
		if _, isVar := env.GetValue(n.Identifier); isVar {
			return value.Value{}, errs.NewToken(errs.AppendedToLeafNode, n.Identifier)
		}
		return value.Value{}, errs.NewName(errs.FunctionIdentifierNotFound, n.Identifier)
	}

	argValue, err := n.Children[0].Evaluate(env)
	if err != nil {
		return value.Value{}, err
	}
	args := argValue.AsSlice()

	if len(args) != fn.ArgumentCount {
		return value.Value{}, errs.NewArity(errs.WrongFunctionArgumentAmount, len(args), fn.ArgumentCount)
	}
	return fn.Call(args)
}
