package ast

import (
	"fmt"
	"slices"
	"strings"
)

// Node is an immutable search-expression node.
//
// The set of implementations is closed: AndNode, OrNode, NotNode,
// KeywordNode, ExactPhraseNode, NamedArgumentNode and GroupNode.
// Backends consume nodes through Transform rather than by type inspection.
type Node interface {
	accept(v visitor)
	Equal(other Node) bool
	String() string
}

var (
	_ Node = (*AndNode)(nil)
	_ Node = (*OrNode)(nil)
	_ Node = (*NotNode)(nil)
	_ Node = (*KeywordNode)(nil)
	_ Node = (*ExactPhraseNode)(nil)
	_ Node = (*NamedArgumentNode)(nil)
	_ Node = (*GroupNode)(nil)
)

// AndNode matches when all of its children match.
type AndNode struct {
	children []Node
}

// NewAnd returns an AndNode owning a copy of children.
func NewAnd(children ...Node) *AndNode {
	return &AndNode{children: slices.Clone(children)}
}

// Children returns the child nodes in parse order.
func (n *AndNode) Children() []Node { return slices.Clone(n.children) }

// Len returns the number of children.
func (n *AndNode) Len() int { return len(n.children) }

// Child returns the i-th child.
func (n *AndNode) Child(i int) Node { return n.children[i] }

func (n *AndNode) accept(v visitor) { v.visitAnd(n) }

func (n *AndNode) Equal(other Node) bool {
	o, ok := other.(*AndNode)
	return ok && equalNodes(n.children, o.children)
}

func (n *AndNode) String() string {
	return fmt.Sprintf("#<AndNode children=[%s]>", joinNodes(n.children))
}

// OrNode matches when at least one of its children matches.
type OrNode struct {
	children []Node
}

// NewOr returns an OrNode owning a copy of children.
func NewOr(children ...Node) *OrNode {
	return &OrNode{children: slices.Clone(children)}
}

// Children returns the child nodes in parse order.
func (n *OrNode) Children() []Node { return slices.Clone(n.children) }

// Len returns the number of children.
func (n *OrNode) Len() int { return len(n.children) }

// Child returns the i-th child.
func (n *OrNode) Child(i int) Node { return n.children[i] }

func (n *OrNode) accept(v visitor) { v.visitOr(n) }

func (n *OrNode) Equal(other Node) bool {
	o, ok := other.(*OrNode)
	return ok && equalNodes(n.children, o.children)
}

func (n *OrNode) String() string {
	return fmt.Sprintf("#<OrNode children=[%s]>", joinNodes(n.children))
}

// NotNode negates its expression.
type NotNode struct {
	expr Node
}

func NewNot(expr Node) *NotNode { return &NotNode{expr: expr} }

// Expression returns the negated node.
func (n *NotNode) Expression() Node { return n.expr }

func (n *NotNode) accept(v visitor) { v.visitNot(n) }

func (n *NotNode) Equal(other Node) bool {
	o, ok := other.(*NotNode)
	return ok && equalNode(n.expr, o.expr)
}

func (n *NotNode) String() string {
	return fmt.Sprintf("#<NotNode expression=%s>", nodeString(n.expr))
}

// KeywordNode is a bare search term.
type KeywordNode struct {
	value string
}

func NewKeyword(value string) *KeywordNode { return &KeywordNode{value: value} }

func (n *KeywordNode) Value() string { return n.value }

func (n *KeywordNode) accept(v visitor) { v.visitKeyword(n) }

func (n *KeywordNode) Equal(other Node) bool {
	o, ok := other.(*KeywordNode)
	return ok && n.value == o.value
}

func (n *KeywordNode) String() string {
	return fmt.Sprintf("#<KeywordNode value=%q>", n.value)
}

// ExactPhraseNode is a quoted literal.
type ExactPhraseNode struct {
	phrase string
}

func NewExactPhrase(phrase string) *ExactPhraseNode { return &ExactPhraseNode{phrase: phrase} }

func (n *ExactPhraseNode) Phrase() string { return n.phrase }

func (n *ExactPhraseNode) accept(v visitor) { v.visitExactPhrase(n) }

func (n *ExactPhraseNode) Equal(other Node) bool {
	o, ok := other.(*ExactPhraseNode)
	return ok && n.phrase == o.phrase
}

func (n *ExactPhraseNode) String() string {
	return fmt.Sprintf("#<ExactPhraseNode phrase=%q>", n.phrase)
}

// NamedArgumentNode is a name:value pair. The parser only recognizes the
// shape; interpreting name and value is up to the backend.
type NamedArgumentNode struct {
	name  string
	value string
}

func NewNamedArgument(name, value string) *NamedArgumentNode {
	return &NamedArgumentNode{name: name, value: value}
}

func (n *NamedArgumentNode) Name() string  { return n.name }
func (n *NamedArgumentNode) Value() string { return n.value }

func (n *NamedArgumentNode) accept(v visitor) { v.visitNamedArgument(n) }

func (n *NamedArgumentNode) Equal(other Node) bool {
	o, ok := other.(*NamedArgumentNode)
	return ok && n.name == o.name && n.value == o.value
}

func (n *NamedArgumentNode) String() string {
	return fmt.Sprintf("#<NamedArgumentNode name=%q value=%q>", n.name, n.value)
}

// GroupNode is a parenthesized expression. It is kept as its own node so
// backends can emit explicit grouping.
type GroupNode struct {
	expr Node
}

func NewGroup(expr Node) *GroupNode { return &GroupNode{expr: expr} }

// Expression returns the grouped node.
func (n *GroupNode) Expression() Node { return n.expr }

func (n *GroupNode) accept(v visitor) { v.visitGroup(n) }

func (n *GroupNode) Equal(other Node) bool {
	o, ok := other.(*GroupNode)
	return ok && equalNode(n.expr, o.expr)
}

func (n *GroupNode) String() string {
	return fmt.Sprintf("#<GroupNode expression=%s>", nodeString(n.expr))
}

// Equal reports whether a and b are structurally identical trees.
func Equal(a, b Node) bool {
	return equalNode(a, b)
}

func equalNode(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

func equalNodes(a, b []Node) bool {
	return slices.EqualFunc(a, b, equalNode)
}

func nodeString(n Node) string {
	if n == nil {
		return "nil"
	}
	return n.String()
}

func joinNodes(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = nodeString(n)
	}
	return strings.Join(parts, ", ")
}
