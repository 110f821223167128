package ast

import "errors"

// ErrNilNode is returned when Transform is given a nil root.
var ErrNilNode = errors.New("ast: cannot transform nil node")

// Transformer converts nodes into a backend-defined result R. It has one
// callback per node variant, so a backend that misses a variant does not
// compile.
//
// Composite callbacks receive the node itself; recursing into children and
// combining their results is the transformer's job:
//
//	func (t sqlTransformer) ForAnd(n *ast.AndNode) (string, error) {
//		parts, err := ast.TransformEach[string](n.Children(), t)
//		if err != nil {
//			return "", err
//		}
//		return strings.Join(parts, " AND "), nil
//	}
type Transformer[R any] interface {
	ForAnd(n *AndNode) (R, error)
	ForOr(n *OrNode) (R, error)
	ForNot(n *NotNode) (R, error)
	ForKeyword(n *KeywordNode) (R, error)
	ForExactPhrase(n *ExactPhraseNode) (R, error)
	ForNamedArgument(n *NamedArgumentNode) (R, error)
	ForGroup(n *GroupNode) (R, error)
}

// visitor is the non-generic half of the double dispatch. Nodes route to it,
// and dispatcher forwards to the typed Transformer.
type visitor interface {
	visitAnd(n *AndNode)
	visitOr(n *OrNode)
	visitNot(n *NotNode)
	visitKeyword(n *KeywordNode)
	visitExactPhrase(n *ExactPhraseNode)
	visitNamedArgument(n *NamedArgumentNode)
	visitGroup(n *GroupNode)
}

type dispatcher[R any] struct {
	t      Transformer[R]
	result R
	err    error
}

func (d *dispatcher[R]) visitAnd(n *AndNode)         { d.result, d.err = d.t.ForAnd(n) }
func (d *dispatcher[R]) visitOr(n *OrNode)           { d.result, d.err = d.t.ForOr(n) }
func (d *dispatcher[R]) visitNot(n *NotNode)         { d.result, d.err = d.t.ForNot(n) }
func (d *dispatcher[R]) visitKeyword(n *KeywordNode) { d.result, d.err = d.t.ForKeyword(n) }
func (d *dispatcher[R]) visitGroup(n *GroupNode)     { d.result, d.err = d.t.ForGroup(n) }

func (d *dispatcher[R]) visitExactPhrase(n *ExactPhraseNode) {
	d.result, d.err = d.t.ForExactPhrase(n)
}

func (d *dispatcher[R]) visitNamedArgument(n *NamedArgumentNode) {
	d.result, d.err = d.t.ForNamedArgument(n)
}

// Transform routes root to the single callback of t matching its variant and
// returns that callback's result.
func Transform[R any](root Node, t Transformer[R]) (R, error) {
	if root == nil {
		var zero R
		return zero, ErrNilNode
	}
	d := &dispatcher[R]{t: t}
	root.accept(d)
	return d.result, d.err
}

// TransformEach transforms nodes in order and stops at the first error.
func TransformEach[R any](nodes []Node, t Transformer[R]) ([]R, error) {
	results := make([]R, 0, len(nodes))
	for _, n := range nodes {
		r, err := Transform(n, t)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
