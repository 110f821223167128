package ast

// Walk traverses the tree rooted at n in pre-order, visiting children in
// their stored order. If fn returns false the children of that node are
// skipped.
func Walk(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	_, _ = Transform[struct{}](n, walker{fn: fn})
}

type walker struct {
	fn func(Node) bool
}

var _ Transformer[struct{}] = walker{}

func (w walker) ForAnd(n *AndNode) (struct{}, error) { return w.visit(n, n.children...) }
func (w walker) ForOr(n *OrNode) (struct{}, error)   { return w.visit(n, n.children...) }
func (w walker) ForNot(n *NotNode) (struct{}, error) { return w.visit(n, n.expr) }

func (w walker) ForGroup(n *GroupNode) (struct{}, error)     { return w.visit(n, n.expr) }
func (w walker) ForKeyword(n *KeywordNode) (struct{}, error) { return w.visit(n) }

func (w walker) ForExactPhrase(n *ExactPhraseNode) (struct{}, error) { return w.visit(n) }

func (w walker) ForNamedArgument(n *NamedArgumentNode) (struct{}, error) { return w.visit(n) }

func (w walker) visit(n Node, children ...Node) (struct{}, error) {
	if w.fn(n) {
		for _, c := range children {
			Walk(c, w.fn)
		}
	}
	return struct{}{}, nil
}

// NamedArguments returns every NamedArgumentNode in the tree in pre-order.
func NamedArguments(n Node) []*NamedArgumentNode {
	var args []*NamedArgumentNode
	Walk(n, func(n Node) bool {
		if arg, ok := n.(*NamedArgumentNode); ok {
			args = append(args, arg)
		}
		return true
	})
	return args
}
