package ast

import (
	"fmt"
	"strings"
)

// Pretty renders n as an indented multi-line tree, e.g.
//
//	AndNode
//	  children: [
//	    KeywordNode
//	      value: "ruby",
//	    NotNode
//	      expression: KeywordNode
//	        value: "deprecated"
//	  ]
func Pretty(n Node) string {
	s, err := Transform[string](n, prettyPrinter{})
	if err != nil {
		return nodeString(n)
	}
	return s
}

type prettyPrinter struct{}

var _ Transformer[string] = prettyPrinter{}

func (p prettyPrinter) ForAnd(n *AndNode) (string, error) {
	return p.list("AndNode", n.children)
}

func (p prettyPrinter) ForOr(n *OrNode) (string, error) {
	return p.list("OrNode", n.children)
}

func (p prettyPrinter) ForNot(n *NotNode) (string, error) {
	return p.wrap("NotNode", n.expr)
}

func (p prettyPrinter) ForGroup(n *GroupNode) (string, error) {
	return p.wrap("GroupNode", n.expr)
}

func (prettyPrinter) ForKeyword(n *KeywordNode) (string, error) {
	return fmt.Sprintf("KeywordNode\n  value: %q", n.value), nil
}

func (prettyPrinter) ForExactPhrase(n *ExactPhraseNode) (string, error) {
	return fmt.Sprintf("ExactPhraseNode\n  phrase: %q", n.phrase), nil
}

func (prettyPrinter) ForNamedArgument(n *NamedArgumentNode) (string, error) {
	return fmt.Sprintf("NamedArgumentNode\n  name: %q\n  value: %q", n.name, n.value), nil
}

func (p prettyPrinter) list(label string, children []Node) (string, error) {
	blocks, err := TransformEach[string](children, p)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(label)
	b.WriteString("\n  children: [\n")
	for i, block := range blocks {
		b.WriteString(indent(block, 4))
		if i < len(blocks)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("  ]")
	return b.String(), nil
}

func (p prettyPrinter) wrap(label string, expr Node) (string, error) {
	block, err := Transform[string](expr, p)
	if err != nil {
		return "", err
	}
	// the child header shares the "expression:" line
	return label + "\n  expression: " + strings.TrimLeft(indent(block, 2), " "), nil
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}
