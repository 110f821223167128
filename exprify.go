// Package exprify parses search expressions such as
//
//	(ruby OR gem) -deprecated "exact phrase" since:2024-01-01
//
// into an ast.Node and hands the tree to a backend implementing
// ast.Transformer. See the parser and ast packages for the grammar and the
// node model, and transformers/ for ready-made backends.
package exprify

import (
	"github.com/gnoswap-labs/exprify/ast"
	"github.com/gnoswap-labs/exprify/parser"
)

// Parse parses input into a tree. Failures are *parser.Error values.
func Parse(input string) (ast.Node, error) {
	return parser.Parse(input)
}

// Transform parses input and converts the tree with t.
func Transform[R any](input string, t ast.Transformer[R]) (R, error) {
	root, err := parser.Parse(input)
	if err != nil {
		var zero R
		return zero, err
	}
	return ast.Transform(root, t)
}
