// Package match compiles search expressions into in-memory predicates.
package match

import (
	"strings"

	"github.com/gnoswap-labs/exprify/ast"
	"github.com/gnoswap-labs/exprify/parser"
)

// Document is the record a Predicate is evaluated against.
type Document struct {
	Text   string
	Fields map[string]string
}

// Predicate reports whether a document matches.
type Predicate func(Document) bool

// Matcher compiles trees into predicates:
//   - keywords match case-insensitively anywhere in Text or any field value
//   - exact phrases match case-sensitively as a substring of Text
//   - name:value matches when field name equals value, ignoring case
type Matcher struct{}

var _ ast.Transformer[Predicate] = Matcher{}

func New() Matcher { return Matcher{} }

// Compile parses input and compiles it.
func Compile(input string) (Predicate, error) {
	root, err := parser.Parse(input)
	if err != nil {
		return nil, err
	}
	return New().Compile(root)
}

func (m Matcher) Compile(n ast.Node) (Predicate, error) {
	return ast.Transform[Predicate](n, m)
}

func (m Matcher) ForAnd(n *ast.AndNode) (Predicate, error) {
	preds, err := ast.TransformEach[Predicate](n.Children(), m)
	if err != nil {
		return nil, err
	}
	return func(doc Document) bool {
		for _, p := range preds {
			if !p(doc) {
				return false
			}
		}
		return true
	}, nil
}

func (m Matcher) ForOr(n *ast.OrNode) (Predicate, error) {
	preds, err := ast.TransformEach[Predicate](n.Children(), m)
	if err != nil {
		return nil, err
	}
	return func(doc Document) bool {
		for _, p := range preds {
			if p(doc) {
				return true
			}
		}
		return false
	}, nil
}

func (m Matcher) ForNot(n *ast.NotNode) (Predicate, error) {
	inner, err := m.Compile(n.Expression())
	if err != nil {
		return nil, err
	}
	return func(doc Document) bool { return !inner(doc) }, nil
}

func (m Matcher) ForGroup(n *ast.GroupNode) (Predicate, error) {
	return m.Compile(n.Expression())
}

func (Matcher) ForKeyword(n *ast.KeywordNode) (Predicate, error) {
	needle := strings.ToLower(n.Value())
	return func(doc Document) bool {
		if containsFold(doc.Text, needle) {
			return true
		}
		for _, v := range doc.Fields {
			if containsFold(v, needle) {
				return true
			}
		}
		return false
	}, nil
}

func (Matcher) ForExactPhrase(n *ast.ExactPhraseNode) (Predicate, error) {
	phrase := n.Phrase()
	return func(doc Document) bool {
		return strings.Contains(doc.Text, phrase)
	}, nil
}

func (Matcher) ForNamedArgument(n *ast.NamedArgumentNode) (Predicate, error) {
	name, value := n.Name(), n.Value()
	return func(doc Document) bool {
		v, ok := doc.Fields[name]
		return ok && strings.EqualFold(v, value)
	}, nil
}

// containsFold checks if haystack contains the lowercased needle.
func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}
