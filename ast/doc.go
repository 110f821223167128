/*
Package ast defines the syntax tree of a search expression and the
transformer protocol used to turn it into backend-specific results.

# Node Types

  - AndNode: all children must match (implicit AND of adjacent terms)
  - OrNode: at least one child matches
  - NotNode: negation of its expression, written "-term"
  - KeywordNode: a bare search term
  - ExactPhraseNode: a quoted literal, written "exact phrase"
  - NamedArgumentNode: a name:value pair, e.g. since:2024-01-01
  - GroupNode: a parenthesized expression

Nodes are immutable and form a tree. The parser never produces an AndNode or
OrNode with fewer than two children.

# Transformers

A backend implements Transformer[R] with one callback per node type and
calls Transform on the root:

	cond, err := ast.Transform[mailsql.Condition](root, mailsql.New())

Transform performs double dispatch: the node picks the callback, so the
transformer never inspects node types itself.
*/
package ast
