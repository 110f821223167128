/*
Package parser turns a search expression into an ast.Node.

# Syntax

	ruby gem             both keywords (implicit AND)
	ruby OR gem          either keyword
	-deprecated          negation, only at the start of a term
	"exact phrase"       quoted literal
	since:2024-01-01     named argument
	name:"a:b c"         named argument with a quoted value
	(ruby OR gem) rails  grouping

OR binds terms, not factors: "a b OR c" is (a AND b) OR c. A hyphen inside
a word is literal, so well-known is a single keyword. A word with an empty
name or empty value around its first colon (":value", "name:") is kept as a
plain keyword.

# Errors

Every failure is a *Error whose message can be shown to the user as is.
All of them match ErrExpression with errors.Is.
*/
package parser
