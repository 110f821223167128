package parser

import (
	"strings"

	"github.com/gnoswap-labs/exprify/ast"
)

// Parser builds an AST from a search expression by recursive descent:
//
//	expression := term ( "OR" term )*
//	term       := ( "-" factor | factor )+
//	factor     := KEYWORD | PHRASE | NAMED_ARG | "(" expression ")"
//
// A Parser may be reused for several inputs, but not concurrently.
type Parser struct {
	tokens  []token
	current int
}

// New creates a new Parser instance.
func New() *Parser {
	return &Parser{}
}

// Parse parses input with a fresh Parser.
func Parse(input string) (ast.Node, error) {
	return New().Parse(input)
}

// MustParse is like Parse but panics if the input cannot be parsed.
func MustParse(input string) ast.Node {
	node, err := Parse(input)
	if err != nil {
		panic(`parser: Parse(` + input + `): ` + err.Error())
	}
	return node
}

// Parse tokenizes input once and parses the token sequence into a tree.
// Any failure aborts the whole parse; no partial tree is returned.
func (p *Parser) Parse(input string) (ast.Node, error) {
	if strings.TrimSpace(input) == "" {
		return nil, newError(EmptyInput, 0, "Empty input")
	}

	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	p.tokens = tokens
	p.current = 0

	node, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	// parseExpression only stops early on a ')' with no matching '('
	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, newError(UnexpectedClosingParen, tok.pos, "Unexpected closing parenthesis")
	}
	return node, nil
}

// parseExpression parses terms separated by OR. A single term is returned
// as is.
func (p *Parser) parseExpression() (ast.Node, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	terms := []ast.Node{first}

	for p.peek().kind == tokenOperator && p.peek().value == operatorOr {
		p.advance()
		switch tok := p.peek(); tok.kind {
		case tokenEOF, tokenRParen, tokenOperator:
			return nil, newError(MissingOperand, tok.pos, "Expected expression after OR")
		}
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}

	if len(terms) == 1 {
		return terms[0], nil
	}
	return ast.NewOr(terms...), nil
}

// parseTerm collects factors until eof, ')' or an operator, wrapping them in
// an AndNode when there is more than one.
func (p *Parser) parseTerm() (ast.Node, error) {
	var nodes []ast.Node

loop:
	for {
		switch tok := p.peek(); tok.kind {
		case tokenEOF, tokenRParen, tokenOperator:
			break loop
		case tokenNot:
			p.advance()
			factor, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, ast.NewNot(factor))
		default:
			factor, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, factor)
		}
	}

	switch len(nodes) {
	case 0:
		return nil, newError(NoValidExpression, p.peek().pos, "No valid expression found")
	case 1:
		return nodes[0], nil
	default:
		return ast.NewAnd(nodes...), nil
	}
}

// parseFactor parses a single keyword, phrase, named argument or
// parenthesized group.
func (p *Parser) parseFactor() (ast.Node, error) {
	tok := p.peek()
	switch tok.kind {
	case tokenKeyword:
		p.advance()
		return ast.NewKeyword(tok.value), nil
	case tokenPhrase:
		p.advance()
		return ast.NewExactPhrase(tok.value), nil
	case tokenNamedArg:
		p.advance()
		return ast.NewNamedArgument(tok.name, tok.value), nil
	case tokenLParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokenRParen); err != nil {
			return nil, err
		}
		return ast.NewGroup(expr), nil
	case tokenRParen:
		return nil, newError(UnexpectedClosingParen, tok.pos, "Unexpected closing parenthesis")
	case tokenEOF:
		return nil, newError(UnexpectedEndOfInput, tok.pos, "Unexpected end of input")
	default:
		return nil, newError(UnexpectedToken, tok.pos, "Unexpected token: %s", tok.kind)
	}
}

// peek returns the current token without consuming it. The sequence ends
// with eof, so the cursor never runs past the last token.
func (p *Parser) peek() token {
	return p.tokens[p.current]
}

func (p *Parser) advance() {
	if p.current < len(p.tokens)-1 {
		p.current++
	}
}

// expect consumes the current token if it has the given kind.
func (p *Parser) expect(kind tokenKind) error {
	tok := p.peek()
	if tok.kind != kind {
		return newError(UnexpectedToken, tok.pos, "Expected %s, got %s", kind, tok.kind)
	}
	p.advance()
	return nil
}
