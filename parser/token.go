package parser

// tokenKind defines the kinds of tokens produced by the lexer.
type tokenKind int

const (
	tokenEOF      tokenKind = iota // end of input
	tokenLParen                    // '('
	tokenRParen                    // ')'
	tokenNot                       // '-' at a term boundary
	tokenPhrase                    // "quoted text"
	tokenKeyword                   // bare word
	tokenNamedArg                  // name:value
	tokenOperator                  // OR
)

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "eof"
	case tokenLParen:
		return "lparen"
	case tokenRParen:
		return "rparen"
	case tokenNot:
		return "not"
	case tokenPhrase:
		return "phrase"
	case tokenKeyword:
		return "keyword"
	case tokenNamedArg:
		return "named_arg"
	case tokenOperator:
		return "operator"
	default:
		return "unknown"
	}
}

// operatorOr is the only operator word. Matching is case-sensitive.
const operatorOr = "OR"

// token is a single lexical token.
type token struct {
	kind  tokenKind
	value string // phrase content, word text, or argument value
	name  string // argument name (tokenNamedArg only)
	pos   int    // byte offset of the token start in the input
}
