package parser

import "strings"

// lexer scans an input string and produces tokens.
type lexer struct {
	input    string // the entire input to tokenize
	position int    // current reading position in input
	tokens   []token
}

func newLexer(input string) *lexer {
	return &lexer{
		input:    input,
		position: 0,
		tokens:   make([]token, 0),
	}
}

// tokenize scans the whole input in one left-to-right pass. The returned
// sequence always ends with a tokenEOF.
func tokenize(input string) ([]token, error) {
	return newLexer(input).tokenize()
}

func (l *lexer) tokenize() ([]token, error) {
	for l.position < len(l.input) {
		start := l.position
		switch c := l.input[l.position]; {
		case isWhitespace(c):
			l.position++

		case c == '(':
			l.addToken(tokenLParen, "(", start)
			l.position++

		case c == ')':
			l.addToken(tokenRParen, ")", start)
			l.position++

		case c == '-':
			if l.atTermBoundary() {
				l.addToken(tokenNot, "-", start)
				l.position++
				continue
			}
			// a hyphen glued to a preceding '(' or ')' is part of the word
			l.addToken(tokenKeyword, l.scanWord(), start)

		case c == '"':
			phrase, err := l.scanPhrase()
			if err != nil {
				return nil, err
			}
			l.addToken(tokenPhrase, phrase, start)

		default:
			l.tokens = append(l.tokens, classifyWord(l.scanWord(), start))
		}
	}

	l.addToken(tokenEOF, "", l.position)
	return l.tokens, nil
}

// atTermBoundary reports whether the current position starts the input or
// follows whitespace.
func (l *lexer) atTermBoundary() bool {
	return l.position == 0 || isWhitespace(l.input[l.position-1])
}

// scanWord consumes a word up to the next boundary. Double quotes inside a
// word toggle a quoted state in which boundaries are ignored, so
// name:"a b" stays a single word. Colons never end a word.
func (l *lexer) scanWord() string {
	start := l.position
	inQuotes := false
	for l.position < len(l.input) {
		c := l.input[l.position]
		if c == '"' {
			inQuotes = !inQuotes
		} else if !inQuotes && isWordBoundary(c) {
			break
		}
		l.position++
	}
	return l.input[start:l.position]
}

// scanPhrase consumes a quoted phrase starting at the opening quote and
// returns its content without the quotes.
func (l *lexer) scanPhrase() (string, error) {
	open := l.position
	end := strings.IndexByte(l.input[open+1:], '"')
	if end < 0 {
		return "", newError(UnterminatedPhrase, open, "Unterminated phrase")
	}
	closing := open + 1 + end
	l.position = closing + 1
	return l.input[open+1 : closing], nil
}

// addToken is a helper to append a new token to the lexer's token list.
func (l *lexer) addToken(kind tokenKind, value string, pos int) {
	l.tokens = append(l.tokens, token{
		kind:  kind,
		value: value,
		pos:   pos,
	})
}

// classifyWord turns a scanned word into an operator, a keyword or a named
// argument. Malformed name:value shapes (empty name or empty value) fall
// back to a keyword holding the raw word.
func classifyWord(word string, pos int) token {
	if word == operatorOr {
		return token{kind: tokenOperator, value: word, pos: pos}
	}

	keyword := token{kind: tokenKeyword, value: word, pos: pos}

	name, value, found := strings.Cut(word, ":")
	if !found || name == "" {
		return keyword
	}
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	if value == "" {
		return keyword
	}

	return token{kind: tokenNamedArg, name: name, value: value, pos: pos}
}

// isWhitespace reports whether c is a space, tab, carriage return or newline.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isWordBoundary(c byte) bool {
	return isWhitespace(c) || c == '(' || c == ')'
}
