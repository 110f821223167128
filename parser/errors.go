package parser

import (
	"errors"
	"fmt"
)

// ErrExpression matches every error produced while parsing an expression.
//
//	if errors.Is(err, parser.ErrExpression) { ... }
var ErrExpression = errors.New("expression error")

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	EmptyInput ErrorKind = iota + 1
	UnterminatedPhrase
	NoValidExpression
	MissingOperand
	UnexpectedClosingParen
	UnexpectedEndOfInput
	UnexpectedToken
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case UnterminatedPhrase:
		return "UnterminatedPhrase"
	case NoValidExpression:
		return "NoValidExpression"
	case MissingOperand:
		return "MissingOperand"
	case UnexpectedClosingParen:
		return "UnexpectedClosingParen"
	case UnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	case UnexpectedToken:
		return "UnexpectedToken"
	default:
		return "Unknown"
	}
}

// Error is a parse failure. Msg is meant to be shown to the user as is;
// Pos is the byte offset in the input where the problem was detected.
type Error struct {
	Kind ErrorKind
	Pos  int
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Is makes every *Error match ErrExpression.
func (e *Error) Is(target error) bool { return target == ErrExpression }

// IsExpressionError reports whether err is, or wraps, a parse failure.
func IsExpressionError(err error) bool {
	return errors.Is(err, ErrExpression)
}

func newError(kind ErrorKind, pos int, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
