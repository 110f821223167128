// Package mailsql converts search expressions into SQL WHERE conditions for
// a mail table with subject, body and date columns.
//
//	cond, err := mailsql.Where(`ruby -deprecated since:"Mar 5 2025"`)
//	rows, err := db.QueryContext(ctx, "SELECT id FROM mails WHERE "+cond.SQL, cond.Args...)
package mailsql

import (
	"fmt"
	"strings"
	"time"

	"github.com/gnoswap-labs/exprify/ast"
	"github.com/gnoswap-labs/exprify/parser"
)

// Condition is a SQL boolean expression with positional '?' placeholders
// and their arguments in placeholder order.
type Condition struct {
	SQL  string `json:"where"`
	Args []any  `json:"params"`
}

// Columns names the columns conditions are generated against.
type Columns struct {
	Subject string `yaml:"subject"`
	Body    string `yaml:"body"`
	Date    string `yaml:"date"`
}

// DefaultColumns returns the subject, body and date column names.
func DefaultColumns() Columns {
	return Columns{Subject: "subject", Body: "body", Date: "date"}
}

// Transformer builds Conditions. It holds only configuration and is safe for
// concurrent use.
type Transformer struct {
	cols Columns
	now  func() time.Time
}

var _ ast.Transformer[Condition] = (*Transformer)(nil)

type Option func(*Transformer)

// WithColumns overrides the column names. Empty fields keep their default.
func WithColumns(cols Columns) Option {
	return func(t *Transformer) {
		if cols.Subject != "" {
			t.cols.Subject = cols.Subject
		}
		if cols.Body != "" {
			t.cols.Body = cols.Body
		}
		if cols.Date != "" {
			t.cols.Date = cols.Date
		}
	}
}

// WithClock sets the clock used to resolve relative dates such as "today".
func WithClock(now func() time.Time) Option {
	return func(t *Transformer) {
		t.now = now
	}
}

func New(opts ...Option) *Transformer {
	t := &Transformer{
		cols: DefaultColumns(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform converts the tree rooted at n.
func (t *Transformer) Transform(n ast.Node) (Condition, error) {
	return ast.Transform[Condition](n, t)
}

// Where parses input and converts it in one step.
func Where(input string, opts ...Option) (Condition, error) {
	root, err := parser.Parse(input)
	if err != nil {
		return Condition{}, err
	}
	return New(opts...).Transform(root)
}

func (t *Transformer) ForKeyword(n *ast.KeywordNode) (Condition, error) {
	return Condition{
		SQL:  fmt.Sprintf("(%s LIKE ? OR %s LIKE ?)", t.cols.Subject, t.cols.Body),
		Args: []any{n.Value() + "%", "%" + n.Value() + "%"},
	}, nil
}

func (t *Transformer) ForExactPhrase(n *ast.ExactPhraseNode) (Condition, error) {
	return Condition{
		SQL:  fmt.Sprintf("(%s = ? OR %s = ?)", t.cols.Subject, t.cols.Body),
		Args: []any{n.Phrase(), n.Phrase()},
	}, nil
}

func (t *Transformer) ForAnd(n *ast.AndNode) (Condition, error) {
	return t.join(n.Children(), " AND ")
}

func (t *Transformer) ForOr(n *ast.OrNode) (Condition, error) {
	return t.join(n.Children(), " OR ")
}

func (t *Transformer) ForNot(n *ast.NotNode) (Condition, error) {
	inner, err := t.Transform(n.Expression())
	if err != nil {
		return Condition{}, err
	}
	return Condition{SQL: "NOT (" + inner.SQL + ")", Args: inner.Args}, nil
}

func (t *Transformer) ForGroup(n *ast.GroupNode) (Condition, error) {
	inner, err := t.Transform(n.Expression())
	if err != nil {
		return Condition{}, err
	}
	return Condition{SQL: "(" + inner.SQL + ")", Args: inner.Args}, nil
}

func (t *Transformer) ForNamedArgument(n *ast.NamedArgumentNode) (Condition, error) {
	var op string
	switch n.Name() {
	case "since":
		op = ">="
	case "until":
		op = "<="
	default:
		return Condition{}, &ArgumentError{Name: n.Name(), Value: n.Value(), Err: ErrUnknownArgument}
	}

	date, err := ParseDate(n.Value(), t.now())
	if err != nil {
		return Condition{}, &ArgumentError{Name: n.Name(), Value: n.Value(), Err: err}
	}
	return Condition{
		SQL:  fmt.Sprintf("%s %s ?", t.cols.Date, op),
		Args: []any{date.Format(time.DateOnly)},
	}, nil
}

func (t *Transformer) join(children []ast.Node, sep string) (Condition, error) {
	conds, err := ast.TransformEach[Condition](children, t)
	if err != nil {
		return Condition{}, err
	}

	parts := make([]string, 0, len(conds))
	args := make([]any, 0, len(conds)*2)
	for _, c := range conds {
		parts = append(parts, c.SQL)
		args = append(args, c.Args...)
	}
	return Condition{SQL: strings.Join(parts, sep), Args: args}, nil
}
