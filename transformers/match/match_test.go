package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/exprify/parser"
)

func TestCompile(t *testing.T) {
	t.Parallel()
	doc := Document{
		Text:   "Release notes: the Well-Known gem is now stable",
		Fields: map[string]string{"tag": "Ruby", "author": "alice"},
	}

	tests := []struct {
		input    string
		expected bool
	}{
		{input: "gem", expected: true},
		{input: "GEM", expected: true},
		{input: "well-known", expected: true},
		{input: "python", expected: false},
		{input: "gem stable", expected: true},
		{input: "gem python", expected: false},
		{input: "python OR stable", expected: true},
		{input: "-python", expected: true},
		{input: "-gem", expected: false},
		{input: `"now stable"`, expected: true},
		{input: `"Now Stable"`, expected: false},
		{input: "tag:ruby", expected: true},
		{input: "tag:go", expected: false},
		{input: "missing:x", expected: false},
		{input: "alice", expected: true},
		{input: "(python OR rust) stable", expected: false},
		{input: "(python OR gem) -(author:bob)", expected: true},
		{input: "a b OR c", expected: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			pred, err := Compile(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, pred(doc))
		})
	}
}

func TestCompileParseError(t *testing.T) {
	t.Parallel()
	pred, err := Compile("(unclosed")
	assert.Nil(t, pred)
	assert.True(t, parser.IsExpressionError(err))
}

func TestCompileIsReusable(t *testing.T) {
	t.Parallel()
	pred, err := New().Compile(parser.MustParse("status:open -urgent"))
	require.NoError(t, err)

	docs := []Document{
		{Text: "routine", Fields: map[string]string{"status": "open"}},
		{Text: "URGENT fix", Fields: map[string]string{"status": "open"}},
		{Text: "routine", Fields: map[string]string{"status": "closed"}},
		{Text: "routine"},
	}
	var got []bool
	for _, d := range docs {
		got = append(got, pred(d))
	}
	assert.Equal(t, []bool{true, false, false, false}, got)
}
