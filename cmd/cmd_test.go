package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/exprify/config"
	"github.com/gnoswap-labs/exprify/transformers/match"
)

// runCommand executes one subcommand with the configuration at configPath
// and returns what it wrote.
func runCommand(t *testing.T, configPath string, sub string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	if configPath == "" {
		configPath = filepath.Join(t.TempDir(), "missing.yaml")
	}

	rootCmd := NewRootCmd()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{sub, "--config", configPath}, args...))

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".exprify.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCmd(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "or",
			args:     []string{"ruby OR gem"},
			expected: `#<OrNode children=[#<KeywordNode value="ruby">, #<KeywordNode value="gem">]>` + "\n",
		},
		{
			name:     "arguments are joined",
			args:     []string{"ruby", "gem"},
			expected: `#<AndNode children=[#<KeywordNode value="ruby">, #<KeywordNode value="gem">]>` + "\n",
		},
		{
			name:     "named argument",
			args:     []string{"since:today"},
			expected: `#<NamedArgumentNode name="since" value="today">` + "\n",
		},
		{
			name: "pretty",
			args: []string{"--pretty", "ruby -deprecated"},
			expected: `AndNode
  children: [
    KeywordNode
      value: "ruby",
    NotNode
      expression: KeywordNode
        value: "deprecated"
  ]
`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			stdout, stderr, err := runCommand(t, "", "parse", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestParseCmdPrettyFromConfig(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "output:\n  pretty: true\n  color: true\n")

	stdout, _, err := runCommand(t, path, "parse", "ruby")
	require.NoError(t, err)
	assert.Equal(t, "KeywordNode\n  value: \"ruby\"\n", stdout)
}

func TestParseCmdErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		query    string
		contains []string
	}{
		{
			name:     "unterminated phrase",
			query:    `foo "bar`,
			contains: []string{"Unterminated phrase", "query:1:5", `1 | foo "bar`, "^ UnterminatedPhrase"},
		},
		{
			name:     "missing operand",
			query:    "ruby OR",
			contains: []string{"Expected expression after OR", "query:1:8", "^ MissingOperand"},
		},
		{
			name:     "whitespace only",
			query:    "   ",
			contains: []string{"Empty input", "^ EmptyInput"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			stdout, stderr, err := runCommand(t, "", "parse", tt.query)
			require.ErrorIs(t, err, errSilentExit)
			assert.Empty(t, stdout)
			for _, want := range tt.contains {
				assert.Contains(t, stderr, want)
			}
		})
	}
}

func TestParseCmdRequiresQuery(t *testing.T) {
	t.Parallel()
	_, _, err := runCommand(t, "", "parse")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errSilentExit)
}

func TestSQLCmd(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "keyword",
			args:     []string{"ruby"},
			expected: "WHERE (subject LIKE ? OR body LIKE ?)\nparams: [\"ruby%\",\"%ruby%\"]\n",
		},
		{
			name:     "phrase and date",
			args:     []string{`"hello world" until:2024-01-31`},
			expected: "WHERE (subject = ? OR body = ?) AND date <= ?\nparams: [\"hello world\",\"hello world\",\"2024-01-31\"]\n",
		},
		{
			name:     "json",
			args:     []string{"--json", "ruby"},
			expected: `{"where":"(subject LIKE ? OR body LIKE ?)","params":["ruby%","%ruby%"]}` + "\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			stdout, stderr, err := runCommand(t, "", "sql", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestSQLCmdColumnsFromConfig(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "mailsql:\n  subject: title\n  date: sent_at\n")

	stdout, _, err := runCommand(t, path, "sql", "ruby since:2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "WHERE (title LIKE ? OR body LIKE ?) AND sent_at >= ?\nparams: [\"ruby%\",\"%ruby%\",\"2024-01-01\"]\n", stdout)
}

func TestSQLCmdUnknownArgument(t *testing.T) {
	t.Parallel()
	stdout, stderr, err := runCommand(t, "", "sql", "from:bob")
	require.ErrorIs(t, err, errSilentExit)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Unknown argument: from")
}

func TestSQLCmdInvalidConfig(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "colour: false\n")

	_, _, err := runCommand(t, path, "sql", "ruby")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errSilentExit)
}

func TestMatchCmd(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		args     []string
		expected string
		matched  bool
	}{
		{
			name:     "keyword in text",
			args:     []string{"--text", "Ruby 3.3 released", "ruby"},
			expected: "true\n",
			matched:  true,
		},
		{
			name:     "field and keyword",
			args:     []string{"--text", "3.3 released", "--field", "lang=ruby", "lang:ruby released"},
			expected: "true\n",
			matched:  true,
		},
		{
			name:     "negation excludes",
			args:     []string{"--text", "old ruby", "ruby -old"},
			expected: "false\n",
		},
		{
			name:     "missing field",
			args:     []string{"--text", "ruby", "lang:ruby"},
			expected: "false\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			stdout, _, err := runCommand(t, "", "match", tt.args...)
			if tt.matched {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, errSilentExit)
			}
			assert.Equal(t, tt.expected, stdout)
		})
	}
}

func TestMatchCmdInvalidField(t *testing.T) {
	t.Parallel()
	_, _, err := runCommand(t, "", "match", "--field", "lang", "ruby")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errSilentExit)
	assert.Contains(t, err.Error(), "invalid field")
}

func TestInitCmd(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "exprify.yaml")

	stdout, _, err := runCommand(t, path, "init")
	require.NoError(t, err)
	assert.Equal(t, "Configuration file created/updated: "+path+"\n", stdout)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), loaded)
}

func TestBuildDocument(t *testing.T) {
	t.Parallel()
	doc, err := buildDocument("body", []string{"lang=ruby", "tag=a=b", "empty="})
	require.NoError(t, err)
	assert.Equal(t, match.Document{
		Text:   "body",
		Fields: map[string]string{"lang": "ruby", "tag": "a=b", "empty": ""},
	}, doc)

	_, err = buildDocument("", []string{"=ruby"})
	assert.Error(t, err)
}

func TestQueryFromArgs(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ruby", queryFromArgs([]string{"ruby"}))
	assert.Equal(t, "ruby OR gem", queryFromArgs([]string{"ruby", "OR", "gem"}))
}
