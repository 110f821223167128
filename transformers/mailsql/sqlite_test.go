package mailsql

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openMailDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE mails (
		id      INTEGER PRIMARY KEY,
		subject TEXT NOT NULL,
		body    TEXT NOT NULL,
		date    TEXT NOT NULL
	)`)
	require.NoError(t, err)

	rows := []struct {
		id                  int
		subject, body, date string
	}{
		{1, "Ruby release", "New gem version", "2024-01-15"},
		{2, "Weekly digest", "Ruby and rails news", "2023-12-01"},
		{3, "Deprecated API", "ruby gem deprecated", "2024-02-01"},
		{4, "exact phrase", "nothing", "2024-03-01"},
		{5, "Go news", "go modules", "2025-03-10"},
	}
	for _, r := range rows {
		_, err := db.Exec("INSERT INTO mails (id, subject, body, date) VALUES (?, ?, ?, ?)", r.id, r.subject, r.body, r.date)
		require.NoError(t, err)
	}
	return db
}

func TestWhereAgainstSQLite(t *testing.T) {
	t.Parallel()
	db := openMailDB(t)
	ctx := context.Background()

	tests := []struct {
		input    string
		expected []int
	}{
		{input: "ruby", expected: []int{1, 2, 3}},
		{input: "ruby -deprecated", expected: []int{1, 2}},
		{input: "ruby since:2024-01-01", expected: []int{1, 3}},
		{input: `"exact phrase"`, expected: []int{4}},
		{input: "(go OR rails) until:2024-12-31", expected: []int{2}},
		{input: `since:"today"`, expected: []int{5}},
	}

	for _, tt := range tests {
		cond, err := Where(tt.input, WithClock(fixedClock))
		require.NoError(t, err, tt.input)

		rows, err := db.QueryContext(ctx, "SELECT id FROM mails WHERE "+cond.SQL+" ORDER BY id", cond.Args...)
		require.NoError(t, err, tt.input)

		var ids []int
		for rows.Next() {
			var id int
			require.NoError(t, rows.Scan(&id))
			ids = append(ids, id)
		}
		require.NoError(t, rows.Err())
		rows.Close()

		assert.Equal(t, tt.expected, ids, tt.input)
	}
}
