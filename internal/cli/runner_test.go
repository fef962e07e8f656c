package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/sqlite-todo/internal/model"
	"github.com/idilsaglam/sqlite-todo/internal/store/sqlitestore"
)

type runResult struct {
	code           int
	stdout, stderr string
}

func run(t *testing.T, dbPath, stdin string, args ...string) runResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, Options{
		DBPath: dbPath,
		Theme:  "mono",
		Lang:   "en",
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRunMenu(t *testing.T) {
	db := filepath.Join(t.TempDir(), "todo.db")

	res := run(t, db, "2\nBuy milk\n2%\n5\n")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Current directory: ")
	assert.Contains(t, res.stdout, "Welcome to the Todo App!")
	assert.Contains(t, res.stdout, "Task added (ID: 1).")
	_, err := os.Stat(db)
	assert.NoError(t, err, "database file is created")

	// the task survives a restart
	res = run(t, db, "1\n5\n")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "ID: 1, Title: Buy milk, Description: 2%, Status: incomplete")
}

func TestRunSchemaFailureIsFatal(t *testing.T) {
	db := filepath.Join(t.TempDir(), "missing", "dir", "todo.db")

	res := run(t, db, "5\n")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "store:")
	assert.NotContains(t, res.stdout, "Welcome")
}

func TestRunUsage(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{name: "help", args: []string{"help"}, wantCode: 0, wantOut: "Subcommands:"},
		{name: "short help", args: []string{"-h"}, wantCode: 0, wantOut: "Usage:"},
		{name: "unknown", args: []string{"frobnicate"}, wantCode: 2, wantErr: "unknown subcommand: frobnicate"},
		{name: "tui with args", args: []string{"tui", "x"}, wantCode: 2, wantErr: "usage: todo tui"},
		{name: "export with two files", args: []string{"export", "a", "b"}, wantCode: 2, wantErr: "usage: todo export"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := filepath.Join(t.TempDir(), "todo.db")
			res := run(t, db, "", tt.args...)

			assert.Equal(t, tt.wantCode, res.code)
			assert.Contains(t, res.stdout, tt.wantOut)
			assert.Contains(t, res.stderr, tt.wantErr)

			// usage errors never touch the database
			_, err := os.Stat(db)
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestRunExport(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "todo.db")
	st, err := sqlitestore.Open(db, nil)
	require.NoError(t, err)
	require.NoError(t, st.EnsureSchema(context.Background()))
	id, err := st.AddTask(context.Background(), "Buy milk", "2%")
	require.NoError(t, err)
	require.NoError(t, st.CompleteTask(context.Background(), id))
	require.NoError(t, st.Close())

	out := filepath.Join(dir, "snapshot.json")
	res := run(t, db, "", "export", out)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "exported 1 tasks")

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	var got []model.Task
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, []model.Task{{ID: id, Title: "Buy milk", Description: "2%", Done: true}}, got)
}

func TestRunMenuGrouped(t *testing.T) {
	db := filepath.Join(t.TempDir(), "todo.db")
	var stdout, stderr bytes.Buffer

	code := Run(context.Background(), nil, Options{
		DBPath: db,
		Theme:  "mono",
		Group:  true,
		Stdin:  strings.NewReader("2\nBuy milk\n\n1\n5\n"),
		Stdout: &stdout,
		Stderr: &stderr,
	})

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Pending\n[ ] ID: 1, Title: Buy milk")
	assert.Contains(t, stdout.String(), "Done\n(none)\n")
}
