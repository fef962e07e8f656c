package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/sqlite-todo/internal/model"
)

func TestSave(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.json")
	tasks := []model.Task{
		{ID: 1, Title: "Buy milk", Description: "2%", Done: true},
		{ID: 3, Title: "Call mom"},
	}

	require.NoError(t, Save(p, tasks))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"id": 1, "title": "Buy milk", "description": "2%", "done": true},
		{"id": 3, "title": "Call mom", "description": "", "done": false}
	]`, string(b))
}

func TestSaveEmptyWritesArray(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, Save(p, nil))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))
}

func TestSaveBadDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing", "out.json")
	err := Save(p, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write file")
}

func TestPath(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	p, err := Path("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, DefaultFileName), p)

	abs := filepath.Join(t.TempDir(), "x.json")
	p, err = Path(abs)
	require.NoError(t, err)
	assert.Equal(t, abs, p)
}
