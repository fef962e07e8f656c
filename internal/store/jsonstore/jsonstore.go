package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/sqlite-todo/internal/model"
)

// JSON snapshot of the task table. Single file, human-readable, portable.
// Written for `todo export`; the SQLite file stays the source of truth.

const DefaultFileName = "todos.json"

// Path resolves name against the working directory when it is relative.
func Path(name string) (string, error) {
	if name == "" {
		name = DefaultFileName
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, name), nil
}

func Save(path string, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
