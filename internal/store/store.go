// Package store defines the task persistence contract shared by the CLI,
// the browser and the concrete backends under it.
package store

import (
	"context"
	"fmt"

	"github.com/idilsaglam/sqlite-todo/internal/model"
)

// Tasks is the set of operations the command loop is allowed to use.
// CompleteTask and DeleteTask succeed silently when no row matches.
type Tasks interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	AddTask(ctx context.Context, title, description string) (int64, error)
	CompleteTask(ctx context.Context, id int64) error
	DeleteTask(ctx context.Context, id int64) error
}

// StorageError wraps any failure coming from the persistence layer.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
