package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/idilsaglam/sqlite-todo/internal/model"
	"github.com/idilsaglam/sqlite-todo/internal/store"
)

// SQLite-backed storage. One local file, one table, one connection.
// The file is created by the driver on first open.

const DefaultPath = "todo.db"

const schema = `CREATE TABLE IF NOT EXISTS todo (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT,
	done INTEGER NOT NULL
)`

type Store struct {
	db     *sqlx.DB
	path   string
	logger *log.Logger
}

var _ store.Tasks = (*Store)(nil)

// taskRow mirrors the table; description is nullable on disk.
type taskRow struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Done        bool           `db:"done"`
}

func (r taskRow) task() model.Task {
	return model.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description.String,
		Done:        r.Done,
	}
}

// Open connects to the SQLite file at path. A nil logger discards output.
func Open(path string, logger *log.Logger) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	dsn := fmt.Sprintf("%s?_busy_timeout=5000", path)
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fail("open", err)
	}
	// single user, single goroutine
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fail("open", err)
	}
	logger.Debug("store opened", "path", path)
	return &Store{db: db, path: path, logger: logger}, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fail("close", err)
	}
	return nil
}

// EnsureSchema creates the todo table when it is missing. Safe on every start.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return s.fail("ensure schema", err)
	}
	return nil
}

// ListTasks returns every row in the engine's natural order.
func (s *Store) ListTasks(ctx context.Context) ([]model.Task, error) {
	var rows []taskRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT id, title, description, done FROM todo`); err != nil {
		return nil, s.fail("list tasks", err)
	}
	tasks := make([]model.Task, 0, len(rows))
	for _, r := range rows {
		tasks = append(tasks, r.task())
	}
	s.logger.Debug("listed tasks", "count", len(tasks))
	return tasks, nil
}

func (s *Store) AddTask(ctx context.Context, title, description string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO todo (title, description, done) VALUES (?, ?, 0)`, title, description)
	if err != nil {
		return 0, s.fail("add task", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, s.fail("add task", err)
	}
	s.logger.Debug("added task", "id", id)
	return id, nil
}

// CompleteTask marks the task done. A missing id is not an error.
func (s *Store) CompleteTask(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `UPDATE todo SET done = 1 WHERE id = ?`, id)
	if err != nil {
		return s.fail("complete task", err)
	}
	s.logAffected("completed task", id, res)
	return nil
}

// DeleteTask removes the task for good. A missing id is not an error.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM todo WHERE id = ?`, id)
	if err != nil {
		return s.fail("delete task", err)
	}
	s.logAffected("deleted task", id, res)
	return nil
}

func (s *Store) logAffected(msg string, id int64, res sql.Result) {
	n, err := res.RowsAffected()
	if err != nil {
		return
	}
	s.logger.Debug(msg, "id", id, "rows", n)
}

func (s *Store) fail(op string, err error) error {
	se := fail(op, err)
	s.logger.Debug("storage failure", "op", op, "err", fmt.Sprintf("%+v", se.Err))
	return se
}

func fail(op string, err error) *store.StorageError {
	return &store.StorageError{Op: op, Err: errors.WithStack(err)}
}
