package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/sqlite-todo/internal/model"
	"github.com/idilsaglam/sqlite-todo/internal/store"
	"github.com/idilsaglam/sqlite-todo/internal/ui"
)

// memTasks is an in-memory store.Tasks.
type memTasks struct {
	next  int64
	tasks []model.Task
	err   error
}

func (s *memTasks) ListTasks(context.Context) ([]model.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]model.Task(nil), s.tasks...), nil
}

func (s *memTasks) AddTask(_ context.Context, title, description string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.next++
	s.tasks = append(s.tasks, model.Task{ID: s.next, Title: title, Description: description})
	return s.next, nil
}

func (s *memTasks) CompleteTask(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Done = true
		}
	}
	return nil
}

func (s *memTasks) DeleteTask(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	out := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	s.tasks = out
	return nil
}

var _ store.Tasks = (*memTasks)(nil)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

// loaded returns a model that has already received its first snapshot.
func loaded(t *testing.T, s *memTasks) Model {
	t.Helper()
	m := New(context.Background(), s, ui.NewStyles(nil, ui.ThemeByName("mono")))
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = send(t, m, m.Init()())
	return m
}

func seeded() *memTasks {
	return &memTasks{next: 2, tasks: []model.Task{
		{ID: 1, Title: "Buy milk", Description: "2%"},
		{ID: 2, Title: "Call mom"},
	}}
}

func TestInitLoadsTasks(t *testing.T) {
	m := loaded(t, seeded())

	assert.Len(t, m.list.Items(), 2)
	sel, ok := m.selected()
	require.True(t, ok)
	assert.Equal(t, int64(1), sel.ID)
	assert.Contains(t, m.View(), "Buy milk")
}

func TestSpaceCompletesSelected(t *testing.T) {
	s := seeded()
	m := loaded(t, s)

	m, cmd := send(t, m, space)
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())

	assert.True(t, s.tasks[0].Done)
	assert.False(t, s.tasks[1].Done)
	assert.Equal(t, "completed #1", m.status)

	// a done task is never toggled back
	_, cmd = send(t, m, space)
	assert.Nil(t, cmd)
	assert.True(t, s.tasks[0].Done)
}

func TestDeleteSelected(t *testing.T) {
	s := seeded()
	m := loaded(t, s)

	m, cmd := send(t, m, runes("d"))
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())

	require.Len(t, s.tasks, 1)
	assert.Equal(t, int64(2), s.tasks[0].ID)
	assert.Len(t, m.list.Items(), 1)
}

func TestAddFlow(t *testing.T) {
	s := &memTasks{}
	m := loaded(t, s)

	m, _ = send(t, m, runes("a"))
	assert.Equal(t, addingTitle, m.mode)

	// empty title is refused
	m, cmd := send(t, m, enter)
	assert.Nil(t, cmd)
	assert.Equal(t, addingTitle, m.mode)

	m, _ = send(t, m, runes("Buy milk"))
	m, _ = send(t, m, enter)
	assert.Equal(t, addingDescription, m.mode)

	m, _ = send(t, m, runes("2%"))
	m, cmd = send(t, m, enter)
	require.NotNil(t, cmd)
	assert.Equal(t, browsing, m.mode)
	m, _ = send(t, m, cmd())

	require.Len(t, s.tasks, 1)
	assert.Equal(t, model.Task{ID: 1, Title: "Buy milk", Description: "2%"}, s.tasks[0])
	assert.Len(t, m.list.Items(), 1)
}

func TestAddCancel(t *testing.T) {
	s := &memTasks{}
	m := loaded(t, s)

	m, _ = send(t, m, runes("a"))
	m, _ = send(t, m, runes("nope"))
	m, cmd := send(t, m, esc)

	assert.Nil(t, cmd)
	assert.Equal(t, browsing, m.mode)
	assert.Empty(t, s.tasks)
}

func TestStoreErrorIsShown(t *testing.T) {
	s := seeded()
	m := loaded(t, s)
	s.err = &store.StorageError{Op: "complete task", Err: errors.New("disk full")}

	m, cmd := send(t, m, space)
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())

	require.Error(t, m.err)
	assert.Contains(t, m.View(), "disk full")
}

func TestQuit(t *testing.T) {
	m := loaded(t, seeded())

	_, cmd := send(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
