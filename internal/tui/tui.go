// Package tui is the full-screen task browser behind `todo tui`.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/sqlite-todo/internal/model"
	"github.com/idilsaglam/sqlite-todo/internal/store"
	"github.com/idilsaglam/sqlite-todo/internal/ui"
)

// taskItem adapts model.Task to bubbles/list.Item
type taskItem struct {
	task model.Task
}

func (i taskItem) FilterValue() string { return i.task.Title + " " + i.task.Description }

// Custom delegate to control how items render (single line)
type itemDelegate struct {
	st ui.Styles
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}
	t := it.task
	box := d.st.Muted.Render(d.st.Theme.BoxUnchecked)
	text := t.Title
	if t.Description != "" {
		text += d.st.Muted.Render(" - " + t.Description)
	}
	if t.Done {
		box = d.st.Success.Render(d.st.Theme.BoxChecked)
		text = d.st.Done.Render(t.Title)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.st.Selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s %s", prefix, d.st.Muted.Render(fmt.Sprintf("#%d", t.ID)), box, text)
}

type mode int

const (
	browsing mode = iota
	addingTitle
	addingDescription
)

// tasksLoadedMsg carries a fresh snapshot after a load or a mutation.
type tasksLoadedMsg struct {
	tasks []model.Task
	note  string
}

type errMsg struct{ err error }

// Model is the bubbletea model. Every mutation goes through the store and
// is followed by a reload, so the list always mirrors the file.
type Model struct {
	ctx   context.Context
	tasks store.Tasks
	st    ui.Styles

	list list.Model
	ti   textinput.Model
	mode mode

	pendingTitle string
	status       string
	err          error
	width        int
	height       int
}

func New(ctx context.Context, tasks store.Tasks, st ui.Styles) Model {
	l := list.New(nil, itemDelegate{st: st}, 78, 20)
	l.Title = "Todos"
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = st.Title
	l.Styles.HelpStyle = st.Help
	l.Styles.PaginationStyle = st.Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")

	// Extend help with Complete / Delete / Add bindings
	completeBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "complete"))
	deleteBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{completeBind, deleteBind, addBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{completeBind, deleteBind, addBind} }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	return Model{
		ctx:    ctx,
		tasks:  tasks,
		st:     st,
		list:   l,
		ti:     ti,
		width:  80,
		height: 24,
	}
}

// Run starts the browser and blocks until the user quits.
func Run(ctx context.Context, tasks store.Tasks, st ui.Styles) error {
	p := tea.NewProgram(New(ctx, tasks, st), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return m.reload("") }

// -------------- commands --------------

func (m Model) reload(note string) tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.tasks.ListTasks(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return tasksLoadedMsg{tasks: tasks, note: note}
	}
}

func (m Model) complete(id int64) tea.Cmd {
	return func() tea.Msg {
		if err := m.tasks.CompleteTask(m.ctx, id); err != nil {
			return errMsg{err}
		}
		return m.reload(fmt.Sprintf("completed #%d", id))()
	}
}

func (m Model) remove(id int64) tea.Cmd {
	return func() tea.Msg {
		if err := m.tasks.DeleteTask(m.ctx, id); err != nil {
			return errMsg{err}
		}
		return m.reload(fmt.Sprintf("deleted #%d", id))()
	}
}

func (m Model) add(title, description string) tea.Cmd {
	return func() tea.Msg {
		id, err := m.tasks.AddTask(m.ctx, title, description)
		if err != nil {
			return errMsg{err}
		}
		return m.reload(fmt.Sprintf("added #%d", id))()
	}
}

// -------------- update --------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		m.list.SetSize(m.width-2, m.height-4)
		return m, nil
	case tasksLoadedMsg:
		items := make([]list.Item, 0, len(x.tasks))
		for _, t := range x.tasks {
			items = append(items, taskItem{task: t})
		}
		cmd := m.list.SetItems(items)
		m.list.Title = m.header(x.tasks)
		m.status, m.err = x.note, nil
		return m, cmd
	case errMsg:
		m.err = x.err
		return m, nil
	}

	if m.mode != browsing {
		return m.updateAdding(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch k.String() {
		case "q", "esc":
			if m.list.FilterState() == list.FilterApplied {
				break
			}
			return m, tea.Quit
		case " ":
			if t, ok := m.selected(); ok && !t.Done {
				return m, m.complete(t.ID)
			}
			return m, nil
		case "d":
			if t, ok := m.selected(); ok {
				return m, m.remove(t.ID)
			}
			return m, nil
		case "a":
			m.mode = addingTitle
			m.err = nil
			m.ti.SetValue("")
			m.ti.Placeholder = "New task title..."
			return m, m.ti.Focus()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			value := strings.TrimSpace(m.ti.Value())
			if m.mode == addingTitle {
				if value == "" {
					m.status = "title cannot be empty"
					return m, nil
				}
				m.pendingTitle = value
				m.mode = addingDescription
				m.status = ""
				m.ti.SetValue("")
				m.ti.Placeholder = "Description (optional)..."
				return m, nil
			}
			title := m.pendingTitle
			m.resetInput()
			return m, m.add(title, value)
		case "esc":
			m.resetInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) resetInput() {
	m.mode = browsing
	m.pendingTitle = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m Model) selected() (model.Task, bool) {
	it, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return model.Task{}, false
	}
	return it.task, true
}

// -------------- view --------------

func (m Model) View() string {
	listHeight := m.height - 4
	if m.mode != browsing {
		listHeight = m.height - 6
	}
	m.list.SetSize(m.width-2, listHeight)

	content := m.list.View()
	if m.mode != browsing {
		title := "Add task: title"
		if m.mode == addingDescription {
			title = "Add task: description for " + m.pendingTitle
		}
		if m.status != "" {
			title += "  " + m.st.Error.Render(m.status)
		}
		content += "\n" + m.st.Panel.Render(title+"\n"+m.ti.View())
	} else if m.err != nil {
		content += "\n" + m.st.Error.Render(m.st.Theme.SymFail+" "+m.err.Error())
	} else if m.status != "" {
		content += "\n" + m.st.Success.Render(m.st.Theme.SymOK+" "+m.status)
	}
	return m.st.Panel.Render(content)
}

// header shows live counts and the progress bar.
func (m Model) header(tasks []model.Task) string {
	done := 0
	for _, t := range tasks {
		if t.Done {
			done++
		}
	}
	return fmt.Sprintf("%s   %s %d  %s %d  %s",
		m.st.Title.Render("Todos"),
		m.st.Success.Render(m.st.Theme.SymOK), done,
		m.st.Pending.Render("•"), len(tasks)-done,
		m.st.Accent.Render(ui.ProgressBar(done, len(tasks), 10)),
	)
}
