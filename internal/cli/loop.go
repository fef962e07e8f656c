package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/sqlite-todo/internal/model"
	"github.com/idilsaglam/sqlite-todo/internal/store"
	"github.com/idilsaglam/sqlite-todo/internal/ui"
)

// Loop is the interactive menu. It owns no state besides the store handle
// and its I/O; every iteration reads exactly one choice.
type Loop struct {
	tasks  store.Tasks
	in     *bufio.Reader
	p      *ui.Printer
	msg    Messages
	group  bool
	logger *log.Logger
}

// LoopOptions tune the loop's output.
type LoopOptions struct {
	Theme  string
	Lang   string
	Group  bool // list grouped by pending/done
	Logger *log.Logger
}

func NewLoop(tasks store.Tasks, in io.Reader, out io.Writer, opt LoopOptions) *Loop {
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		tasks:  tasks,
		in:     bufio.NewReader(in),
		p:      ui.NewPrinter(out, opt.Theme),
		msg:    MessagesFor(opt.Lang),
		group:  opt.Group,
		logger: logger,
	}
}

// Run loops until the user picks exit, input ends or ctx is done. Storage
// and parse failures are reported and the loop continues; a broken input
// stream or a cancelled ctx is returned.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		l.printMenu()
		choice, err := l.readLine()
		if err != nil {
			return l.stop(err)
		}

		switch choice {
		case "1":
			err = l.list(ctx)
		case "2":
			err = l.add(ctx)
		case "3":
			err = l.complete(ctx)
		case "4":
			err = l.remove(ctx)
		case "5":
			l.p.Line(l.msg.Farewell)
			return nil
		default:
			l.p.Fail(l.msg.InvalidChoice)
			continue
		}

		if err != nil {
			if isInputError(err) {
				return l.stop(err)
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.report(err)
		}
	}
}

func (l *Loop) printMenu() {
	for _, ln := range l.msg.Menu {
		l.p.Line(ln)
	}
	l.p.Line(l.msg.Prompt)
}

// readLine returns the next line without surrounding whitespace. A final
// line with no newline is still returned; io.EOF comes on the call after.
func (l *Loop) readLine() (string, error) {
	line, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", &inputError{err: err}
	}
	return strings.TrimSpace(line), nil
}

func (l *Loop) stop(err error) error {
	if errors.Is(err, io.EOF) {
		l.p.Line(l.msg.Farewell)
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}

func (l *Loop) report(err error) {
	var pe *InputParseError
	var se *store.StorageError
	switch {
	case errors.As(err, &pe):
		l.p.Fail(l.msg.InvalidID)
	case errors.As(err, &se):
		l.logger.Error("storage operation failed", "op", se.Op, "err", se.Err.Error())
		l.p.Fail(fmt.Sprintf(l.msg.StorageFailed, err))
	default:
		l.logger.Error("operation failed", "err", err.Error())
		l.p.Fail(err.Error())
	}
}

// -------------- menu operations ----------------

func (l *Loop) list(ctx context.Context) error {
	tasks, err := l.tasks.ListTasks(ctx)
	if err != nil {
		return err
	}
	l.p.Line(l.p.St.Title.Render(l.msg.ListHeader))
	if len(tasks) == 0 {
		l.p.Line(l.p.St.Muted.Render(l.msg.NoTasks))
		return nil
	}
	if l.group {
		l.groupLines(tasks)
	} else {
		for _, t := range tasks {
			l.p.Line(l.taskLine(t))
		}
	}
	done, _ := stats(tasks)
	l.p.Line(l.p.St.Muted.Render(l.msg.Progress + " " + ui.ProgressBar(done, len(tasks), 20)))
	return nil
}

func (l *Loop) taskLine(t model.Task) string {
	status := l.p.St.Pending.Render(l.msg.StatusPending)
	if t.Done {
		status = l.p.St.Success.Render(l.msg.StatusDone)
	}
	return fmt.Sprintf(l.msg.TaskLine, t.ID, t.Title, t.Description, status)
}

// groupLines prints pending tasks first, then done ones, each with its box.
func (l *Loop) groupLines(tasks []model.Task) {
	var pend, done []model.Task
	for _, t := range tasks {
		if t.Done {
			done = append(done, t)
		} else {
			pend = append(pend, t)
		}
	}
	section := func(title string, ts []model.Task) {
		l.p.Line(l.p.St.Accent.Render(title))
		if len(ts) == 0 {
			l.p.Line(l.p.St.Muted.Render(l.msg.GroupNone))
			return
		}
		for _, t := range ts {
			l.p.Line(l.p.Box(t.Done) + " " + l.taskLine(t))
		}
	}
	section(l.msg.GroupPending, pend)
	section(l.msg.GroupDone, done)
}

func (l *Loop) add(ctx context.Context) error {
	l.p.Line(l.msg.AddHeader)

	l.p.Line(l.msg.TitlePrompt)
	title, err := l.readLine()
	if err != nil {
		return err
	}
	l.p.Line(l.msg.DescPrompt)
	description, err := l.readLine()
	if err != nil {
		return err
	}
	if title == "" {
		l.p.Fail(l.msg.EmptyTitle)
		return nil
	}

	id, err := l.tasks.AddTask(ctx, title, description)
	if err != nil {
		return err
	}
	l.p.OK(fmt.Sprintf(l.msg.Added, id))
	return nil
}

func (l *Loop) complete(ctx context.Context) error {
	l.p.Line(l.msg.CompleteHeader)
	id, err := l.pickID(ctx, l.msg.CompleteIDPrompt)
	if err != nil {
		return err
	}
	if err := l.tasks.CompleteTask(ctx, id); err != nil {
		return err
	}
	l.p.OK(l.msg.Completed)
	return nil
}

func (l *Loop) remove(ctx context.Context) error {
	l.p.Line(l.msg.DeleteHeader)
	id, err := l.pickID(ctx, l.msg.DeleteIDPrompt)
	if err != nil {
		return err
	}
	if err := l.tasks.DeleteTask(ctx, id); err != nil {
		return err
	}
	l.p.OK(l.msg.Deleted)
	return nil
}

// pickID shows the list, then reads and parses one id.
func (l *Loop) pickID(ctx context.Context, prompt string) (int64, error) {
	if err := l.list(ctx); err != nil {
		return 0, err
	}
	l.p.Line(prompt)
	raw, err := l.readLine()
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &InputParseError{Input: raw, Err: err}
	}
	return id, nil
}

// -------------- helpers --------------

// inputError marks failures of the input stream itself.
type inputError struct{ err error }

func (e *inputError) Error() string { return e.err.Error() }
func (e *inputError) Unwrap() error { return e.err }

func isInputError(err error) bool {
	var ie *inputError
	return errors.As(err, &ie)
}

func stats(tasks []model.Task) (done, pending int) {
	for _, t := range tasks {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
