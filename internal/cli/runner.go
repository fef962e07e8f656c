package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/sqlite-todo/internal/store/jsonstore"
	"github.com/idilsaglam/sqlite-todo/internal/store/sqlitestore"
	"github.com/idilsaglam/sqlite-todo/internal/tui"
	"github.com/idilsaglam/sqlite-todo/internal/ui"
)

// Options carry the resolved configuration and process I/O into Run.
type Options struct {
	DBPath string
	Theme  string
	Lang   string
	Group  bool // list grouped by pending/done
	Logger *log.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o *Options) defaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// Run dispatches and returns an exit code (0 ok, 1 error, 2 usage).
// No args runs the interactive menu.
func Run(ctx context.Context, args []string, opt Options) int {
	opt.defaults()
	errp := ui.NewPrinter(opt.Stderr, opt.Theme)

	cmd, a := "", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0
	case "", "tui":
		if len(a) != 0 {
			errp.Fail("usage: todo " + cmd)
			return 2
		}
	case "export":
		if len(a) > 1 {
			errp.Fail("usage: todo export [file]")
			return 2
		}
	default:
		errp.Fail("unknown subcommand: " + cmd)
		fmt.Fprintln(opt.Stderr)
		PrintHelp(opt.Stderr)
		return 2
	}

	st, err := sqlitestore.Open(opt.DBPath, opt.Logger)
	if err != nil {
		errp.Fail("store: " + err.Error())
		return 1
	}
	defer st.Close()
	if err := st.EnsureSchema(ctx); err != nil {
		opt.Logger.Error("schema initialization failed", "path", st.Path(), "err", err)
		errp.Fail("store: " + err.Error())
		return 1
	}

	switch cmd {
	case "tui":
		return doBrowse(ctx, st, opt, errp)
	case "export":
		name := ""
		if len(a) == 1 {
			name = a[0]
		}
		return doExport(ctx, st, name, opt, errp)
	}
	return doMenu(ctx, st, opt, errp)
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `todo - a tiny task manager backed by SQLite

Usage:
  todo [flags]                 Interactive menu
  todo [flags] <subcommand>

Subcommands:
  tui                Browse tasks (space: complete, d: delete, a: add)
  export [file]      Write all tasks as JSON (default %s)
  help               Show this help

Flags:
  -db <path>         SQLite file (default %s)
  -config <path>     TOML config file (default %s if present)
  -theme <name>      classic | neon | mono
  -lang <code>       en | ja
  -group             Group the menu's task list by pending/done
`, jsonstore.DefaultFileName, sqlitestore.DefaultPath, "todo.toml")
}

// -------------- subcommand impls ----------------

func doMenu(ctx context.Context, st *sqlitestore.Store, opt Options, errp *ui.Printer) int {
	out := ui.NewPrinter(opt.Stdout, opt.Theme)
	msg := MessagesFor(opt.Lang)
	if wd, err := os.Getwd(); err == nil {
		out.Line(fmt.Sprintf(msg.CurrentDir, wd))
	}
	out.Panel([]string{out.St.Title.Render(msg.Welcome)})

	loop := NewLoop(st, opt.Stdin, opt.Stdout, LoopOptions{
		Theme:  opt.Theme,
		Lang:   opt.Lang,
		Group:  opt.Group,
		Logger: opt.Logger,
	})
	if err := loop.Run(ctx); err != nil {
		errp.Fail(err.Error())
		return 1
	}
	return 0
}

// Only the browser watches for interrupts; the menu keeps default SIGINT handling.
func doBrowse(ctx context.Context, st *sqlitestore.Store, opt Options, errp *ui.Printer) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	if err := tui.Run(ctx, st, ui.NewStyles(nil, ui.ThemeByName(opt.Theme))); err != nil {
		errp.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doExport(ctx context.Context, st *sqlitestore.Store, name string, opt Options, errp *ui.Printer) int {
	tasks, err := st.ListTasks(ctx)
	if err != nil {
		errp.Fail("load: " + err.Error())
		return 1
	}
	p, err := jsonstore.Path(name)
	if err != nil {
		errp.Fail("export: " + err.Error())
		return 1
	}
	if err := jsonstore.Save(p, tasks); err != nil {
		errp.Fail("save: " + err.Error())
		return 1
	}
	ui.NewPrinter(opt.Stdout, opt.Theme).OK(fmt.Sprintf("exported %d tasks to %s", len(tasks), p))
	return 0
}
