package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/sqlite-todo/internal/cli"
	"github.com/idilsaglam/sqlite-todo/internal/config"
	"github.com/idilsaglam/sqlite-todo/internal/logging"
)

func main() {
	// Root flags (apply to every subcommand); they win over todo.toml and env.
	configPath := flag.String("config", "", "TOML config file (default todo.toml if present)")
	dbPath := flag.String("db", "", "SQLite database file")
	theme := flag.String("theme", "", "classic | neon | mono")
	lang := flag.String("lang", "", "en | ja")
	groupPending := flag.Bool("group", false, "group the task list by pending/done")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *lang != "" {
		cfg.Lang = *lang
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, "config:", err)
			os.Exit(2)
		}
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	logger.Debug("configuration loaded", "db", cfg.DBPath, "theme", cfg.Theme, "lang", cfg.Lang)

	// Hand the remaining args to the CLI runner; none means the menu loop.
	code := cli.Run(context.Background(), flag.Args(), cli.Options{
		DBPath: cfg.DBPath,
		Theme:  cfg.Theme,
		Lang:   cfg.Lang,
		Group:  *groupPending,
		Logger: logger,
	})
	os.Exit(code)
}
