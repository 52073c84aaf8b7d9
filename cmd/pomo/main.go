package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/pomo/internal/cli"
	"github.com/alexanderramin/pomo/internal/config"
	"github.com/alexanderramin/pomo/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	app := &cli.App{
		Days:      repository.NewJSONDayLogRepo(cfg.DataDir),
		Config:    cfg,
		EventSink: os.Stderr,
	}

	// Detect an interactive terminal for the confirmation prompt.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
