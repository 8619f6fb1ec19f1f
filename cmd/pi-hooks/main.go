// ABOUTME: CLI entry point for pi-hooks: run, history, hooks, version subcommands
// ABOUTME: run pumps a JSONL event stream from stdin into the hook dispatcher

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	// termfix must be imported before any package that imports bubbletea.
	// It sets lipgloss.SetHasDarkBackground(true) in its init(), preventing
	// BubbleTea's tea_init.go from sending OSC 10/11 terminal queries whose
	// async responses leak garbage into the caller's terminal.
	_ "github.com/mauromedda/pi-hooks-go/internal/termfix"

	"github.com/mauromedda/pi-hooks-go/internal/config"
	"github.com/mauromedda/pi-hooks-go/internal/history"
	"github.com/mauromedda/pi-hooks-go/internal/hooks"
	"github.com/mauromedda/pi-hooks-go/internal/log"
	"github.com/mauromedda/pi-hooks-go/internal/mode/histsearch"
	"github.com/mauromedda/pi-hooks-go/internal/session"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]

	if len(args) > 0 {
		switch args[0] {
		case "history":
			exit(runHistory(args[1:]))
		case "hooks":
			exit(runHooksInfo(args[1:]))
		case "version":
			fmt.Printf("pi-hooks %s (%s, %s)\n", version, commit, date)
			return
		case "run":
			args = args[1:]
		}
	}

	exit(runSession(args))
}

func exit(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

// loadSettings loads and resolves config for the given project root.
func loadSettings(projectRoot string) (*config.Settings, error) {
	cfg, err := config.Load(projectRoot)
	if err != nil {
		return nil, err
	}
	config.ResolveEnvVars(cfg)
	return cfg, nil
}

// runSession reads the agent's JSONL event stream from stdin and dispatches
// hooks until the stream ends or an interrupt arrives.
func runSession(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	dir := fs.String("C", "", "project root (defaults to the current directory)")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	noHistory := fs.Bool("no-history", false, "disable prompt history recording")
	if err := fs.Parse(args); err != nil {
		return err
	}

	root := *dir
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		root = cwd
	}

	cfg, err := loadSettings(root)
	if err != nil {
		return err
	}
	if *verbose || cfg.Verbose {
		log.SetLevel(log.LevelDebug)
	}
	for k, v := range cfg.Env {
		os.Setenv(k, v)
	}

	workDir := cfg.WorkDir
	if workDir == "" {
		workDir = root
	}

	registry := hooks.NewRegistry(cfg.Hooks)
	for _, warning := range registry.Validate() {
		log.Warn("%s", warning)
	}

	historyPath := config.HistoryFile()
	if *noHistory {
		historyPath = ""
	}

	sess := session.New(workDir, historyPath)
	runner := hooks.NewRunner(registry, workDir)
	sess.Bus().Subscribe(runner.HandleEvent)

	log.Debug("session %s dispatching hooks for %d event kinds", sess.ID, len(registry.EventNames()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sess.Pump(ctx, os.Stdin)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// runHistory opens the fuzzy history picker, or lists entries when stdin is
// not a terminal.
func runHistory(args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	dir := fs.String("C", "", "project root (defaults to the current directory)")
	path := fs.String("file", "", "history file (defaults to the global history)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	root := *dir
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		root = cwd
	}

	cfg, err := loadSettings(root)
	if err != nil {
		return err
	}

	historyPath := *path
	if historyPath == "" {
		historyPath = config.HistoryFile()
	}
	limits := history.Limits{
		MaxBytes:   cfg.History.MaxBytes,
		MaxEntries: cfg.History.MaxEntries,
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		for _, entry := range history.Entries(historyPath, limits) {
			fmt.Println(history.BuildPreview(entry).First)
		}
		return nil
	}

	choice, confirmed, err := histsearch.Run(historyPath, limits)
	if err != nil {
		return err
	}
	if confirmed {
		fmt.Println(choice)
	}
	return nil
}

// runHooksInfo prints the resolved hook table and any validation warnings.
func runHooksInfo(args []string) error {
	fs := flag.NewFlagSet("hooks", flag.ExitOnError)
	dir := fs.String("C", "", "project root (defaults to the current directory)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	root := *dir
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		root = cwd
	}

	cfg, err := loadSettings(root)
	if err != nil {
		return err
	}

	registry := hooks.NewRegistry(cfg.Hooks)
	if registry.Empty() {
		fmt.Println("No hooks configured.")
		return nil
	}

	for _, event := range registry.EventNames() {
		fmt.Printf("%s:\n", event)
		for _, argv := range registry.Commands(event) {
			fmt.Printf("  %q\n", argv)
		}
	}
	for _, warning := range registry.Validate() {
		fmt.Printf("warning: %s\n", warning)
	}
	return nil
}
